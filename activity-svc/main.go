package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpapi "foodiefind/activity-svc/internal/api/http"
	"foodiefind/activity-svc/internal/service"
	"foodiefind/activity-svc/internal/storage"
	"foodiefind/config"
)

func main() {
	settings := config.MustLoad()
	if settings.KafkaBroker == "" {
		log.Fatal("KAFKA_BROKER is required")
	}

	rdb := config.MustInitRedis(settings)
	defer rdb.Close()

	reader := config.NewKafkaReader(settings, "activity-svc-consumer")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewStore(rdb)

	consumer := service.NewConsumer(reader, store)
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(service.NewAnalyticsService(store))
	if err := httpapi.StartServer(ctx, settings.ActivityHTTPAddr, httpapi.NewRouter(handler)); err != nil {
		log.Fatal("Server error:", err)
	}
}
