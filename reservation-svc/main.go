package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodiefind/config"
	httpapi "foodiefind/reservation-svc/internal/api/http"
	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/enrichment"
	"foodiefind/reservation-svc/internal/persistence"
	"foodiefind/reservation-svc/internal/service"
	"foodiefind/reservation-svc/internal/storage"
)

func initBackend(s config.Settings) (persistence.KeyValueStore, func()) {
	switch s.StorageBackend {
	case "postgres":
		db := config.MustInitPostgres(s)
		kv := storage.NewPostgresKV(db)
		if err := kv.EnsureSchema(); err != nil {
			log.Fatal("Failed to create kv_store table:", err)
		}
		return kv, func() { db.Close() }
	case "memory":
		log.Println("Warning: using in-memory storage, data is lost on exit")
		return storage.NewMemoryKV(), func() {}
	default:
		rdb := config.MustInitRedis(s)
		return storage.NewRedisKV(rdb), func() { rdb.Close() }
	}
}

// wirePublisher forwards every store mutation to Kafka when a broker is set.
func wirePublisher(s config.Settings, store *service.Store) func() {
	writer := config.NewKafkaWriter(s)
	if writer == nil {
		log.Println("Warning: KAFKA_BROKER not set, skipping mutation publishing")
		return func() {}
	}

	var publisher service.MutationPublisher = storage.NewKafkaPublisher(writer)
	store.Subscribe(func(m domain.Mutation) {
		ctx, cancel := context.WithTimeout(context.Background(), s.StorageTimeout)
		defer cancel()
		if err := publisher.PublishMutation(ctx, m); err != nil {
			log.Printf("Warning: failed to publish %s mutation: %v", m.Type, err)
		}
	})
	return func() { writer.Close() }
}

func main() {
	settings := config.MustLoad()

	kv, closeBackend := initBackend(settings)
	defer closeBackend()

	adapter := persistence.NewAdapter(kv, settings.StorageTimeout)
	store := service.NewStore(adapter)

	closePublisher := wirePublisher(settings, store)
	defer closePublisher()

	synchronizer := service.NewSynchronizer(store, adapter, service.SyncOptions{
		SaveDebounce:   settings.SaveDebounce,
		BackupInterval: settings.BackupInterval,
	})
	synchronizer.Load()
	synchronizer.Start()
	defer synchronizer.Close()

	enricher := enrichment.NewEnricher(
		store,
		enrichment.NewImagePicker(nil),
		enrichment.NewQuotesClient(nil, settings.QuotesURL),
		enrichment.NewWeatherClient(nil, settings.WeatherURL, settings.WeatherCity, settings.WeatherAPIKey),
		synchronizer,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if settings.EnrichOnStart {
		go func() {
			enrichCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()
			enricher.LoadAll(enrichCtx)
		}()
	}

	handler := httpapi.NewHandler(
		service.NewCatalogService(store),
		service.NewDashboardService(store),
		service.NewAccountService(store, adapter),
		service.NewBookingService(store, service.DefaultQRGenerator{BaseURL: settings.PublicBaseURL}),
		synchronizer,
		enricher,
	)

	if err := httpapi.StartServer(ctx, settings.HTTPAddr, httpapi.NewRouter(handler)); err != nil {
		log.Printf("Error running server: %v", err)
	}
	log.Println("Reservation Service shutting down")
}
