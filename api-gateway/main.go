package main

import (
	"log"
	"net/http"

	"foodiefind/api-gateway/internal/gateway"
	"foodiefind/config"

	"github.com/rs/cors"
)

func main() {
	settings := config.MustLoad()

	gw := gateway.NewGateway(gateway.Config{
		ReservationSvcURL: settings.ReservationSvcURL,
		ActivitySvcURL:    settings.ActivitySvcURL,
		FrontendDir:       settings.FrontendDir,
	}, &http.Client{Timeout: settings.ProxyTimeout})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(gw.SetupRoutes())

	log.Printf("API Gateway starting on %s", settings.GatewayAddr)
	log.Fatal(http.ListenAndServe(settings.GatewayAddr, handler))
}
