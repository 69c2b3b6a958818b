package main

import (
	"log"
	"net/http"

	"shortlinks/internal/config"
	"shortlinks/internal/logger"
	"shortlinks/internal/mockapi"
)

func main() {
	logger.InitLogger()

	cfg := config.NewConfig()

	handler := mockapi.NewHandler()

	log.Printf("Mock alias server listening at %s", cfg.MockListenAddr)
	if err := http.ListenAndServe(cfg.MockListenAddr, handler.RegisterRoutes()); err != nil {
		log.Fatalf("Error running mock server: %v", err)
	}
}
