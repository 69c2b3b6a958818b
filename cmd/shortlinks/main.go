package main

import (
	"log"

	"shortlinks/internal/app"
	"shortlinks/internal/config"
	"shortlinks/internal/logger"
)

func main() {
	logger.InitLogger()

	cfg := config.NewConfig()

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("Error running application: %v", err)
	}
}
