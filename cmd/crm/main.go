package main

import (
	"log"

	"github.com/6Ash6/TPIS-CRM-model/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
