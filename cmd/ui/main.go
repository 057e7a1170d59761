package main

import (
	"log"

	"github.com/joho/godotenv"

	"salescope/adapters/ingest"
	"salescope/app"
	"salescope/internal"
	"salescope/internal/config"
	"salescope/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.DefaultLogger

	sampleConfig := ingest.DefaultSampleConfig()
	sampleConfig.Seed = appConfig.Data.SampleSeed
	sampleConfig.Rows = appConfig.Data.SampleRows
	sampleConfig.PoissonMean = appConfig.Data.PoissonMean

	resolver := ingest.NewResolver(sampleConfig)
	pipeline := app.NewPipeline(resolver, logger)

	uiApp, err := ui.NewApp(ui.Config{
		Port:           appConfig.Server.Port,
		MaxUploadBytes: appConfig.Server.MaxUploadBytes,
	}, pipeline, logger)
	if err != nil {
		log.Fatalf("Failed to initialize UI application: %v", err)
	}

	log.Fatal(uiApp.Start(":" + appConfig.Server.Port))
}
