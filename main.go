package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"gradefill/adapters/excel"
	"gradefill/api"
	"gradefill/app"
	"gradefill/internal/config"
	"gradefill/internal/ops"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Wire the fill pipeline
	catalog := excel.NewTemplateCatalog(excel.CatalogConfig{
		Dir:      cfg.Templates.Dir,
		FlatFile: cfg.Templates.FlatFile,
		XTRFile:  cfg.Templates.XTRFile,
	})
	fillService := app.NewFillService(catalog, excel.NewWorkbookFiller(), cfg.Fill.MaxConcurrent)

	// Report template availability up front so a bad deployment shows in the
	// startup log, not just on the first fill
	for _, entry := range fillService.Templates(context.Background()) {
		if entry.Available {
			log.Printf("[TemplateCatalog] ✅ %s -> %s", entry.Tracker, entry.Filename)
		} else {
			log.Printf("[TemplateCatalog] ❌ %s -> %s (file missing)", entry.Tracker, entry.Filename)
		}
	}

	server := api.NewServer(cfg, fillService)

	// Start ops listener for healthz and performance profiling
	if cfg.Profiling.Enabled {
		opsServer := ops.NewServer()
		go opsServer.Start(cfg.Profiling.Port)
	}

	// Start the server
	log.Printf("🚀 Starting gradefill server on port %s", cfg.Server.Port)
	log.Fatal(server.Start(":" + cfg.Server.Port))
}
