package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/nutritrack/backend/config"
	httpDelivery "github.com/nutritrack/backend/internal/delivery/http"
	"github.com/nutritrack/backend/internal/domain"
	"github.com/nutritrack/backend/internal/infrastructure/store"
	"github.com/nutritrack/backend/internal/usecase"
)

func main() {
	// Load .env if present (local development convenience)
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriTrack Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store Type: %s", cfg.Store.Type)

	// Initialize the backing document store
	var (
		journalRepo domain.JournalRepository
		profileRepo domain.ProfileRepository
	)
	switch cfg.Store.Type {
	case "postgres":
		pg, err := store.NewPostgresStore(cfg.Store.PostgresDSN)
		if err != nil {
			log.Fatalf("[STORE] Failed to connect to Postgres: %v", err)
		}
		log.Printf("[STORE] Postgres document store ready")
		journalRepo, profileRepo = pg, pg
	default:
		mem := store.NewMemoryStore()
		log.Printf("[STORE] In-memory store ready (entries are not persisted)")
		journalRepo, profileRepo = mem, mem
	}

	// Initialize usecase layer
	journalService := usecase.NewJournalService(journalRepo, profileRepo)
	analysisService := usecase.NewAnalysisService(journalRepo, profileRepo)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(journalService, analysisService, profileRepo)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
