// Wellness Score API
//
// REST API computing a composite daily wellness/stress indicator.
//
//	@title			Wellness Score API
//	@version		1.0
//	@description	Composite daily wellness/stress score from exercise, sleep, diet and device-usage signals.
//
//	@BasePath	/v1
//
//	@tag.name			wellness
//	@tag.description	Wellness score and device-usage endpoints
//
//	@tag.name			nutrition
//	@tag.description	Nutrition logging endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Hariom009/WellPlate-sub000/internal/api"
	"github.com/Hariom009/WellPlate-sub000/internal/api/handler"
	"github.com/Hariom009/WellPlate-sub000/internal/config"
	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/Hariom009/WellPlate-sub000/internal/llm"
	"github.com/Hariom009/WellPlate-sub000/internal/monitor"
	"github.com/Hariom009/WellPlate-sub000/internal/repository"
	"github.com/Hariom009/WellPlate-sub000/internal/seed"
	"github.com/Hariom009/WellPlate-sub000/internal/sensor"
	"github.com/Hariom009/WellPlate-sub000/internal/service"
	"github.com/Hariom009/WellPlate-sub000/internal/sharedstore"
	"github.com/Hariom009/WellPlate-sub000/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op without a collector endpoint)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "wellness-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.NutritionLogEntry{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Open the shared usage store (written by the usage-monitor process)
	store, err := sharedstore.Open(cfg.SharedStorePath)
	if err != nil {
		log.Fatalf("Failed to open shared usage store: %v", err)
	}
	defer store.Close()

	// Initialize the sensor gateway client (may be nil if not configured)
	sensorClient := sensor.NewClient(cfg.SensorBaseURL, cfg.SensorAPIKey)
	if sensorClient == nil {
		log.Println("Warning: sensor gateway not configured, scores will report needs_permission")
	}

	// Initialize repositories
	nutritionRepo := repository.NewNutritionRepository(db)

	// Initialize services
	usageBridge := monitor.NewBridge(store)
	wellnessService := service.NewWellnessService(sensorClient, nutritionRepo, usageBridge)
	nutritionService := service.NewNutritionService(nutritionRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIWellnessInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(wellnessService, openaiClient)

	// Initialize handlers
	wellnessHandler := handler.NewWellnessHandler(wellnessService, insightsService)
	nutritionHandler := handler.NewNutritionHandler(nutritionService)

	// Setup router
	router := api.NewRouter(wellnessHandler, nutritionHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
