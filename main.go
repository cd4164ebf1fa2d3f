package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/softblush/signup-landing/pkg/api"
	"github.com/softblush/signup-landing/pkg/cache"
	"github.com/softblush/signup-landing/pkg/clients/ingest"
	"github.com/softblush/signup-landing/pkg/config"
	"github.com/softblush/signup-landing/pkg/middleware"
	"github.com/softblush/signup-landing/pkg/services"
	"github.com/softblush/signup-landing/pkg/store"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Local signup cache
	kv, err := store.Open(store.Options{
		Backend:   cfg.StoreBackend,
		Path:      cfg.StorePath,
		RedisAddr: cfg.RedisAddr,
	})
	if err != nil {
		log.Fatalf("Error opening %s store: %v", cfg.StoreBackend, err)
	}
	defer kv.Close()
	signups := cache.NewSignupCache(kv, cfg.CacheKey)

	// Remote ingestion endpoint
	ingestClient := ingest.NewClient(cfg.SignupEndpointURL, nil)
	if !ingestClient.Configured() {
		log.Println("No signup endpoint configured, signups will only be saved locally")
	}

	controller := services.NewSignupController(ingestClient, signups, cfg.Source)

	gin.SetMode(cfg.GinMode)

	// Create a new Gin router with default middleware
	router := gin.Default()
	router.Use(middleware.CORS(cfg.AllowedOrigins), middleware.RequestID())

	handlers := api.NewHandlers(controller, signups, cfg.AdminToken)
	handlers.Register(router)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
