package main

import (
	"net/http"
	"os"

	"github.com/BoostPerformance/fitculator-admin-sub002/internal/api"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/config"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/database"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/handler"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/logger"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/middleware"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Success("Connected to PostgreSQL")

	// Cloudinary est optionnel : sans configuration, les uploads répondent 503
	cloudinary, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logger.Warning("Cloudinary disabled: %v", err)
		cloudinary = nil
	}

	handler.Setup(cfg, cloudinary)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
