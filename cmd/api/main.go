package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nexcart/storefront-api/internal/auth"
	"github.com/nexcart/storefront-api/internal/config"
	"github.com/nexcart/storefront-api/internal/database"
	"github.com/nexcart/storefront-api/internal/handlers"
	"github.com/nexcart/storefront-api/internal/routes"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret != "" {
		auth.SetSecret(cfg.JWTSecret)
	}

	// --- Database Connection ---
	db, err := database.OpenDB(cfg.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// --- Upload Directory ---
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("Failed to create upload directory", zap.Error(err))
	}

	// --- Application Setup ---
	app := handlers.New(db, logger, cfg)
	router := routes.SetupRouter(app)

	// --- Start Server ---
	logger.Info("Starting storefront API server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
