package main

import (
	"context" // context package is needed for Redis operations

	"planetary_api/internal/api"    // Custom package for API handlers
	"planetary_api/internal/config" // Custom package for configuration
	"planetary_api/internal/db"     // Custom package for the store
	"planetary_api/internal/utils"  // Logger and Redis setup

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	utils.SetupLogger(cfg.LogLevel, cfg.IsProd)

	// Connect to the database
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client, nil when REDIS_ADDR is empty
	redisClient, err := utils.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	if redisClient == nil {
		logrus.Info("Redis not configured, caching disabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := api.NewRouter(db.NewStore(conn, redisClient))
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {             // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}
