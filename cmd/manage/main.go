// Command manage runs the operator commands against the configured store:
// db_create, db_drop and db_seed.
package main

import (
	"context" // Command context
	"os"      // Exit codes

	"planetary_api/internal/config" // Custom import path (Config)
	"planetary_api/internal/db"     // Custom import path (Database)
	"planetary_api/internal/utils"  // Logger and Redis setup

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for the operator commands
func main() {
	cfg := config.LoadConfig() // Load configuration
	utils.SetupLogger(cfg.LogLevel, cfg.IsProd)

	// Store is opened lazily so --help works without a database
	openStore := func(ctx context.Context) (*db.Store, error) {
		conn, err := db.Open(cfg)
		if err != nil {
			return nil, err
		}
		rdb, err := utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, cache will not be invalidated")
			rdb = nil
		}
		return db.NewStore(conn, rdb), nil
	}

	if err := newRootCommand(openStore).Execute(); err != nil {
		os.Exit(1)
	}
}
