package db

import (
	"context" // Operator command context
	"fmt"     // Error wrapping

	"planetary_api/internal/domain" // Importing domain models
	"planetary_api/internal/utils"  // Cache helpers

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// CreateSchema creates the users and planets tables if they are absent.
// Existing tables and rows are left untouched.
func (s *Store) CreateSchema(ctx context.Context) error {
	// AutoMigrate will create tables, missing columns and indexes
	if err := s.db.WithContext(ctx).AutoMigrate(&domain.User{}, &domain.Planet{}); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	logrus.Info("Schema created.")
	return nil
}

// DropSchema removes both tables and all of their rows
func (s *Store) DropSchema(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Migrator().DropTable(&domain.User{}, &domain.Planet{}); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	s.invalidatePlanets(ctx)
	logrus.Info("Schema dropped.")
	return nil
}

// invalidatePlanets clears the cached planet list after a write
func (s *Store) invalidatePlanets(ctx context.Context) {
	if err := utils.DeleteCache(ctx, s.cache, utils.PlanetsCacheKey); err != nil {
		logrus.WithError(err).Warn("Failed to invalidate planet cache")
	}
}
