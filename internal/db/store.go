package db

import (
	"context" // Request scoped queries
	"errors"  // Sentinel errors

	"planetary_api/internal/domain" // Importing domain models

	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// Store is the handle shared by HTTP handlers and operator commands
type Store struct {
	db    *gorm.DB      // Database connection
	cache *redis.Client // Optional cache, nil when disabled
}

// NewStore wraps an open database and an optional Redis client
func NewStore(db *gorm.DB, cache *redis.Client) *Store {
	return &Store{db: db, cache: cache}
}

// Cache exposes the Redis client; it may be nil
func (s *Store) Cache() *redis.Client {
	return s.cache
}

// ListPlanets returns every planet ordered by id
func (s *Store) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	if err := s.db.WithContext(ctx).Order("planet_id").Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}

// GetPlanet loads a single planet by id
func (s *Store) GetPlanet(ctx context.Context, id uint) (*domain.Planet, error) {
	var planet domain.Planet
	err := s.db.WithContext(ctx).First(&planet, "planet_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &planet, nil
}

// CountUsers reports how many user rows exist
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error
	return total, err
}

// CountPlanets reports how many planet rows exist
func (s *Store) CountPlanets(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&domain.Planet{}).Count(&total).Error
	return total, err
}
