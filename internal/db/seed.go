package db

import (
	"context" // Operator command context
	"fmt"     // Error wrapping

	"planetary_api/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// SeedPlanets are the fixture planets inserted by Seed
func SeedPlanets() []domain.Planet {
	return []domain.Planet{
		{PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "Sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
		{PlanetName: "Venus", PlanetType: "Class K", HomeStar: "Sol", Mass: 4.258e23, Radius: 3760, Distance: 77.24e6},
		{PlanetName: "Earth", PlanetType: "Class M", HomeStar: "Sol", Mass: 5.972e24, Radius: 3959, Distance: 92.96e6},
	}
}

// Seed user credentials
const (
	SeedUserEmail    = "william_hershel@gmail.com"
	seedUserPassword = "password"
)

// Seed inserts the fixture planets and user in a single transaction.
// It is one-shot: a second run violates the unique email index and
// rolls back, so no planet is duplicated.
func (s *Store) Seed(ctx context.Context) error {
	// Hash the password before storing the user
	hash, err := bcrypt.GenerateFromPassword([]byte(seedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	planets := SeedPlanets()
	user := domain.User{
		FirstName: "William",
		LastName:  "Herschel",
		Email:     SeedUserEmail,
		Password:  string(hash),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Insert the planets
		if err := tx.Create(&planets).Error; err != nil {
			return err // Return error to rollback
		}
		// Insert the user, fails on an existing email
		if err := tx.Create(&user).Error; err != nil {
			return err // Return error to rollback
		}
		return nil // Commit transaction
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email": SeedUserEmail, // Seed user email
			"error": err.Error(),   // Error message
		}).Error("Seed failed")
		return fmt.Errorf("seed database: %w", err)
	}
	s.invalidatePlanets(ctx)
	fields := logrus.Fields{
		"planets_inserted": len(planets), // Planet rows inserted
		"user_id":          user.ID,      // Seed user ID
	}
	// Report table totals after the commit
	if total, err := s.CountPlanets(ctx); err == nil {
		fields["planets_total"] = total
	}
	if total, err := s.CountUsers(ctx); err == nil {
		fields["users_total"] = total
	}
	logrus.WithFields(fields).Info("Database seeded")
	return nil
}
