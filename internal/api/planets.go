package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"planetary_api/internal/db"     // Store handle
	"planetary_api/internal/domain" // Importing domain models
	"planetary_api/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ListPlanetsHandler returns every planet, served from Redis when cached
func ListPlanetsHandler(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var planets []domain.Planet
		found, err := utils.GetCache(ctx, store.Cache(), utils.PlanetsCacheKey, &planets)
		if err != nil {
			logrus.WithError(err).Warn("Failed to read cached planets")
		} else if found {
			c.JSON(http.StatusOK, gin.H{"planets": planets, "cached": true})
			return
		}
		planets, err = store.ListPlanets(ctx)
		if err != nil {
			logrus.WithError(err).Error("Failed to fetch planets")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch planets"})
			return
		}
		// Cache the list for future requests
		if err := utils.SetCache(ctx, store.Cache(), utils.PlanetsCacheKey, planets, utils.PlanetsCacheTTL); err != nil {
			logrus.WithError(err).Warn("Failed to cache planets")
		}
		c.JSON(http.StatusOK, gin.H{"planets": planets, "cached": false})
	}
}

// GetPlanetHandler returns a single planet by id
func GetPlanetHandler(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("planet_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Planet not found"})
			return
		}
		planet, err := store.GetPlanet(c.Request.Context(), uint(id))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Planet not found"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"planet_id": id,          // Requested planet
				"error":     err.Error(), // Error message
			}).Error("Failed to fetch planet")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch planet"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"planet": planet})
	}
}
