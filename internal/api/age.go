package api

import (
	"errors"   // Sentinel errors
	"fmt"      // Message formatting
	"math"     // Integer bounds
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"strings"  // Sign detection

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// MinimumAge is the age gate threshold
const MinimumAge = 18

// ErrInvalidParameter is returned when a request parameter cannot be coerced
var ErrInvalidParameter = errors.New("invalid parameter")

// ParseAge converts the raw age text into an integer.
// Integers outside the int range are clamped, so they still pass through the age gate.
func ParseAge(raw string) (int, error) {
	age, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: age %q: %w", ErrInvalidParameter, raw, err)
	}
	return age, nil
}

// ageGate picks the status and message for a name and age
func ageGate(name string, age int) (int, string) {
	if age < MinimumAge {
		return http.StatusUnauthorized, fmt.Sprintf("Sorry, %s, you are not old enough.", name)
	}
	return http.StatusOK, fmt.Sprintf("Welcome, %s, you are old enough!", name)
}

// ParametersHandler applies the age gate to the name and age query parameters
func ParametersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name") // Name from query string
		age, err := ParseAge(c.Query("age"))
		if err != nil {
			// Log the rejected value
			logrus.WithFields(logrus.Fields{
				"age":   c.Query("age"), // Raw age value
				"error": err.Error(),    // Error message
			}).Warn("Invalid age parameter")
			c.JSON(http.StatusBadRequest, gin.H{"error": "age must be an integer"})
			return
		}
		status, message := ageGate(name, age)
		c.JSON(status, gin.H{"message": message})
	}
}

// URLVariablesHandler applies the age gate to the name and age path segments.
// The router guarantees name is non-empty and age is made of digits before this runs.
func URLVariablesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		age, err := ParseAge(c.Param("age"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "age must be an integer"})
			return
		}
		status, message := ageGate(c.Param("name"), age)
		c.JSON(status, gin.H{"message": message})
	}
}
