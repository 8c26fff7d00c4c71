package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// NotFound answers unmatched routes
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// RequireParam treats an empty path segment for any of names as an
// unmatched route.
func RequireParam(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			if c.Param(name) == "" {
				NotFound(c)
				return
			}
		}
		c.Next()
	}
}

// RequireUintParam only lets the request through when every named path
// parameter is made of ASCII digits. Anything else is treated as an
// unmatched route.
func RequireUintParam(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			if !isDigits(c.Param(name)) {
				NotFound(c)
				return
			}
		}
		c.Next()
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
