package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// HelloWorldHandler is the plain-text liveness endpoint
func HelloWorldHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Hello world!")
	}
}

// SuperSimpleHandler returns a static JSON greeting
func SuperSimpleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from Planetary API!!"})
	}
}
