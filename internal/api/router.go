package api

import (
	"planetary_api/internal/db"         // Store handle
	"planetary_api/internal/middleware" // Custom middleware

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewRouter wires every route onto a fresh gin engine
func NewRouter(store *db.Store) (*gin.Engine, error) {
	r := gin.New()                                    // Gin router instance
	r.Use(middleware.RequestLogger(), gin.Recovery()) // Requests are logged, panics become 500
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}
	r.NoRoute(middleware.NotFound) // Unmatched routes

	r.GET("/", HelloWorldHandler())              // Liveness endpoint
	r.GET("/super_simple", SuperSimpleHandler()) // Static JSON greeting
	r.GET("/parameters", ParametersHandler())    // Age gate from query string
	r.GET("/url_variables/:name/:age",           // Age gate from path segments
		middleware.RequireParam("name"), middleware.RequireUintParam("age"), URLVariablesHandler())

	// Planet read routes
	planets := r.Group("/planets")
	planets.GET("", ListPlanetsHandler(store))                                                    // List planets
	planets.GET("/:planet_id", middleware.RequireUintParam("planet_id"), GetPlanetHandler(store)) // Planet details
	return r, nil
}
