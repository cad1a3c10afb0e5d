// Package api wires the HTTP surface over the grid dispatcher.
package api

import (
	"net/http"

	"payoff-grid/internal/api/handlers"
	"payoff-grid/internal/api/middleware"
	"payoff-grid/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter registers middleware and routes. cache may be nil; maxSize caps
// grid_size.
func NewRouter(defaultSize, maxSize int, cache *data.GridCache, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	gridHandler := handlers.NewGridHandler(cache, defaultSize, maxSize, logger)
	marketHandler := handlers.NewMarketHandler(defaultSize)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/markets", marketHandler.ListMarkets)
		api.GET("/grid", gridHandler.GetGrid)
		api.POST("/grid", gridHandler.PostGrid)
	}

	router.NoRoute(middleware.NotFound)
	return router
}
