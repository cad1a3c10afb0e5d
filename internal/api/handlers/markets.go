package handlers

import (
	"net/http"

	"payoff-grid/internal/api/models"
	"payoff-grid/internal/betgrid"

	"github.com/gin-gonic/gin"
)

// MarketHandler handles bet type discovery
type MarketHandler struct {
	defaultSize int
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(defaultSize int) *MarketHandler {
	return &MarketHandler{defaultSize: defaultSize}
}

// ListMarkets handles GET /api/v1/markets
func (h *MarketHandler) ListMarkets(c *gin.Context) {
	c.JSON(http.StatusOK, models.MarketsResponse{
		Markets: betgrid.Catalog(h.defaultSize),
	})
}
