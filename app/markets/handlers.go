package markets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/iwager/app/api"
	"github.com/joefazee/iwager/models"
)

// Handler handles HTTP requests for markets
type Handler struct {
	service Service
}

// NewHandler creates a new market handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetRecentMarkets returns the newest markets
func (h *Handler) GetRecentMarkets(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			api.BadRequestResponse(c, "limit must be an integer")
			return
		}
		limit = parsed
	}

	mkts, err := h.service.GetRecent(c.Request.Context(), limit)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to retrieve markets")
		return
	}

	resp := ToMarketResponses(mkts)
	api.ListResponse(c, "Markets retrieved successfully", resp, len(resp))
}

// GetMarketByID returns a single market by its public identifier
func (h *Handler) GetMarketByID(c *gin.Context) {
	marketID := c.Param("market_id")

	market, err := h.service.GetByMarketID(c.Request.Context(), marketID)
	if err != nil {
		if errors.Is(err, models.ErrMarketNotFound) {
			api.NotFoundResponse(c, "Market")
			return
		}
		api.InternalErrorResponse(c, "Failed to retrieve market")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Market retrieved successfully", ToMarketResponse(market))
}
