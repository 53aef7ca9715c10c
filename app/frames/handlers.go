package frames

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/iwager/app/markets"
	"github.com/joefazee/iwager/internal/cache"
	"github.com/joefazee/iwager/internal/logger"
	"github.com/joefazee/iwager/internal/validator"
	"github.com/joefazee/iwager/models"
)

const frameContentType = "text/html; charset=utf-8"

// Handler serves frame documents and card images
type Handler struct {
	markets markets.Service
	cache   cache.Cache[string]
	config  *Config
	logger  logger.Logger
}

// NewHandler creates a new frames handler
func NewHandler(marketSvc markets.Service, c cache.Cache[string], config *Config, l logger.Logger) *Handler {
	return &Handler{markets: marketSvc, cache: c, config: config, logger: l}
}

func (h *Handler) respond(c *gin.Context, status int, s State) {
	html := RenderFrame(View(s, h.config.AppURL))
	c.Data(status, frameContentType, []byte(html))
}

// getMarket reads a market through the cache; entries expire after the
// configured TTL so frame reloads don't hammer the store.
func (h *Handler) getMarket(ctx context.Context, marketID string) (*models.Market, error) {
	key := "frames:market:" + marketID

	if raw, err := h.cache.Get(ctx, key); err == nil {
		var m models.Market
		if jsonErr := json.Unmarshal([]byte(raw), &m); jsonErr == nil {
			return &m, nil
		}
	}

	m, err := h.markets.GetByMarketID(ctx, marketID)
	if err != nil {
		return nil, err
	}

	if raw, jsonErr := json.Marshal(m); jsonErr == nil {
		if cacheErr := h.cache.Set(ctx, key, string(raw), h.config.MarketTTL); cacheErr != nil {
			h.logger.Error(cacheErr, logger.Fields{"market_id": marketID})
		}
	}
	return m, nil
}

// HandleHome serves the entry card. A press resolves to the most recent
// market, or the no-markets card when the store is empty.
func (h *Handler) HandleHome(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		h.respond(c, http.StatusOK, State{Kind: StateHome})
		return
	}

	market, err := h.markets.MostRecent(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrMarketNotFound) {
			h.respond(c, http.StatusOK, State{Kind: StateNoMarkets})
			return
		}
		h.logger.Error(err, logger.Fields{"frame": "home"})
		h.respond(c, http.StatusOK, ErrorState("Failed to load markets"))
		return
	}

	h.respond(c, http.StatusOK, MarketState(market.MarketID, market.Question))
}

// HandleMarket serves a market card and routes its button presses
func (h *Handler) HandleMarket(c *gin.Context) {
	marketID := c.Param("market_id")

	market, err := h.getMarket(c.Request.Context(), marketID)
	if err != nil {
		h.respond(c, http.StatusNotFound, ErrorState("Market not found"))
		return
	}

	current := MarketState(market.MarketID, market.Question)
	if c.Request.Method == http.MethodGet {
		h.respond(c, http.StatusOK, current)
		return
	}

	h.respond(c, http.StatusOK, Transition(current, h.interaction(c)))
}

// HandleBet serves the confirmation card and routes confirm/cancel presses
func (h *Handler) HandleBet(c *gin.Context) {
	marketID := c.Param("market_id")

	market, err := h.getMarket(c.Request.Context(), marketID)
	if err != nil {
		h.respond(c, http.StatusNotFound, ErrorState("Market not found"))
		return
	}

	side := c.DefaultQuery("action", SideYes)
	if !validator.In(side, SideYes, SideNo) {
		side = SideYes
	}
	amount := c.DefaultQuery("amount", DefaultAmount)

	current := State{
		Kind:     StateBetConfirm,
		MarketID: market.MarketID,
		Question: market.Question,
		Side:     side,
		Amount:   amount,
	}

	if c.Request.Method == http.MethodGet {
		h.respond(c, http.StatusOK, current)
		return
	}

	h.respond(c, http.StatusOK, Transition(current, h.interaction(c)))
}

// interaction parses the frame packet; a malformed body counts as a press
// with no button, which every state treats as a safe re-render.
func (h *Handler) interaction(c *gin.Context) Interaction {
	var req FrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(err, logger.Fields{"stage": "frame_parse"})
		return Interaction{}
	}
	return req.Interaction()
}

// HandleImage renders the SVG for a card image. The name segment is either
// a reserved keyword or a market identifier.
func (h *Handler) HandleImage(c *gin.Context) {
	name := c.Param("name")

	var svg string
	maxAge := "60"

	switch name {
	case "home":
		svg = RenderHomeImage()
		maxAge = "300"
	case "no-markets":
		svg = RenderNoMarketsImage(h.config.TriggerHandle)
	case "error":
		svg = RenderErrorImage(c.Query("message"))
		maxAge = "0"
	case "bet-confirm", "bet-response":
		svg = RenderBetConfirmImage(c.DefaultQuery("action", SideYes), c.DefaultQuery("amount", DefaultAmount))
	case "bet-success":
		svg = RenderBetSuccessImage(c.DefaultQuery("action", SideYes), c.DefaultQuery("amount", DefaultAmount))
		maxAge = "300"
	default:
		market, err := h.getMarket(c.Request.Context(), name)
		if err != nil {
			svg = RenderErrorImage("Market not found")
			maxAge = "0"
			break
		}
		if c.Query("view") == "details" {
			svg = RenderDetailsImage(market)
			maxAge = "300"
		} else {
			svg = RenderMarketImage(market)
		}
	}

	c.Header("Cache-Control", "public, max-age="+maxAge)
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
