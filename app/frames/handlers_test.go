package frames

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/iwager/app/markets"
	"github.com/joefazee/iwager/internal/cache"
	"github.com/joefazee/iwager/internal/logger"
	"github.com/joefazee/iwager/models"
)

func setupFramesRouter(svc markets.Service) (*gin.Engine, cache.Cache[string]) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	memCache := cache.NewMemoryCache[string]()
	cfg := &Config{AppURL: "https://iwager.example.com", TriggerHandle: "@watchthis", MarketTTL: time.Minute}
	handler := NewHandler(svc, memCache, cfg, logger.NewNullLogger())

	g := r.Group("/api/v1/frames")
	g.GET("", handler.HandleHome)
	g.POST("", handler.HandleHome)
	g.GET("/markets/:market_id", handler.HandleMarket)
	g.POST("/markets/:market_id", handler.HandleMarket)
	g.GET("/bets/:market_id", handler.HandleBet)
	g.POST("/bets/:market_id", handler.HandleBet)
	g.GET("/images/:name", handler.HandleImage)
	return r, memCache
}

func frameBody(t *testing.T, buttonIndex int, inputText string) *bytes.Buffer {
	t.Helper()
	var req FrameRequest
	req.UntrustedData.ButtonIndex = buttonIndex
	req.UntrustedData.InputText = inputText

	var buf bytes.Buffer
	assert.NoError(t, json.NewEncoder(&buf).Encode(req))
	return &buf
}

func sampleMarket() *models.Market {
	return &models.Market{
		MarketID:  "market_abc",
		Question:  "BTC hits $100k by December 31st",
		CloseTime: time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC),
		TotalPool: decimal.NewFromInt(120),
		YesShares: decimal.NewFromInt(90),
		NoShares:  decimal.NewFromInt(30),
	}
}

func TestHandleHome_Get(t *testing.T) {
	svc := &markets.MockService{}
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/frames", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fc:frame")
	assert.Contains(t, w.Body.String(), "View Markets")
	svc.AssertNotCalled(t, "MostRecent")
}

func TestHandleHome_PostShowsMostRecentMarket(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("MostRecent", mock.Anything).Return(sampleMarket(), nil).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/frames", frameBody(t, 1, "")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/frames/markets/market_abc")
	assert.Contains(t, w.Body.String(), "Bet YES")
}

func TestHandleHome_PostEmptyStore(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("MostRecent", mock.Anything).Return(nil, models.ErrMarketNotFound).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/frames", frameBody(t, 1, "")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No markets yet")
}

func TestHandleMarket_Get(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_abc").Return(sampleMarket(), nil).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/frames/markets/market_abc", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enter bet amount (USDC)")
	assert.Contains(t, w.Body.String(), "BTC hits $100k by December 31st")
}

func TestHandleMarket_NotFound(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_nope").Return(nil, models.ErrMarketNotFound).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/frames/markets/market_nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Back to Home")
	assert.Contains(t, w.Body.String(), "images/error")
}

func TestHandleMarket_BetNoPressLeadsToConfirm(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_abc").Return(sampleMarket(), nil).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/frames/markets/market_abc", frameBody(t, 2, "10")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Confirm NO $10")
	assert.Contains(t, w.Body.String(), "action=no")
	assert.Contains(t, w.Body.String(), "amount=10")
}

// Market lookups go through the cache: a second render must not hit the
// store again.
func TestHandleMarket_CachesLookups(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_abc").Return(sampleMarket(), nil).Once()
	r, _ := setupFramesRouter(svc)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/frames/markets/market_abc", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	svc.AssertNumberOfCalls(t, "GetByMarketID", 1)
}

func TestHandleBet_ConfirmLeadsToSuccess(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_abc").Return(sampleMarket(), nil).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost,
		"/api/v1/frames/bets/market_abc?action=no&amount=10", frameBody(t, 1, "")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bet NO Confirmed!")
	assert.Contains(t, w.Body.String(), "bet-success")
}

func TestHandleBet_CancelReturnsToMarket(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_abc").Return(sampleMarket(), nil).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost,
		"/api/v1/frames/bets/market_abc?action=yes&amount=5", frameBody(t, 2, "")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bet YES")
	assert.Contains(t, w.Body.String(), "Bet NO")
	assert.Contains(t, w.Body.String(), "Details")
}

func TestHandleImage_Keywords(t *testing.T) {
	svc := &markets.MockService{}
	r, _ := setupFramesRouter(svc)

	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/frames/images/home", "iWager Prediction Markets"},
		{"/api/v1/frames/images/no-markets", "@watchthis"},
		{"/api/v1/frames/images/error?message=Market+not+found", "Market not found"},
		{"/api/v1/frames/images/bet-confirm?action=no&amount=10", "NO"},
		{"/api/v1/frames/images/bet-success?action=yes&amount=5", "Bet Confirmed!"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

		assert.Equal(t, http.StatusOK, w.Code, tt.path)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"), tt.path)
		assert.Contains(t, w.Body.String(), tt.want, tt.path)
	}
}

func TestHandleImage_Market(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_abc").Return(sampleMarket(), nil).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/frames/images/market_abc", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "YES: 75%")
	assert.Contains(t, w.Body.String(), "NO: 25%")
}

func TestHandleImage_MarketDetails(t *testing.T) {
	svc := &markets.MockService{}
	m := sampleMarket()
	m.CreatorUsername = "alice"
	m.AIConfidence = 0.93
	svc.On("GetByMarketID", mock.Anything, "market_abc").Return(m, nil).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/frames/images/market_abc?view=details", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AI Confidence: 93%")
	assert.Contains(t, w.Body.String(), "@alice")
}

func TestHandleImage_UnknownMarket(t *testing.T) {
	svc := &markets.MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_nope").Return(nil, models.ErrMarketNotFound).Once()
	r, _ := setupFramesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/frames/images/market_nope", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Market not found")
}
