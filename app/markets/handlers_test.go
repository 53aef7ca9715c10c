package markets

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/iwager/models"
)

func setupMarketsRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(svc)
	r.GET("/markets/recent", handler.GetRecentMarkets)
	r.GET("/markets/:market_id", handler.GetMarketByID)
	return r
}

func TestGetRecentMarkets(t *testing.T) {
	svc := &MockService{}
	svc.On("GetRecent", mock.Anything, 0).Return([]models.Market{
		{MarketID: "market_one", Question: "Q1"},
		{MarketID: "market_two", Question: "Q2"},
	}, nil).Once()

	w := httptest.NewRecorder()
	setupMarketsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/markets/recent", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "market_one")
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestGetRecentMarkets_BadLimit(t *testing.T) {
	svc := &MockService{}

	w := httptest.NewRecorder()
	setupMarketsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/markets/recent?limit=abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetRecent")
}

func TestGetMarketByID(t *testing.T) {
	svc := &MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_abc").
		Return(&models.Market{MarketID: "market_abc", Question: "Q"}, nil).Once()

	w := httptest.NewRecorder()
	setupMarketsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/markets/market_abc", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "market_abc")
}

func TestGetMarketByID_NotFound(t *testing.T) {
	svc := &MockService{}
	svc.On("GetByMarketID", mock.Anything, "market_nope").
		Return(nil, models.ErrMarketNotFound).Once()

	w := httptest.NewRecorder()
	setupMarketsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/markets/market_nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
