package frames

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/iwager/app/markets"
	"github.com/joefazee/iwager/internal/cache"
	"github.com/joefazee/iwager/internal/logger"
)

// Dependencies represents the dependencies needed for the frames module
type Dependencies struct {
	Markets markets.Service
	Cache   cache.Cache[string]
	Config  *Config
	Logger  logger.Logger
}

// Init initializes the frames module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	config := deps.Config
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid frames configuration: " + err.Error())
	}

	handler := NewHandler(deps.Markets, deps.Cache, config, deps.Logger)

	framesGroup := r.Group("/frames")
	framesGroup.GET("", handler.HandleHome)
	framesGroup.POST("", handler.HandleHome)
	framesGroup.GET("/markets/:market_id", handler.HandleMarket)
	framesGroup.POST("/markets/:market_id", handler.HandleMarket)
	framesGroup.GET("/bets/:market_id", handler.HandleBet)
	framesGroup.POST("/bets/:market_id", handler.HandleBet)
	framesGroup.GET("/images/:name", handler.HandleImage)
}
