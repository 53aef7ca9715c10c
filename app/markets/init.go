package markets

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/iwager/internal/sanitizer"
)

// Dependencies represents the dependencies needed for the markets module
type Dependencies struct {
	DB        *gorm.DB
	Config    *Config
	Sanitizer sanitizer.HTMLStripperer
}

// Init initializes the markets module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	config := deps.Config
	if config == nil {
		config = GetDefaultConfig()
	}

	if err := config.Validate(); err != nil {
		panic("Invalid markets configuration: " + err.Error())
	}

	repo := NewRepository(deps.DB)
	srvs := NewService(repo, config, deps.Sanitizer)
	handler := NewHandler(srvs)

	marketsGroup := r.Group("/markets")
	marketsGroup.GET("/recent", handler.GetRecentMarkets)
	marketsGroup.GET("/:market_id", handler.GetMarketByID)

	return srvs
}
