package casts

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/iwager/app/markets"
	"github.com/joefazee/iwager/app/validation"
	"github.com/joefazee/iwager/internal/llm"
	"github.com/joefazee/iwager/internal/logger"
	"github.com/joefazee/iwager/internal/neynar"
)

// Dependencies represents the dependencies needed for the casts module
type Dependencies struct {
	Config     *Config
	MarketsCfg *markets.Config
	Markets    markets.Service
	Completer  llm.Completer
	Publisher  neynar.Publisher
	Logger     logger.Logger
	Semantic   SemanticChecker
}

// Init initializes the casts module and mounts the webhook route
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	config := deps.Config
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid casts configuration: " + err.Error())
	}

	marketsCfg := deps.MarketsCfg
	if marketsCfg == nil {
		marketsCfg = markets.GetDefaultConfig()
	}

	semantic := deps.Semantic
	if semantic == nil {
		semantic = newSemanticChecker(deps.Completer, deps.Logger)
	}

	dispatcher := NewDispatcher(deps.Publisher, deps.Logger, config.AppURL)
	srvs := NewService(deps.Markets, marketsCfg, semantic, dispatcher, deps.Logger)
	handler := NewHandler(srvs, marketsCfg.TriggerHandle, deps.Logger)

	r.POST("/webhooks/neynar", handler.HandleWebhook)

	return srvs
}

func newSemanticChecker(completer llm.Completer, l logger.Logger) SemanticChecker {
	return validation.NewSemanticValidator(completer, l)
}
