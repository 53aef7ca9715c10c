package markets

import (
	"context"

	"github.com/joefazee/iwager/models"
)

// Repository defines the interface for market data access
type Repository interface {
	Create(ctx context.Context, market *models.Market) error
	Update(ctx context.Context, market *models.Market) error
	GetByMarketID(ctx context.Context, marketID string) (*models.Market, error)
	GetByCastHash(ctx context.Context, castHash string) (*models.Market, error)
	GetRecent(ctx context.Context, limit int) ([]models.Market, error)
}

// Service defines the interface for market business logic
type Service interface {
	CreateFromCast(ctx context.Context, input *CreateMarketInput) (*models.Market, error)
	GetByMarketID(ctx context.Context, marketID string) (*models.Market, error)
	GetByCastHash(ctx context.Context, castHash string) (*models.Market, error)
	GetRecent(ctx context.Context, limit int) ([]models.Market, error)
	MostRecent(ctx context.Context) (*models.Market, error)
}
