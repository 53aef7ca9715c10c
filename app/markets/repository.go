package markets

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joefazee/iwager/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new market repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// Create persists a new market. Unique-index violations surface as
// models.ErrDuplicateMarketID so the service can regenerate the identifier.
func (r *repository) Create(ctx context.Context, market *models.Market) error {
	err := r.db.WithContext(ctx).Create(market).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrDuplicateMarketID
		}
		return err
	}
	return nil
}

// Update saves mutable market fields
func (r *repository) Update(ctx context.Context, market *models.Market) error {
	return r.db.WithContext(ctx).Save(market).Error
}

// GetByMarketID returns a market by its public identifier
func (r *repository) GetByMarketID(ctx context.Context, marketID string) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).
		Where("market_id = ?", marketID).
		First(&market).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMarketNotFound
		}
		return nil, err
	}
	return &market, nil
}

// GetByCastHash returns the market created from a given cast
func (r *repository) GetByCastHash(ctx context.Context, castHash string) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).
		Where("cast_hash = ?", castHash).
		First(&market).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMarketNotFound
		}
		return nil, err
	}
	return &market, nil
}

// GetRecent returns the newest markets, most recent first
func (r *repository) GetRecent(ctx context.Context, limit int) ([]models.Market, error) {
	var markets []models.Market
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&markets).Error
	return markets, err
}
