package markets

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/iwager/models"
)

// MockRepository is a testify mock for Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, market *models.Market) error {
	args := m.Called(ctx, market)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, market *models.Market) error {
	args := m.Called(ctx, market)
	return args.Error(0)
}

func (m *MockRepository) GetByMarketID(ctx context.Context, marketID string) (*models.Market, error) {
	args := m.Called(ctx, marketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockRepository) GetByCastHash(ctx context.Context, castHash string) (*models.Market, error) {
	args := m.Called(ctx, castHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockRepository) GetRecent(ctx context.Context, limit int) ([]models.Market, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Market), args.Error(1)
}

// MockService is a testify mock for Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreateFromCast(ctx context.Context, input *CreateMarketInput) (*models.Market, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockService) GetByMarketID(ctx context.Context, marketID string) (*models.Market, error) {
	args := m.Called(ctx, marketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockService) GetByCastHash(ctx context.Context, castHash string) (*models.Market, error) {
	args := m.Called(ctx, castHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockService) GetRecent(ctx context.Context, limit int) ([]models.Market, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Market), args.Error(1)
}

func (m *MockService) MostRecent(ctx context.Context) (*models.Market, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}
