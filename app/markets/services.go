package markets

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joefazee/iwager/internal/sanitizer"
	"github.com/joefazee/iwager/models"
)

// service implements the Service interface
type service struct {
	repo        Repository
	config      *Config
	sanitizer   sanitizer.HTMLStripperer
	generate    IDGenerator
	now         func() time.Time
	stripHandle *regexp.Regexp
}

// NewService creates a new market service
func NewService(repo Repository, config *Config, stripper sanitizer.HTMLStripperer) Service {
	return &service{
		repo:      repo,
		config:    config,
		sanitizer: stripper,
		generate:  NewMarketID,
		now:       time.Now,
		// Mention detection is case-insensitive, so stripping must be too.
		stripHandle: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(config.TriggerHandle)),
	}
}

// CreateFromCast turns an already-validated cast into a persisted market.
// The question is the cast text with the trigger handle removed, the close
// time is derived from the extracted timeframe, and all pools start at zero.
func (s *service) CreateFromCast(ctx context.Context, input *CreateMarketInput) (*models.Market, error) {
	question := s.questionFromText(input.Text)
	now := s.now()

	timeframe := ExtractTimeframe(input.Text)
	closeTime := CalculateCloseTime(timeframe, now)

	for attempt := 0; attempt < s.config.IDAttempts; attempt++ {
		marketID, err := s.issueMarketID(ctx)
		if err != nil {
			return nil, err
		}

		market := &models.Market{
			MarketID:        marketID,
			Question:        question,
			CreatorFID:      input.CreatorFID,
			CreatorUsername: input.CreatorUsername,
			ChannelID:       input.ChannelID,
			ChannelName:     input.ChannelName,
			Timeframe:       timeframe,
			CloseTime:       closeTime,
			TotalPool:       decimal.Zero,
			YesShares:       decimal.Zero,
			NoShares:        decimal.Zero,
			Participants:    models.ParticipantList{},
			CastHash:        input.CastHash,
			AIConfidence:    input.Confidence,
			AIReasoning:     input.Reasoning,
		}

		err = s.repo.Create(ctx, market)
		if err == nil {
			return market, nil
		}
		// A duplicate key means the identifier raced another writer past
		// the existence check; regenerate and try again.
		if errors.Is(err, models.ErrDuplicateMarketID) {
			continue
		}
		return nil, err
	}

	return nil, models.ErrMarketIDExhausted
}

// issueMarketID generates candidate identifiers until one is absent from
// the store, bounded by the configured attempt count.
func (s *service) issueMarketID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.config.IDAttempts; attempt++ {
		id := s.generate()

		_, err := s.repo.GetByMarketID(ctx, id)
		if errors.Is(err, models.ErrMarketNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
		// Found a market under this identifier; collision, retry.
	}
	return "", models.ErrMarketIDExhausted
}

func (s *service) questionFromText(text string) string {
	question := s.sanitizer.StripHTML(text)
	question = s.stripHandle.ReplaceAllString(question, "")
	return strings.TrimSpace(question)
}

// GetByMarketID returns a market by its public identifier
func (s *service) GetByMarketID(ctx context.Context, marketID string) (*models.Market, error) {
	return s.repo.GetByMarketID(ctx, marketID)
}

// GetByCastHash returns the market created from a given cast
func (s *service) GetByCastHash(ctx context.Context, castHash string) (*models.Market, error) {
	return s.repo.GetByCastHash(ctx, castHash)
}

// GetRecent returns the newest markets, capped at the configured limit
func (s *service) GetRecent(ctx context.Context, limit int) ([]models.Market, error) {
	if limit <= 0 || limit > s.config.RecentLimit {
		limit = s.config.RecentLimit
	}
	return s.repo.GetRecent(ctx, limit)
}

// MostRecent returns the single newest market, or models.ErrMarketNotFound
// when the store is empty.
func (s *service) MostRecent(ctx context.Context) (*models.Market, error) {
	recent, err := s.repo.GetRecent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, models.ErrMarketNotFound
	}
	return &recent[0], nil
}
