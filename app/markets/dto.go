package markets

import (
	"time"

	"github.com/joefazee/iwager/models"
	"github.com/shopspring/decimal"
)

// CreateMarketInput carries everything the service needs to build a market
// from an inbound cast.
type CreateMarketInput struct {
	Text            string
	CreatorFID      int64
	CreatorUsername string
	ChannelID       string
	ChannelName     string
	CastHash        string
	Confidence      float64
	Reasoning       string
}

// MarketResponse represents a market in API responses
type MarketResponse struct {
	ID              string          `json:"id"`
	MarketID        string          `json:"market_id"`
	Question        string          `json:"question"`
	CreatorFID      int64           `json:"creator_fid"`
	CreatorUsername string          `json:"creator_username"`
	ChannelID       string          `json:"channel_id,omitempty"`
	ChannelName     string          `json:"channel_name,omitempty"`
	Timeframe       string          `json:"timeframe"`
	CloseTime       time.Time       `json:"close_time"`
	Resolved        bool            `json:"resolved"`
	Outcome         *bool           `json:"outcome,omitempty"`
	TotalPool       decimal.Decimal `json:"total_pool"`
	YesShares       decimal.Decimal `json:"yes_shares"`
	NoShares        decimal.Decimal `json:"no_shares"`
	Participants    int             `json:"participants"`
	AIConfidence    float64         `json:"ai_confidence"`
	AIReasoning     string          `json:"ai_reasoning,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToMarketResponse converts a market model to its API representation
func ToMarketResponse(m *models.Market) MarketResponse {
	return MarketResponse{
		ID:              m.ID.String(),
		MarketID:        m.MarketID,
		Question:        m.Question,
		CreatorFID:      m.CreatorFID,
		CreatorUsername: m.CreatorUsername,
		ChannelID:       m.ChannelID,
		ChannelName:     m.ChannelName,
		Timeframe:       m.Timeframe,
		CloseTime:       m.CloseTime,
		Resolved:        m.Resolved,
		Outcome:         m.Outcome,
		TotalPool:       m.TotalPool,
		YesShares:       m.YesShares,
		NoShares:        m.NoShares,
		Participants:    len(m.Participants),
		AIConfidence:    m.AIConfidence,
		AIReasoning:     m.AIReasoning,
		CreatedAt:       m.CreatedAt,
	}
}

// ToMarketResponses converts a slice of markets
func ToMarketResponses(ms []models.Market) []MarketResponse {
	out := make([]MarketResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToMarketResponse(&ms[i]))
	}
	return out
}
