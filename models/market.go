package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/iwager/internal/validator"
)

// ParticipantList holds the FIDs of every user who has staked on a market.
// Stored as a JSONB array; empty until staking is implemented.
type ParticipantList []int64

// Value implements driver.Valuer interface
func (p ParticipantList) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]int64{})
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface
func (p *ParticipantList) Scan(value interface{}) error {
	if value == nil {
		*p = ParticipantList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return nil
}

// Contains reports whether fid is already in the list.
func (p ParticipantList) Contains(fid int64) bool {
	for _, f := range p {
		if f == fid {
			return true
		}
	}
	return false
}

// Market represents one prediction under adjudication. It is created by the
// cast-processing pipeline after both validation stages pass and is never
// deleted by this service. MarketID is the public opaque token used in frame
// URLs; it is immutable once assigned and carries a UNIQUE constraint
// (migration 000001) that backstops the issuer's check-then-insert window.
type Market struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MarketID        string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_markets_market_id" json:"market_id"`
	Question        string          `gorm:"type:text;not null" json:"question"`
	CreatorFID      int64           `gorm:"not null;index:idx_markets_creator" json:"creator_fid"`
	CreatorUsername string          `gorm:"type:varchar(255);not null" json:"creator_username"`
	ChannelID       string          `gorm:"type:varchar(255)" json:"channel_id,omitempty"`
	ChannelName     string          `gorm:"type:varchar(255)" json:"channel_name,omitempty"`
	Timeframe       string          `gorm:"type:varchar(100);not null" json:"timeframe"`
	CloseTime       time.Time       `gorm:"type:timestamptz;not null;index" json:"close_time"`
	Resolved        bool            `gorm:"not null;default:false;index" json:"resolved"`
	Outcome         *bool           `json:"outcome,omitempty"`
	TotalPool       decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0.00" json:"total_pool"`
	YesShares       decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0.00" json:"yes_shares"`
	NoShares        decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0.00" json:"no_shares"`
	Participants    ParticipantList `gorm:"type:jsonb;default:'[]'" json:"participants"`
	CastHash        string          `gorm:"type:varchar(66);not null;uniqueIndex:idx_markets_cast_hash" json:"cast_hash"`
	AIConfidence    float64         `gorm:"type:decimal(5,2);not null;default:0" json:"ai_confidence"`
	AIReasoning     string          `gorm:"type:text" json:"ai_reasoning,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Market model
func (*Market) TableName() string {
	return "markets"
}

// BeforeCreate sets up the model before creation
func (m *Market) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsOpen checks if the market is still accepting positions
func (m *Market) IsOpen() bool {
	return !m.Resolved && time.Now().Before(m.CloseTime)
}

// IsClosed checks if the market has passed its close time
func (m *Market) IsClosed() bool {
	return time.Now().After(m.CloseTime)
}

// Resolve records the final outcome. Resolution is one-way: a resolved
// market can never transition back to unresolved or flip its outcome.
func (m *Market) Resolve(outcome bool) error {
	if m.Resolved {
		return ErrMarketAlreadyResolved
	}
	m.Resolved = true
	m.Outcome = &outcome
	return nil
}

// PoolBalanced reports whether total_pool == yes_shares + no_shares. This
// must hold at all times; staking code that breaks it is buggy.
func (m *Market) PoolBalanced() bool {
	return m.TotalPool.Equal(m.YesShares.Add(m.NoShares))
}

// Validate performs validation on the market model
func (m *Market) Validate() error {
	if m.MarketID == "" {
		return ErrInvalidMarketID
	}
	if m.Question == "" {
		return ErrInvalidQuestion
	}
	if m.CastHash == "" {
		return ErrInvalidCastHash
	}
	if !m.CloseTime.After(time.Now()) {
		return ErrInvalidCloseTime
	}
	if m.AIConfidence < 0 || m.AIConfidence > 1 {
		return ErrInvalidConfidence
	}
	if !m.PoolBalanced() {
		return ErrPoolImbalance
	}
	if !validator.NoDuplicates([]int64(m.Participants)) {
		return ErrDuplicateParticipant
	}
	return nil
}
