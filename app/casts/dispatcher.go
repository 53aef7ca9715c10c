package casts

import (
	"context"

	"github.com/joefazee/iwager/app/frames"
	"github.com/joefazee/iwager/internal/logger"
	"github.com/joefazee/iwager/internal/neynar"
	"github.com/joefazee/iwager/models"
)

// dispatcher publishes replies through the Neynar client. When a market id
// is present it first tries to embed the market's card; any embed failure
// degrades to a plain threaded reply with the same body.
type dispatcher struct {
	publisher neynar.Publisher
	logger    logger.Logger
	appURL    string
}

// NewDispatcher creates a reply dispatcher. The publisher may be nil when
// the Neynar credentials are absent; Dispatch then fails without panicking.
func NewDispatcher(publisher neynar.Publisher, l logger.Logger, appURL string) ReplyDispatcher {
	return &dispatcher{publisher: publisher, logger: l, appURL: appURL}
}

func (d *dispatcher) Dispatch(ctx context.Context, parentHash, text, marketID string) error {
	if d.publisher == nil {
		d.logger.Error(models.ErrSignerNotConfigured, logger.Fields{"parent_hash": parentHash})
		return models.ErrSignerNotConfigured
	}

	if marketID != "" {
		embedURL := frames.MarketFrameURL(d.appURL, marketID)
		_, err := d.publisher.PublishReply(ctx, parentHash, text, embedURL)
		if err == nil {
			return nil
		}
		d.logger.Error(err, logger.Fields{
			"parent_hash": parentHash,
			"market_id":   marketID,
			"fallback":    "plain_reply",
		})
	}

	_, err := d.publisher.PublishReply(ctx, parentHash, text, "")
	if err != nil {
		d.logger.Error(err, logger.Fields{"parent_hash": parentHash})
	}
	return err
}
