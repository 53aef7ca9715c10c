package casts

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/iwager/app/api"
	"github.com/joefazee/iwager/internal/logger"
	"github.com/joefazee/iwager/internal/validator"
)

const castCreatedEvent = "cast.created"

// Handler handles inbound Neynar webhook events
type Handler struct {
	service       Service
	triggerHandle string
	logger        logger.Logger
}

// NewHandler creates a new webhook handler
func NewHandler(service Service, triggerHandle string, l logger.Logger) *Handler {
	return &Handler{service: service, triggerHandle: triggerHandle, logger: l}
}

// HandleWebhook processes one webhook delivery. Once the body parses, the
// response is always a 200 acknowledgment regardless of pipeline outcome so
// the upstream does not retry-storm on content rejections.
func (h *Handler) HandleWebhook(c *gin.Context) {
	var payload WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Error(err, logger.Fields{"stage": "webhook_parse"})
		api.AckErrorResponse(c, "Invalid webhook payload")
		return
	}

	if payload.Data.Type != castCreatedEvent {
		h.logger.Info("ignoring non-cast event", logger.Fields{"type": payload.Data.Type})
		api.AckResponse(c, "Event ignored")
		return
	}

	cast := payload.Data.Object
	if !validator.ContainsFold(cast.Text, h.triggerHandle) {
		api.AckResponse(c, "No trigger mention")
		return
	}

	h.logger.Info("trigger mention received", logger.Fields{
		"cast_hash":     cast.Hash,
		"author_fid":    cast.Author.FID,
		"author":        cast.Author.Username,
		"channel_id":    cast.ChannelID(),
		"parent_hash":   cast.ParentHash,
		"thread_hash":   cast.ThreadHash,
		"likes_count":   cast.Reactions.LikesCount,
		"recasts_count": cast.Reactions.RecastsCount,
		"replies_count": cast.Replies.Count,
	})

	outcome := h.service.ProcessCast(c.Request.Context(), &cast)

	h.logger.Info("webhook processed", logger.Fields{
		"cast_hash": cast.Hash,
		"author":    cast.Author.Username,
		"outcome":   string(outcome.Kind),
	})
	api.AckResponse(c, "Webhook processed successfully")
}
