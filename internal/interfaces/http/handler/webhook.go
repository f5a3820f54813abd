package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
	"github.com/mktsync/backend/internal/infrastructure/telemetry"
	"github.com/mktsync/backend/internal/interfaces/http/dto"
)

// EventDispatcher routes a commerce message to the processors that
// accept it.
type EventDispatcher interface {
	Dispatch(ctx context.Context, msg *commerce.Message) ([]integration.Event, error)
}

// EventDeliverer sends generated events downstream.
type EventDeliverer interface {
	DeliverAll(ctx context.Context, events []integration.Event) error
}

// DedupeGuard reports whether a message id was already processed.
type DedupeGuard interface {
	Seen(ctx context.Context, messageID string) bool
}

// WebhookHandler receives commerce platform messages and runs them
// through the sync pipeline.
type WebhookHandler struct {
	dispatcher EventDispatcher
	deliverer  EventDeliverer
	guard      DedupeGuard
	logger     *zap.Logger
}

// NewWebhookHandler creates a webhook handler.
func NewWebhookHandler(dispatcher EventDispatcher, deliverer EventDeliverer, guard DedupeGuard, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		dispatcher: dispatcher,
		deliverer:  deliverer,
		guard:      guard,
		logger:     logger,
	}
}

// RegisterRoutes registers the webhook routes.
func (h *WebhookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/messages", h.HandleMessage)
}

// HandleMessage processes a single inbound message.
// POST /api/v1/messages
func (h *WebhookHandler) HandleMessage(c *gin.Context) {
	var req dto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_MESSAGE", err.Error()))
		return
	}

	ctx, span := telemetry.StartSpan(c.Request.Context(), "webhook.handle_message",
		telemetry.WithAttribute(telemetry.SpanAttrMessageID, req.ID),
		telemetry.WithAttribute(telemetry.SpanAttrMessageType, req.Type),
		telemetry.WithAttribute(telemetry.SpanAttrResourceType, req.Resource.TypeID),
		telemetry.WithAttribute(telemetry.SpanAttrResourceID, req.Resource.ID),
	)
	defer span.End()

	if h.guard != nil && h.guard.Seen(ctx, req.ID) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SyncResult{Status: "duplicate"}))
		return
	}

	msg := req.ToDomain()

	events, err := h.dispatcher.Dispatch(ctx, msg)
	if err != nil {
		telemetry.RecordError(span, err)
		h.logger.Error("failed to generate events",
			zap.String("message_id", msg.ID),
			zap.String("message_type", msg.Type),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("EVENT_GENERATION_FAILED", err.Error()))
		return
	}

	if len(events) == 0 {
		c.JSON(http.StatusAccepted, dto.NewSuccessResponse(dto.SyncResult{Status: "ignored"}))
		return
	}

	if err := h.deliverer.DeliverAll(ctx, events); err != nil {
		telemetry.RecordError(span, err)
		h.logger.Error("failed to deliver events",
			zap.String("message_id", msg.ID),
			zap.Int("event_count", len(events)),
			zap.Error(err),
		)

		var ambiguous *integration.AmbiguousDuplicateError
		if errors.As(err, &ambiguous) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("AMBIGUOUS_DUPLICATE", err.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("DELIVERY_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SyncResult{
		Status:     "synced",
		EventCount: len(events),
	}))
}
