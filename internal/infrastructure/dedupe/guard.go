package dedupe

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Guard wraps a Store with the pipeline's degradation policy: when the
// store cannot be reached the message is processed anyway, because a
// duplicate delivery is cheaper than a dropped one.
type Guard struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewGuard creates a dedupe guard. A non-positive ttl falls back to
// DefaultTTL.
func NewGuard(store Store, ttl time.Duration, logger *zap.Logger) *Guard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Guard{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Seen reports whether the message id was already processed within the
// TTL window, marking it as processed otherwise. Messages without an id
// are never deduplicated.
func (g *Guard) Seen(ctx context.Context, messageID string) bool {
	if messageID == "" {
		return false
	}

	isNew, err := g.store.MarkProcessed(ctx, messageID, g.ttl)
	if err != nil {
		g.logger.Warn("failed to check message dedupe, processing anyway",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
		return false
	}

	if !isNew {
		g.logger.Debug("duplicate message detected, skipping",
			zap.String("message_id", messageID),
		)
		return true
	}
	return false
}
