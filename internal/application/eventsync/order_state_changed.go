package eventsync

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

// OrderStateChangedName is the administrative name of the order state
// changed processor.
const OrderStateChangedName = "OrderStateChanged"

// OrderStateChangedProcessor handles order state transition messages
// for states in the configured allow-list. It emits one metric event
// named after the new state ("Order cancelled", "Order fulfilled").
type OrderStateChangedProcessor struct {
	flags    integration.ProcessorDisabler
	settings Settings
	logger   *zap.Logger
}

// NewOrderStateChangedProcessor creates the order state changed processor.
func NewOrderStateChangedProcessor(flags integration.ProcessorDisabler, settings Settings, logger *zap.Logger) *OrderStateChangedProcessor {
	return &OrderStateChangedProcessor{
		flags:    flags,
		settings: settings,
		logger:   logger,
	}
}

// Name returns the processor name.
func (p *OrderStateChangedProcessor) Name() string {
	return OrderStateChangedName
}

// IsEventValid reports whether the message is a processable order state
// change: the order payload must be embedded with a customer reference
// and the new state must be in the configured allow-list.
func (p *OrderStateChangedProcessor) IsEventValid(msg *commerce.Message) bool {
	if !msg.Is(commerce.ResourceTypeOrder, commerce.MessageTypeOrderStateChange) {
		return false
	}
	if msg.Order == nil || !msg.Order.HasCustomerReference() {
		return false
	}
	if !stateAllowed(msg.OrderState, p.settings.OrderStateChangedStates) {
		return false
	}
	return !p.flags.IsEventDisabled(OrderStateChangedName)
}

// GenerateEvents builds one metric event for the state transition. The
// event time is the message timestamp, falling back to the order
// creation time when the transport did not supply one.
func (p *OrderStateChangedProcessor) GenerateEvents(ctx context.Context, msg *commerce.Message) ([]integration.Event, error) {
	order := msg.Order

	p.logger.Info("processing order state changed message",
		zap.String("message_id", msg.ID),
		zap.String("order_id", order.ID),
		zap.String("order_state", msg.OrderState.String()),
	)

	eventTime := msg.CreatedAt
	if eventTime.IsZero() {
		eventTime = order.CreatedAt
	}

	return []integration.Event{{
		Kind: integration.EventKindMetric,
		Metric: &integration.MetricEventAttributes{
			Profile:    profileRefFromOrder(order),
			Metric:     integration.Metric{Name: metricNameForState(msg.OrderState)},
			Value:      order.TotalPrice.Decimal(),
			Properties: entitySnapshot(order),
			UniqueID:   order.ID,
			Time:       eventTime,
		},
	}}, nil
}

// metricNameForState maps an order state to its transition metric name.
func metricNameForState(state commerce.OrderState) string {
	switch state {
	case commerce.OrderStateCancelled:
		return MetricOrderCancelled
	case commerce.OrderStateComplete:
		return MetricOrderFulfilled
	default:
		return "Order " + strings.ToLower(state.String())
	}
}

// Ensure OrderStateChangedProcessor implements Processor
var _ Processor = (*OrderStateChangedProcessor)(nil)
