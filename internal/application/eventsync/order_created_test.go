package eventsync

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

func TestOrderCreatedProcessor_IsEventValid(t *testing.T) {
	guestOrder := testOrder()
	guestOrder.CustomerID = ""

	anonymousOrder := testOrder()
	anonymousOrder.CustomerID = ""
	anonymousOrder.CustomerEmail = ""

	cancelledOrder := testOrder()
	cancelledOrder.OrderState = commerce.OrderStateCancelled

	tests := []struct {
		name     string
		msg      *commerce.Message
		settings Settings
		disabled bool
		want     bool
	}{
		{
			name:     "open order with customer reference",
			msg:      orderCreatedMessage(testOrder()),
			settings: DefaultSettings(),
			want:     true,
		},
		{
			name:     "guest checkout with only an email",
			msg:      orderCreatedMessage(guestOrder),
			settings: DefaultSettings(),
			want:     true,
		},
		{
			name:     "order without any customer reference",
			msg:      orderCreatedMessage(anonymousOrder),
			settings: DefaultSettings(),
			want:     false,
		},
		{
			name:     "message without embedded order",
			msg:      orderCreatedMessage(nil),
			settings: DefaultSettings(),
			want:     false,
		},
		{
			name:     "state outside the allow-list",
			msg:      orderCreatedMessage(cancelledOrder),
			settings: DefaultSettings(),
			want:     false,
		},
		{
			name: "state allow-listed by configuration",
			msg:  orderCreatedMessage(cancelledOrder),
			settings: Settings{
				OrderCreatedStates: []commerce.OrderState{commerce.OrderStateOpen, commerce.OrderStateCancelled},
			},
			want: true,
		},
		{
			name:     "processor disabled",
			msg:      orderCreatedMessage(testOrder()),
			settings: DefaultSettings(),
			disabled: true,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disabler := disablerOf()
			if tt.disabled {
				disabler = disablerOf(OrderCreatedName)
			}
			p := NewOrderCreatedProcessor(disabler, tt.settings, zap.NewNop())
			assert.Equal(t, tt.want, p.IsEventValid(tt.msg))
		})
	}
}

func TestOrderCreatedProcessor_GenerateEvents(t *testing.T) {
	p := NewOrderCreatedProcessor(disablerOf(), DefaultSettings(), zap.NewNop())

	order := testOrder()
	events, err := p.GenerateEvents(context.Background(), orderCreatedMessage(order))

	require.NoError(t, err)
	require.Len(t, events, 3, "one order event plus one per line item")

	orderEvent := events[0]
	assert.Equal(t, integration.EventKindMetric, orderEvent.Kind)
	require.NotNil(t, orderEvent.Metric)
	assert.Equal(t, MetricOrderCreated, orderEvent.Metric.Metric.Name)
	assert.Equal(t, order.ID, orderEvent.Metric.UniqueID)
	assert.True(t, orderEvent.Metric.Value.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, order.CustomerEmail, orderEvent.Metric.Profile.Email)
	assert.Equal(t, order.CustomerID, orderEvent.Metric.Profile.ExternalID)

	itemEvents := events[1:]
	wantItemIDs := []string{"li-1", "li-2"}
	wantValues := []string{"15.00", "27.50"}
	for i, ev := range itemEvents {
		require.NotNil(t, ev.Metric)
		assert.Equal(t, MetricOrderedProduct, ev.Metric.Metric.Name)
		assert.Equal(t, wantItemIDs[i], ev.Metric.UniqueID)
		assert.True(t, ev.Metric.Value.Equal(decimal.RequireFromString(wantValues[i])))
	}

	for _, ev := range events {
		assert.Equal(t, order.CreatedAt, ev.Metric.Time, "all order events share the order creation time")
	}
}

func TestOrderCreatedProcessor_GenerateEvents_NoLineItems(t *testing.T) {
	p := NewOrderCreatedProcessor(disablerOf(), DefaultSettings(), zap.NewNop())

	order := testOrder()
	order.LineItems = nil
	events, err := p.GenerateEvents(context.Background(), orderCreatedMessage(order))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, MetricOrderCreated, events[0].Metric.Metric.Name)
}
