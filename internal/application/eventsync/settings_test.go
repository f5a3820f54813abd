package eventsync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mktsync/backend/internal/domain/commerce"
)

func TestParseStateList(t *testing.T) {
	fallback := []commerce.OrderState{commerce.OrderStateOpen}

	tests := []struct {
		name string
		raw  string
		want []commerce.OrderState
	}{
		{
			name: "empty input returns the fallback",
			raw:  "",
			want: fallback,
		},
		{
			name: "separators only returns the fallback",
			raw:  " , ,\t",
			want: fallback,
		},
		{
			name: "comma separated",
			raw:  "Open,Confirmed",
			want: []commerce.OrderState{commerce.OrderStateOpen, commerce.OrderStateConfirmed},
		},
		{
			name: "space separated",
			raw:  "Open Confirmed",
			want: []commerce.OrderState{commerce.OrderStateOpen, commerce.OrderStateConfirmed},
		},
		{
			name: "mixed separators",
			raw:  "Open, Confirmed\tComplete",
			want: []commerce.OrderState{commerce.OrderStateOpen, commerce.OrderStateConfirmed, commerce.OrderStateComplete},
		},
		{
			name: "single state",
			raw:  "Cancelled",
			want: []commerce.OrderState{commerce.OrderStateCancelled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStateList(tt.raw, fallback))
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, []commerce.OrderState{commerce.OrderStateOpen}, s.OrderCreatedStates)
	assert.Equal(t, []commerce.OrderState{commerce.OrderStateCancelled, commerce.OrderStateComplete}, s.OrderStateChangedStates)
	assert.Equal(t, DefaultCustomerCreatedMetric, s.CustomerCreatedMetric)
}
