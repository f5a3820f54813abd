package integration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricEventAttributes_MarshalJSON_ValueIsNumber(t *testing.T) {
	attrs := MetricEventAttributes{
		Profile:  ProfileRef{Email: "a@b.com"},
		Metric:   Metric{Name: "Order created"},
		Value:    decimal.New(4250, -2),
		UniqueID: "order-1",
		Time:     time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(attrs)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	value, ok := decoded["value"].(float64)
	require.True(t, ok, "value must decode as a JSON number, got %T (%v)", decoded["value"], decoded["value"])
	assert.Equal(t, 42.5, value)

	assert.Equal(t, "a@b.com", decoded["profile"].(map[string]any)["$email"])
	assert.Equal(t, "order-1", decoded["unique_id"])
}

func TestMetricEventAttributes_MarshalJSON_ZeroValue(t *testing.T) {
	raw, err := json.Marshal(MetricEventAttributes{
		Profile: ProfileRef{ExternalID: "cust-1"},
		Metric:  Metric{Name: "Account created"},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	value, ok := decoded["value"].(float64)
	require.True(t, ok, "zero value must still be a JSON number")
	assert.Zero(t, value)
}
