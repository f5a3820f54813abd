package eventsync

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

// CustomerMapper maps commerce customer records into the marketing
// platform profile and event schemas. Pure; no I/O, no side effects,
// total over any well-formed customer record.
type CustomerMapper struct{}

// NewCustomerMapper creates a new customer mapper.
func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

// ToProfileAttributes maps a customer into marketing profile
// attributes. Missing optional fields map to absent attributes, never
// placeholder values.
func (m *CustomerMapper) ToProfileAttributes(c *commerce.Customer) integration.ProfileAttributes {
	attrs := integration.ProfileAttributes{
		Email:        c.Email,
		ExternalID:   c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Title:        c.Title,
		Organization: c.CompanyName,
	}

	if addr := c.DefaultAddress(); addr != nil {
		attrs.PhoneNumber = addressPhone(addr)
		attrs.Location = &integration.ProfileLocation{
			Address1: strings.TrimSpace(addr.StreetName + " " + addr.StreetNumber),
			Address2: addr.AdditionalStreetInfo,
			City:     addr.City,
			Region:   addressRegion(addr),
			Country:  addr.Country,
			Zip:      addr.PostalCode,
		}
	}

	return attrs
}

// ToCustomerMetricEvent maps a customer into a metric event with the
// given metric name (e.g. the configured signup metric).
func (m *CustomerMapper) ToCustomerMetricEvent(c *commerce.Customer, metricName string) integration.MetricEventAttributes {
	return integration.MetricEventAttributes{
		Profile: integration.ProfileRef{
			Email:      c.Email,
			ExternalID: c.ID,
		},
		Metric:     integration.Metric{Name: metricName},
		Value:      decimal.Zero,
		Properties: entitySnapshot(c),
		UniqueID:   c.ID,
		Time:       c.CreatedAt,
	}
}

// addressPhone prefers the landline number, falling back to mobile.
func addressPhone(addr *commerce.Address) string {
	if addr.Phone != "" {
		return addr.Phone
	}
	return addr.Mobile
}

// addressRegion prefers the region field, falling back to state.
func addressRegion(addr *commerce.Address) string {
	if addr.Region != "" {
		return addr.Region
	}
	return addr.State
}

// profileRefFromOrder builds the profile reference for order metric
// events. Either field may be absent, never both (order validity
// guarantees at least one).
func profileRefFromOrder(o *commerce.Order) integration.ProfileRef {
	return integration.ProfileRef{
		Email:      o.CustomerEmail,
		ExternalID: o.CustomerID,
	}
}

// entitySnapshot takes a shallow JSON snapshot of a source entity for
// use as metric event properties. The snapshot is taken at mapping time
// and never re-fetched.
func entitySnapshot(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
