package integration

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// EventKind discriminates the normalized outbound event variants.
// The values are the wire-level kind tags of the marketing platform
// request they translate into.
type EventKind string

const (
	// EventKindMetric records a timestamped metric occurrence against a profile
	EventKindMetric EventKind = "event"
	// EventKindProfileCreated creates a marketing profile (with duplicate reconciliation)
	EventKindProfileCreated EventKind = "profileCreated"
	// EventKindProfileResourceUpdated updates a profile addressed by a known id
	EventKindProfileResourceUpdated EventKind = "profileResourceUpdated"
	// EventKindProfileUpdated upserts a profile through the organization-scoped API
	EventKindProfileUpdated EventKind = "profileUpdated"
)

// String returns the string representation of EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Event is the normalized internal representation of one action to take
// against the marketing platform. Exactly one of Profile or Metric is
// set, matching the kind. Events carry no identity beyond the unique id
// fields inside their attributes and are consumed exactly once.
type Event struct {
	// Kind selects the delivery action
	Kind EventKind
	// ProfileID is the target profile id for EventKindProfileResourceUpdated
	ProfileID string
	// Profile holds the attributes for profile kinds
	Profile *ProfileAttributes
	// Metric holds the attributes for EventKindMetric
	Metric *MetricEventAttributes
}

// ProfileRef identifies (or creates) the profile a metric event is
// attributed to. At least one of the two fields is always set; a
// message lacking both fails validation upstream.
type ProfileRef struct {
	Email      string `json:"$email,omitempty"`
	ExternalID string `json:"$id,omitempty"`
}

// IsZero returns true if the reference carries no identity at all.
func (r ProfileRef) IsZero() bool {
	return r.Email == "" && r.ExternalID == ""
}

// ProfileLocation holds the address attributes of a marketing profile.
type ProfileLocation struct {
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
	Zip      string `json:"zip,omitempty"`
}

// ProfileAttributes is the marketing platform profile schema. Missing
// optional fields stay empty and are omitted from the payload rather
// than sent as placeholders.
type ProfileAttributes struct {
	Email        string           `json:"email,omitempty"`
	ExternalID   string           `json:"external_id,omitempty"`
	FirstName    string           `json:"first_name,omitempty"`
	LastName     string           `json:"last_name,omitempty"`
	Title        string           `json:"title,omitempty"`
	PhoneNumber  string           `json:"phone_number,omitempty"`
	Organization string           `json:"organization,omitempty"`
	Location     *ProfileLocation `json:"location,omitempty"`
	Properties   map[string]any   `json:"properties,omitempty"`
}

// Metric names a marketing metric.
type Metric struct {
	Name string `json:"name"`
}

// MetricEventAttributes is the marketing platform event schema.
// Properties is a shallow snapshot of the source entity taken at
// mapping time; it is never re-fetched later.
type MetricEventAttributes struct {
	Profile    ProfileRef      `json:"profile"`
	Metric     Metric          `json:"metric"`
	Value      decimal.Decimal `json:"value"`
	Properties map[string]any  `json:"properties,omitempty"`
	UniqueID   string          `json:"unique_id"`
	Time       time.Time       `json:"time"`
}

// MarshalJSON serializes the value as a plain JSON number. decimal's
// default marshaling quotes it, which the marketing API rejects.
func (a MetricEventAttributes) MarshalJSON() ([]byte, error) {
	type plain MetricEventAttributes
	return json.Marshal(struct {
		plain
		Value json.RawMessage `json:"value"`
	}{
		plain: plain(a),
		Value: json.RawMessage(a.Value.String()),
	})
}

// Profile is a marketing platform profile as returned by read APIs.
type Profile struct {
	ID         string            `json:"id"`
	Attributes ProfileAttributes `json:"attributes"`
}
