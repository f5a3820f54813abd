package marketing

import "github.com/mktsync/backend/internal/domain/integration"

// JSON:API resource type tags.
const (
	dataTypeProfile = "profile"
	dataTypeEvent   = "event"
)

// profileBody is the request envelope for profile create/update calls.
type profileBody struct {
	Data profileData `json:"data"`
}

type profileData struct {
	Type       string                        `json:"type"`
	ID         string                        `json:"id,omitempty"`
	Attributes integration.ProfileAttributes `json:"attributes"`
}

// eventBody is the request envelope for metric event calls.
type eventBody struct {
	Data eventData `json:"data"`
}

type eventData struct {
	Type       string                            `json:"type"`
	Attributes integration.MetricEventAttributes `json:"attributes"`
}

// profileResponse is the response envelope of a single-profile call.
type profileResponse struct {
	Data integration.Profile `json:"data"`
}

// profileListResponse is the response envelope of the profile list
// call.
type profileListResponse struct {
	Data []integration.Profile `json:"data"`
}

func newProfileBody(id string, attrs integration.ProfileAttributes) profileBody {
	return profileBody{Data: profileData{
		Type:       dataTypeProfile,
		ID:         id,
		Attributes: attrs,
	}}
}

func newEventBody(attrs integration.MetricEventAttributes) eventBody {
	return eventBody{Data: eventData{
		Type:       dataTypeEvent,
		Attributes: attrs,
	}}
}
