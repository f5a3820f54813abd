package commerce

import "time"

// ResourceType identifies the resource a change message refers to.
type ResourceType string

const (
	// ResourceTypeCustomer marks messages about customer records
	ResourceTypeCustomer ResourceType = "customer"
	// ResourceTypeOrder marks messages about order records
	ResourceTypeOrder ResourceType = "order"
)

// String returns the string representation of ResourceType.
func (t ResourceType) String() string {
	return string(t)
}

// Message type tags emitted by the commerce platform.
const (
	MessageTypeCustomerCreated  = "CustomerCreated"
	MessageTypeOrderCreated     = "OrderCreated"
	MessageTypeOrderStateChange = "OrderStateChanged"
	MessageTypeResourceUpdated  = "ResourceUpdated"
)

// Reference points at a platform resource by type and id.
type Reference struct {
	TypeID ResourceType `json:"typeId"`
	ID     string       `json:"id"`
}

// Message is a change notification from the commerce platform.
// Depending on the message type it carries the full changed resource
// (Customer or Order) or only the resource reference. Messages are
// immutable once received; processors must never mutate them.
type Message struct {
	ID             string    `json:"id"`
	SequenceNumber int64     `json:"sequenceNumber,omitempty"`
	Resource       Reference `json:"resource"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`

	// Embedded payloads, present per platform message semantics
	Customer *Customer `json:"customer,omitempty"`
	Order    *Order    `json:"order,omitempty"`

	// OrderStateChanged payload
	OrderState    OrderState `json:"orderState,omitempty"`
	OldOrderState OrderState `json:"oldOrderState,omitempty"`
}

// Is returns true if the message carries the given resource and message
// type tags.
func (m *Message) Is(resource ResourceType, messageType string) bool {
	return m.Resource.TypeID == resource && m.Type == messageType
}
