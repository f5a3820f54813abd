package dto

import (
	"time"

	"github.com/mktsync/backend/internal/domain/commerce"
)

// ResourceReference identifies the commerce entity a message is about.
type ResourceReference struct {
	TypeID string `json:"typeId" binding:"required"`
	ID     string `json:"id" binding:"required"`
}

// MessageRequest is the inbound webhook payload for a commerce
// platform message. Customer and Order are optional embedded
// snapshots; platforms that deliver thin notifications omit them.
type MessageRequest struct {
	ID             string             `json:"id" binding:"required"`
	SequenceNumber int64              `json:"sequenceNumber"`
	Resource       ResourceReference  `json:"resource" binding:"required"`
	Type           string             `json:"type" binding:"required"`
	CreatedAt      time.Time          `json:"createdAt"`
	Customer       *commerce.Customer `json:"customer,omitempty"`
	Order          *commerce.Order    `json:"order,omitempty"`
	OrderState     string             `json:"orderState,omitempty"`
	OldOrderState  string             `json:"oldOrderState,omitempty"`
}

// ToDomain converts the request into a domain message.
func (r *MessageRequest) ToDomain() *commerce.Message {
	return &commerce.Message{
		ID:             r.ID,
		SequenceNumber: r.SequenceNumber,
		Resource: commerce.Reference{
			TypeID: commerce.ResourceType(r.Resource.TypeID),
			ID:     r.Resource.ID,
		},
		Type:          r.Type,
		CreatedAt:     r.CreatedAt,
		Customer:      r.Customer,
		Order:         r.Order,
		OrderState:    commerce.OrderState(r.OrderState),
		OldOrderState: commerce.OrderState(r.OldOrderState),
	}
}

// SyncResult reports what happened to a processed message.
type SyncResult struct {
	Status     string `json:"status"`
	EventCount int    `json:"event_count,omitempty"`
}
