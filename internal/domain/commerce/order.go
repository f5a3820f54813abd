package commerce

import "time"

// OrderState represents the workflow state of an order on the commerce
// platform.
type OrderState string

const (
	// OrderStateOpen indicates a newly placed order
	OrderStateOpen OrderState = "Open"
	// OrderStateConfirmed indicates an order accepted for fulfilment
	OrderStateConfirmed OrderState = "Confirmed"
	// OrderStateComplete indicates a fulfilled order
	OrderStateComplete OrderState = "Complete"
	// OrderStateCancelled indicates a cancelled order
	OrderStateCancelled OrderState = "Cancelled"
)

// String returns the string representation of OrderState.
func (s OrderState) String() string {
	return string(s)
}

// Order is a commerce platform order record. CustomerEmail and
// CustomerID are both optional upstream; guest checkouts only carry the
// email.
type Order struct {
	ID            string     `json:"id"`
	Version       int64      `json:"version,omitempty"`
	OrderNumber   string     `json:"orderNumber,omitempty"`
	CustomerID    string     `json:"customerId,omitempty"`
	CustomerEmail string     `json:"customerEmail,omitempty"`
	OrderState    OrderState `json:"orderState"`
	TotalPrice    TypedMoney `json:"totalPrice"`
	LineItems     []LineItem `json:"lineItems,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// LineItem is a single order line.
type LineItem struct {
	ID         string     `json:"id"`
	ProductID  string     `json:"productId,omitempty"`
	Name       string     `json:"name,omitempty"`
	SKU        string     `json:"sku,omitempty"`
	Quantity   int64      `json:"quantity"`
	TotalPrice TypedMoney `json:"totalPrice"`
}

// HasCustomerReference returns true if the order carries enough
// identity to attribute events to a marketing profile.
func (o *Order) HasCustomerReference() bool {
	return o.CustomerEmail != "" || o.CustomerID != ""
}
