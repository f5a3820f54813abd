package commerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Is(t *testing.T) {
	msg := &Message{
		Resource: Reference{TypeID: ResourceTypeCustomer, ID: "cust-1"},
		Type:     MessageTypeCustomerCreated,
	}

	assert.True(t, msg.Is(ResourceTypeCustomer, MessageTypeCustomerCreated))
	assert.False(t, msg.Is(ResourceTypeOrder, MessageTypeCustomerCreated))
	assert.False(t, msg.Is(ResourceTypeCustomer, MessageTypeResourceUpdated))
}

func TestOrder_HasCustomerReference(t *testing.T) {
	assert.True(t, (&Order{CustomerEmail: "a@b.c"}).HasCustomerReference())
	assert.True(t, (&Order{CustomerID: "cust-1"}).HasCustomerReference())
	assert.False(t, (&Order{}).HasCustomerReference())
}

func TestCustomer_DefaultAddress(t *testing.T) {
	assert.Nil(t, (&Customer{}).DefaultAddress())

	c := &Customer{Addresses: []Address{{City: "Amsterdam"}, {City: "Utrecht"}}}
	addr := c.DefaultAddress()
	assert.Equal(t, "Amsterdam", addr.City)
}
