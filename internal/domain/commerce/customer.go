package commerce

import "time"

// Customer is a commerce platform customer record.
// Optional fields are empty strings when absent upstream.
type Customer struct {
	ID          string    `json:"id"`
	Version     int64     `json:"version,omitempty"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	Title       string    `json:"title,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	Addresses   []Address `json:"addresses,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// Address is a commerce platform address entry.
type Address struct {
	ID                   string `json:"id,omitempty"`
	StreetName           string `json:"streetName,omitempty"`
	StreetNumber         string `json:"streetNumber,omitempty"`
	AdditionalStreetInfo string `json:"additionalStreetInfo,omitempty"`
	PostalCode           string `json:"postalCode,omitempty"`
	City                 string `json:"city,omitempty"`
	Region               string `json:"region,omitempty"`
	State                string `json:"state,omitempty"`
	Country              string `json:"country,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Mobile               string `json:"mobile,omitempty"`
}

// DefaultAddress returns the first address on the record, or nil when
// the customer has none. The platform lists the default address first.
func (c *Customer) DefaultAddress() *Address {
	if len(c.Addresses) == 0 {
		return nil
	}
	return &c.Addresses[0]
}
