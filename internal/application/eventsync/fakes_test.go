package eventsync

import (
	"context"
	"time"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

// fakeDisabler disables the listed processor names.
type fakeDisabler struct {
	disabled map[string]bool
}

func disablerOf(names ...string) *fakeDisabler {
	d := &fakeDisabler{disabled: make(map[string]bool)}
	for _, n := range names {
		d.disabled[n] = true
	}
	return d
}

func (d *fakeDisabler) IsEventDisabled(name string) bool {
	return d.disabled[name]
}

// fakeCustomerLookup serves a fixed customer or error and records
// requested ids.
type fakeCustomerLookup struct {
	customer *commerce.Customer
	err      error
	requests []string
}

func (l *fakeCustomerLookup) GetCustomerProfile(_ context.Context, id string) (*commerce.Customer, error) {
	l.requests = append(l.requests, id)
	if l.err != nil {
		return nil, l.err
	}
	return l.customer, nil
}

// fakeProfileFinder serves a fixed profile or error.
type fakeProfileFinder struct {
	profile  *integration.Profile
	err      error
	requests []string
}

func (f *fakeProfileFinder) GetProfileByExternalID(_ context.Context, externalID string) (*integration.Profile, error) {
	f.requests = append(f.requests, externalID)
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

// fakeGateway records all calls against the marketing gateway port.
type fakeGateway struct {
	createProfileID  string
	createProfileErr error
	createEventErr   error
	updateProfileErr error
	upsertErr        error
	profiles         []integration.Profile
	getProfilesErr   error

	createdEvents   []integration.MetricEventAttributes
	createdProfiles []integration.ProfileAttributes
	updatedIDs      []string
	updatedProfiles []integration.ProfileAttributes
	upserted        []integration.ProfileAttributes
	filters         []string
}

func (g *fakeGateway) CreateEvent(_ context.Context, attrs integration.MetricEventAttributes) error {
	g.createdEvents = append(g.createdEvents, attrs)
	return g.createEventErr
}

func (g *fakeGateway) CreateProfile(_ context.Context, attrs integration.ProfileAttributes) (string, error) {
	g.createdProfiles = append(g.createdProfiles, attrs)
	if g.createProfileErr != nil {
		return "", g.createProfileErr
	}
	return g.createProfileID, nil
}

func (g *fakeGateway) UpdateProfile(_ context.Context, id string, attrs integration.ProfileAttributes) error {
	g.updatedIDs = append(g.updatedIDs, id)
	g.updatedProfiles = append(g.updatedProfiles, attrs)
	return g.updateProfileErr
}

func (g *fakeGateway) UpsertOrganizationProfile(_ context.Context, attrs integration.ProfileAttributes) error {
	g.upserted = append(g.upserted, attrs)
	return g.upsertErr
}

func (g *fakeGateway) GetProfiles(_ context.Context, filter string) ([]integration.Profile, error) {
	g.filters = append(g.filters, filter)
	if g.getProfilesErr != nil {
		return nil, g.getProfilesErr
	}
	return g.profiles, nil
}

// fakeProcessor is a scripted processor for dispatcher tests.
type fakeProcessor struct {
	name   string
	valid  bool
	events []integration.Event
	err    error
	calls  int
}

func (p *fakeProcessor) Name() string { return p.name }

func (p *fakeProcessor) IsEventValid(_ *commerce.Message) bool { return p.valid }

func (p *fakeProcessor) GenerateEvents(_ context.Context, _ *commerce.Message) ([]integration.Event, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.events, nil
}

func cents(amount int64) commerce.TypedMoney {
	return commerce.TypedMoney{
		Type:           commerce.MoneyTypeCentPrecision,
		CurrencyCode:   "EUR",
		CentAmount:     amount,
		FractionDigits: 2,
	}
}

func testCustomer() *commerce.Customer {
	return &commerce.Customer{
		ID:          "cust-1",
		Email:       "jeroen@example.com",
		FirstName:   "Jeroen",
		LastName:    "Smit",
		Title:       "Dr",
		CompanyName: "Example BV",
		Addresses: []commerce.Address{{
			StreetName:   "Keizersgracht",
			StreetNumber: "12",
			PostalCode:   "1015 CX",
			City:         "Amsterdam",
			Region:       "Noord-Holland",
			Country:      "NL",
			Phone:        "+3120000001",
			Mobile:       "+3160000002",
		}},
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func testOrder() *commerce.Order {
	return &commerce.Order{
		ID:            "order-1",
		OrderNumber:   "1001",
		CustomerID:    "cust-1",
		CustomerEmail: "jeroen@example.com",
		OrderState:    commerce.OrderStateOpen,
		TotalPrice:    cents(4250),
		LineItems: []commerce.LineItem{
			{ID: "li-1", ProductID: "prod-1", Name: "Mug", Quantity: 2, TotalPrice: cents(1500)},
			{ID: "li-2", ProductID: "prod-2", Name: "Poster", Quantity: 1, TotalPrice: cents(2750)},
		},
		CreatedAt: time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
	}
}

func customerCreatedMessage(customer *commerce.Customer) *commerce.Message {
	return &commerce.Message{
		ID:        "msg-1",
		Resource:  commerce.Reference{TypeID: commerce.ResourceTypeCustomer, ID: "cust-1"},
		Type:      commerce.MessageTypeCustomerCreated,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 5, 0, time.UTC),
		Customer:  customer,
	}
}

func orderCreatedMessage(order *commerce.Order) *commerce.Message {
	return &commerce.Message{
		ID:        "msg-2",
		Resource:  commerce.Reference{TypeID: commerce.ResourceTypeOrder, ID: "order-1"},
		Type:      commerce.MessageTypeOrderCreated,
		CreatedAt: time.Date(2024, 3, 2, 9, 30, 5, 0, time.UTC),
		Order:     order,
	}
}
