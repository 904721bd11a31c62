package order

import (
	"errors"

	"foodcourt/internal/pkg/errs"
)

// Contact carries the customer-facing details captured at checkout.
// Crew dashboards show name, phone and address for handover; the admin
// surface sees the same fields next to revenue aggregates.
type Contact struct {
	name    string
	phone   string
	address string

	isConstructed bool
}

// ErrContactIsNotConstructed is returned when a Contact was not created
// through the NewContact factory method.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// NewContact creates checkout contact details. Name is required;
// phone and address are optional (walk-in customers have neither).
func NewContact(name, phone, address string) (Contact, error) {
	if name == "" {
		return Contact{}, errs.NewValueIsRequiredError("contact name")
	}
	return Contact{
		name:          name,
		phone:         phone,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the Contact was properly constructed through NewContact.
func (c Contact) Validate() error {
	if !c.isConstructed {
		return ErrContactIsNotConstructed
	}
	return nil
}

// Name returns the customer name.
func (c Contact) Name() string { return c.name }

// Phone returns the customer phone number, possibly empty.
func (c Contact) Phone() string { return c.phone }

// Address returns the customer address, possibly empty.
func (c Contact) Address() string { return c.address }
