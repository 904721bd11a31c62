package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrOrderLinesAreRequired  = errors.New("at least one order line is required")
)

// ItemLine is one raw line of a checkout request, before value object
// construction. Line-level validation happens in order.NewItem.
type ItemLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// PlaceOrderCommand represents a checkout request.
// Encapsulates the customer identity, contact details, and ordered lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, customerID, "Maria Santos", "+63 917 555 0101", "",
//	    []ItemLine{{Name: "Chicken Adobo", Quantity: 2, UnitPrice: 149.50}})
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, dispatcher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	customerName string
	phone        string
	address      string
	lines        []ItemLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that both identifiers are valid, the customer name is present,
// and at least one line was ordered. Returns an error if any validation fails.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	phone string,
	address string,
	lines []ItemLine,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setCustomerID(customerID),
		placeCommand.setCustomerName(customerName),
		placeCommand.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the contact name captured at checkout.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the optional contact phone number.
func (c PlaceOrderCommand) Phone() string {
	return c.phone
}

// Address returns the optional delivery or pickup note.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// Lines returns the ordered lines.
func (c PlaceOrderCommand) Lines() []ItemLine {
	return c.lines
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []ItemLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	c.lines = lines
	return nil
}
