package order

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of an order: a menu item name, a positive quantity,
// and the unit price captured at checkout. Items are created when the order
// is placed and are immutable afterwards; there are no partial edits, only
// whole-order cancellation.
type Item struct {
	// name is the menu item name as sold
	name string

	// quantity is the number of units ordered (always positive)
	quantity int

	// unitPrice is the per-unit price at the time of checkout
	unitPrice kernel.Money

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates an order line with validation.
//
// Parameters:
//   - name: Menu item name (must be non-empty)
//   - quantity: Units ordered (must be positive)
//   - unitPrice: Per-unit price (must be non-negative)
//
// Returns the created item or a validation error.
func NewItem(name string, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Name returns the menu item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at checkout.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns quantity times unit price.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.Multiply(i.quantity)
}

// Display returns the line in "2x Chicken Adobo" form for dashboard rendering.
func (i Item) Display() string {
	return fmt.Sprintf("%dx %s", i.quantity, i.name)
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
