package order

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order is placed without any items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order represents a customer's placed purchase. It is the aggregate root
// that tracks the order through its status lifecycle from checkout to
// completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer identifier
//   - Must contain at least one item; items are immutable after checkout
//   - Total always equals the sum of the item line totals
//   - Status is always one of the fixed vocabulary
//   - Completion fields (completedAt/completedBy) are set if and only if
//     status is Completed
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods so the invariants cannot be bypassed.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// staffID is the crew member currently assigned (nil if unassigned)
	staffID *kernel.UUID

	// contact is the customer contact captured at checkout
	contact Contact

	// items are the immutable order lines
	items []Item

	// total is the monetary total, derived from items at construction
	total kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// preparation is the kitchen sub-status (PrepNone until first report)
	preparation Preparation

	// estimatedReady is the crew-supplied completion estimate
	estimatedReady *time.Time

	// createdAt / updatedAt are the lifecycle timestamps
	createdAt time.Time
	updatedAt time.Time

	// updatedBy is the last actor who mutated the order
	updatedBy *kernel.UUID

	// completedAt / completedBy are set iff status == Completed
	completedAt *time.Time
	completedBy *kernel.UUID

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a pending order at checkout.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The customer placing the order
//   - contact: Contact details captured at checkout
//   - items: Order lines (at least one, each constructed via NewItem)
//   - now: Checkout timestamp (createdAt and updatedAt)
//
// The total is computed from the items; the order starts in Pending status
// with no staff assigned and no preparation progress.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	contact Contact,
	items []Item,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), contact.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	total := kernel.Money(0)
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(item.LineTotal())
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		contact:       contact,
		items:         items,
		total:         total,
		status:        Pending,
		preparation:   PrepNone,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrderParams carries persisted state back into the aggregate.
type RestoreOrderParams struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	StaffID        *kernel.UUID
	Contact        Contact
	Items          []Item
	Total          kernel.Money
	Status         Status
	Preparation    Preparation
	EstimatedReady *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UpdatedBy      *kernel.UUID
	CompletedAt    *time.Time
	CompletedBy    *kernel.UUID
}

// RestoreOrder reconstructs an order from persistence.
// It re-checks the construction invariants so corrupt rows surface as
// errors instead of invalid aggregates.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(p.ID.Validate(), p.CustomerID.Validate(), p.Status.Validate()); err != nil {
		return nil, err
	}
	if p.Total.IsNegative() {
		return nil, errs.NewValueIsInvalidError("total")
	}
	if (p.Status == Completed) != (p.CompletedAt != nil && p.CompletedBy != nil) {
		return nil, errs.NewValueIsInvalidError("completion fields")
	}

	return &Order{
		id:              p.ID,
		customerID:      p.CustomerID,
		staffID:         p.StaffID,
		contact:         p.Contact,
		items:           p.Items,
		total:           p.Total,
		status:          p.Status,
		preparation:     p.Preparation,
		estimatedReady:  p.EstimatedReady,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
		updatedBy:       p.UpdatedBy,
		completedAt:     p.CompletedAt,
		completedBy:     p.CompletedBy,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// StaffID returns the assigned crew member's ID, or nil if unassigned.
func (o *Order) StaffID() *kernel.UUID {
	return o.staffID
}

// Contact returns the checkout contact details.
func (o *Order) Contact() Contact {
	return o.contact
}

// Items returns the immutable order lines.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the monetary total of the order.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Preparation returns the kitchen sub-status.
func (o *Order) Preparation() Preparation {
	return o.preparation
}

// EstimatedReady returns the crew-supplied completion estimate, or nil.
func (o *Order) EstimatedReady() *time.Time {
	return o.estimatedReady
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// UpdatedBy returns the last actor who mutated the order, or nil.
func (o *Order) UpdatedBy() *kernel.UUID {
	return o.updatedBy
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CompletedBy returns the staff member who completed the order, or nil.
func (o *Order) CompletedBy() *kernel.UUID {
	return o.completedBy
}

// ChangeStatus applies a status transition and returns the previous status
// for the audit trail.
//
// Side effects, applied together:
//   - status, updatedAt and updatedBy are replaced
//   - when newStatus is Completed, completedAt and completedBy are set
//   - when newStatus is anything else, completion fields are cleared so the
//     "set iff completed" invariant holds in both directions
//
// The engine is deliberately last-write-wins: any valid status may replace
// any other. Repeating the current status is allowed and still produces an
// audit entry (the caller records it).
func (o *Order) ChangeStatus(newStatus Status, actor kernel.UUID, at time.Time) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return Unknown, err
	}
	if err := actor.Validate(); err != nil {
		return Unknown, err
	}

	previous := o.status
	o.status = newStatus
	o.updatedAt = at
	o.updatedBy = &actor

	if newStatus == Completed {
		o.completedAt = &at
		o.completedBy = &actor
	} else {
		o.completedAt = nil
		o.completedBy = nil
	}

	return previous, nil
}

// AssignStaff records the crew member working the order.
// Reassignment is allowed; completion keeps whoever completed it.
func (o *Order) AssignStaff(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	o.staffID = &staffID
	return nil
}

// SetPreparation reports kitchen progress with an optional completion
// estimate. It touches updatedAt/updatedBy but never the main status;
// the two lifecycles are logged and queried independently.
func (o *Order) SetPreparation(p Preparation, eta *time.Time, actor kernel.UUID, at time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	o.preparation = p
	o.estimatedReady = eta
	o.updatedAt = at
	o.updatedBy = &actor
	return nil
}

// ItemsDisplay aggregates the order lines into a single display string
// ("2x Chicken Adobo, 1x Iced Tea") for dashboard snapshots.
func (o *Order) ItemsDisplay() string {
	display := ""
	for i, item := range o.items {
		if i > 0 {
			display += ", "
		}
		display += item.Display()
	}
	return display
}
