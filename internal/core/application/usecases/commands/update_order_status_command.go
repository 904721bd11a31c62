package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// status on behalf of a crew member or administrator. The surface decides
// which statuses are assignable; the check runs at construction so handlers
// never see a command outside the actor's allow-list.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	surface order.Surface
	actorID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status transition command.
// Validates the order and actor identifiers and that the target status is
// assignable from the given surface.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	surface order.Surface,
	actorID kernel.UUID,
	note string,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		surface: surface,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status, surface),
		statusCommand.setActorID(actorID),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Surface returns the surface the request came from.
func (c UpdateOrderStatusCommand) Surface() order.Surface {
	return c.surface
}

// ActorID returns the identifier of the user applying the transition.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the optional free-text note recorded in the audit trail.
func (c UpdateOrderStatusCommand) Note() string {
	return c.note
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status, surface order.Surface) error {
	if err := status.ValidateAssignableBy(surface); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
