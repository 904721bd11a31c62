package commands

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdatePreparationCommandIsNotConstructed = errors.New(
	"UpdatePreparationCommand must be created via NewUpdatePreparationCommand constructor",
)

// UpdatePreparationCommand represents a kitchen progress update for an order:
// the preparation stage, an optional ready-time estimate, and an optional note.
// Preparation updates never touch the order's main status.
type UpdatePreparationCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	preparation    order.Preparation
	estimatedReady *time.Time
	actorID        kernel.UUID
	note           string

	guard guard.ConstructorGuard
}

// NewUpdatePreparationCommand creates a kitchen progress command.
// Validates the identifiers and that the preparation stage is assignable.
func NewUpdatePreparationCommand(
	orderID kernel.UUID,
	preparation order.Preparation,
	estimatedReady *time.Time,
	actorID kernel.UUID,
	note string,
) (UpdatePreparationCommand, error) {
	prepCommand := UpdatePreparationCommand{
		estimatedReady: estimatedReady,
		note:           note,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		prepCommand.setOrderID(orderID),
		prepCommand.setPreparation(preparation),
		prepCommand.setActorID(actorID),
	); err != nil {
		return UpdatePreparationCommand{}, err
	}

	return prepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePreparationCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePreparationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdatePreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Preparation returns the target kitchen stage.
func (c UpdatePreparationCommand) Preparation() order.Preparation {
	return c.preparation
}

// EstimatedReady returns the optional ready-time estimate.
func (c UpdatePreparationCommand) EstimatedReady() *time.Time {
	return c.estimatedReady
}

// ActorID returns the identifier of the crew member reporting progress.
func (c UpdatePreparationCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the optional free-text note recorded in the audit trail.
func (c UpdatePreparationCommand) Note() string {
	return c.note
}

func (c *UpdatePreparationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePreparationCommand) setPreparation(preparation order.Preparation) error {
	if err := preparation.Validate(); err != nil {
		return err
	}

	c.preparation = preparation
	return nil
}

func (c *UpdatePreparationCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
