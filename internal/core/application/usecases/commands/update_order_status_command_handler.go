package commands

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler applies a status transition to an order.
// The order row and its audit trail record are written in one transaction;
// the notification goes out only after the commit succeeded, so subscribers
// never see a transition that was rolled back.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, notifier Notifier) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status transition command and returns the committed
// order so callers can echo its state (status, updatedAt) without a re-read.
// Loads the order, applies the transition, records the audit trail entry, and
// commits. Crew updates also record the acting crew member as the assigned
// staff. Not-found and validation errors surface unchanged so the transport
// layer can map them.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if cmd.Surface() == order.CrewSurface {
		if err = aggregate.AssignStaff(cmd.ActorID()); err != nil {
			return nil, err
		}
	}

	previous, err := aggregate.ChangeStatus(cmd.Status(), cmd.ActorID(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().AppendStatus(ctx, order.StatusChange{
		OrderID:  aggregate.ID(),
		Previous: previous,
		Next:     aggregate.Status(),
		Note:     cmd.Note(),
		ActorID:  cmd.ActorID(),
		At:       now,
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, services.Event{
		OrderID:    aggregate.ID(),
		Status:     aggregate.Status(),
		OccurredAt: now,
		CustomerID: aggregate.CustomerID(),
		StaffID:    aggregate.StaffID(),
	})

	return aggregate, nil
}
