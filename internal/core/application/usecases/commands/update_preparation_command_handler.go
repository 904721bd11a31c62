package commands

import (
	"context"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
)

// UpdatePreparationCommandHandler records kitchen progress for an order.
// The order row and the preparation history record are written in one
// transaction. Subscribers get a progress message carrying the unchanged
// main status.
type UpdatePreparationCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
}

// NewUpdatePreparationCommandHandler creates a handler for kitchen progress updates.
func NewUpdatePreparationCommandHandler(uowFactory UoWFactory, notifier Notifier) UpdatePreparationCommandHandler {
	return UpdatePreparationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the kitchen progress command.
func (h *UpdatePreparationCommandHandler) Handle(ctx context.Context, cmd UpdatePreparationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.SetPreparation(cmd.Preparation(), cmd.EstimatedReady(), cmd.ActorID(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.HistoryRepository().AppendPreparation(ctx, order.PreparationChange{
		OrderID:     aggregate.ID(),
		Preparation: aggregate.Preparation(),
		ETA:         cmd.EstimatedReady(),
		Note:        cmd.Note(),
		ActorID:     cmd.ActorID(),
		At:          now,
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, services.Event{
		OrderID:    aggregate.ID(),
		Status:     aggregate.Status(),
		OccurredAt: now,
		CustomerID: aggregate.CustomerID(),
		StaffID:    aggregate.StaffID(),
		Message:    preparationMessage(aggregate),
	})

	return nil
}

func preparationMessage(aggregate *order.Order) string {
	if eta := aggregate.EstimatedReady(); eta != nil {
		return fmt.Sprintf("Kitchen update: %s, estimated ready at %s.",
			aggregate.Preparation().String(), eta.Format("15:04"))
	}
	return fmt.Sprintf("Kitchen update: %s.", aggregate.Preparation().String())
}
