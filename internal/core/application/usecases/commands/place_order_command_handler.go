package commands

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
)

// PlaceOrderCommandHandler handles the business logic for checkout.
// Creates new orders in "pending" status with the total derived from the lines.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, dispatcher)
//	cmd, _ := NewPlaceOrderCommand(orderID, customerID, "Maria Santos", "", "",
//	    []ItemLine{{Name: "Iced Tea", Quantity: 1, UnitPrice: 45}})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// Order is now pending and visible to the crew board
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for post-commit fan-out.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the checkout command.
// Builds the contact and item value objects, creates the pending order, and
// persists it atomically. The notification goes out only after the commit
// succeeded.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	contact, err := order.NewContact(cmd.CustomerName(), cmd.Phone(), cmd.Address())
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.NewItem(line.Name, line.Quantity, kernel.MoneyFromFloat(line.UnitPrice))
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), contact, items, now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
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
	})

	return nil
}
