package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the current status of one order together
// with its transition history. Customers poll it from the tracking page.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order status: %w", err)
//	}
//	fmt.Printf("Order is %s\n", status.Status)
type GetOrderStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a status lookup query for one order.
func NewGetOrderStatusQuery(orderID kernel.UUID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// StatusChangeView is one entry of an order's transition history.
type StatusChangeView struct {
	Previous order.Status
	Next     order.Status
	Note     string
	At       time.Time
}

// GetOrderStatusQueryResponse represents the tracking state of one order.
type GetOrderStatusQueryResponse struct {
	OrderID        kernel.UUID
	Status         order.Status
	Preparation    order.Preparation
	EstimatedReady *time.Time
	UpdatedAt      time.Time
	History        []StatusChangeView
}
