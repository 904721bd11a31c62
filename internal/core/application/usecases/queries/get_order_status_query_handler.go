package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler retrieves one order's tracking state from the
// database. Missing orders surface as errs.ObjectNotFoundError so the
// transport layer can map them to a 404.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for status lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the status lookup.
// Returns the order's current status, kitchen progress, and its status
// history in chronological order.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	var status, preparation int
	var estimatedReady sql.NullTime
	var updatedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			preparation,
			estimated_ready,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(&status, &preparation, &estimatedReady, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderStatusQueryResponse{},
				errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return GetOrderStatusQueryResponse{}, err
	}

	response := GetOrderStatusQueryResponse{
		OrderID:     query.OrderID(),
		Status:      order.Status(status),
		Preparation: order.Preparation(preparation),
		UpdatedAt:   updatedAt,
	}
	if estimatedReady.Valid {
		eta := estimatedReady.Time
		response.EstimatedReady = &eta
	}

	history, err := h.loadHistory(ctx, query)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

func (h GetOrderStatusQueryHandler) loadHistory(
	ctx context.Context,
	query GetOrderStatusQuery,
) ([]StatusChangeView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			previous_status,
			next_status,
			note,
			changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusChangeView, 0)

	for rows.Next() {
		var previous, next int
		var note string
		var changedAt time.Time

		if err = rows.Scan(&previous, &next, &note, &changedAt); err != nil {
			return nil, err
		}

		history = append(history, StatusChangeView{
			Previous: order.Status(previous),
			Next:     order.Status(next),
			Note:     note,
			At:       changedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
