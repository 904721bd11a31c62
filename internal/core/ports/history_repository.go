package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// HistoryRepository defines the persistence contract for the append-only
// order audit trail. Rows are only ever inserted, never updated or deleted.
type HistoryRepository interface {
	// AppendStatus records one applied status transition.
	AppendStatus(ctx context.Context, change order.StatusChange) error

	// AppendPreparation records one kitchen preparation update.
	AppendPreparation(ctx context.Context, change order.PreparationChange) error

	// ListStatusByOrder returns the status transitions of an order in
	// chronological order.
	ListStatusByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error)
}
