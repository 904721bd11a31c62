package queries

import (
	"context"
	"database/sql"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListChangedOrdersQueryHandler retrieves changed orders from the database.
// Backs the polling endpoint: boards call it with their last poll instant and
// receive everything that moved since, plus summary statistics.
//
// Example:
//
//	handler := NewListChangedOrdersQueryHandler(db)
//	query, _ := NewListChangedOrdersQuery(lastPoll, order.Unknown, TimeframeAll)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to poll orders: %v", err)
//	    return err
//	}
type ListChangedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListChangedOrdersQueryHandler creates a handler for polling queries.
// Requires a GORM database connection for query execution.
func NewListChangedOrdersQueryHandler(db *gorm.DB) ListChangedOrdersQueryHandler {
	return ListChangedOrdersQueryHandler{db: db}
}

// Handle executes the polling query.
// Returns orders updated strictly after the since instant, newest change
// first, with item summaries aggregated in SQL. Statistics are computed from
// the returned rows.
func (h ListChangedOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListChangedOrdersQuery,
) (ListChangedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListChangedOrdersQueryResponse{}, err
	}

	sqlQuery := `
		SELECT
			o.id,
			o.customer_id,
			o.contact_name,
			o.contact_phone,
			o.contact_address,
			COALESCE(string_agg(i.quantity::text || 'x ' || i.name, ', ' ORDER BY i.position), ''),
			o.total,
			o.status,
			o.preparation,
			o.estimated_ready,
			o.created_at,
			o.updated_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.updated_at > ?
	`
	args := []any{query.Since()}

	if query.StatusFilter() != order.Unknown {
		sqlQuery += " AND o.status = ?"
		args = append(args, query.StatusFilter())
	}
	if cutoff := query.Timeframe().CutoffFrom(time.Now().UTC()); !cutoff.IsZero() {
		sqlQuery += " AND o.created_at >= ?"
		args = append(args, cutoff)
	}

	sqlQuery += `
		GROUP BY o.id
		ORDER BY o.updated_at DESC, o.id
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return ListChangedOrdersQueryResponse{}, err
	}
	defer rows.Close()

	snapshots := make([]OrderSnapshot, 0)

	for rows.Next() {
		var id, customerID uuid.UUID
		var contactName, contactPhone, contactAddress, itemsDisplay string
		var total int64
		var status, preparation int
		var estimatedReady sql.NullTime
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&contactName,
			&contactPhone,
			&contactAddress,
			&itemsDisplay,
			&total,
			&status,
			&preparation,
			&estimatedReady,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return ListChangedOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListChangedOrdersQueryResponse{}, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return ListChangedOrdersQueryResponse{}, idErr
		}

		snapshot := OrderSnapshot{
			ID:              orderID,
			CustomerID:      ownerID,
			CustomerName:    contactName,
			CustomerPhone:   contactPhone,
			CustomerAddress: contactAddress,
			ItemsDisplay:    itemsDisplay,
			Total:           kernel.Money(total),
			Status:          order.Status(status),
			Preparation:     order.Preparation(preparation),
			CreatedAt:       createdAt,
			UpdatedAt:       updatedAt,
		}
		if estimatedReady.Valid {
			eta := estimatedReady.Time
			snapshot.EstimatedReady = &eta
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return ListChangedOrdersQueryResponse{}, err
	}

	return ListChangedOrdersQueryResponse{
		Orders:     snapshots,
		Statistics: ComputeStatistics(snapshots),
	}, nil
}
