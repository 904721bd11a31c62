package historyrepo

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM audit trail repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// AppendStatus inserts one status transition row.
func (r *GormHistoryRepository) AppendStatus(ctx context.Context, change order.StatusChange) error {
	dto := statusFromDomain(change)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendPreparation inserts one kitchen preparation update row.
func (r *GormHistoryRepository) AppendPreparation(ctx context.Context, change order.PreparationChange) error {
	dto := preparationFromDomain(change)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListStatusByOrder returns the status transitions of an order in chronological order.
func (r *GormHistoryRepository) ListStatusByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]order.StatusChange, error) {
	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Order("changed_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	changes := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, mapErr := statusToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		changes = append(changes, change)
	}

	return changes, nil
}
