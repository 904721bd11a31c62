// Package historyrepo persists the append-only order audit trail.
// Status transitions and kitchen preparation updates land in separate tables;
// rows are only ever inserted, never updated or deleted.
package historyrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusChangeDTO represents one status transition row.
type StatusChangeDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	PreviousStatus int
	NextStatus     int
	Note           string
	ActorID        uuid.UUID `gorm:"type:uuid"`
	ChangedAt      time.Time `gorm:"index"`
}

// TableName specifies the database table name for status transition rows.
func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

// PreparationChangeDTO represents one kitchen preparation update row.
type PreparationChangeDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Preparation    int
	EstimatedReady *time.Time
	Note           string
	ActorID        uuid.UUID `gorm:"type:uuid"`
	ChangedAt      time.Time `gorm:"index"`
}

// TableName specifies the database table name for preparation update rows.
func (PreparationChangeDTO) TableName() string {
	return "order_preparation_history"
}

func statusFromDomain(change order.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		OrderID:        change.OrderID.Bytes(),
		PreviousStatus: int(change.Previous),
		NextStatus:     int(change.Next),
		Note:           change.Note,
		ActorID:        change.ActorID.Bytes(),
		ChangedAt:      change.At,
	}
}

func preparationFromDomain(change order.PreparationChange) PreparationChangeDTO {
	return PreparationChangeDTO{
		OrderID:        change.OrderID.Bytes(),
		Preparation:    int(change.Preparation),
		EstimatedReady: change.ETA,
		Note:           change.Note,
		ActorID:        change.ActorID.Bytes(),
		ChangedAt:      change.At,
	}
}

func statusToDomain(dto StatusChangeDTO) (order.StatusChange, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusChange{}, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.StatusChange{}, err
	}

	return order.StatusChange{
		OrderID:  orderID,
		Previous: order.Status(dto.PreviousStatus),
		Next:     order.Status(dto.NextStatus),
		Note:     dto.Note,
		ActorID:  actorID,
		At:       dto.ChangedAt,
	}, nil
}
