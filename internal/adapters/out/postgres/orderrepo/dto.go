// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and change time.
//
// Timestamp columns are owned by the domain layer, so GORM's automatic
// create/update time tracking is disabled.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;index"`
	StaffID        *uuid.UUID `gorm:"type:uuid;index"`
	ContactName    string
	ContactPhone   string
	ContactAddress string
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total          int64
	Status         int `gorm:"index"`
	Preparation    int
	EstimatedReady *time.Time
	CreatedAt      time.Time `gorm:"index;autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"index;autoUpdateTime:false"`
	UpdatedBy      *uuid.UUID `gorm:"type:uuid"`
	CompletedAt    *time.Time
	CompletedBy    *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one ordered line within the order_items table.
// Lines are captured at checkout and never change afterwards; position
// preserves the menu order the customer picked.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Position  int
	Name      string
	Quantity  int
	UnitPrice int64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional staff assignment and completion state.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Position:  i,
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: int64(item.UnitPrice()),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		StaffID:        optionalUUID(aggregate.StaffID()),
		ContactName:    aggregate.Contact().Name(),
		ContactPhone:   aggregate.Contact().Phone(),
		ContactAddress: aggregate.Contact().Address(),
		Items:          items,
		Total:          int64(aggregate.Total()),
		Status:         int(aggregate.Status()),
		Preparation:    int(aggregate.Preparation()),
		EstimatedReady: aggregate.EstimatedReady(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		UpdatedBy:      optionalUUID(aggregate.UpdatedBy()),
		CompletedAt:    aggregate.CompletedAt(),
		CompletedBy:    optionalUUID(aggregate.CompletedBy()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and completion state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	staffID, err := optionalKernelUUID(dto.StaffID)
	if err != nil {
		return nil, err
	}
	updatedBy, err := optionalKernelUUID(dto.UpdatedBy)
	if err != nil {
		return nil, err
	}
	completedBy, err := optionalKernelUUID(dto.CompletedBy)
	if err != nil {
		return nil, err
	}

	contact, err := order.NewContact(dto.ContactName, dto.ContactPhone, dto.ContactAddress)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, kernel.Money(itemDTO.UnitPrice))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:             id,
		CustomerID:     customerID,
		StaffID:        staffID,
		Contact:        contact,
		Items:          items,
		Total:          kernel.Money(dto.Total),
		Status:         order.Status(dto.Status),
		Preparation:    order.Preparation(dto.Preparation),
		EstimatedReady: dto.EstimatedReady,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
		UpdatedBy:      updatedBy,
		CompletedAt:    dto.CompletedAt,
		CompletedBy:    completedBy,
	})
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
