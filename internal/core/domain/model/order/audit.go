package order

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
)

// StatusChange is one row of the append-only status audit trail.
// A row is written for every applied transition, including repeated
// transitions to the same status; rows are never updated or deleted.
type StatusChange struct {
	OrderID  kernel.UUID
	Previous Status
	Next     Status
	Note     string
	ActorID  kernel.UUID
	At       time.Time
}

// PreparationChange is one row of the parallel preparation audit trail.
// It tracks kitchen-side progress independently of the main status log.
type PreparationChange struct {
	OrderID     kernel.UUID
	Preparation Preparation
	ETA         *time.Time
	Note        string
	ActorID     kernel.UUID
	At          time.Time
}
