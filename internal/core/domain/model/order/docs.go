// Package order provides domain entities and business logic for order
// management in the food ordering system. It implements the Order aggregate
// root with lifecycle management and status transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Status: The fixed status vocabulary with per-surface allow-lists
//   - Preparation: The kitchen sub-status tracked independently of Status
//   - Item, Contact: Value objects captured immutably at checkout
//   - StatusChange, PreparationChange: Append-only audit trail records
//
// Key business rules:
//   - Orders start in pending status at checkout and are never hard-deleted;
//     cancellation is a terminal status, not a deletion
//   - Transitions are last-write-wins within each surface's allow-list and
//     every applied transition produces exactly one audit record
//   - Completion fields are set if and only if the status is completed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
