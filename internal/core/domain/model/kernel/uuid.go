package kernel

import (
	"fmt"

	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object that represents a universally unique identifier.
// It wraps the github.com/google/uuid implementation so every identity in the
// system (order, customer, acting staff member) goes through the same
// validated type instead of raw strings.
//
// The zero value of UUID is invalid and must be constructed using one of the
// provided factory functions: NewUUID, UUIDFromString, or UUIDFromBytes.
//
// UUID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Assign a fresh identifier at checkout
//	orderID := kernel.NewUUID()
//
//	// Parse an order id from a request path
//	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    // reject the request, nothing was looked up
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is how orders get their identity at checkout; customer and staff ids
// arrive from outside and go through UUIDFromString instead.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	fmt.Println(orderID.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts standard UUID formats including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error if the string is not a valid UUID format.
// This is the entry point for every id arriving over HTTP: order ids from
// URL paths, customer and actor ids from request bodies. A parse failure
// here means the request is rejected before any storage access.
//
// Example:
//
//	actorID, err := kernel.UUIDFromString(request.ActorID)
//	if err != nil {
//	    return fmt.Errorf("invalid actor id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice.
// The byte slice must be exactly 16 bytes long.
// Returns an error if the byte slice is not valid for UUID construction.
//
// Used when rehydrating ids scanned from the uuid columns of the orders and
// history tables.
//
// Example:
//
//	var raw uuid.UUID
//	if err := rows.Scan(&raw); err != nil {
//	    return err
//	}
//	orderID, err := kernel.UUIDFromBytes(raw[:])
//	if err != nil {
//	    return fmt.Errorf("corrupt order id: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard string representation of the UUID.
// The format is "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" where x is a hexadecimal digit.
// For a zero value UUID, this returns "00000000-0000-0000-0000-000000000000".
//
// This method is commonly used for:
//   - Logging order and actor ids
//   - JSON responses and notification payloads
//   - Text-typed SQL arguments
//
// Example:
//
//	logger.Warn("Order pending past threshold", "orderId", orderID.String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying UUID value.
// Note: This returns the internal uuid.UUID type, not a byte slice.
// For a byte slice representation, use id.Bytes()[:].
//
// The repositories use this when building DTOs for the uuid columns;
// everywhere else the wrapper should stay closed.
//
// Example:
//
//	dto := OrderDTO{ID: aggregate.ID().Bytes()}
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
// Returns true if both UUIDs represent the same value, false otherwise.
//
// The dispatcher relies on this to avoid double delivery when an order's
// customer and assigned staff member are the same person.
//
// Example:
//
//	if event.StaffID != nil && event.StaffID.IsEqual(event.CustomerID) {
//	    // one delivery, not two
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed if the UUID is a zero value (nil UUID).
// A valid UUID is any UUID that was created through one of the constructor functions.
//
// Aggregate and command constructors call this on every id they receive, so
// a zero-value id never reaches storage.
//
// Example:
//
//	func NewContactlessPickup(orderID kernel.UUID) error {
//	    if err := orderID.Validate(); err != nil {
//	        return fmt.Errorf("invalid order id: %w", err)
//	    }
//	    // ...
//	    return nil
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
