package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The vocabulary is fixed: pending, preparing, ready, completed, cancelled.
// Transitions are last-write-wins: any status may be set from any other,
// bounded only by the per-surface allow-lists (crew cannot cancel or reset
// an order to pending; admin can set anything). Every applied transition is
// recorded in the status history, including repeats of the same status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout.
	// Orders in this status are waiting for the crew to pick them up.
	Pending

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready for pickup at the counter.
	Ready

	// Completed indicates the order has been handed to the customer.
	// Completion timestamps and the completing staff member are recorded.
	Completed

	// Cancelled is a terminal status; cancelled orders are never deleted.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// ParseStatus converts a wire-format status string into a Status.
// "processing" is accepted as a legacy alias of "preparing"; older
// dashboards still send it. Anything else outside the vocabulary fails
// with a validation error before any storage is touched.
func ParseStatus(s string) (Status, error) {
	if s == "processing" {
		return Preparing, nil
	}
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized order status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Preparing, Ready, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Surface identifies which caller surface requests a status change.
// Each surface validates target statuses against its own allow-list.
type Surface int

const (
	// CrewSurface is the kitchen/counter staff dashboard.
	CrewSurface Surface = iota + 1

	// AdminSurface is the management dashboard.
	AdminSurface
)

// getCrewAssignableStatuses returns the statuses the crew surface may set.
// Crew moves orders forward through preparation and handover but cannot
// cancel an order or reset it to pending.
func getCrewAssignableStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Preparing: {},
		Ready:     {},
		Completed: {},
	}
}

// getAdminAssignableStatuses returns the statuses the admin surface may set.
func getAdminAssignableStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:   {},
		Preparing: {},
		Ready:     {},
		Completed: {},
		Cancelled: {},
	}
}

// ValidateAssignableBy checks the status against the allow-list of the given surface.
//
// Returns:
//   - nil if the surface may set this status
//   - a validation error if the status is outside the surface's allow-list
//
// This check runs before any storage access, so a rejected status leaves
// the store untouched.
func (s Status) ValidateAssignableBy(surface Surface) error {
	if err := s.Validate(); err != nil {
		return err
	}

	var allowed map[Status]struct{}
	switch surface {
	case CrewSurface:
		allowed = getCrewAssignableStatuses()
	case AdminSurface:
		allowed = getAdminAssignableStatuses()
	default:
		return errs.NewValueIsInvalidErrorWithCause("surface",
			fmt.Errorf("%d is not a known caller surface", surface))
	}

	if _, ok := allowed[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s may not be set from this surface", s.String()))
	}
	return nil
}
