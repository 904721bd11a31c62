package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Preparation is the kitchen-side sub-status of an order. It moves
// independently of the main Status field and carries its own audit log;
// crew updates it together with an estimated completion time so customers
// can watch progress between the coarse status transitions.
type Preparation int

const (
	// PrepNone means no preparation progress has been reported yet.
	PrepNone Preparation = iota

	// PrepQueued means the order ticket is printed and waiting for a cook.
	PrepQueued

	// PrepCooking means the kitchen is actively working on the order.
	PrepCooking

	// PrepPlating means cooking is finished and the order is being packed.
	PrepPlating

	// PrepDone means preparation is finished; the order is about to go ready.
	PrepDone
)

func getPreparationStrings() map[Preparation]string {
	return map[Preparation]string{
		PrepNone:    "none",
		PrepQueued:  "queued",
		PrepCooking: "cooking",
		PrepPlating: "plating",
		PrepDone:    "done",
	}
}

func getValidPreparationStrings() map[Preparation]string {
	//nolint:exhaustive // PrepNone is the unset marker, not assignable
	return map[Preparation]string{
		PrepQueued:  "queued",
		PrepCooking: "cooking",
		PrepPlating: "plating",
		PrepDone:    "done",
	}
}

// ParsePreparation converts a wire-format preparation string into a Preparation.
func ParsePreparation(s string) (Preparation, error) {
	for prep, str := range getValidPreparationStrings() {
		if str == s {
			return prep, nil
		}
	}
	return PrepNone, errs.NewValueIsInvalidErrorWithCause("preparationStatus",
		fmt.Errorf("%q is not a recognized preparation status", s))
}

// Validate checks that the preparation value is assignable.
// PrepNone is valid only as the unset default, never as a target.
func (p Preparation) Validate() error {
	if _, ok := getValidPreparationStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("preparationStatus is invalid",
			fmt.Errorf("%d is not a valid preparation status", p))
	}
	return nil
}

// String returns the wire-format name of the preparation status.
func (p Preparation) String() string {
	if str, ok := getPreparationStrings()[p]; ok {
		return str
	}
	return "none"
}
