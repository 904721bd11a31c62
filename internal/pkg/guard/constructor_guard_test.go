package guard_test

import (
	"errors"
	"testing"

	"foodcourt/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type MenuItem struct {
		name  string
		price int
		guard guard.ConstructorGuard
	}

	var errMenuItemNotConstructed = errors.New("MenuItem must be created via NewMenuItem")

	newMenuItem := func(name string, price int) (MenuItem, error) {
		if name == "" {
			return MenuItem{}, errors.New("name is required")
		}
		if price < 0 {
			return MenuItem{}, errors.New("price cannot be negative")
		}
		return MenuItem{
			name:  name,
			price: price,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateMenuItem := func(m MenuItem) error {
		return m.guard.Validate(errMenuItemNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		item, err := newMenuItem("Chicken Adobo", 180)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateMenuItem(item))
		assert.Equal(t, "Chicken Adobo", item.name)
		assert.Equal(t, 180, item.price)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var item MenuItem // zero value

		// When
		err := validateMenuItem(item)

		// Then
		// Zero value MenuItem has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errMenuItemNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test empty name
		_, err := newMenuItem("", 180)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")

		// Test negative price
		_, err = newMenuItem("Chicken Adobo", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}
