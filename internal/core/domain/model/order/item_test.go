package order_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create a valid order line", func(t *testing.T) {
		item, err := order.NewItem("Chicken Adobo", 2, kernel.MoneyFromFloat(149.50))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Chicken Adobo", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, kernel.MoneyFromFloat(149.50), item.UnitPrice())
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		_, err := order.NewItem("", 1, kernel.MoneyFromFloat(10))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		for _, qty := range []int{0, -1, -99} {
			_, err := order.NewItem("Iced Tea", qty, kernel.MoneyFromFloat(45))
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "quantity %d must be rejected", qty)
		}
	})

	t.Run("should reject a negative unit price", func(t *testing.T) {
		_, err := order.NewItem("Iced Tea", 1, kernel.Money(-1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		item, err := order.NewItem("Water Cup", 1, kernel.Money(0))
		require.NoError(t, err)
		assert.Equal(t, kernel.Money(0), item.LineTotal())
	})

	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestItem_LineTotal(t *testing.T) {
	item, err := order.NewItem("Chicken Adobo", 3, kernel.MoneyFromFloat(149.50))
	require.NoError(t, err)

	assert.Equal(t, kernel.MoneyFromFloat(448.50), item.LineTotal())
}

func TestItem_Display(t *testing.T) {
	item, err := order.NewItem("Iced Tea", 2, kernel.MoneyFromFloat(45))
	require.NoError(t, err)

	assert.Equal(t, "2x Iced Tea", item.Display())
}

func TestNewContact(t *testing.T) {
	t.Run("should create a contact with optional fields empty", func(t *testing.T) {
		contact, err := order.NewContact("Walk-in", "", "")
		require.NoError(t, err)
		require.NoError(t, contact.Validate())
		assert.Equal(t, "Walk-in", contact.Name())
		assert.Empty(t, contact.Phone())
		assert.Empty(t, contact.Address())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := order.NewContact("", "+63 917 555 0101", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
