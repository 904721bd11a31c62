package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines() []commands.ItemLine {
	return []commands.ItemLine{
		{Name: "Chicken Adobo", Quantity: 2, UnitPrice: 149.50},
		{Name: "Iced Tea", Quantity: 1, UnitPrice: 45.00},
	}
}

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		cmd, err := commands.NewPlaceOrderCommand(
			orderID, customerID, "Maria Santos", "+63 917 555 0101", "Stall 4", testLines())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, orderID.IsEqual(cmd.OrderID()))
		assert.True(t, customerID.IsEqual(cmd.CustomerID()))
		assert.Equal(t, "Maria Santos", cmd.CustomerName())
		assert.Len(t, cmd.Lines(), 2)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := commands.NewPlaceOrderCommand(
			zeroID, kernel.NewUUID(), "Maria Santos", "", "", testLines())
		require.Error(t, err)

		_, err = commands.NewPlaceOrderCommand(
			kernel.NewUUID(), zeroID, "Maria Santos", "", "", testLines())
		require.Error(t, err)
	})

	t.Run("should require a customer name", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "", "", "", testLines())
		require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("should require at least one line", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Maria Santos", "", "", nil)
		require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
