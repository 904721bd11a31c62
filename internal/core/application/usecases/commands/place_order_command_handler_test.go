package commands_test

import (
	"errors"
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/mock"
)

func placeOrderCmd(t *testing.T) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Maria Santos", "", "", testLines())
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCmd(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.AnythingOfType("services.Event")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	event := notifier.Calls[0].Arguments.Get(1).(services.Event)
	assert.True(t, cmd.OrderID().IsEqual(event.OrderID))
	assert.Equal(t, order.Pending, event.Status)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)
	h := commands.NewPlaceOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_InvalidLine(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Maria Santos", "", "",
		[]commands.ItemLine{{Name: "Iced Tea", Quantity: 0, UnitPrice: 45}})
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)
	h := commands.NewPlaceOrderCommandHandler(factory, notifier)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCmd(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitErrorSuppressesNotify(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCmd(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
