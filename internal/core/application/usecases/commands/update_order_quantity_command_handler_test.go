package commands_test

import (
	"testing"

	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/commands"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyer := kernel.NewPrincipalID()
	existing := restoreTestOrder(t, 2, buyer, kernel.NewPrincipalID(), order.Created)

	cmd, err := commands.NewUpdateOrderQuantityCommand(buyer, 2, 1, 10)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, uint64(2)).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderQuantityCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, uint64(10), existing.Items()[0].Quantity())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderQuantityCommandHandler_Handle_SellerCannotChange(t *testing.T) {
	ctx := t.Context()
	seller := kernel.NewPrincipalID()
	existing := restoreTestOrder(t, 2, kernel.NewPrincipalID(), seller, order.Created)

	cmd, err := commands.NewUpdateOrderQuantityCommand(seller, 2, 1, 10)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, uint64(2)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderQuantityCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorizationFailed)
	assert.Equal(t, uint64(1), existing.Items()[0].Quantity())
}

func TestUpdateOrderQuantityCommandHandler_Handle_AfterConfirmation(t *testing.T) {
	ctx := t.Context()
	buyer := kernel.NewPrincipalID()
	existing := restoreTestOrder(t, 2, buyer, kernel.NewPrincipalID(), order.Confirmed)

	cmd, err := commands.NewUpdateOrderQuantityCommand(buyer, 2, 1, 10)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, uint64(2)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderQuantityCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
