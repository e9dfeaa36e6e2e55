package commands_test

import (
	"testing"

	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/commands"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyer := kernel.NewPrincipalID()
	seller := kernel.NewPrincipalID()
	existing := restoreTestOrder(t, 1, buyer, seller, order.Created)

	cmd, err := commands.NewConfirmOrderCommand(seller, 1)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, uint64(1)).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("EventPublisher").Return(publisher).Once(),
		publisher.On("Publish", ctx, mock.MatchedBy(func(evts []events.DomainEvent) bool {
			if len(evts) != 1 {
				return false
			}
			updated, ok := evts[0].(events.OrderUpdated)
			return ok && updated.OrderID == 1 && updated.Status == order.Confirmed
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Confirmed, existing.Status())
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_BuyerCannotConfirm(t *testing.T) {
	ctx := t.Context()
	buyer := kernel.NewPrincipalID()
	seller := kernel.NewPrincipalID()
	existing := restoreTestOrder(t, 1, buyer, seller, order.Created)

	cmd, err := commands.NewConfirmOrderCommand(buyer, 1)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, uint64(1)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorizationFailed)
	assert.Equal(t, order.Created, existing.Status())
}

func TestConfirmOrderCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	buyer := kernel.NewPrincipalID()
	seller := kernel.NewPrincipalID()
	existing := restoreTestOrder(t, 1, buyer, seller, order.Shipped)

	cmd, err := commands.NewConfirmOrderCommand(seller, 1)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, uint64(1)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
