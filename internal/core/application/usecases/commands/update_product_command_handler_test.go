package commands_test

import (
	"testing"

	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/commands"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/product"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := kernel.NewPrincipalID()
	policy := services.NewAccessPolicy(admin)

	existing, err := product.RestoreProduct(4, "industrial valve", 250)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateProductCommand(admin, 4, "industrial valve v2", 300)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, uint64(4)).Return(existing, nil).Once(),
		productRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory, policy)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, "industrial valve v2", existing.Name())
	assert.Equal(t, uint64(300), existing.Cost())
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_NotAdmin(t *testing.T) {
	ctx := t.Context()
	policy := services.NewAccessPolicy(kernel.NewPrincipalID())

	cmd, err := commands.NewUpdateProductCommand(kernel.NewPrincipalID(), 4, "industrial valve v2", 300)
	require.NoError(t, err)

	factory := new(MockCatalogUoWFactory)
	h := commands.NewUpdateProductCommandHandler(factory, policy)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorizationFailed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateProductCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	admin := kernel.NewPrincipalID()
	policy := services.NewAccessPolicy(admin)

	cmd, err := commands.NewUpdateProductCommand(admin, 4, "industrial valve v2", 300)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, uint64(4)).
			Return(nil, errs.NewObjectNotFoundError("productId", "4")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory, policy)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
