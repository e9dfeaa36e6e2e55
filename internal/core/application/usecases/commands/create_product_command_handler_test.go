package commands_test

import (
	"testing"

	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/commands"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := kernel.NewPrincipalID()
	policy := services.NewAccessPolicy(admin)
	cmd, err := commands.NewCreateProductCommand(admin, "industrial valve", 250)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	catalogRef := new(MockCatalogReference)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogReference").Return(catalogRef).Once(),
		catalogRef.On("Active", ctx).Return(uint64(1), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, uint64(1), mock.AnythingOfType("*product.Product")).Return(uint64(42), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory, policy)
	productID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), productID)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_NotAdmin(t *testing.T) {
	ctx := t.Context()
	policy := services.NewAccessPolicy(kernel.NewPrincipalID())
	stranger := kernel.NewPrincipalID()
	cmd, err := commands.NewCreateProductCommand(stranger, "industrial valve", 250)
	require.NoError(t, err)

	factory := new(MockCatalogUoWFactory)
	h := commands.NewCreateProductCommandHandler(factory, policy)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorizationFailed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateProductCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateProductCommand{} // not constructed properly
	h := commands.NewCreateProductCommandHandler(new(MockCatalogUoWFactory), services.NewAccessPolicy())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
