package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/product"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
)

// CreateProductCommandHandler handles the business logic for product
// registration. The product is stored under the currently active catalog
// generation and receives its identifier from the store.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(
	uowFactory CatalogUoWFactory,
	policy services.AccessPolicy,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the product registration command and returns the assigned
// product identifier. Authorization is checked before any state is read.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if err := h.policy.RequireAdmin(cmd.Caller()); err != nil {
		return 0, err
	}

	newProduct, err := product.NewProduct(cmd.Name(), cmd.Cost())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogID, err := uow.CatalogReference().Active(ctx)
	if err != nil {
		return 0, err
	}

	productID, err := uow.ProductRepository().Add(ctx, catalogID, newProduct)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return productID, nil
}
