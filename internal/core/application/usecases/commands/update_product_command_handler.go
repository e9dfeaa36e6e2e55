package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
)

// UpdateProductCommandHandler handles product updates. Orders snapshot
// nothing: a cost change is visible to every later quote against the product.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(
	uowFactory CatalogUoWFactory,
	policy services.AccessPolicy,
) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the product update command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.RequireAdmin(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	existing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = existing.Update(cmd.Name(), cmd.Cost()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
