package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
)

// UpdateCatalogReferenceCommandHandler swaps the active catalog generation.
type UpdateCatalogReferenceCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateCatalogReferenceCommandHandler creates a handler for catalog
// reference updates.
func NewUpdateCatalogReferenceCommandHandler(
	uowFactory CatalogUoWFactory,
	policy services.AccessPolicy,
) UpdateCatalogReferenceCommandHandler {
	return UpdateCatalogReferenceCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the catalog reference update command.
func (h *UpdateCatalogReferenceCommandHandler) Handle(ctx context.Context, cmd UpdateCatalogReferenceCommand) error {
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

	if err := uow.CatalogReference().Rebind(ctx, cmd.CatalogID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
