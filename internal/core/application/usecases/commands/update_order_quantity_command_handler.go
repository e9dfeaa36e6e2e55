package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
)

// UpdateOrderQuantityCommandHandler changes a line item quantity on an order
// that is still in Created status. Only the buyer may do this; the check runs
// before the status is consulted so a stranger cannot probe order state.
type UpdateOrderQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderQuantityCommandHandler creates a handler for line item
// quantity changes.
func NewUpdateOrderQuantityCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) UpdateOrderQuantityCommandHandler {
	return UpdateOrderQuantityCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the quantity change command.
func (h *UpdateOrderQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateOrderQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.RequireBuyer(cmd.Caller(), existing); err != nil {
		return err
	}

	if err = existing.UpdateQuantity(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
