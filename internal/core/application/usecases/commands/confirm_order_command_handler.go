package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
)

// ConfirmOrderCommandHandler moves an order from Created to Confirmed on
// behalf of the seller and records OrderUpdated in the same transaction.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if err = h.policy.RequireSeller(cmd.Caller(), existing); err != nil {
		return err
	}

	if err = existing.Confirm(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	err = uow.EventPublisher().Publish(ctx, events.OrderUpdated{
		OrderID: existing.ID(),
		Status:  existing.Status(),
	})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
