package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
)

// CompleteOrderCommandHandler moves an order from Shipped to Completed on
// behalf of the buyer. Completion also signals the invoicing hook, so the
// event log receives OrderUpdated followed by InvoiceSystemIsListening.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = existing.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	err = uow.EventPublisher().Publish(ctx,
		events.OrderUpdated{OrderID: existing.ID(), Status: existing.Status()},
		events.InvoiceSystemIsListening{OrderID: existing.ID()},
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
