package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
)

// ShipOrderCommandHandler moves an order from Confirmed to Shipped on behalf
// of the seller and records OrderUpdated in the same transaction.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewShipOrderCommandHandler creates a handler for shipment declarations.
func NewShipOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the shipment command.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	if err = existing.Ship(); err != nil {
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
