package commands

import (
	"context"
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order creation. Every line item is
// resolved against the active catalog generation before the order is stored,
// and OrderCreated is appended to the event log in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order creation command and returns the assigned order
// identifier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if err := h.policy.RequireAdmin(cmd.Caller()); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(
		cmd.Buyer(),
		cmd.Seller(),
		cmd.Items(),
		cmd.DeclaredItemCount(),
		cmd.DeliveryTerms(),
	)
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

	productRepo := uow.ProductRepository()
	for _, item := range newOrder.Items() {
		exists, existsErr := productRepo.ExistsInCatalog(ctx, catalogID, item.ProductID())
		if existsErr != nil {
			return 0, existsErr
		}
		if !exists {
			return 0, errs.NewObjectNotFoundError("productId", fmt.Sprint(item.ProductID()))
		}
	}

	orderID, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return 0, err
	}

	err = uow.EventPublisher().Publish(ctx, events.OrderCreated{
		OrderID: orderID,
		Buyer:   newOrder.Buyer(),
		Seller:  newOrder.Seller(),
	})
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}
