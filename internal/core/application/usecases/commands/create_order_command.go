package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a trade order between a
// buyer and a seller. The declared item count must match the submitted line
// items; the mismatch check guards against truncated submissions.
//
// Example:
//
//	items, _ := order.NewLineItem(1, 2)
//	cmd, err := NewCreateOrderCommand(caller, buyer, seller, []order.LineItem{items}, 1, "standard")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller            kernel.PrincipalID
	buyer             kernel.PrincipalID
	seller            kernel.PrincipalID
	items             []order.LineItem
	declaredItemCount uint64
	deliveryTerms     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order. Party and item
// consistency is validated again by the order aggregate; the command only
// rejects input it can see is unusable without loading any state.
func NewCreateOrderCommand(
	caller kernel.PrincipalID,
	buyer kernel.PrincipalID,
	seller kernel.PrincipalID,
	items []order.LineItem,
	declaredItemCount uint64,
	deliveryTerms string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setParties(buyer, seller),
		cmd.setItems(items, declaredItemCount),
		cmd.setDeliveryTerms(deliveryTerms),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c CreateOrderCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// Buyer returns the buying principal.
func (c CreateOrderCommand) Buyer() kernel.PrincipalID {
	return c.buyer
}

// Seller returns the selling principal.
func (c CreateOrderCommand) Seller() kernel.PrincipalID {
	return c.seller
}

// Items returns the submitted line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// DeclaredItemCount returns the item count the caller declared.
func (c CreateOrderCommand) DeclaredItemCount() uint64 {
	return c.declaredItemCount
}

// DeliveryTerms returns the agreed delivery terms.
func (c CreateOrderCommand) DeliveryTerms() string {
	return c.deliveryTerms
}

func (c *CreateOrderCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateOrderCommand) setParties(buyer, seller kernel.PrincipalID) error {
	if err := buyer.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("buyer", err)
	}
	if err := seller.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("seller", err)
	}

	c.buyer = buyer
	c.seller = seller
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem, declaredItemCount uint64) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	c.declaredItemCount = declaredItemCount
	return nil
}

func (c *CreateOrderCommand) setDeliveryTerms(deliveryTerms string) error {
	if deliveryTerms == "" {
		return errs.NewValueIsRequiredError("deliveryTerms")
	}

	c.deliveryTerms = deliveryTerms
	return nil
}
