package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrUpdateOrderQuantityCommandIsNotConstructed = errors.New(
	"UpdateOrderQuantityCommand must be created via NewUpdateOrderQuantityCommand constructor",
)

// UpdateOrderQuantityCommand represents a buyer's request to change the
// quantity of one line item before the seller confirms the order.
type UpdateOrderQuantityCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.PrincipalID
	orderID   uint64
	productID uint64
	quantity  uint64

	guard guard.ConstructorGuard
}

// NewUpdateOrderQuantityCommand creates a command to change a line item
// quantity.
func NewUpdateOrderQuantityCommand(
	caller kernel.PrincipalID,
	orderID uint64,
	productID uint64,
	quantity uint64,
) (UpdateOrderQuantityCommand, error) {
	cmd := UpdateOrderQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return UpdateOrderQuantityCommand{}, err
	}
	cmd.quantity = quantity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderQuantityCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c UpdateOrderQuantityCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// OrderID returns the target order identifier.
func (c UpdateOrderQuantityCommand) OrderID() uint64 {
	return c.orderID
}

// ProductID returns the product whose line item is changed.
func (c UpdateOrderQuantityCommand) ProductID() uint64 {
	return c.productID
}

// Quantity returns the new quantity.
func (c UpdateOrderQuantityCommand) Quantity() uint64 {
	return c.quantity
}

func (c *UpdateOrderQuantityCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateOrderQuantityCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderQuantityCommand) setProductID(productID uint64) error {
	if productID == 0 {
		return errs.NewValueIsRequiredError("productId")
	}

	c.productID = productID
	return nil
}
