package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents the seller's acceptance of a created order.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.PrincipalID
	orderID uint64

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order.
func NewConfirmOrderCommand(caller kernel.PrincipalID, orderID uint64) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c ConfirmOrderCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// OrderID returns the target order identifier.
func (c ConfirmOrderCommand) OrderID() uint64 {
	return c.orderID
}

func (c *ConfirmOrderCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ConfirmOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}
