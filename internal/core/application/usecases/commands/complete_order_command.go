package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the buyer's acknowledgement that the goods
// of a shipped order arrived as agreed.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.PrincipalID
	orderID uint64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
func NewCompleteOrderCommand(caller kernel.PrincipalID, orderID uint64) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c CompleteOrderCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// OrderID returns the target order identifier.
func (c CompleteOrderCommand) OrderID() uint64 {
	return c.orderID
}

func (c *CompleteOrderCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CompleteOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}
