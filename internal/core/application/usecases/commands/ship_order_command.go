package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents the seller's declaration that the goods of a
// confirmed order went out the door.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.PrincipalID
	orderID uint64

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to mark an order shipped.
func NewShipOrderCommand(caller kernel.PrincipalID, orderID uint64) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c ShipOrderCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// OrderID returns the target order identifier.
func (c ShipOrderCommand) OrderID() uint64 {
	return c.orderID
}

func (c *ShipOrderCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ShipOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}
