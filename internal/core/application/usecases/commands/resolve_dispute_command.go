package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand represents an assigned auditor's verdict on an open
// dispute. favorBuyer decides where the order lands: Completed when the buyer
// prevails, Cancelled otherwise.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.PrincipalID
	orderID    uint64
	resolution string
	favorBuyer bool

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to resolve a dispute.
func NewResolveDisputeCommand(
	caller kernel.PrincipalID,
	orderID uint64,
	resolution string,
	favorBuyer bool,
) (ResolveDisputeCommand, error) {
	cmd := ResolveDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setResolution(resolution),
	); err != nil {
		return ResolveDisputeCommand{}, err
	}
	cmd.favorBuyer = favorBuyer

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c ResolveDisputeCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// OrderID returns the disputed order's identifier.
func (c ResolveDisputeCommand) OrderID() uint64 {
	return c.orderID
}

// Resolution returns the verdict text.
func (c ResolveDisputeCommand) Resolution() string {
	return c.resolution
}

// FavorBuyer reports whether the verdict favors the buyer.
func (c ResolveDisputeCommand) FavorBuyer() bool {
	return c.favorBuyer
}

func (c *ResolveDisputeCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ResolveDisputeCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *ResolveDisputeCommand) setResolution(resolution string) error {
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	c.resolution = resolution
	return nil
}
