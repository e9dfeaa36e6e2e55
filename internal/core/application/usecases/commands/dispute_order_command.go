package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrDisputeOrderCommandIsNotConstructed = errors.New(
	"DisputeOrderCommand must be created via NewDisputeOrderCommand constructor",
)

// DisputeOrderCommand represents a buyer's or seller's challenge against a
// shipped order.
//
// Example:
//
//	cmd, err := NewDisputeOrderCommand(caller, orderID, "brokenItems")
//	if err != nil {
//	    return fmt.Errorf("invalid dispute data: %w", err)
//	}
//
//	handler := NewDisputeOrderCommandHandler(uowFactory, policy, assigner)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to raise dispute: %w", err)
//	}
type DisputeOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.PrincipalID
	orderID uint64
	reason  string

	guard guard.ConstructorGuard
}

// NewDisputeOrderCommand creates a command to raise a dispute.
func NewDisputeOrderCommand(caller kernel.PrincipalID, orderID uint64, reason string) (DisputeOrderCommand, error) {
	cmd := DisputeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return DisputeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DisputeOrderCommand) Validate() error {
	return c.guard.Validate(ErrDisputeOrderCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c DisputeOrderCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// OrderID returns the target order identifier.
func (c DisputeOrderCommand) OrderID() uint64 {
	return c.orderID
}

// Reason returns the stated grounds for the dispute.
func (c DisputeOrderCommand) Reason() string {
	return c.reason
}

func (c *DisputeOrderCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DisputeOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *DisputeOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
