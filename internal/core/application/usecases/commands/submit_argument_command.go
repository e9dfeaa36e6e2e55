package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrSubmitArgumentCommandIsNotConstructed = errors.New(
	"SubmitArgumentCommand must be created via NewSubmitArgumentCommand constructor",
)

// SubmitArgumentCommand represents a party's written statement on an open
// dispute.
type SubmitArgumentCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.PrincipalID
	orderID uint64
	text    string

	guard guard.ConstructorGuard
}

// NewSubmitArgumentCommand creates a command to file a dispute argument.
func NewSubmitArgumentCommand(caller kernel.PrincipalID, orderID uint64, text string) (SubmitArgumentCommand, error) {
	cmd := SubmitArgumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setText(text),
	); err != nil {
		return SubmitArgumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitArgumentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitArgumentCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c SubmitArgumentCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// OrderID returns the disputed order's identifier.
func (c SubmitArgumentCommand) OrderID() uint64 {
	return c.orderID
}

// Text returns the argument text.
func (c SubmitArgumentCommand) Text() string {
	return c.text
}

func (c *SubmitArgumentCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SubmitArgumentCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitArgumentCommand) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}

	c.text = text
	return nil
}
