package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrAddAuditorCommandIsNotConstructed = errors.New(
	"AddAuditorCommand must be created via NewAddAuditorCommand constructor",
)

// AddAuditorCommand represents a request to enroll a principal into the
// auditor pool, or to reactivate them if they were enrolled before.
type AddAuditorCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.PrincipalID
	principal kernel.PrincipalID

	guard guard.ConstructorGuard
}

// NewAddAuditorCommand creates a command to enroll an auditor.
func NewAddAuditorCommand(caller, principal kernel.PrincipalID) (AddAuditorCommand, error) {
	cmd := AddAuditorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setPrincipal(principal),
	); err != nil {
		return AddAuditorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAuditorCommand) Validate() error {
	return c.guard.Validate(ErrAddAuditorCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c AddAuditorCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// Principal returns the principal to enroll as an auditor.
func (c AddAuditorCommand) Principal() kernel.PrincipalID {
	return c.principal
}

func (c *AddAuditorCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AddAuditorCommand) setPrincipal(principal kernel.PrincipalID) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
