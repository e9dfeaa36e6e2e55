package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrUpdateCatalogReferenceCommandIsNotConstructed = errors.New(
	"UpdateCatalogReferenceCommand must be created via NewUpdateCatalogReferenceCommand constructor",
)

// UpdateCatalogReferenceCommand represents a request to point the system at a
// different catalog generation. Existing orders keep the line items they were
// created with; only the validation of new orders follows the new reference.
type UpdateCatalogReferenceCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.PrincipalID
	catalogID uint64

	guard guard.ConstructorGuard
}

// NewUpdateCatalogReferenceCommand creates a command to rebind the active
// catalog reference.
func NewUpdateCatalogReferenceCommand(
	caller kernel.PrincipalID,
	catalogID uint64,
) (UpdateCatalogReferenceCommand, error) {
	cmd := UpdateCatalogReferenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setCatalogID(catalogID),
	); err != nil {
		return UpdateCatalogReferenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCatalogReferenceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCatalogReferenceCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c UpdateCatalogReferenceCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// CatalogID returns the catalog generation to activate.
func (c UpdateCatalogReferenceCommand) CatalogID() uint64 {
	return c.catalogID
}

func (c *UpdateCatalogReferenceCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateCatalogReferenceCommand) setCatalogID(catalogID uint64) error {
	if catalogID == 0 {
		return errs.NewValueIsRequiredError("catalogId")
	}

	c.catalogID = catalogID
	return nil
}
