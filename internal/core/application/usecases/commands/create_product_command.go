package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to register a new product in the
// active catalog. Only admins may maintain the catalog.
//
// Example:
//
//	cmd, err := NewCreateProductCommand(caller, "industrial valve", 250)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory, policy)
//	productID, err := handler.Handle(ctx, cmd)
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	caller kernel.PrincipalID
	name   string
	cost   uint64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Validates that the caller is a constructed principal and the name is not
// empty. A zero cost is allowed: free items are priced, just at zero.
func NewCreateProductCommand(caller kernel.PrincipalID, name string, cost uint64) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setName(name),
		cmd.setCost(cost),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c CreateProductCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Cost returns the per-unit cost.
func (c CreateProductCommand) Cost() uint64 {
	return c.cost
}

func (c *CreateProductCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setCost(cost uint64) error {
	c.cost = cost
	return nil
}
