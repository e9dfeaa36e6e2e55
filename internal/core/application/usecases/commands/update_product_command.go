package commands

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to overwrite the name and cost of
// an existing product. Only admins may maintain the catalog.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.PrincipalID
	productID uint64
	name      string
	cost      uint64

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update an existing product.
func NewUpdateProductCommand(
	caller kernel.PrincipalID,
	productID uint64,
	name string,
	cost uint64,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setProductID(productID),
		cmd.setName(name),
	); err != nil {
		return UpdateProductCommand{}, err
	}
	cmd.cost = cost

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// Caller returns the principal issuing the command.
func (c UpdateProductCommand) Caller() kernel.PrincipalID {
	return c.caller
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() uint64 {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Cost returns the new per-unit cost.
func (c UpdateProductCommand) Cost() uint64 {
	return c.cost
}

func (c *UpdateProductCommand) setCaller(caller kernel.PrincipalID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateProductCommand) setProductID(productID uint64) error {
	if productID == 0 {
		return errs.NewValueIsRequiredError("productId")
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
