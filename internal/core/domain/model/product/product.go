package product

import (
	"errors"
	"fmt"
	"math"

	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a sellable catalog item. Identifiers are assigned by the storage
// layer as a monotonic sequence starting at 1; a freshly constructed Product
// carries id 0 until it is persisted.
//
// Invariants:
//   - name is never empty
//   - both name and cost are overwritten together on update
//   - products are never deleted
type Product struct {
	id   uint64
	name string
	cost uint64

	isConstructed bool
}

// NewProduct creates a catalog item awaiting persistence. The name must be
// non-empty; the cost is a unit price in the marketplace's single currency.
func NewProduct(name string, cost uint64) (*Product, error) {
	p := &Product{isConstructed: true}
	if err := p.rename(name, cost); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreProduct rehydrates a persisted catalog item, including its assigned
// identifier. Used by the persistence layer only.
func RestoreProduct(id uint64, name string, cost uint64) (*Product, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("product id")
	}
	p, err := NewProduct(name, cost)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's assigned identifier, or 0 when not yet persisted.
func (p *Product) ID() uint64 {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Cost returns the product's unit cost.
func (p *Product) Cost() uint64 {
	return p.cost
}

// Update overwrites both the name and the cost of the product.
func (p *Product) Update(name string, cost uint64) error {
	return p.rename(name, cost)
}

// Quote prices the given quantity of this product. The multiplication is
// bounds-checked: a product of cost and quantity that does not fit in a
// uint64 fails instead of silently wrapping.
func (p *Product) Quote(quantity uint64) (uint64, error) {
	if p.cost != 0 && quantity > math.MaxUint64/p.cost {
		return 0, errs.NewValueIsOutOfRangeErrorWithCause(
			"quote",
			quantity,
			uint64(0),
			uint64(math.MaxUint64),
			fmt.Errorf("%d * %d overflows uint64", p.cost, quantity),
		)
	}
	return p.cost * quantity, nil
}

func (p *Product) rename(name string, cost uint64) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	p.cost = cost
	return nil
}
