package order

import (
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// LineItem is one position of an order: a catalog product id and the
// requested quantity. LineItem is a value object; the owning Order replaces
// it wholesale when a quantity changes.
type LineItem struct {
	productID uint64
	quantity  uint64
}

// NewLineItem creates a line item. The product id must be a plausible catalog
// identifier (ids start at 1); whether it actually resolves in the catalog is
// checked by the order creation use case, not here.
func NewLineItem(productID, quantity uint64) (LineItem, error) {
	if productID == 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("%d is not a valid product id", productID),
		)
	}
	return LineItem{productID: productID, quantity: quantity}, nil
}

// ProductID returns the referenced catalog product id.
func (li LineItem) ProductID() uint64 {
	return li.productID
}

// Quantity returns the requested quantity.
func (li LineItem) Quantity() uint64 {
	return li.quantity
}

func (li LineItem) withQuantity(quantity uint64) LineItem {
	return LineItem{productID: li.productID, quantity: quantity}
}
