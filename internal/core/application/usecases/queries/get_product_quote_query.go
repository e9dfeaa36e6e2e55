package queries

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrGetProductQuoteQueryIsNotConstructed = errors.New(
	"GetProductQuoteQuery must be created via NewGetProductQuoteQuery constructor",
)

// GetProductQuoteQuery computes the price of a quantity of one product.
type GetProductQuoteQuery struct {
	productID uint64
	quantity  uint64

	guard guard.ConstructorGuard
}

// NewGetProductQuoteQuery creates a quote query.
func NewGetProductQuoteQuery(productID, quantity uint64) (GetProductQuoteQuery, error) {
	if productID == 0 {
		return GetProductQuoteQuery{}, errs.NewValueIsRequiredError("productId")
	}
	return GetProductQuoteQuery{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQuoteQueryIsNotConstructed)
}

// ProductID returns the quoted product identifier.
func (q GetProductQuoteQuery) ProductID() uint64 {
	return q.productID
}

// Quantity returns the quoted quantity.
func (q GetProductQuoteQuery) Quantity() uint64 {
	return q.quantity
}

// GetProductQuoteQueryResponse carries the computed quote.
type GetProductQuoteQueryResponse struct {
	ProductID uint64
	Quantity  uint64
	Quote     uint64
}
