package queries

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a product's name and cost.
type GetProductQuery struct {
	productID uint64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for the given product.
func NewGetProductQuery(productID uint64) (GetProductQuery, error) {
	if productID == 0 {
		return GetProductQuery{}, errs.NewValueIsRequiredError("productId")
	}
	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the queried product identifier.
func (q GetProductQuery) ProductID() uint64 {
	return q.productID
}

// GetProductQueryResponse carries one catalog entry.
type GetProductQueryResponse struct {
	ID   uint64
	Name string
	Cost uint64
}
