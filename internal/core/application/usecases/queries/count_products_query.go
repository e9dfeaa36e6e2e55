package queries

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrCountProductsQueryIsNotConstructed = errors.New(
	"CountProductsQuery must be created via NewCountProductsQuery constructor",
)

// CountProductsQuery reports how many products were ever registered. Nothing
// is deleted, so the count doubles as the high-water mark of assigned ids.
type CountProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewCountProductsQuery creates a product counter query.
func NewCountProductsQuery() CountProductsQuery {
	return CountProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountProductsQuery) Validate() error {
	return q.guard.Validate(ErrCountProductsQueryIsNotConstructed)
}

// CountProductsQueryResponse carries the product count.
type CountProductsQueryResponse struct {
	Count uint64
}
