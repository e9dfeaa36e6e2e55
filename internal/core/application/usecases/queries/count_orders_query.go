package queries

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrCountOrdersQueryIsNotConstructed = errors.New(
	"CountOrdersQuery must be created via NewCountOrdersQuery constructor",
)

// CountOrdersQuery reports how many orders were ever created.
type CountOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOrdersQuery creates an order counter query.
func NewCountOrdersQuery() CountOrdersQuery {
	return CountOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersQueryIsNotConstructed)
}

// CountOrdersQueryResponse carries the order count.
type CountOrdersQueryResponse struct {
	Count uint64
}
