package queries

import (
	"context"
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/product"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQuoteQueryHandler prices a quantity of one product. The
// multiplication goes through the product aggregate so the overflow guard
// applies to quotes exactly as it does to orders.
type GetProductQuoteQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQuoteQueryHandler creates a handler for quote queries.
func NewGetProductQuoteQueryHandler(db *gorm.DB) GetProductQuoteQueryHandler {
	return GetProductQuoteQueryHandler{db: db}
}

// Handle executes the query. Fails with ObjectNotFoundError for unknown
// products and ValueIsOutOfRangeError when cost*quantity would overflow.
func (h GetProductQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuoteQuery,
) (GetProductQuoteQueryResponse, error) {
	var response GetProductQuoteQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	var (
		id   uint64
		name string
		cost uint64
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cost
		FROM products
		WHERE id = ?
	`, query.ProductID()).Row()
	if err := row.Scan(&id, &name, &cost); err != nil {
		return GetProductQuoteQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("productId", fmt.Sprint(query.ProductID()), err)
	}

	quoted, err := product.RestoreProduct(id, name, cost)
	if err != nil {
		return GetProductQuoteQueryResponse{}, err
	}

	quote, err := quoted.Quote(query.Quantity())
	if err != nil {
		return GetProductQuoteQueryResponse{}, err
	}

	response.ProductID = query.ProductID()
	response.Quantity = query.Quantity()
	response.Quote = quote
	return response, nil
}
