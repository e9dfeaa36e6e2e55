package queries

import (
	"context"
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler reads a single catalog entry.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for product lookups.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query. Fails with ObjectNotFoundError when the product
// does not exist.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	var response GetProductQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cost
		FROM products
		WHERE id = ?
	`, query.ProductID()).Row()
	if err := row.Scan(&response.ID, &response.Name, &response.Cost); err != nil {
		return GetProductQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("productId", fmt.Sprint(query.ProductID()), err)
	}

	return response, nil
}
