package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountProductsQueryHandler counts registered products across all catalog
// generations.
type CountProductsQueryHandler struct {
	db *gorm.DB
}

// NewCountProductsQueryHandler creates a handler for product counts.
func NewCountProductsQueryHandler(db *gorm.DB) CountProductsQueryHandler {
	return CountProductsQueryHandler{db: db}
}

// Handle executes the query.
func (h CountProductsQueryHandler) Handle(
	ctx context.Context,
	query CountProductsQuery,
) (CountProductsQueryResponse, error) {
	var response CountProductsQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	row := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM products`).Row()
	if err := row.Scan(&response.Count); err != nil {
		return CountProductsQueryResponse{}, err
	}

	return response, nil
}
