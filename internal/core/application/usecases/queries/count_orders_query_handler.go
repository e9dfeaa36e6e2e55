package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOrdersQueryHandler counts created orders regardless of status.
type CountOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersQueryHandler creates a handler for order counts.
func NewCountOrdersQueryHandler(db *gorm.DB) CountOrdersQueryHandler {
	return CountOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h CountOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersQuery,
) (CountOrdersQueryResponse, error) {
	var response CountOrdersQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	row := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders`).Row()
	if err := row.Scan(&response.Count); err != nil {
		return CountOrdersQueryResponse{}, err
	}

	return response, nil
}
