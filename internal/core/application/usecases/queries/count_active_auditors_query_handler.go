package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountActiveAuditorsQueryHandler counts auditors available for assignment.
type CountActiveAuditorsQueryHandler struct {
	db *gorm.DB
}

// NewCountActiveAuditorsQueryHandler creates a handler for active auditor
// counts.
func NewCountActiveAuditorsQueryHandler(db *gorm.DB) CountActiveAuditorsQueryHandler {
	return CountActiveAuditorsQueryHandler{db: db}
}

// Handle executes the query.
func (h CountActiveAuditorsQueryHandler) Handle(
	ctx context.Context,
	query CountActiveAuditorsQuery,
) (CountActiveAuditorsQueryResponse, error) {
	var response CountActiveAuditorsQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	row := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM auditors WHERE active`).Row()
	if err := row.Scan(&response.Count); err != nil {
		return CountActiveAuditorsQueryResponse{}, err
	}

	return response, nil
}
