package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RetrieveArgumentsQueryHandler reads a dispute's argument log. The caller's
// standing is checked against the dispute's auditor list before any argument
// is returned; a caller without standing learns nothing, not even whether a
// dispute exists.
type RetrieveArgumentsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewRetrieveArgumentsQueryHandler creates a handler for argument log
// queries.
func NewRetrieveArgumentsQueryHandler(db *gorm.DB, policy services.AccessPolicy) RetrieveArgumentsQueryHandler {
	return RetrieveArgumentsQueryHandler{db: db, policy: policy}
}

// Handle executes the query.
func (h RetrieveArgumentsQueryHandler) Handle(
	ctx context.Context,
	query RetrieveArgumentsQuery,
) (RetrieveArgumentsQueryResponse, error) {
	var response RetrieveArgumentsQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	var auditors pq.StringArray
	row := h.db.WithContext(ctx).Raw(`
		SELECT auditors
		FROM disputes
		WHERE order_id = ?
	`, query.OrderID()).Row()
	err := row.Scan(&auditors)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Only admins learn the dispute is missing.
		if h.policy.IsAdmin(query.Caller()) {
			return response, errs.NewObjectNotFoundError("orderId", fmt.Sprint(query.OrderID()))
		}
		return response, errs.NewAuthorizationError("assigned auditor or admin", query.Caller().String())
	case err != nil:
		return response, err
	}

	if !h.isAssignedAuditor(query.Caller(), auditors) && !h.policy.IsAdmin(query.Caller()) {
		return response, errs.NewAuthorizationError("assigned auditor or admin", query.Caller().String())
	}

	response.OrderID = query.OrderID()
	response.Arguments = make([]ArgumentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			author,
			text
		FROM dispute_arguments
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		return RetrieveArgumentsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var rawAuthor string
		var text string
		if err = rows.Scan(&rawAuthor, &text); err != nil {
			return RetrieveArgumentsQueryResponse{}, err
		}

		author, authorErr := kernel.PrincipalIDFromString(rawAuthor)
		if authorErr != nil {
			return RetrieveArgumentsQueryResponse{}, authorErr
		}
		response.Arguments = append(response.Arguments, ArgumentResponse{Author: author, Text: text})
	}

	if err = rows.Err(); err != nil {
		return RetrieveArgumentsQueryResponse{}, err
	}

	return response, nil
}

func (h RetrieveArgumentsQueryHandler) isAssignedAuditor(caller kernel.PrincipalID, auditors pq.StringArray) bool {
	for _, raw := range auditors {
		if raw == caller.String() {
			return true
		}
	}
	return false
}
