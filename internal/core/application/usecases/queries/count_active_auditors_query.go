package queries

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrCountActiveAuditorsQueryIsNotConstructed = errors.New(
	"CountActiveAuditorsQuery must be created via NewCountActiveAuditorsQuery constructor",
)

// CountActiveAuditorsQuery reports how many auditors are currently available
// for dispute assignment. Deactivated records stay in the pool but are not
// counted.
type CountActiveAuditorsQuery struct {
	guard guard.ConstructorGuard
}

// NewCountActiveAuditorsQuery creates an auditor counter query.
func NewCountActiveAuditorsQuery() CountActiveAuditorsQuery {
	return CountActiveAuditorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountActiveAuditorsQuery) Validate() error {
	return q.guard.Validate(ErrCountActiveAuditorsQueryIsNotConstructed)
}

// CountActiveAuditorsQueryResponse carries the active auditor count.
type CountActiveAuditorsQueryResponse struct {
	Count uint64
}
