package queries

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrRetrieveArgumentsQueryIsNotConstructed = errors.New(
	"RetrieveArgumentsQuery must be created via NewRetrieveArgumentsQuery constructor",
)

// RetrieveArgumentsQuery retrieves the argument log of an order's dispute.
// Unlike the other reads this one carries the caller: argument logs are only
// visible to the dispute's assigned auditors and to admins.
type RetrieveArgumentsQuery struct {
	caller  kernel.PrincipalID
	orderID uint64

	guard guard.ConstructorGuard
}

// NewRetrieveArgumentsQuery creates a query for the given order's dispute
// arguments.
func NewRetrieveArgumentsQuery(caller kernel.PrincipalID, orderID uint64) (RetrieveArgumentsQuery, error) {
	if err := caller.Validate(); err != nil {
		return RetrieveArgumentsQuery{}, err
	}
	if orderID == 0 {
		return RetrieveArgumentsQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return RetrieveArgumentsQuery{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RetrieveArgumentsQuery) Validate() error {
	return q.guard.Validate(ErrRetrieveArgumentsQueryIsNotConstructed)
}

// Caller returns the principal issuing the query.
func (q RetrieveArgumentsQuery) Caller() kernel.PrincipalID {
	return q.caller
}

// OrderID returns the disputed order's identifier.
func (q RetrieveArgumentsQuery) OrderID() uint64 {
	return q.orderID
}

// RetrieveArgumentsQueryResponse is the dispute's argument log in submission
// order.
type RetrieveArgumentsQueryResponse struct {
	OrderID   uint64
	Arguments []ArgumentResponse
}

// ArgumentResponse is one entry of the argument log.
type ArgumentResponse struct {
	Author kernel.PrincipalID
	Text   string
}
