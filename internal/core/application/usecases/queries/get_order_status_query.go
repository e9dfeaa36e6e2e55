// Package queries contains the read side: thin handlers that go straight to
// the database with raw SQL and map rows into response structs, bypassing the
// aggregates entirely.
package queries

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves an order's line items and current status.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderStatusQueryHandler(db)
//	status, err := handler.Handle(ctx, query)
type GetOrderStatusQuery struct {
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for the given order.
func NewGetOrderStatusQuery(orderID uint64) (GetOrderStatusQuery, error) {
	if orderID == 0 {
		return GetOrderStatusQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the queried order identifier.
func (q GetOrderStatusQuery) OrderID() uint64 {
	return q.orderID
}

// GetOrderStatusQueryResponse carries the order's line items in insertion
// order and its lifecycle status.
type GetOrderStatusQueryResponse struct {
	OrderID uint64
	Items   []OrderItemResponse
	Status  order.Status
}

// OrderItemResponse is one line item of the queried order.
type OrderItemResponse struct {
	ProductID uint64
	Quantity  uint64
}
