package queries

import (
	"context"
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads an order's items and status from the
// database. The read is open to any caller; it reveals no more than the
// parties already negotiated.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the query. Fails with ObjectNotFoundError when the order
// does not exist.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	var response GetOrderStatusQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	var status int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()
	if err := row.Scan(&status); err != nil {
		return response, errs.NewObjectNotFoundErrorWithCause("orderId", fmt.Sprint(query.OrderID()), err)
	}

	response.OrderID = query.OrderID()
	response.Status = order.Status(status)
	response.Items = make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return GetOrderStatusQueryResponse{}, err
		}
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return response, nil
}
