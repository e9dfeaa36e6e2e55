package ports

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It is a pure storage primitive: it knows nothing about who may invoke a
// mutation, that is the application layer's concern.
type OrderRepository interface {
	// Add persists a new order aggregate and returns the assigned order id
	// (a monotonic sequence starting at 1).
	Add(ctx context.Context, aggregate *order.Order) (uint64, error)

	// Update persists changes to an existing order aggregate, including its
	// line items and status.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id uint64) (*order.Order, error)
}
