package ports

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
)

// DisputeRepository defines the persistence contract for dispute aggregates.
// Disputes are keyed by order id; at most one dispute exists per order.
type DisputeRepository interface {
	// Add persists a newly raised dispute. Fails when the order already has one.
	Add(ctx context.Context, aggregate *dispute.Dispute) error

	// Update persists changes to an existing dispute (new arguments or the
	// recorded resolution).
	Update(ctx context.Context, aggregate *dispute.Dispute) error

	// Get retrieves the dispute attached to the given order.
	Get(ctx context.Context, orderID uint64) (*dispute.Dispute, error)
}
