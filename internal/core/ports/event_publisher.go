package ports

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
)

// EventPublisher appends domain events to the ordered event log. When bound
// to a unit of work the append commits atomically with the state change that
// produced the events, so subscribers never observe an event for a transition
// that was rolled back.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
