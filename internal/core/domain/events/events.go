// Package events defines the domain events this system emits. Events are the
// only externally observable side channel: every accepted transition appends
// one or more events to an ordered log, and delivery to subscribers (such as
// the invoicing system) is someone else's job.
package events

import (
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
)

// DomainEvent is implemented by every event type in this package.
type DomainEvent interface {
	// EventName returns the stable, wire-visible name of the event.
	EventName() string
	// AggregateID returns the id of the order the event concerns.
	AggregateID() uint64
}

// OrderCreated signals that a new order entered the ledger in Created status.
type OrderCreated struct {
	OrderID uint64             `json:"orderId"`
	Buyer   kernel.PrincipalID `json:"buyer"`
	Seller  kernel.PrincipalID `json:"seller"`
}

// EventName implements DomainEvent.
func (OrderCreated) EventName() string { return "OrderCreated" }

// AggregateID implements DomainEvent.
func (e OrderCreated) AggregateID() uint64 { return e.OrderID }

// OrderUpdated signals a status transition. Status carries the numeric
// lifecycle value (Created=0 … Cancelled=5), which is part of the contract.
type OrderUpdated struct {
	OrderID uint64       `json:"orderId"`
	Status  order.Status `json:"status"`
}

// EventName implements DomainEvent.
func (OrderUpdated) EventName() string { return "OrderUpdated" }

// AggregateID implements DomainEvent.
func (e OrderUpdated) AggregateID() uint64 { return e.OrderID }

// InvoiceSystemIsListening signals to the external billing collaborator that
// an order completed and settlement may proceed.
type InvoiceSystemIsListening struct {
	OrderID uint64 `json:"orderId"`
}

// EventName implements DomainEvent.
func (InvoiceSystemIsListening) EventName() string { return "InvoiceSystemIsListening" }

// AggregateID implements DomainEvent.
func (e InvoiceSystemIsListening) AggregateID() uint64 { return e.OrderID }

// DisputeRaised signals that an order entered arbitration, naming the two
// assigned auditors and the reason given by the raising party.
type DisputeRaised struct {
	OrderID  uint64                                   `json:"orderId"`
	Auditors [dispute.AuditorCount]kernel.PrincipalID `json:"auditors"`
	Reason   string                                   `json:"reason"`
}

// EventName implements DomainEvent.
func (DisputeRaised) EventName() string { return "DisputeRaised" }

// AggregateID implements DomainEvent.
func (e DisputeRaised) AggregateID() uint64 { return e.OrderID }

// DisputeResolved signals that an assigned auditor recorded a binding
// resolution and the order left the Disputed status.
type DisputeResolved struct {
	OrderID    uint64 `json:"orderId"`
	Resolution string `json:"resolution"`
}

// EventName implements DomainEvent.
func (DisputeResolved) EventName() string { return "DisputeResolved" }

// AggregateID implements DomainEvent.
func (e DisputeResolved) AggregateID() uint64 { return e.OrderID }
