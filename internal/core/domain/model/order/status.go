package order

import (
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The numeric values are
// wire-visible (they appear in OrderUpdated events and in the read API), so
// the ordering below is part of the external contract and must not change.
//
// State transitions:
//
//	Created ──> Confirmed ──> Shipped ──> Completed
//	                             │
//	                             └──> Disputed ──┬──> Completed
//	                                             └──> Cancelled
//
// Completed and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// Created is the initial status of a freshly placed order.
	// Line item quantities may only be changed in this status.
	Created Status = iota

	// Confirmed means the seller has accepted the order as placed.
	Confirmed

	// Shipped means the seller has handed the goods over for delivery.
	Shipped

	// Completed means the buyer acknowledged receipt, or an auditor resolved
	// a dispute in the buyer's favor. Terminal.
	Completed

	// Disputed means the buyer or seller escalated a shipped order to
	// arbitration. Left only through dispute resolution.
	Disputed

	// Cancelled means an auditor resolved a dispute against the buyer. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Created:   "Created",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Completed: "Completed",
		Disputed:  "Disputed",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status holds one of the defined lifecycle values.
// Used when reconstructing orders from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// values outside the defined range. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Confirm transitions Created to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidStateError("confirm order", s)
	}
	return Confirmed, nil
}

// Ship transitions Confirmed to Shipped.
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateError("ship order", s)
	}
	return Shipped, nil
}

// Complete transitions Shipped to Completed on the happy path.
func (s Status) Complete() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidStateError("complete order", s)
	}
	return Completed, nil
}

// Dispute transitions Shipped to Disputed.
func (s Status) Dispute() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidStateError("dispute order", s)
	}
	return Disputed, nil
}

// Close leaves Disputed through arbitration: Completed when the ruling favors
// the buyer, Cancelled otherwise.
func (s Status) Close(favorBuyer bool) (Status, error) {
	if s != Disputed {
		return 0, errs.NewInvalidStateError("close dispute", s)
	}
	if favorBuyer {
		return Completed, nil
	}
	return Cancelled, nil
}
