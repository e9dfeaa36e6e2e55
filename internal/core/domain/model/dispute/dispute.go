package dispute

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// AuditorCount is the number of auditors assigned to every dispute.
const AuditorCount = 2

// ErrDisputeIsNotConstructed is returned when a Dispute instance was not
// created through NewDispute or RestoreDispute.
var ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute or RestoreDispute")

// Argument is one entry of a dispute's argument log: who said it and what
// they said. Arguments are append-only and keep insertion order.
type Argument struct {
	author kernel.PrincipalID
	text   string
}

// NewArgument creates an argument entry.
func NewArgument(author kernel.PrincipalID, text string) (Argument, error) {
	if err := author.Validate(); err != nil {
		return Argument{}, errs.NewValueIsInvalidErrorWithCause("author", err)
	}
	if text == "" {
		return Argument{}, errs.NewValueIsRequiredError("argument text")
	}
	return Argument{author: author, text: text}, nil
}

// Author returns the principal who submitted the argument.
func (a Argument) Author() kernel.PrincipalID {
	return a.author
}

// Text returns the argument body.
func (a Argument) Text() string {
	return a.text
}

// Dispute is the arbitration case attached to exactly one order. It is
// created when an order enters the Disputed status and ends when an assigned
// auditor records a resolution. One dispute per order, keyed by order id.
//
// Invariants:
//   - exactly two distinct auditors are assigned for the dispute's lifetime
//   - the argument log is append-only
//   - a dispute is resolved at most once
type Dispute struct {
	orderID    uint64
	raisedBy   kernel.PrincipalID
	reason     string
	auditors   [AuditorCount]kernel.PrincipalID
	arguments  []Argument
	resolution string
	resolved   bool

	isConstructed bool
}

// NewDispute opens an arbitration case for the given order with the two
// assigned auditors. The auditors must be distinct.
func NewDispute(
	orderID uint64,
	raisedBy kernel.PrincipalID,
	reason string,
	auditors [AuditorCount]kernel.PrincipalID,
) (*Dispute, error) {
	d := &Dispute{isConstructed: true}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.setRaisedBy(raisedBy),
		d.setReason(reason),
		d.setAuditors(auditors),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDispute rehydrates a persisted dispute including its argument log
// and resolution state. Used by the persistence layer only.
func RestoreDispute(
	orderID uint64,
	raisedBy kernel.PrincipalID,
	reason string,
	auditors [AuditorCount]kernel.PrincipalID,
	arguments []Argument,
	resolution string,
	resolved bool,
) (*Dispute, error) {
	d, err := NewDispute(orderID, raisedBy, reason, auditors)
	if err != nil {
		return nil, err
	}
	d.arguments = make([]Argument, len(arguments))
	copy(d.arguments, arguments)
	d.resolution = resolution
	d.resolved = resolved
	return d, nil
}

// Validate ensures the Dispute was created through a constructor.
func (d *Dispute) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDisputeIsNotConstructed
	}
	return nil
}

// OrderID returns the id of the disputed order.
func (d *Dispute) OrderID() uint64 {
	return d.orderID
}

// RaisedBy returns the party who escalated the order.
func (d *Dispute) RaisedBy() kernel.PrincipalID {
	return d.raisedBy
}

// Reason returns the reason given when the dispute was raised.
func (d *Dispute) Reason() string {
	return d.reason
}

// Auditors returns the two assigned auditors in assignment order.
func (d *Dispute) Auditors() [AuditorCount]kernel.PrincipalID {
	return d.auditors
}

// Arguments returns a copy of the argument log in insertion order.
func (d *Dispute) Arguments() []Argument {
	args := make([]Argument, len(d.arguments))
	copy(args, d.arguments)
	return args
}

// Resolution returns the recorded resolution text, empty until resolved.
func (d *Dispute) Resolution() string {
	return d.resolution
}

// IsResolved reports whether an auditor has finalized the dispute.
func (d *Dispute) IsResolved() bool {
	return d.resolved
}

// IsAssignedAuditor reports whether the given principal is one of the two
// auditors assigned to this dispute.
func (d *Dispute) IsAssignedAuditor(p kernel.PrincipalID) bool {
	for _, a := range d.auditors {
		if a.IsEqual(p) {
			return true
		}
	}
	return false
}

// SubmitArgument appends an argument to the log. Both parties may submit any
// number of times while the dispute is open.
func (d *Dispute) SubmitArgument(author kernel.PrincipalID, text string) error {
	if d.resolved {
		return errs.NewInvalidStateError("submit argument", "resolved dispute")
	}
	arg, err := NewArgument(author, text)
	if err != nil {
		return err
	}
	d.arguments = append(d.arguments, arg)
	return nil
}

// Resolve records the resolution and closes the dispute. The first qualifying
// call is final: resolving an already-resolved dispute fails.
func (d *Dispute) Resolve(resolution string) error {
	if d.resolved {
		return errs.NewInvalidStateError("resolve dispute", "resolved dispute")
	}
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}
	d.resolution = resolution
	d.resolved = true
	return nil
}

func (d *Dispute) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	d.orderID = orderID
	return nil
}

func (d *Dispute) setRaisedBy(raisedBy kernel.PrincipalID) error {
	if err := raisedBy.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("raisedBy", err)
	}
	d.raisedBy = raisedBy
	return nil
}

func (d *Dispute) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	d.reason = reason
	return nil
}

func (d *Dispute) setAuditors(auditors [AuditorCount]kernel.PrincipalID) error {
	for _, a := range auditors {
		if err := a.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("auditors", err)
		}
	}
	if auditors[0].IsEqual(auditors[1]) {
		return errs.NewValueIsInvalidError("auditors must be distinct")
	}
	d.auditors = auditors
	return nil
}
