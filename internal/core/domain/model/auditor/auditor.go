package auditor

import (
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// ErrAuditorIsNotConstructed is returned when an Auditor instance was not
// created through NewAuditor or RestoreAuditor.
var ErrAuditorIsNotConstructed = errors.New("Auditor must be created via NewAuditor or RestoreAuditor")

// Auditor is a principal eligible for dispute assignment. Records are never
// removed; deactivation only clears the active flag so historical assignments
// remain attributable.
//
// registrationSeq is assigned by the storage layer in registration order and
// assignments counts how many disputes the auditor has been assigned to.
// Together they make auditor selection a pure function of pool state.
type Auditor struct {
	principal       kernel.PrincipalID
	active          bool
	registrationSeq uint64
	assignments     uint64

	isConstructed bool
}

// NewAuditor registers a principal as an active auditor awaiting persistence
// (registration sequence 0 until stored).
func NewAuditor(principal kernel.PrincipalID) (*Auditor, error) {
	if err := principal.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("principal", err)
	}
	return &Auditor{
		principal:     principal,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreAuditor rehydrates a persisted auditor record. Used by the
// persistence layer only.
func RestoreAuditor(principal kernel.PrincipalID, active bool, registrationSeq, assignments uint64) (*Auditor, error) {
	if registrationSeq == 0 {
		return nil, errs.NewValueIsRequiredError("registration sequence")
	}
	a, err := NewAuditor(principal)
	if err != nil {
		return nil, err
	}
	a.active = active
	a.registrationSeq = registrationSeq
	a.assignments = assignments
	return a, nil
}

// Validate ensures the Auditor was created through a constructor.
func (a *Auditor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAuditorIsNotConstructed
	}
	return nil
}

// Principal returns the auditor's identity.
func (a *Auditor) Principal() kernel.PrincipalID {
	return a.principal
}

// IsActive reports whether the auditor is eligible for new assignments.
func (a *Auditor) IsActive() bool {
	return a.active
}

// RegistrationSeq returns the storage-assigned registration order, or 0 when
// not yet persisted.
func (a *Auditor) RegistrationSeq() uint64 {
	return a.registrationSeq
}

// Assignments returns how many disputes this auditor has been assigned to.
func (a *Auditor) Assignments() uint64 {
	return a.assignments
}

// Activate marks the auditor eligible for assignment again. Registering an
// already-known principal reactivates the existing record instead of
// inserting a second one.
func (a *Auditor) Activate() {
	a.active = true
}

// Deactivate removes the auditor from the assignable pool without deleting
// the record.
func (a *Auditor) Deactivate() {
	a.active = false
}

// RecordAssignment bumps the assignment counter after the auditor was
// selected for a dispute. Only active auditors may be assigned.
func (a *Auditor) RecordAssignment() error {
	if !a.active {
		return errs.NewInvalidStateError("assign dispute", "inactive auditor")
	}
	a.assignments++
	return nil
}
