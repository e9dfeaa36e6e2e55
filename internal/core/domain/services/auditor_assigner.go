package services

import (
	"sort"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/auditor"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// AuditorAssigner is a domain service that selects the auditors for a new
// dispute. Selection is a pure function of the pool's current state: active
// auditors are ordered by ascending assignment count, ties broken by
// registration order, and the first two are taken. The chosen auditors'
// assignment counters are bumped, which rotates future selections across the
// pool while keeping every assignment reproducible for a given pool state.
type AuditorAssigner struct{}

// NewAuditorAssigner creates an AuditorAssigner.
func NewAuditorAssigner() AuditorAssigner {
	return AuditorAssigner{}
}

// Assign picks the two auditors for a dispute from the given pool and records
// the assignment on the chosen records. The caller persists the mutated
// auditors in the same transaction as the dispute so counts and assignments
// never drift apart.
//
// Fails with InsufficientAuditorsError when fewer than two auditors in the
// pool are active.
func (AuditorAssigner) Assign(pool []*auditor.Auditor) ([dispute.AuditorCount]kernel.PrincipalID, error) {
	var selected [dispute.AuditorCount]kernel.PrincipalID

	active := make([]*auditor.Auditor, 0, len(pool))
	for _, a := range pool {
		if a != nil && a.IsActive() {
			active = append(active, a)
		}
	}

	if len(active) < dispute.AuditorCount {
		return selected, errs.NewInsufficientAuditorsError(len(active), dispute.AuditorCount)
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Assignments() != active[j].Assignments() {
			return active[i].Assignments() < active[j].Assignments()
		}
		return active[i].RegistrationSeq() < active[j].RegistrationSeq()
	})

	for i := 0; i < dispute.AuditorCount; i++ {
		if err := active[i].RecordAssignment(); err != nil {
			return [dispute.AuditorCount]kernel.PrincipalID{}, err
		}
		selected[i] = active[i].Principal()
	}

	return selected, nil
}
