package ports

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/auditor"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
)

// AuditorRepository defines the persistence contract for the auditor pool.
// Records are inserted once per principal and never deleted.
type AuditorRepository interface {
	// Add persists a new auditor record and returns its registration
	// sequence (a monotonic sequence starting at 1).
	Add(ctx context.Context, aggregate *auditor.Auditor) (uint64, error)

	// Update persists changes to an existing record (active flag or
	// assignment count).
	Update(ctx context.Context, aggregate *auditor.Auditor) error

	// GetByPrincipal retrieves the record for the given principal.
	GetByPrincipal(ctx context.Context, principal kernel.PrincipalID) (*auditor.Auditor, error)

	// GetAll retrieves the whole pool in registration order, active and
	// inactive records alike.
	GetAll(ctx context.Context) ([]*auditor.Auditor, error)
}
