package commands

import (
	"context"
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/auditor"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// AddAuditorCommandHandler enrolls auditors into the arbitration pool.
// Enrolling a principal that is already in the pool reactivates the existing
// record instead of creating a duplicate, so registration order and
// assignment history survive deactivation cycles.
type AddAuditorCommandHandler struct {
	uowFactory AuditorUoWFactory
	policy     services.AccessPolicy
}

// NewAddAuditorCommandHandler creates a handler for auditor enrollment.
func NewAddAuditorCommandHandler(
	uowFactory AuditorUoWFactory,
	policy services.AccessPolicy,
) AddAuditorCommandHandler {
	return AddAuditorCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the auditor enrollment command.
func (h *AddAuditorCommandHandler) Handle(ctx context.Context, cmd AddAuditorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.RequireAdmin(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	auditorRepo := uow.AuditorRepository()
	existing, err := auditorRepo.GetByPrincipal(ctx, cmd.Principal())
	switch {
	case err == nil:
		existing.Activate()
		if err = auditorRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		newAuditor, newErr := auditor.NewAuditor(cmd.Principal())
		if newErr != nil {
			return newErr
		}
		if _, newErr = auditorRepo.Add(ctx, newAuditor); newErr != nil {
			return newErr
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
