package commands

import (
	"context"
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// ResolveDisputeCommandHandler closes a dispute with an auditor's verdict.
// The first qualifying resolution is final: the dispute records the verdict,
// the order leaves Disputed for Completed or Cancelled, and DisputeResolved
// is appended to the log, all in one transaction.
type ResolveDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	policy     services.AccessPolicy
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
func NewResolveDisputeCommandHandler(
	uowFactory DisputeUoWFactory,
	policy services.AccessPolicy,
) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the resolution command.
func (h *ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// An order without a dispute has no assigned auditors, so the caller
	// cannot hold the required relationship. Reported as an authorization
	// failure, not a lookup failure.
	disputeRepo := uow.DisputeRepository()
	openDispute, err := disputeRepo.Get(ctx, existing.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewAuthorizationError("assigned auditor", cmd.Caller().String())
		}
		return err
	}

	if err = h.policy.RequireAssignedAuditor(cmd.Caller(), openDispute); err != nil {
		return err
	}

	if err = openDispute.Resolve(cmd.Resolution()); err != nil {
		return err
	}

	if err = existing.Close(cmd.FavorBuyer()); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, openDispute); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	err = uow.EventPublisher().Publish(ctx, events.DisputeResolved{
		OrderID:    existing.ID(),
		Resolution: cmd.Resolution(),
	})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
