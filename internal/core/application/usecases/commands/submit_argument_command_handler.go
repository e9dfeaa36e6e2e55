package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
)

// SubmitArgumentCommandHandler appends a party's argument to the order's
// dispute. Both parties may file any number of arguments until the dispute is
// resolved.
type SubmitArgumentCommandHandler struct {
	uowFactory DisputeUoWFactory
	policy     services.AccessPolicy
}

// NewSubmitArgumentCommandHandler creates a handler for filing dispute
// arguments.
func NewSubmitArgumentCommandHandler(
	uowFactory DisputeUoWFactory,
	policy services.AccessPolicy,
) SubmitArgumentCommandHandler {
	return SubmitArgumentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the argument submission command.
func (h *SubmitArgumentCommandHandler) Handle(ctx context.Context, cmd SubmitArgumentCommand) error {
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

	existing, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.RequireParty(cmd.Caller(), existing); err != nil {
		return err
	}

	disputeRepo := uow.DisputeRepository()
	openDispute, err := disputeRepo.Get(ctx, existing.ID())
	if err != nil {
		return err
	}

	if err = openDispute.SubmitArgument(cmd.Caller(), cmd.Text()); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, openDispute); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
