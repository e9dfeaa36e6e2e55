package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
)

// DisputeOrderCommandHandler raises a dispute on a shipped order. One
// transaction covers the whole protocol step: the order moves to Disputed,
// two auditors are drawn from the pool, their assignment counters are bumped,
// the dispute record is stored and DisputeRaised is appended to the log.
type DisputeOrderCommandHandler struct {
	uowFactory DisputeUoWFactory
	policy     services.AccessPolicy
	assigner   services.AuditorAssigner
}

// NewDisputeOrderCommandHandler creates a handler for raising disputes.
func NewDisputeOrderCommandHandler(
	uowFactory DisputeUoWFactory,
	policy services.AccessPolicy,
	assigner services.AuditorAssigner,
) DisputeOrderCommandHandler {
	return DisputeOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		assigner:   assigner,
	}
}

// Handle processes the dispute command.
func (h *DisputeOrderCommandHandler) Handle(ctx context.Context, cmd DisputeOrderCommand) error {
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

	if err = h.policy.RequireParty(cmd.Caller(), existing); err != nil {
		return err
	}

	if err = existing.Dispute(); err != nil {
		return err
	}

	auditorRepo := uow.AuditorRepository()
	pool, err := auditorRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	assigned, err := h.assigner.Assign(pool)
	if err != nil {
		return err
	}

	// Assign bumped the chosen auditors' counters; persist them so the
	// rotation survives the transaction.
	for _, record := range pool {
		for _, principal := range assigned {
			if record.Principal().IsEqual(principal) {
				if err = auditorRepo.Update(ctx, record); err != nil {
					return err
				}
				break
			}
		}
	}

	newDispute, err := dispute.NewDispute(existing.ID(), cmd.Caller(), cmd.Reason(), assigned)
	if err != nil {
		return err
	}

	if err = uow.DisputeRepository().Add(ctx, newDispute); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	err = uow.EventPublisher().Publish(ctx, events.DisputeRaised{
		OrderID:  existing.ID(),
		Auditors: assigned,
		Reason:   cmd.Reason(),
	})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
