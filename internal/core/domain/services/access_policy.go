package services

import (
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// Relationship is the role a caller holds towards a specific order. It is
// per-order, not global: the same principal can be the buyer of one order and
// an uninvolved stranger to the next. Admin is the only pool-wide role and
// comes from configuration.
type Relationship int

const (
	// RelationshipNone means the caller has no standing on the order.
	RelationshipNone Relationship = iota

	// RelationshipBuyer means the caller is the order's buyer.
	RelationshipBuyer

	// RelationshipSeller means the caller is the order's seller.
	RelationshipSeller

	// RelationshipAssignedAuditor means the caller is one of the two auditors
	// assigned to the order's dispute.
	RelationshipAssignedAuditor

	// RelationshipAdmin means the caller is a configured marketplace operator.
	RelationshipAdmin
)

// String returns the relationship name as used in authorization errors.
func (r Relationship) String() string {
	switch r {
	case RelationshipBuyer:
		return "buyer"
	case RelationshipSeller:
		return "seller"
	case RelationshipAssignedAuditor:
		return "assigned auditor"
	case RelationshipAdmin:
		return "admin"
	default:
		return "none"
	}
}

// AccessPolicy resolves a caller's relationship to an order and enforces the
// relationship each operation requires. Centralizing the checks here keeps
// identity logic out of the storage primitives: the ledger stores, the policy
// decides.
//
// Every mutating use case calls a Require method before reading any order
// state, so an unauthorized caller never learns anything about the order.
type AccessPolicy struct {
	admins map[kernel.PrincipalID]struct{}
}

// NewAccessPolicy creates a policy treating the given principals as admins.
func NewAccessPolicy(admins ...kernel.PrincipalID) AccessPolicy {
	set := make(map[kernel.PrincipalID]struct{}, len(admins))
	for _, a := range admins {
		set[a] = struct{}{}
	}
	return AccessPolicy{admins: set}
}

// IsAdmin reports whether the caller is a configured admin.
func (p AccessPolicy) IsAdmin(caller kernel.PrincipalID) bool {
	_, ok := p.admins[caller]
	return ok
}

// Relate resolves the caller's relationship to the given order and, when the
// order is disputed, its dispute. Either argument may be nil. Buyer and
// seller standing take precedence over admin so that per-order rules (for
// example, only the buyer may complete) also bind operators trading on their
// own marketplace.
func (p AccessPolicy) Relate(caller kernel.PrincipalID, o *order.Order, d *dispute.Dispute) Relationship {
	if o != nil {
		if o.IsBuyer(caller) {
			return RelationshipBuyer
		}
		if o.IsSeller(caller) {
			return RelationshipSeller
		}
	}
	if d != nil && d.IsAssignedAuditor(caller) {
		return RelationshipAssignedAuditor
	}
	if p.IsAdmin(caller) {
		return RelationshipAdmin
	}
	return RelationshipNone
}

// RequireAdmin fails unless the caller is a configured admin.
func (p AccessPolicy) RequireAdmin(caller kernel.PrincipalID) error {
	if !p.IsAdmin(caller) {
		return errs.NewAuthorizationError(RelationshipAdmin.String(), caller.String())
	}
	return nil
}

// RequireBuyer fails unless the caller is the order's buyer.
func (p AccessPolicy) RequireBuyer(caller kernel.PrincipalID, o *order.Order) error {
	if o == nil || !o.IsBuyer(caller) {
		return errs.NewAuthorizationError(RelationshipBuyer.String(), caller.String())
	}
	return nil
}

// RequireSeller fails unless the caller is the order's seller.
func (p AccessPolicy) RequireSeller(caller kernel.PrincipalID, o *order.Order) error {
	if o == nil || !o.IsSeller(caller) {
		return errs.NewAuthorizationError(RelationshipSeller.String(), caller.String())
	}
	return nil
}

// RequireParty fails unless the caller is the order's buyer or seller.
func (p AccessPolicy) RequireParty(caller kernel.PrincipalID, o *order.Order) error {
	if o == nil || !o.IsParty(caller) {
		return errs.NewAuthorizationError("buyer or seller", caller.String())
	}
	return nil
}

// RequireAssignedAuditor fails unless the caller is one of the dispute's two
// assigned auditors.
func (p AccessPolicy) RequireAssignedAuditor(caller kernel.PrincipalID, d *dispute.Dispute) error {
	if d == nil || !d.IsAssignedAuditor(caller) {
		return errs.NewAuthorizationError(RelationshipAssignedAuditor.String(), caller.String())
	}
	return nil
}

// RequireAuditorOrAdmin fails unless the caller is an assigned auditor of the
// dispute or a configured admin. Used for reading dispute arguments.
func (p AccessPolicy) RequireAuditorOrAdmin(caller kernel.PrincipalID, d *dispute.Dispute) error {
	if d != nil && d.IsAssignedAuditor(caller) {
		return nil
	}
	if p.IsAdmin(caller) {
		return nil
	}
	return errs.NewAuthorizationError("assigned auditor or admin", caller.String())
}
