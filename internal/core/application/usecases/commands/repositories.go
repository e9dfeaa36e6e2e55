// Package commands contains the business operations that mutate system
// state. Every command carries
// the calling principal, every handler resolves the caller's relationship to
// the target before touching any state, and every handler runs inside one
// unit of work so the transition applies all-or-nothing together with the
// events it emits.
package commands

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest composition that covers the
// aggregates they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DisputeRepoFactory provides access to the dispute repository within a transaction.
	DisputeRepoFactory interface {
		DisputeRepository() ports.DisputeRepository
	}

	// AuditorRepoFactory provides access to the auditor repository within a transaction.
	AuditorRepoFactory interface {
		AuditorRepository() ports.AuditorRepository
	}

	// EventPublisherFactory provides the transactional event log appender.
	EventPublisherFactory interface {
		EventPublisher() ports.EventPublisher
	}

	// CatalogRefFactory provides the ledger's swappable catalog reference.
	CatalogRefFactory interface {
		CatalogReference() ports.CatalogReference
	}

	// CatalogUoW manages transactions for catalog maintenance commands.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		CatalogRefFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order lifecycle commands. Order
	// creation additionally validates line items against the referenced
	// catalog, hence the product repository access.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CatalogRefFactory
		EventPublisherFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DisputeUoW manages transactions for the dispute protocol, which spans
	// the order, its dispute and the auditor pool.
	DisputeUoW interface {
		TxManager
		OrderRepoFactory
		DisputeRepoFactory
		AuditorRepoFactory
		EventPublisherFactory
	}

	// DisputeUoWFactory creates dispute unit of work instances.
	DisputeUoWFactory interface {
		Create() DisputeUoW
	}

	// AuditorUoW manages transactions for auditor pool maintenance.
	AuditorUoW interface {
		TxManager
		AuditorRepoFactory
	}

	// AuditorUoWFactory creates auditor unit of work instances.
	AuditorUoWFactory interface {
		Create() AuditorUoW
	}
)
