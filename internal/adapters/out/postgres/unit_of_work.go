// Package postgres provides the GORM-based Unit of Work. Every command runs
// its repository writes and event appends inside one database transaction;
// concurrent commands against the same order serialize on the row, which is
// what makes each lifecycle transition all-or-nothing.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if _, err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/auditorrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/disputerepo"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/eventlog"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/orderrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/productrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        uint64
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances on a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories and the event log.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	committed         bool
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Calling Begin again on the same instance
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	uow.committed = false
	return nil
}

// Commit finalizes all changes made within the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.committed = err == nil
	return err
}

// Rollback discards all changes made within the transaction. Rolling back
// after a successful commit is a no-op, which permits the
// `defer uow.Rollback(ctx)` pattern in command handlers.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		if uow.committed {
			return nil
		}
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ProductRepository returns a product repository bound to the transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// DisputeRepository returns a dispute repository bound to the transaction.
func (uow *GormUnitOfWork) DisputeRepository() ports.DisputeRepository {
	return disputerepo.NewGormDisputeRepository(uow.conn(), uow)
}

// AuditorRepository returns an auditor repository bound to the transaction.
func (uow *GormUnitOfWork) AuditorRepository() ports.AuditorRepository {
	return auditorrepo.NewGormAuditorRepository(uow.conn(), uow)
}

// EventPublisher returns an event log appender bound to the transaction.
func (uow *GormUnitOfWork) EventPublisher() ports.EventPublisher {
	return eventlog.NewGormEventPublisher(uow.conn())
}

// CatalogReference returns the catalog reference bound to the transaction.
func (uow *GormUnitOfWork) CatalogReference() ports.CatalogReference {
	return productrepo.NewGormCatalogReference(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Called by the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id uint64, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
