package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/auditorrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/disputerepo"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/eventlog"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/orderrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/productrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/auditor"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.CatalogReferenceDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&disputerepo.DisputeDTO{},
		&disputerepo.ArgumentDTO{},
		&auditorrepo.AuditorDTO{},
		&eventlog.EventDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	for _, table := range []string{"events", "dispute_arguments", "disputes", "order_items", "orders", "auditors", "products"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) newOrder() *order.Order {
	item, err := order.NewLineItem(1, 2)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewPrincipalID(),
		kernel.NewPrincipalID(),
		[]order.LineItem{item},
		1,
		"standard",
	)
	suite.Require().NoError(err)
	return o
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsOrderAndEventTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder()
	id, err := uow.OrderRepository().Add(ctx, o)
	suite.Require().NoError(err)

	err = uow.EventPublisher().Publish(ctx, events.OrderCreated{
		OrderID: id,
		Buyer:   o.Buyer(),
		Seller:  o.Seller(),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, eventCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("events").Count(&eventCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), eventCount)

	var name string
	err = suite.db.Table("events").Select("name").Row().Scan(&name)
	suite.Require().NoError(err)
	suite.Equal("OrderCreated", name)
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder()
	id, err := uow.OrderRepository().Add(ctx, o)
	suite.Require().NoError(err)

	err = uow.EventPublisher().Publish(ctx, events.OrderCreated{OrderID: id, Buyer: o.Buyer(), Seller: o.Seller()})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, eventCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("events").Count(&eventCount).Error)
	suite.Zero(orderCount)
	suite.Zero(eventCount)
}

func (suite *GormUnitOfWorkTestSuite) TestRollbackAfterCommit_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.OrderRepository().Add(ctx, suite.newOrder())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Equal(int64(1), orderCount)
}

func (suite *GormUnitOfWorkTestSuite) TestDisputeRoundTrip_WithinTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder()
	orderID, err := uow.OrderRepository().Add(ctx, o)
	suite.Require().NoError(err)

	firstAuditor := kernel.NewPrincipalID()
	secondAuditor := kernel.NewPrincipalID()
	d, err := dispute.NewDispute(orderID, o.Buyer(), "brokenItems",
		[dispute.AuditorCount]kernel.PrincipalID{firstAuditor, secondAuditor})
	suite.Require().NoError(err)
	suite.Require().NoError(d.SubmitArgument(o.Buyer(), "items arrived broken"))

	suite.Require().NoError(uow.DisputeRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().DisputeRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal("brokenItems", loaded.Reason())
	suite.True(loaded.IsAssignedAuditor(firstAuditor))
	suite.True(loaded.IsAssignedAuditor(secondAuditor))
	suite.Require().Len(loaded.Arguments(), 1)
	suite.Equal("items arrived broken", loaded.Arguments()[0].Text())
}

func (suite *GormUnitOfWorkTestSuite) TestAuditorRegistrationSequence() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.AuditorRepository()
	firstSeq := suite.addAuditor(ctx, repo)
	secondSeq := suite.addAuditor(ctx, repo)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(firstSeq+1, secondSeq)

	pool, err := suite.factory.Create().AuditorRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pool, 2)
	suite.Equal(firstSeq, pool[0].RegistrationSeq())
	suite.Equal(secondSeq, pool[1].RegistrationSeq())
}

func (suite *GormUnitOfWorkTestSuite) addAuditor(ctx context.Context, repo ports.AuditorRepository) uint64 {
	record, err := auditor.NewAuditor(kernel.NewPrincipalID())
	suite.Require().NoError(err)
	seq, err := repo.Add(ctx, record)
	suite.Require().NoError(err)
	return seq
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
