package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/orderrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ uint64, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newOrder(items ...[2]uint64) *order.Order {
	lineItems := make([]order.LineItem, 0, len(items))
	for _, pair := range items {
		item, err := order.NewLineItem(pair[0], pair[1])
		suite.Require().NoError(err)
		lineItems = append(lineItems, item)
	}

	o, err := order.NewOrder(
		kernel.NewPrincipalID(),
		kernel.NewPrincipalID(),
		lineItems,
		uint64(len(lineItems)),
		"standard",
	)
	suite.Require().NoError(err)
	return o
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder([2]uint64{1, 1}, [2]uint64{2, 2}, [2]uint64{3, 4})

	id, err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)
	suite.NotZero(id)

	loaded, err := suite.repo.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(id, loaded.ID())
	suite.Equal(o.Buyer(), loaded.Buyer())
	suite.Equal(o.Seller(), loaded.Seller())
	suite.Equal("standard", loaded.DeliveryTerms())
	suite.Equal(order.Created, loaded.Status())

	items := loaded.Items()
	suite.Require().Len(items, 3)
	suite.Equal(uint64(1), items[0].ProductID())
	suite.Equal(uint64(2), items[1].ProductID())
	suite.Equal(uint64(3), items[2].ProductID())
	suite.Equal(uint64(4), items[2].Quantity())
}

func (suite *GormOrderRepositoryTestSuite) TestIDsAreAssignedSequentially() {
	ctx := context.Background()

	firstID, err := suite.repo.Add(ctx, suite.newOrder([2]uint64{1, 1}))
	suite.Require().NoError(err)
	secondID, err := suite.repo.Add(ctx, suite.newOrder([2]uint64{1, 1}))
	suite.Require().NoError(err)

	suite.Equal(firstID+1, secondID)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsStatusAndQuantity() {
	ctx := context.Background()
	o := suite.newOrder([2]uint64{1, 1}, [2]uint64{2, 20})

	id, err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.UpdateQuantity(2, 50))
	suite.Require().NoError(loaded.Confirm())
	suite.Require().NoError(suite.repo.Update(ctx, loaded))

	reloaded, err := suite.repo.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, reloaded.Status())
	suite.Equal(uint64(50), reloaded.Items()[1].Quantity())
}

func (suite *GormOrderRepositoryTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), 424242)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	o := suite.newOrder([2]uint64{1, 1})
	restored, err := order.RestoreOrder(999999, o.Buyer(), o.Seller(), o.Items(), o.DeliveryTerms(), order.Created)
	suite.Require().NoError(err)

	err = suite.repo.Update(context.Background(), restored)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
