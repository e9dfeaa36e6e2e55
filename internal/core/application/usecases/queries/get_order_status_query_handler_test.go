package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/orderrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/queries"
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

// mockAggregateTracker is a no-op tracker for query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ uint64, _ any) {}

type GetOrderStatusQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderStatusQueryHandler
}

func (suite *GetOrderStatusQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderStatusQueryHandler(db)
}

func (suite *GetOrderStatusQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderStatusQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderStatusQueryHandlerTestSuite) saveOrder(items ...[2]uint64) uint64 {
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

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	id, err := repo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return id
}

func (suite *GetOrderStatusQueryHandlerTestSuite) TestHandle_ReturnsItemsInInsertionOrder() {
	id := suite.saveOrder([2]uint64{5, 1}, [2]uint64{2, 10}, [2]uint64{9, 3})

	query, err := queries.NewGetOrderStatusQuery(id)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(id, result.OrderID)
	suite.Equal(order.Created, result.Status)
	suite.Require().Len(result.Items, 3)
	suite.Equal(uint64(5), result.Items[0].ProductID)
	suite.Equal(uint64(2), result.Items[1].ProductID)
	suite.Equal(uint64(10), result.Items[1].Quantity)
	suite.Equal(uint64(9), result.Items[2].ProductID)
}

func (suite *GetOrderStatusQueryHandlerTestSuite) TestHandle_ReflectsStatusTransitions() {
	id := suite.saveOrder([2]uint64{1, 1})

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	loaded, err := repo.Get(context.Background(), id)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Confirm())
	suite.Require().NoError(repo.Update(context.Background(), loaded))

	query, err := queries.NewGetOrderStatusQuery(id)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, result.Status)
}

func (suite *GetOrderStatusQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderStatusQuery(424242)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderStatusQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderStatusQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderStatusQuery constructor")
}

func TestGetOrderStatusQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatusQueryHandlerTestSuite))
}
