package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/disputerepo"
	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/queries"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type RetrieveArgumentsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	admin     kernel.PrincipalID
	handler   queries.RetrieveArgumentsQueryHandler
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&disputerepo.DisputeDTO{}, &disputerepo.ArgumentDTO{})
	suite.Require().NoError(err)

	suite.admin = kernel.NewPrincipalID()
	suite.handler = queries.NewRetrieveArgumentsQueryHandler(db, services.NewAccessPolicy(suite.admin))
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE disputes CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) saveDispute(
	orderID uint64, raisedBy kernel.PrincipalID, auditors [dispute.AuditorCount]kernel.PrincipalID, texts ...string,
) {
	d, err := dispute.NewDispute(orderID, raisedBy, "brokenItems", auditors)
	suite.Require().NoError(err)
	for _, text := range texts {
		suite.Require().NoError(d.SubmitArgument(raisedBy, text))
	}

	repo := disputerepo.NewGormDisputeRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), d))
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) TestHandle_AssignedAuditor_ReadsLogInOrder() {
	raisedBy := kernel.NewPrincipalID()
	firstAuditor := kernel.NewPrincipalID()
	secondAuditor := kernel.NewPrincipalID()
	suite.saveDispute(7, raisedBy,
		[dispute.AuditorCount]kernel.PrincipalID{firstAuditor, secondAuditor},
		"items arrived broken", "packaging was intact on handover")

	query, err := queries.NewRetrieveArgumentsQuery(firstAuditor, 7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(uint64(7), result.OrderID)
	suite.Require().Len(result.Arguments, 2)
	suite.Equal("items arrived broken", result.Arguments[0].Text)
	suite.True(raisedBy.IsEqual(result.Arguments[0].Author))
	suite.Equal("packaging was intact on handover", result.Arguments[1].Text)
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) TestHandle_Admin_ReadsLog() {
	raisedBy := kernel.NewPrincipalID()
	suite.saveDispute(7, raisedBy,
		[dispute.AuditorCount]kernel.PrincipalID{kernel.NewPrincipalID(), kernel.NewPrincipalID()},
		"items arrived broken")

	query, err := queries.NewRetrieveArgumentsQuery(suite.admin, 7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Arguments, 1)
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) TestHandle_Stranger_IsRefused() {
	raisedBy := kernel.NewPrincipalID()
	suite.saveDispute(7, raisedBy,
		[dispute.AuditorCount]kernel.PrincipalID{kernel.NewPrincipalID(), kernel.NewPrincipalID()},
		"items arrived broken")

	query, err := queries.NewRetrieveArgumentsQuery(kernel.NewPrincipalID(), 7)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrAuthorizationFailed)
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) TestHandle_RaisingParty_IsRefused() {
	raisedBy := kernel.NewPrincipalID()
	suite.saveDispute(7, raisedBy,
		[dispute.AuditorCount]kernel.PrincipalID{kernel.NewPrincipalID(), kernel.NewPrincipalID()},
		"items arrived broken")

	query, err := queries.NewRetrieveArgumentsQuery(raisedBy, 7)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrAuthorizationFailed)
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) TestHandle_NoDispute_AdminSeesNotFound() {
	query, err := queries.NewRetrieveArgumentsQuery(suite.admin, 99)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RetrieveArgumentsQueryHandlerTestSuite) TestHandle_NoDispute_OthersSeeAuthorizationFailure() {
	query, err := queries.NewRetrieveArgumentsQuery(kernel.NewPrincipalID(), 99)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrAuthorizationFailed)
}

func TestRetrieveArgumentsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RetrieveArgumentsQueryHandlerTestSuite))
}
