package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fabrication/internal/adapters/out/postgres/orderrepo"
	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("MO-2024-0001")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsError() {
	ctx := context.Background()
	first := suite.createTestOrder("MO-2024-0002")
	second := suite.createTestOrder("MO-2024-0002")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	originalOrder := suite.createTestOrder("MO-2024-0003")

	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("MO-2024-0003", retrievedOrder.Number())
	suite.Equal(order.Created, retrievedOrder.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusProgression() {
	testCases := []struct {
		name          string
		initialStatus order.Status
		updatedStatus order.Status
	}{
		{
			name:          "created to production review",
			initialStatus: order.Created,
			updatedStatus: order.ProductionReview,
		},
		{
			name:          "production approved to quality review",
			initialStatus: order.ProductionApproved,
			updatedStatus: order.QualityReview,
		},
		{
			name:          "quality review to nonconforming",
			initialStatus: order.QualityReview,
			updatedStatus: order.Nonconforming,
		},
	}

	ctx := context.Background()
	for i, tc := range testCases {
		suite.Run(tc.name, func() {
			number := suite.numberFor(i)
			initialOrder, err := order.RestoreOrder(
				kernel.NewUUID(), number, tc.initialStatus, time.Now().UTC())
			suite.Require().NoError(err)

			suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
			suite.Require().NoError(suite.repository.Add(ctx, initialOrder))

			suite.Require().NoError(initialOrder.ChangeStatus(tc.updatedStatus))

			suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
			suite.Require().NoError(suite.repository.Update(ctx, initialOrder))

			retrievedOrder, err := suite.repository.Get(ctx, initialOrder.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.updatedStatus, retrievedOrder.Status())

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()
	nonExistentOrder := suite.createTestOrder("MO-2024-0404")

	err := suite.repository.Update(ctx, nonExistentOrder)

	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUnfinished_MixedStatuses_ExcludesTerminal() {
	ctx := context.Background()

	unfinishedStatuses := []order.Status{
		order.Created, order.ProductionReview, order.QualityApproved, order.Nonconforming,
	}
	terminalStatuses := []order.Status{order.Done, order.Cancelled}

	for i, status := range append(unfinishedStatuses, terminalStatuses...) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), suite.numberFor(100+i), status, time.Now().UTC())
		suite.Require().NoError(err)
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	unfinished, err := suite.repository.GetAllUnfinished(ctx)
	suite.Require().NoError(err)

	suite.Len(unfinished, len(unfinishedStatuses))
	for _, o := range unfinished {
		suite.False(o.Status().IsTerminal())
	}
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUnfinished_NoOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	unfinished, err := suite.repository.GetAllUnfinished(ctx)

	suite.Require().NoError(err)
	suite.NotNil(unfinished)
	suite.Empty(unfinished)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string) *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), number)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) numberFor(i int) string {
	return fmt.Sprintf("MO-2024-%04d", i)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
