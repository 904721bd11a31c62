package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/postgres/historyrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&historyrepo.StatusChangeDTO{},
		&historyrepo.PreparationChangeDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_status_history, order_preparation_history").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.HistoryRepository(), "First instance should provide history repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.HistoryRepository(), "Second instance should provide history repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderWithHistoryTransaction verifies that an order update and
// its audit trail row commit atomically within one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderWithHistoryTransaction() {
	ctx := context.Background()
	staffID := kernel.NewUUID()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	previous, err := testOrder.ChangeStatus(order.Preparing, staffID, now)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.HistoryRepository().AppendStatus(ctx, order.StatusChange{
		OrderID:  testOrder.ID(),
		Previous: previous,
		Next:     testOrder.Status(),
		ActorID:  staffID,
		At:       now,
	})
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both rows persisted using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, retrievedOrder.Status())

	history, err := newUow.HistoryRepository().ListStatusByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(order.Pending, history[0].Previous)
	suite.Equal(order.Preparing, history[0].Next)
	suite.True(staffID.IsEqual(history[0].ActorID))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards the order and
// its audit trail rows together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	staffID := kernel.NewUUID()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.HistoryRepository().AppendStatus(ctx, order.StatusChange{
		OrderID:  testOrder.ID(),
		Previous: order.Pending,
		Next:     order.Preparing,
		ActorID:  staffID,
		At:       time.Now().UTC(),
	})
	suite.Require().NoError(err)

	// Verify rows exist within the transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing persisted
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	history, err := newUow.HistoryRepository().ListStatusByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(history, "History should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
}

// TestUnitOfWork_OrderLifecycleWorkflow tests the complete order lifecycle from
// checkout through completion within transactional boundaries.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()
	staffID := kernel.NewUUID()

	// Checkout
	uow := suite.factory.Create()
	testOrder := createTestOrder()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	// Walk the order through the kitchen
	statuses := []order.Status{order.Preparing, order.Ready, order.Completed}
	for _, status := range statuses {
		stepUow := suite.factory.Create()
		suite.Require().NoError(stepUow.Begin(ctx))

		current, err := stepUow.OrderRepository().Get(ctx, testOrder.ID())
		suite.Require().NoError(err)

		now := time.Now().UTC()
		previous, err := current.ChangeStatus(status, staffID, now)
		suite.Require().NoError(err)

		suite.Require().NoError(stepUow.OrderRepository().Update(ctx, current))
		suite.Require().NoError(stepUow.HistoryRepository().AppendStatus(ctx, order.StatusChange{
			OrderID:  current.ID(),
			Previous: previous,
			Next:     status,
			ActorID:  staffID,
			At:       now,
		}))
		suite.Require().NoError(stepUow.Commit(ctx))
	}

	// Verify final state and the full trail
	finalUow := suite.factory.Create()

	finalOrder, err := finalUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, finalOrder.Status())
	suite.NotNil(finalOrder.CompletedAt())
	suite.NotNil(finalOrder.CompletedBy())

	history, err := finalUow.HistoryRepository().ListStatusByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 3)
	suite.Equal(order.Pending, history[0].Previous)
	suite.Equal(order.Preparing, history[0].Next)
	suite.Equal(order.Completed, history[2].Next)
}

// createTestOrder creates a valid order for testing purposes.
func createTestOrder() *order.Order {
	contact, _ := order.NewContact("Maria Santos", "+63 917 555 0101", "Stall 4")
	adobo, _ := order.NewItem("Chicken Adobo", 2, kernel.MoneyFromFloat(149.50))
	tea, _ := order.NewItem("Iced Tea", 1, kernel.MoneyFromFloat(45.00))
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), contact, []order.Item{adobo, tea}, time.Now().UTC())
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
