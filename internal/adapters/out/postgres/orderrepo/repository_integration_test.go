package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorders/internal/adapters/out/postgres/orderrepo"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior, including the line cascade and the average computation.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	lineA, err := order.NewLine(kernel.NewUUID(), 2, decimal.NewFromFloat(4.00))
	suite.Require().NoError(err)
	lineB, err := order.NewLine(kernel.NewUUID(), 1, decimal.NewFromFloat(1.50))
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now().UTC().Truncate(time.Microsecond),
		decimal.NewFromFloat(2.50),
		[]order.Line{lineA, lineB},
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) countRows(table string) int64 {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	return count
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithLines() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Equal(int64(1), suite.countRows("orders"))
	suite.Equal(int64(2), suite.countRows("order_lines"))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.True(loaded.Price().Equal(testOrder.Price()))
	suite.Len(loaded.Lines(), 2)
	suite.Equal(order.Pending, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLineSet() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	replacement, err := order.NewLine(kernel.NewUUID(), 5, decimal.NewFromFloat(3.00))
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.ReplaceLines([]order.Line{replacement}, decimal.Zero))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(loaded.Lines(), 1)
	suite.Equal(5, loaded.Lines()[0].Quantity())
	suite.True(loaded.Price().Equal(decimal.NewFromFloat(15.00)), "price was %s", loaded.Price())
	suite.Equal(int64(1), suite.countRows("order_lines"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateFulfillment_PersistsTimestamps() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Start(time.Now().UTC()))
	suite.Require().NoError(suite.repository.UpdateFulfillment(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProcess, loaded.Status())
	suite.NotNil(loaded.StartedAt())
	suite.Nil(loaded.SentAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_CascadesToLines() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	suite.Equal(int64(0), suite.countRows("orders"))
	suite.Equal(int64(0), suite.countRows("order_lines"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAverageServiceMinutes() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	// No delivered orders yet.
	_, ok, err := suite.repository.AverageServiceMinutes(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.False(ok)

	// Two delivered orders: 20 and 40 minutes from creation to delivery.
	for _, minutes := range []int{20, 40} {
		createdAt := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Microsecond)
		deliveredAt := createdAt.Add(time.Duration(minutes) * time.Minute)
		startedAt := createdAt.Add(time.Minute)
		sentAt := createdAt.Add(2 * time.Minute)

		line, lineErr := order.NewLine(kernel.NewUUID(), 1, decimal.NewFromFloat(4.00))
		suite.Require().NoError(lineErr)

		delivered, restoreErr := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), restaurantID,
			decimal.NewFromFloat(6.50), decimal.NewFromFloat(2.50),
			createdAt, &startedAt, &sentAt, &deliveredAt,
			[]order.Line{line},
		)
		suite.Require().NoError(restoreErr)
		suite.Require().NoError(suite.repository.Add(ctx, delivered))
	}

	// One undelivered order that must not affect the average.
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder()))

	average, ok, err := suite.repository.AverageServiceMinutes(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.InDelta(30.0, average, 0.01)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
