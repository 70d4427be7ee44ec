package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

var (
	tenantPOL = kernel.MustTenantID("franchise-pol")
	tenantKRK = kernel.MustTenantID("franchise-krk")
	updatedAt = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
)

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsEveryField() {
	ctx := context.Background()
	pickup := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(kernel.NewUUID(), tenantPOL, order.Pending, order.Details{
		Number:       "ORD-1",
		CustomerName: "Anna",
		Fulfillment:  order.Delivery,
		Priority:     order.Urgent,
		IsExpress:    true,
		PickupDate:   &pickup,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID().String(), o)

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal(tenantPOL, got.TenantID())
	suite.Equal(order.Pending, got.Status())
	suite.Equal("ORD-1", got.Number())
	suite.Equal("Anna", got.CustomerName())
	suite.Equal(order.Delivery, got.Fulfillment())
	suite.Equal(order.Urgent, got.Priority())
	suite.True(got.IsExpressOrder())
	suite.Require().NotNil(got.PickupDate())
	suite.True(pickup.Equal(*got.PickupDate()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListByStatus_FiltersByStatusAndTenant() {
	ctx := context.Background()
	pending := suite.addOrder(tenantPOL, order.Pending, "ORD-1")
	suite.addOrder(tenantPOL, order.Processing, "ORD-2")
	suite.addOrder(tenantKRK, order.Pending, "ORD-3")

	got, err := suite.repository.ListByStatus(ctx, access.SingleTenant(tenantPOL), []order.Status{order.Pending})
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].IsEqual(pending))

	all, err := suite.repository.ListByStatus(ctx, access.AllTenants(), []order.Status{order.Pending})
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListByStatus_NoStatuses_ReturnsEmpty() {
	suite.addOrder(tenantPOL, order.Pending, "ORD-1")

	got, err := suite.repository.ListByStatus(context.Background(), access.AllTenants(), nil)

	suite.Require().NoError(err)
	suite.Empty(got)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_WritesNewStatus() {
	ctx := context.Background()
	o := suite.addOrder(tenantPOL, order.Pending, "ORD-1")

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.DispatchToFactory())
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, loaded, updatedAt))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, got.Status())
	suite.Equal("ORD-1", got.Number())

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.database.DB.First(&dto, "id = ?", o.ID().String()).Error)
	suite.True(updatedAt.Equal(dto.UpdatedAt), "updated at %s", dto.UpdatedAt)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_ConcurrentChange_ReturnsStale() {
	ctx := context.Background()
	o := suite.addOrder(tenantPOL, order.Pending, "ORD-1")

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.DispatchToFactory())
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, first, updatedAt))

	suite.Require().NoError(second.DispatchToFactory())
	err = suite.repository.UpdateStatus(ctx, second, updatedAt)
	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrStaleStatus)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_MissingRow_ReturnsNotFound() {
	o, err := order.RestoreOrder(kernel.NewUUID(), tenantPOL, order.Pending, order.Details{
		Number:      "ORD-9",
		Fulfillment: order.Pickup,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(o.DispatchToFactory())

	err = suite.repository.UpdateStatus(context.Background(), o, updatedAt)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_Unchanged_IsNoop() {
	o := suite.addOrder(tenantPOL, order.Pending, "ORD-1")
	suite.Require().NoError(suite.database.DB.Exec("DELETE FROM orders").Error)

	suite.NoError(suite.repository.UpdateStatus(context.Background(), o, updatedAt))
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(
	tenant kernel.TenantID,
	status order.Status,
	number string,
) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), tenant, status, order.Details{
		Number:      number,
		Fulfillment: order.Pickup,
		Priority:    order.Normal,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
