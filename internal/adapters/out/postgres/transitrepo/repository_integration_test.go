package transitrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/transitrepo"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/transit"
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

var (
	tenantPOL = kernel.MustTenantID("franchise-pol")
	tenantKRK = kernel.MustTenantID("franchise-krk")
	createdAt = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
)

type TransitRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *transitrepo.GormTransitRepository
	orders     *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *TransitRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *TransitRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = transitrepo.NewGormTransitRepository(suite.database.DB, suite.tracker)
	suite.orders = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *TransitRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *TransitRepositoryIntegrationTestSuite) TestAdd_ThenGet_RestoresBatch() {
	ctx := context.Background()
	batch := suite.newBatch(tenantPOL, 1, transit.ToFactory, transit.Metadata{
		VehicleInfo: map[string]any{"plate": "WX 1234"},
	})

	suite.Require().NoError(suite.repository.Add(ctx, batch))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", batch.ID().String(), batch)

	got, err := suite.repository.Get(ctx, batch.ID(), access.SingleTenant(tenantPOL))
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(batch.ID()))
	suite.Equal(tenantPOL, got.TenantID())
	suite.Equal(transit.InTransit, got.Status())
	suite.Equal(transit.ToFactory, got.MovementType())
	suite.Equal(0, got.ItemCount())
	suite.Equal("WX 1234", got.Metadata().VehicleInfo["plate"])
	suite.True(createdAt.Equal(got.CreatedAt()))
}

func (suite *TransitRepositoryIntegrationTestSuite) TestGet_OtherTenant_ReturnsNotFound() {
	ctx := context.Background()
	batch := suite.newBatch(tenantPOL, 1, transit.ToFactory, transit.Metadata{})
	suite.Require().NoError(suite.repository.Add(ctx, batch))

	_, err := suite.repository.Get(ctx, batch.ID(), access.SingleTenant(tenantKRK))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetForUpdate(ctx, batch.ID(), access.AllTenants())
	suite.NoError(err)
}

func (suite *TransitRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndCount() {
	ctx := context.Background()
	batch := suite.newBatch(tenantPOL, 1, transit.ToFactory, transit.Metadata{})
	suite.Require().NoError(suite.repository.Add(ctx, batch))

	o := suite.addOrder(tenantPOL, order.Pending, "ORD-1")
	item, err := batch.PrepareItem(o, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddItem(ctx, item))
	suite.Require().NoError(batch.AttachItem(item))
	suite.Require().NoError(batch.Advance(transit.Received, createdAt.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, batch))

	got, err := suite.repository.Get(ctx, batch.ID(), access.AllTenants())
	suite.Require().NoError(err)
	suite.Equal(transit.Received, got.Status())
	suite.Equal(1, got.ItemCount())
	suite.True(createdAt.Add(time.Hour).Equal(got.UpdatedAt()))
}

func (suite *TransitRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	batch := suite.newBatch(tenantPOL, 7, transit.ToFactory, transit.Metadata{})

	err := suite.repository.Update(context.Background(), batch)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TransitRepositoryIntegrationTestSuite) TestClaimOrder_Twice_ReturnsAlreadyClaimed() {
	ctx := context.Background()
	first := suite.newBatch(tenantPOL, 1, transit.ToFactory, transit.Metadata{})
	second := suite.newBatch(tenantPOL, 2, transit.ToFactory, transit.Metadata{})
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.ClaimOrder(ctx, orderID, first.ID(), createdAt))
	err := suite.repository.ClaimOrder(ctx, orderID, second.ID(), createdAt)

	suite.Require().Error(err)
	suite.ErrorIs(err, transit.ErrOrderAlreadyClaimed)
}

func (suite *TransitRepositoryIntegrationTestSuite) TestClaimOrder_StoresGivenTime() {
	ctx := context.Background()
	batch := suite.newBatch(tenantPOL, 1, transit.ToFactory, transit.Metadata{})
	orderID := kernel.NewUUID()
	at := createdAt.Add(90 * time.Minute)

	suite.Require().NoError(suite.repository.ClaimOrder(ctx, orderID, batch.ID(), at))

	var claim transitrepo.ClaimDTO
	suite.Require().NoError(suite.database.DB.First(&claim, "order_id = ?", orderID.String()).Error)
	suite.True(at.Equal(claim.ClaimedAt), "claimed at %s", claim.ClaimedAt)
}

func (suite *TransitRepositoryIntegrationTestSuite) TestReleaseClaims_FreesOrderForAnotherBatch() {
	ctx := context.Background()
	first := suite.newBatch(tenantPOL, 1, transit.ToFactory, transit.Metadata{})
	second := suite.newBatch(tenantPOL, 1, transit.ReturnToStore, transit.Metadata{})
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.ClaimOrder(ctx, orderID, first.ID(), createdAt))
	suite.Require().NoError(suite.repository.ReleaseClaims(ctx, first.ID()))

	suite.NoError(suite.repository.ClaimOrder(ctx, orderID, second.ID(), createdAt))
}

func (suite *TransitRepositoryIntegrationTestSuite) TestClaimedOrderIDs_OnlyActiveBatchesInScope() {
	ctx := context.Background()

	active := suite.newBatch(tenantPOL, 1, transit.ToFactory, transit.Metadata{})
	suite.Require().NoError(suite.repository.Add(ctx, active))
	onActive := suite.addOrder(tenantPOL, order.Pending, "ORD-1")
	suite.linkItem(active, onActive)

	received := suite.newBatch(tenantPOL, 2, transit.ToFactory, transit.Metadata{})
	suite.Require().NoError(suite.repository.Add(ctx, received))
	onReceived := suite.addOrder(tenantPOL, order.Pending, "ORD-2")
	suite.linkItem(received, onReceived)
	suite.Require().NoError(received.Advance(transit.Received, createdAt))
	suite.Require().NoError(suite.repository.Update(ctx, received))

	foreign := suite.newBatch(tenantKRK, 1, transit.ToFactory, transit.Metadata{})
	suite.Require().NoError(suite.repository.Add(ctx, foreign))
	onForeign := suite.addOrder(tenantKRK, order.Pending, "ORD-3")
	suite.linkItem(foreign, onForeign)

	got, err := suite.repository.ClaimedOrderIDs(ctx, access.SingleTenant(tenantPOL))
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].IsEqual(onActive.ID()))

	all, err := suite.repository.ClaimedOrderIDs(ctx, access.AllTenants())
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *TransitRepositoryIntegrationTestSuite) TestItems_ReturnedInLinkOrder() {
	ctx := context.Background()
	batch := suite.newBatch(tenantPOL, 1, transit.ToFactory, transit.Metadata{})
	suite.Require().NoError(suite.repository.Add(ctx, batch))

	second := suite.addOrder(tenantPOL, order.Pending, "ORD-B")
	first := suite.addOrder(tenantPOL, order.Pending, "ORD-A")
	suite.linkItem(batch, second)
	suite.linkItem(batch, first)

	items, err := suite.repository.Items(ctx, batch.ID())
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("ORD-B", items[0].OrderNumber())
	suite.Equal("ORD-A", items[1].OrderNumber())
	suite.True(items[0].BatchID().IsEqual(batch.ID()))
}

func (suite *TransitRepositoryIntegrationTestSuite) TestAppendHistory_StoresEntries() {
	ctx := context.Background()
	batch := suite.newBatch(tenantPOL, 1, transit.ToFactory, transit.Metadata{})
	suite.Require().NoError(suite.repository.Add(ctx, batch))

	location := "Dock 4"
	entry, err := batch.RecordHistory("driver-1", &location, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AppendHistory(ctx, entry))

	var rows []transitrepo.HistoryDTO
	suite.Require().NoError(suite.database.DB.Order("seq").Find(&rows).Error)
	suite.Require().Len(rows, 1)
	suite.Equal(batch.ID().String(), rows[0].BatchID)
	suite.Equal("in_transit", rows[0].Status)
	suite.Equal("driver-1", rows[0].Actor)
	suite.Require().NotNil(rows[0].Location)
	suite.Equal("Dock 4", *rows[0].Location)
}

func (suite *TransitRepositoryIntegrationTestSuite) newBatch(
	tenant kernel.TenantID,
	counter int,
	movement transit.MovementType,
	metadata transit.Metadata,
) *transit.Batch {
	branch := "POL"
	if tenant.IsEqual(tenantKRK) {
		branch = "KRK"
	}
	id, err := transit.NewID(2025, branch, counter, movement)
	suite.Require().NoError(err)

	batch, err := transit.NewBatch(id, tenant, metadata, createdAt)
	suite.Require().NoError(err)
	return batch
}

func (suite *TransitRepositoryIntegrationTestSuite) addOrder(
	tenant kernel.TenantID,
	status order.Status,
	number string,
) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), tenant, status, order.Details{
		Number:      number,
		Fulfillment: order.Pickup,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *TransitRepositoryIntegrationTestSuite) linkItem(batch *transit.Batch, o *order.Order) {
	ctx := context.Background()
	item, err := batch.PrepareItem(o, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddItem(ctx, item))
	suite.Require().NoError(batch.AttachItem(item))
	suite.Require().NoError(suite.repository.Update(ctx, batch))
}

func TestTransitRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TransitRepositoryIntegrationTestSuite))
}
