package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(
	ctx context.Context,
	scope access.Scope,
	statuses []order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, scope, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, at time.Time) error {
	args := m.Called(ctx, o, at)
	return args.Error(0)
}

type MockTransitRepository struct{ mock.Mock }

func (m *MockTransitRepository) Add(ctx context.Context, b *transit.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockTransitRepository) Update(ctx context.Context, b *transit.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockTransitRepository) Get(ctx context.Context, id transit.ID, scope access.Scope) (*transit.Batch, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transit.Batch), args.Error(1)
}

func (m *MockTransitRepository) GetForUpdate(
	ctx context.Context,
	id transit.ID,
	scope access.Scope,
) (*transit.Batch, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transit.Batch), args.Error(1)
}

func (m *MockTransitRepository) ClaimOrder(
	ctx context.Context,
	orderID kernel.UUID,
	batchID transit.ID,
	at time.Time,
) error {
	args := m.Called(ctx, orderID, batchID, at)
	return args.Error(0)
}

func (m *MockTransitRepository) ReleaseClaims(ctx context.Context, batchID transit.ID) error {
	args := m.Called(ctx, batchID)
	return args.Error(0)
}

func (m *MockTransitRepository) ClaimedOrderIDs(ctx context.Context, scope access.Scope) ([]kernel.UUID, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockTransitRepository) AddItem(ctx context.Context, item transit.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTransitRepository) Items(ctx context.Context, batchID transit.ID) ([]transit.Item, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transit.Item), args.Error(1)
}

func (m *MockTransitRepository) AppendHistory(ctx context.Context, entry transit.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Next(
	ctx context.Context,
	tenant kernel.TenantID,
	year int,
	movement transit.MovementType,
) (int, error) {
	args := m.Called(ctx, tenant, year, movement)
	return args.Int(0), args.Error(1)
}

type MockFranchiseRepository struct{ mock.Mock }

func (m *MockFranchiseRepository) BranchCode(ctx context.Context, tenant kernel.TenantID) (string, error) {
	args := m.Called(ctx, tenant)
	return args.String(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SavePoint(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockUoW) RollbackTo(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TransitRepository() ports.TransitRepository {
	args := m.Called()
	return args.Get(0).(ports.TransitRepository)
}

func (m *MockUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

func (m *MockUoW) FranchiseRepository() ports.FranchiseRepository {
	args := m.Called()
	return args.Get(0).(ports.FranchiseRepository)
}

type MockCreateUoWFactory struct{ mock.Mock }

func (m *MockCreateUoWFactory) Create() commands.CreateUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateUoW)
}

type MockAdvanceUoWFactory struct{ mock.Mock }

func (m *MockAdvanceUoWFactory) Create() commands.AdvanceUoW {
	args := m.Called()
	return args.Get(0).(commands.AdvanceUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.TransitEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var (
	tenantPOL = kernel.MustTenantID("POL")
	tenantKRK = kernel.MustTenantID("KRK")
	fixedNow  = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
)

func clock() time.Time { return fixedNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func storeManager() access.Identity {
	return access.Identity{UserID: "user-1", Role: access.StoreManager, TenantID: tenantPOL}
}

func newOrder(t *testing.T, tenant kernel.TenantID, status order.Status, number string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), tenant, status, order.Details{
		Number:       number,
		CustomerName: "Customer " + number,
		Fulfillment:  order.Delivery,
	})
	require.NoError(t, err)
	return o
}

func hasStatus(status order.Status) any {
	return mock.MatchedBy(func(o *order.Order) bool { return o.Status() == status })
}
