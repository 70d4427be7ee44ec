package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMismatchFinder struct {
	mock.Mock
}

func (m *MockMismatchFinder) Handle(
	ctx context.Context,
	query queries.FindItemCountMismatchesQuery,
) ([]queries.ItemCountMismatch, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ItemCountMismatch), args.Error(1)
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func TestItemCountAuditJob_Run_LogsEachMismatch(t *testing.T) {
	finder := &MockMismatchFinder{}
	finder.On("Handle", mock.Anything, mock.Anything).Return([]queries.ItemCountMismatch{
		{BatchID: "TRN-2025POL001A-F", TenantID: "franchise-pol", StoredCount: 3, ActualCount: 2},
		{BatchID: "TRN-2025POL002A-F", TenantID: "franchise-pol", StoredCount: 1, ActualCount: 0},
	}, nil)
	logger, buf := newBufferLogger()

	found := NewItemCountAuditJob(finder, logger).Run(t.Context())

	assert.Equal(t, 2, found)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("Transit batch item count mismatch")))
	assert.Contains(t, buf.String(), `"batchId":"TRN-2025POL001A-F"`)
	assert.Contains(t, buf.String(), `"storedCount":3`)
	assert.Contains(t, buf.String(), `"actualCount":2`)
	finder.AssertExpectations(t)
}

func TestItemCountAuditJob_Run_Clean(t *testing.T) {
	finder := &MockMismatchFinder{}
	finder.On("Handle", mock.Anything, mock.Anything).Return([]queries.ItemCountMismatch{}, nil)
	logger, buf := newBufferLogger()

	found := NewItemCountAuditJob(finder, logger).Run(t.Context())

	assert.Zero(t, found)
	assert.NotContains(t, buf.String(), "mismatch")
}

func TestItemCountAuditJob_Run_LogsFailure(t *testing.T) {
	finder := &MockMismatchFinder{}
	finder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	logger, buf := newBufferLogger()

	found := NewItemCountAuditJob(finder, logger).Run(t.Context())

	assert.Zero(t, found)
	assert.Contains(t, buf.String(), "Item count audit failed")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestJobManager_StartStop(t *testing.T) {
	finder := &MockMismatchFinder{}
	finder.On("Handle", mock.Anything, mock.Anything).Return([]queries.ItemCountMismatch{}, nil).Maybe()
	logger, buf := newBufferLogger()
	manager := NewJobManager(finder, logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Item count audit job started")
	assert.Contains(t, buf.String(), "Item count audit job stopped")
}
