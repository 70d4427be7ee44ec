package sequencerepo_test

import (
	"context"
	"sync"
	"testing"

	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/sequencerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var (
	tenantPOL = kernel.MustTenantID("franchise-pol")
	tenantKRK = kernel.MustTenantID("franchise-krk")
)

type SequenceRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *sequencerepo.GormSequenceRepository
}

func (suite *SequenceRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *SequenceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = sequencerepo.NewGormSequenceRepository(suite.database.DB)
}

func (suite *SequenceRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_StartsAtOneAndIncrements() {
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := suite.repository.Next(ctx, tenantPOL, 2025, transit.ToFactory)
		suite.Require().NoError(err)
		suite.Equal(want, got)
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_KeysAreIndependent() {
	ctx := context.Background()

	_, err := suite.repository.Next(ctx, tenantPOL, 2025, transit.ToFactory)
	suite.Require().NoError(err)

	for _, tc := range []struct {
		name     string
		tenant   kernel.TenantID
		year     int
		movement transit.MovementType
	}{
		{"other movement", tenantPOL, 2025, transit.ReturnToStore},
		{"other year", tenantPOL, 2026, transit.ToFactory},
		{"other tenant", tenantKRK, 2025, transit.ToFactory},
	} {
		suite.Run(tc.name, func() {
			got, err := suite.repository.Next(ctx, tc.tenant, tc.year, tc.movement)
			suite.Require().NoError(err)
			suite.Equal(1, got)
		})
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_ConcurrentCallersGetDistinctValues() {
	ctx := context.Background()
	const callers = 20

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		values   = make(map[int]struct{}, callers)
		failures []error
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := suite.repository.Next(ctx, tenantPOL, 2025, transit.ToFactory)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			values[v] = struct{}{}
		}()
	}
	wg.Wait()

	suite.Empty(failures)
	suite.Len(values, callers)
	for v := 1; v <= callers; v++ {
		suite.Contains(values, v)
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_InvalidInput() {
	ctx := context.Background()

	_, err := suite.repository.Next(ctx, tenantPOL, 2025, transit.UnknownMovement)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)

	_, err = suite.repository.Next(ctx, tenantPOL, 0, transit.ToFactory)
	suite.ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func TestSequenceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceRepositoryIntegrationTestSuite))
}
