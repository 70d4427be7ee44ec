package franchiserepo_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/postgres/franchiserepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var (
	tenantPOL = kernel.MustTenantID("franchise-pol")
	tenantPOZ = kernel.MustTenantID("franchise-poz")
)

type FranchiseRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *franchiserepo.GormFranchiseRepository
}

func (suite *FranchiseRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *FranchiseRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = franchiserepo.NewGormFranchiseRepository(suite.database.DB)
}

func (suite *FranchiseRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *FranchiseRepositoryIntegrationTestSuite) TestBranchCode_ReturnsSavedCode() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, tenantPOL, "Poznan Old Town", "POL"))

	code, err := suite.repository.BranchCode(ctx, tenantPOL)

	suite.Require().NoError(err)
	suite.Equal("POL", code)
}

func (suite *FranchiseRepositoryIntegrationTestSuite) TestSave_Twice_ReplacesCode() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, tenantPOL, "Poznan", "POL"))
	suite.Require().NoError(suite.repository.Save(ctx, tenantPOL, "Poznan", "POZ"))

	code, err := suite.repository.BranchCode(ctx, tenantPOL)

	suite.Require().NoError(err)
	suite.Equal("POZ", code)
}

func (suite *FranchiseRepositoryIntegrationTestSuite) TestBranchCode_Missing_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.BranchCode(ctx, tenantPOL)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(suite.database.DB.Create(&franchiserepo.FranchiseDTO{
		ID:   tenantPOL.String(),
		Name: "Poznan",
	}).Error)
	_, err = suite.repository.BranchCode(ctx, tenantPOL)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *FranchiseRepositoryIntegrationTestSuite) TestSave_StoresUpperCaseCode() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, tenantPOL, "Poznan", " pol "))

	code, err := suite.repository.BranchCode(ctx, tenantPOL)

	suite.Require().NoError(err)
	suite.Equal("POL", code)
}

func (suite *FranchiseRepositoryIntegrationTestSuite) TestSave_CodeHeldByAnotherFranchise_Rejected() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, tenantPOL, "Poznan Old Town", "POL"))

	err := suite.repository.Save(ctx, tenantPOZ, "Poznan Lazarz", "pol")
	suite.ErrorIs(err, errs.ErrValueIsInvalid)

	suite.Require().NoError(suite.repository.Save(ctx, tenantPOZ, "Poznan Lazarz", "POZ"))
	err = suite.repository.Save(ctx, tenantPOZ, "Poznan Lazarz", "POL")
	suite.ErrorIs(err, errs.ErrValueIsInvalid)

	code, err := suite.repository.BranchCode(ctx, tenantPOZ)
	suite.Require().NoError(err)
	suite.Equal("POZ", code)
}

func (suite *FranchiseRepositoryIntegrationTestSuite) TestSave_InvalidCode_Rejected() {
	err := suite.repository.Save(context.Background(), tenantPOL, "Poznan", "  ")

	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestFranchiseRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FranchiseRepositoryIntegrationTestSuite))
}
