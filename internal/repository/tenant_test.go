package repository

import (
	"testing"

	"helpdesk-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
	factories     *testutils.FactorySet
}

func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TenantRepositoryTestSuite) TestCreateAndGetByID() {
	tenant := suite.factories.Tenant.Create()

	err := suite.repo.Create(tenant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(tenant.Name, retrieved.Name)
	suite.Equal(tenant.Slug, retrieved.Slug)
	suite.True(retrieved.IsActive)
}

func (suite *TenantRepositoryTestSuite) TestGetByIDNotFound() {
	tenant, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(tenant)
}

func (suite *TenantRepositoryTestSuite) TestGetBySlug() {
	tenant := suite.factories.Tenant.WithName("Acme Corporation", "acme")
	suite.NoError(suite.repo.Create(tenant))

	retrieved, err := suite.repo.GetBySlug("acme")
	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)
	suite.Equal("Acme Corporation", retrieved.Name)
}

func (suite *TenantRepositoryTestSuite) TestGetAllOrdersByName() {
	suite.NoError(suite.repo.Create(suite.factories.Tenant.WithName("Globex", "globex")))
	suite.NoError(suite.repo.Create(suite.factories.Tenant.WithName("Acme", "acme")))
	suite.NoError(suite.repo.Create(suite.factories.Tenant.WithName("Initech", "initech")))

	tenants, total, err := suite.repo.GetAll(10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(tenants, 3)
	suite.Equal("Acme", tenants[0].Name)
	suite.Equal("Globex", tenants[1].Name)
	suite.Equal("Initech", tenants[2].Name)
}

func (suite *TenantRepositoryTestSuite) TestGetAllPagination() {
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Tenant.Create()))
	}

	tenants, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(tenants, 2)

	tenants, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(tenants, 1)
}

func (suite *TenantRepositoryTestSuite) TestUpdate() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	tenant.IsActive = false
	suite.NoError(suite.repo.Update(tenant))

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.False(retrieved.IsActive)
}

func (suite *TenantRepositoryTestSuite) TestDelete() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	suite.NoError(suite.repo.Delete(tenant.ID))

	_, err := suite.repo.GetByID(tenant.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
