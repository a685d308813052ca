package repository

import (
	"testing"

	"helpdesk-admin-backend/internal/database/models"
	"helpdesk-admin-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// InventoryRepositoryTestSuite tests the InventoryRepository
type InventoryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *InventoryRepository
	factories     *testutils.FactorySet
	tenant        *models.Tenant
}

func (suite *InventoryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewInventoryRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *InventoryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *InventoryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenant = suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)
}

func (suite *InventoryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *InventoryRepositoryTestSuite) TestCreateAndGetProductBySKU() {
	product := suite.factories.Product.WithTenant(suite.tenant.ID)
	product.SKU = "MON-24-DELL"
	suite.NoError(suite.repo.CreateProduct(product))

	retrieved, err := suite.repo.GetProductBySKU(suite.tenant.ID, "MON-24-DELL")
	suite.NoError(err)
	suite.Equal(product.ID, retrieved.ID)

	_, err = suite.repo.GetProductBySKU(suite.tenant.ID, "MON-27-LG")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *InventoryRepositoryTestSuite) TestGetProductsByTenantIDCategoryFilter() {
	monitor := suite.factories.Product.WithTenant(suite.tenant.ID)
	monitor.Category = "monitors"
	suite.NoError(suite.repo.CreateProduct(monitor))

	keyboard := suite.factories.Product.WithTenant(suite.tenant.ID)
	keyboard.Category = "peripherals"
	suite.NoError(suite.repo.CreateProduct(keyboard))

	products, total, err := suite.repo.GetProductsByTenantID(suite.tenant.ID, "", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(products, 2)

	products, total, err = suite.repo.GetProductsByTenantID(suite.tenant.ID, "monitors", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(monitor.ID, products[0].ID)
}

func (suite *InventoryRepositoryTestSuite) TestGetLowStockExcludesRetired() {
	low := suite.factories.Product.WithQuantity(suite.tenant.ID, 1, 3)
	suite.NoError(suite.repo.CreateProduct(low))

	healthy := suite.factories.Product.WithQuantity(suite.tenant.ID, 10, 3)
	suite.NoError(suite.repo.CreateProduct(healthy))

	retired := suite.factories.Product.WithQuantity(suite.tenant.ID, 0, 3)
	retired.Status = models.ProductStatusRetired
	suite.NoError(suite.repo.CreateProduct(retired))

	products, err := suite.repo.GetLowStock(suite.tenant.ID)
	suite.NoError(err)
	suite.Len(products, 1)
	suite.Equal(low.ID, products[0].ID)
}

func (suite *InventoryRepositoryTestSuite) TestCreateMovementAdjustsQuantity() {
	product := suite.factories.Product.WithQuantity(suite.tenant.ID, 10, 2)
	suite.NoError(suite.repo.CreateProduct(product))

	in := &models.InventoryMovement{
		ProductID: product.ID,
		Type:      models.MovementIn,
		Quantity:  5,
		Note:      "restock",
	}
	suite.NoError(suite.repo.CreateMovement(in))

	retrieved, err := suite.repo.GetProductByID(product.ID)
	suite.NoError(err)
	suite.Equal(15, retrieved.Quantity)

	out := &models.InventoryMovement{
		ProductID: product.ID,
		Type:      models.MovementOut,
		Quantity:  3,
	}
	suite.NoError(suite.repo.CreateMovement(out))

	retrieved, err = suite.repo.GetProductByID(product.ID)
	suite.NoError(err)
	suite.Equal(12, retrieved.Quantity)
}

func (suite *InventoryRepositoryTestSuite) TestGetMovementsByProductID() {
	product := suite.factories.Product.WithTenant(suite.tenant.ID)
	suite.NoError(suite.repo.CreateProduct(product))

	for i := 0; i < 3; i++ {
		movement := &models.InventoryMovement{
			ProductID: product.ID,
			Type:      models.MovementIn,
			Quantity:  1,
		}
		suite.NoError(suite.repo.CreateMovement(movement))
	}

	movements, total, err := suite.repo.GetMovementsByProductID(product.ID, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(movements, 2)
}

func (suite *InventoryRepositoryTestSuite) TestDeleteProduct() {
	product := suite.factories.Product.WithTenant(suite.tenant.ID)
	suite.NoError(suite.repo.CreateProduct(product))

	suite.NoError(suite.repo.DeleteProduct(product.ID))

	_, err := suite.repo.GetProductByID(product.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func TestInventoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepositoryTestSuite))
}
