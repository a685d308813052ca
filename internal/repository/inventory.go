package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryRepository handles database operations for inventory products
// and movements
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// CreateProduct creates a new inventory product
func (r *InventoryRepository) CreateProduct(product *models.InventoryProduct) error {
	return r.db.Create(product).Error
}

// GetProductByID retrieves a product by ID
func (r *InventoryRepository) GetProductByID(id uuid.UUID) (*models.InventoryProduct, error) {
	var product models.InventoryProduct
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductBySKU retrieves a product by SKU within a tenant
func (r *InventoryRepository) GetProductBySKU(tenantID uuid.UUID, sku string) (*models.InventoryProduct, error) {
	var product models.InventoryProduct
	err := r.db.First(&product, "tenant_id = ? AND sku = ?", tenantID, sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductsByTenantID retrieves products for a tenant, optionally
// filtered by category, with pagination
func (r *InventoryRepository) GetProductsByTenantID(tenantID uuid.UUID, category string, limit, offset int) ([]models.InventoryProduct, int64, error) {
	var products []models.InventoryProduct
	var total int64

	query := r.db.Model(&models.InventoryProduct{}).Where("tenant_id = ?", tenantID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("name").Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetLowStock retrieves products whose quantity is at or below their
// minimum quantity
func (r *InventoryRepository) GetLowStock(tenantID uuid.UUID) ([]models.InventoryProduct, error) {
	var products []models.InventoryProduct
	err := r.db.
		Where("tenant_id = ? AND quantity <= min_quantity AND status <> ?", tenantID, models.ProductStatusRetired).
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct updates a product
func (r *InventoryRepository) UpdateProduct(product *models.InventoryProduct) error {
	return r.db.Save(product).Error
}

// DeleteProduct deletes a product
func (r *InventoryRepository) DeleteProduct(id uuid.UUID) error {
	return r.db.Delete(&models.InventoryProduct{}, "id = ?", id).Error
}

// CreateMovement records a stock movement and adjusts the product
// quantity in the same transaction
func (r *InventoryRepository) CreateMovement(movement *models.InventoryMovement) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(movement).Error; err != nil {
			return err
		}

		delta := movement.Quantity
		if movement.Type == models.MovementOut {
			delta = -delta
		}

		return tx.Model(&models.InventoryProduct{}).
			Where("id = ?", movement.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", delta)).Error
	})
}

// GetMovementsByProductID retrieves movements for a product with pagination
func (r *InventoryRepository) GetMovementsByProductID(productID uuid.UUID, limit, offset int) ([]models.InventoryMovement, int64, error) {
	var movements []models.InventoryMovement
	var total int64

	if err := r.db.Model(&models.InventoryMovement{}).Where("product_id = ?", productID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("product_id = ?", productID).Limit(limit).Offset(offset).Order("created_at DESC").Find(&movements).Error
	if err != nil {
		return nil, 0, err
	}

	return movements, total, nil
}
