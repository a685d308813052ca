package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByEmail retrieves a customer by email within a tenant
func (r *CustomerRepository) GetByEmail(tenantID uuid.UUID, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "tenant_id = ? AND email = ?", tenantID, email).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByTenantID retrieves all customers for a tenant with pagination
func (r *CustomerRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	if err := r.db.Model(&models.Customer{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).Limit(limit).Offset(offset).Order("name").Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Search searches for customers by name, email or company
func (r *CustomerRepository) Search(tenantID uuid.UUID, query string, limit, offset int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	pattern := "%" + query + "%"
	searchQuery := r.db.Model(&models.Customer{}).
		Where("tenant_id = ? AND (name ILIKE ? OR email ILIKE ? OR company ILIKE ?)", tenantID, pattern, pattern, pattern)

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Limit(limit).Offset(offset).Order("name").Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Update updates a customer
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Delete deletes a customer
func (r *CustomerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Customer{}, "id = ?", id).Error
}

// SetActiveStatus sets the active status of a customer
func (r *CustomerRepository) SetActiveStatus(id uuid.UUID, isActive bool) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", id).Update("is_active", isActive).Error
}
