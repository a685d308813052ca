package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectorRepository handles database operations for sectors
type SectorRepository struct {
	db *gorm.DB
}

// NewSectorRepository creates a new sector repository
func NewSectorRepository(db *gorm.DB) *SectorRepository {
	return &SectorRepository{db: db}
}

// Create creates a new sector
func (r *SectorRepository) Create(sector *models.Sector) error {
	return r.db.Create(sector).Error
}

// GetByID retrieves a sector by ID
func (r *SectorRepository) GetByID(id uuid.UUID) (*models.Sector, error) {
	var sector models.Sector
	err := r.db.First(&sector, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sector, nil
}

// GetByName retrieves a sector by name within a tenant
func (r *SectorRepository) GetByName(tenantID uuid.UUID, name string) (*models.Sector, error) {
	var sector models.Sector
	err := r.db.First(&sector, "tenant_id = ? AND name = ?", tenantID, name).Error
	if err != nil {
		return nil, err
	}
	return &sector, nil
}

// GetByTenantID retrieves all sectors for a tenant with pagination
func (r *SectorRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Sector, int64, error) {
	var sectors []models.Sector
	var total int64

	if err := r.db.Model(&models.Sector{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).Limit(limit).Offset(offset).Order("name").Find(&sectors).Error
	if err != nil {
		return nil, 0, err
	}

	return sectors, total, nil
}

// GetWithDepartments retrieves a sector with its departments
func (r *SectorRepository) GetWithDepartments(id uuid.UUID) (*models.Sector, error) {
	var sector models.Sector
	err := r.db.Preload("Departments").First(&sector, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sector, nil
}

// Update updates a sector
func (r *SectorRepository) Update(sector *models.Sector) error {
	return r.db.Save(sector).Error
}

// Delete deletes a sector
func (r *SectorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Sector{}, "id = ?", id).Error
}
