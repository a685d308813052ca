package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetByName retrieves a department by name within a sector
func (r *DepartmentRepository) GetByName(sectorID uuid.UUID, name string) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "sector_id = ? AND name = ?", sectorID, name).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetBySectorID retrieves all departments for a sector with pagination
func (r *DepartmentRepository) GetBySectorID(sectorID uuid.UUID, limit, offset int) ([]models.Department, int64, error) {
	var departments []models.Department
	var total int64

	if err := r.db.Model(&models.Department{}).Where("sector_id = ?", sectorID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("sector_id = ?", sectorID).Limit(limit).Offset(offset).Order("name").Find(&departments).Error
	if err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

// GetByTenantID retrieves all departments for a tenant with pagination
func (r *DepartmentRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Department, int64, error) {
	var departments []models.Department
	var total int64

	if err := r.db.Model(&models.Department{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).Limit(limit).Offset(offset).Order("name").Find(&departments).Error
	if err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

// GetWithOfficials retrieves a department with its attached officials
func (r *DepartmentRepository) GetWithOfficials(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.Preload("Officials").First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// AddOfficial attaches an official to a department
func (r *DepartmentRepository) AddOfficial(departmentID, personID uuid.UUID) error {
	department := models.Department{BaseModel: models.BaseModel{ID: departmentID}}
	person := models.Person{BaseModel: models.BaseModel{ID: personID}}
	return r.db.Model(&department).Association("Officials").Append(&person)
}

// RemoveOfficial detaches an official from a department
func (r *DepartmentRepository) RemoveOfficial(departmentID, personID uuid.UUID) error {
	department := models.Department{BaseModel: models.BaseModel{ID: departmentID}}
	person := models.Person{BaseModel: models.BaseModel{ID: personID}}
	return r.db.Model(&department).Association("Officials").Delete(&person)
}

// Update updates a department
func (r *DepartmentRepository) Update(department *models.Department) error {
	return r.db.Save(department).Error
}

// Delete deletes a department
func (r *DepartmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Department{}, "id = ?", id).Error
}
