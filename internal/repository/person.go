package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonRepository handles database operations for people
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a new person
func (r *PersonRepository) Create(person *models.Person) error {
	return r.db.Create(person).Error
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetByEmail retrieves a person by email
func (r *PersonRepository) GetByEmail(email string) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetByTenantID retrieves people for a tenant, restricted to the given
// roles when roles is non-empty, with pagination
func (r *PersonRepository) GetByTenantID(tenantID uuid.UUID, roles []models.PersonRole, limit, offset int) ([]models.Person, int64, error) {
	var people []models.Person
	var total int64

	query := r.db.Model(&models.Person{}).Where("tenant_id = ?", tenantID)
	if len(roles) > 0 {
		query = query.Where("role IN ?", roles)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("full_name").Find(&people).Error
	if err != nil {
		return nil, 0, err
	}

	return people, total, nil
}

// Search searches for people by name or email, restricted to the given
// roles when roles is non-empty
func (r *PersonRepository) Search(tenantID uuid.UUID, roles []models.PersonRole, query string, limit, offset int) ([]models.Person, int64, error) {
	var people []models.Person
	var total int64

	pattern := "%" + query + "%"
	searchQuery := r.db.Model(&models.Person{}).
		Where("tenant_id = ? AND (full_name ILIKE ? OR email ILIKE ?)", tenantID, pattern, pattern)
	if len(roles) > 0 {
		searchQuery = searchQuery.Where("role IN ?", roles)
	}

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Limit(limit).Offset(offset).Order("full_name").Find(&people).Error
	if err != nil {
		return nil, 0, err
	}

	return people, total, nil
}

// Update updates a person
func (r *PersonRepository) Update(person *models.Person) error {
	return r.db.Save(person).Error
}

// UpdateRole updates a person's role
func (r *PersonRepository) UpdateRole(id uuid.UUID, role models.PersonRole) error {
	return r.db.Model(&models.Person{}).Where("id = ?", id).Update("role", role).Error
}

// Delete deletes a person
func (r *PersonRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Person{}, "id = ?", id).Error
}
