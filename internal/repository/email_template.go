package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailTemplateRepository handles database operations for email templates
type EmailTemplateRepository struct {
	db *gorm.DB
}

// NewEmailTemplateRepository creates a new email template repository
func NewEmailTemplateRepository(db *gorm.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{db: db}
}

// Create creates a new email template
func (r *EmailTemplateRepository) Create(template *models.EmailTemplate) error {
	return r.db.Create(template).Error
}

// GetByID retrieves an email template by ID
func (r *EmailTemplateRepository) GetByID(id uuid.UUID) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByEvent retrieves the template bound to an event within a tenant
func (r *EmailTemplateRepository) GetByEvent(tenantID uuid.UUID, event models.NotificationEvent) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	err := r.db.First(&template, "tenant_id = ? AND event = ?", tenantID, event).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByTenantID retrieves all email templates for a tenant with pagination
func (r *EmailTemplateRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.EmailTemplate, int64, error) {
	var templates []models.EmailTemplate
	var total int64

	if err := r.db.Model(&models.EmailTemplate{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).Limit(limit).Offset(offset).Order("event").Find(&templates).Error
	if err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

// Update updates an email template
func (r *EmailTemplateRepository) Update(template *models.EmailTemplate) error {
	return r.db.Save(template).Error
}

// Delete deletes an email template
func (r *EmailTemplateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EmailTemplate{}, "id = ?", id).Error
}
