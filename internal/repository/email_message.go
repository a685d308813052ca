package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailMessageRepository handles database operations for outbound emails
type EmailMessageRepository struct {
	db *gorm.DB
}

// NewEmailMessageRepository creates a new email message repository
func NewEmailMessageRepository(db *gorm.DB) *EmailMessageRepository {
	return &EmailMessageRepository{db: db}
}

// Create creates a new email message
func (r *EmailMessageRepository) Create(message *models.EmailMessage) error {
	return r.db.Create(message).Error
}

// GetByID retrieves an email message by ID
func (r *EmailMessageRepository) GetByID(id uuid.UUID) (*models.EmailMessage, error) {
	var message models.EmailMessage
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// GetByStatus retrieves messages in a delivery state, oldest first
func (r *EmailMessageRepository) GetByStatus(status models.EmailStatus, limit int) ([]models.EmailMessage, error) {
	var messages []models.EmailMessage
	err := r.db.Where("status = ?", status).Order("created_at").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Update updates an email message
func (r *EmailMessageRepository) Update(message *models.EmailMessage) error {
	return r.db.Save(message).Error
}
