package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationSettingRepository handles database operations for notification settings
type NotificationSettingRepository struct {
	db *gorm.DB
}

// NewNotificationSettingRepository creates a new notification setting repository
func NewNotificationSettingRepository(db *gorm.DB) *NotificationSettingRepository {
	return &NotificationSettingRepository{db: db}
}

// GetByPersonID retrieves the settings row for a person
func (r *NotificationSettingRepository) GetByPersonID(personID uuid.UUID) (*models.NotificationSetting, error) {
	var setting models.NotificationSetting
	err := r.db.First(&setting, "person_id = ?", personID).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert inserts or replaces the settings row for a person
func (r *NotificationSettingRepository) Upsert(setting *models.NotificationSetting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "person_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email_enabled", "ticket_created", "ticket_assigned", "ticket_resolved", "survey_invite", "updated_at",
		}),
	}).Create(setting).Error
}
