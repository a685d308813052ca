package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyRepository handles database operations for satisfaction surveys
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// Create creates a new satisfaction survey
func (r *SurveyRepository) Create(survey *models.SatisfactionSurvey) error {
	return r.db.Create(survey).Error
}

// GetByID retrieves a survey by ID
func (r *SurveyRepository) GetByID(id uuid.UUID) (*models.SatisfactionSurvey, error) {
	var survey models.SatisfactionSurvey
	err := r.db.First(&survey, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// GetByToken retrieves a survey by its public token
func (r *SurveyRepository) GetByToken(token string) (*models.SatisfactionSurvey, error) {
	var survey models.SatisfactionSurvey
	err := r.db.First(&survey, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// GetByTicketID retrieves the survey for a ticket
func (r *SurveyRepository) GetByTicketID(ticketID uuid.UUID) (*models.SatisfactionSurvey, error) {
	var survey models.SatisfactionSurvey
	err := r.db.First(&survey, "ticket_id = ?", ticketID).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// Update updates a survey
func (r *SurveyRepository) Update(survey *models.SatisfactionSurvey) error {
	return r.db.Save(survey).Error
}

// GetStats aggregates survey counts and the average rating for a tenant
func (r *SurveyRepository) GetStats(tenantID uuid.UUID) (*SurveyStats, error) {
	var stats SurveyStats

	base := r.db.Model(&models.SatisfactionSurvey{}).
		Joins("JOIN tickets ON tickets.id = satisfaction_surveys.ticket_id").
		Where("tickets.tenant_id = ?", tenantID)

	if err := base.Session(&gorm.Session{}).Count(&stats.Sent).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("satisfaction_surveys.status = ?", models.SurveyStatusAnswered).
		Count(&stats.Answered).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("satisfaction_surveys.rating IS NOT NULL").
		Select("COALESCE(AVG(satisfaction_surveys.rating), 0)").
		Scan(&stats.AverageRating).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
