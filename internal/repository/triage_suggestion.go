package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TriageSuggestionRepository handles database operations for triage suggestions
type TriageSuggestionRepository struct {
	db *gorm.DB
}

// NewTriageSuggestionRepository creates a new triage suggestion repository
func NewTriageSuggestionRepository(db *gorm.DB) *TriageSuggestionRepository {
	return &TriageSuggestionRepository{db: db}
}

// Create creates a new triage suggestion
func (r *TriageSuggestionRepository) Create(suggestion *models.TriageSuggestion) error {
	return r.db.Create(suggestion).Error
}

// GetByID retrieves a triage suggestion by ID
func (r *TriageSuggestionRepository) GetByID(id uuid.UUID) (*models.TriageSuggestion, error) {
	var suggestion models.TriageSuggestion
	err := r.db.First(&suggestion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// GetByTicketID retrieves all suggestions for a ticket, newest first
func (r *TriageSuggestionRepository) GetByTicketID(ticketID uuid.UUID) ([]models.TriageSuggestion, error) {
	var suggestions []models.TriageSuggestion
	err := r.db.Where("ticket_id = ?", ticketID).Order("created_at DESC").Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

// GetByStatus retrieves suggestions in a review state with pagination
func (r *TriageSuggestionRepository) GetByStatus(status models.SuggestionStatus, limit, offset int) ([]models.TriageSuggestion, int64, error) {
	var suggestions []models.TriageSuggestion
	var total int64

	query := r.db.Model(&models.TriageSuggestion{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&suggestions).Error
	if err != nil {
		return nil, 0, err
	}

	return suggestions, total, nil
}

// GetPendingByTenant retrieves a tenant's pending suggestions with
// pagination, newest first. Suggestions carry no tenant column, so the
// scope comes from the owning ticket.
func (r *TriageSuggestionRepository) GetPendingByTenant(tenantID uuid.UUID, limit, offset int) ([]models.TriageSuggestion, int64, error) {
	var suggestions []models.TriageSuggestion
	var total int64

	query := r.db.Model(&models.TriageSuggestion{}).
		Joins("JOIN tickets ON tickets.id = triage_suggestions.ticket_id").
		Where("triage_suggestions.status = ? AND tickets.tenant_id = ? AND tickets.deleted_at IS NULL",
			models.SuggestionStatusPending, tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("triage_suggestions.created_at DESC").Find(&suggestions).Error
	if err != nil {
		return nil, 0, err
	}

	return suggestions, total, nil
}

// Update updates a triage suggestion
func (r *TriageSuggestionRepository) Update(suggestion *models.TriageSuggestion) error {
	return r.db.Save(suggestion).Error
}
