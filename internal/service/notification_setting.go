package service

import (
	"fmt"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/google/uuid"
)

// NotificationSettingService handles notification preference reads and
// writes. A person with no saved row gets the all-enabled defaults.
type NotificationSettingService struct {
	repo       repository.NotificationSettingRepositoryInterface
	personRepo repository.PersonRepositoryInterface
}

// Ensure NotificationSettingService implements its interface
var _ NotificationSettingServiceInterface = (*NotificationSettingService)(nil)

// NewNotificationSettingService creates a new notification setting service
func NewNotificationSettingService(
	repo repository.NotificationSettingRepositoryInterface,
	personRepo repository.PersonRepositoryInterface,
) *NotificationSettingService {
	return &NotificationSettingService{
		repo:       repo,
		personRepo: personRepo,
	}
}

// UpdateNotificationSettingRequest carries the preference flags to save.
// All fields are required so a save is always a full snapshot.
type UpdateNotificationSettingRequest struct {
	EmailEnabled   *bool `json:"email_enabled" validate:"required"`
	TicketCreated  *bool `json:"ticket_created" validate:"required"`
	TicketAssigned *bool `json:"ticket_assigned" validate:"required"`
	TicketResolved *bool `json:"ticket_resolved" validate:"required"`
	SurveyInvite   *bool `json:"survey_invite" validate:"required"`
}

// NotificationSettingResponse represents a person's preferences
type NotificationSettingResponse struct {
	PersonID       uuid.UUID `json:"person_id"`
	EmailEnabled   bool      `json:"email_enabled"`
	TicketCreated  bool      `json:"ticket_created"`
	TicketAssigned bool      `json:"ticket_assigned"`
	TicketResolved bool      `json:"ticket_resolved"`
	SurveyInvite   bool      `json:"survey_invite"`
}

// GetByPersonID returns the person's saved preferences or the defaults.
// People of other tenants are reported as not found.
func (s *NotificationSettingService) GetByPersonID(tenantID, personID uuid.UUID) (*NotificationSettingResponse, error) {
	person, err := s.personRepo.GetByID(personID)
	if err != nil || person.TenantID != tenantID {
		return nil, apperrors.ErrPersonNotFound
	}

	setting, err := s.repo.GetByPersonID(personID)
	if err != nil {
		setting = models.DefaultNotificationSetting(personID)
	}

	return s.convertToResponse(setting), nil
}

// Update saves a person's preferences, creating the row on first save
func (s *NotificationSettingService) Update(tenantID, personID uuid.UUID, req *UpdateNotificationSettingRequest) (*NotificationSettingResponse, error) {
	if req.EmailEnabled == nil || req.TicketCreated == nil || req.TicketAssigned == nil ||
		req.TicketResolved == nil || req.SurveyInvite == nil {
		return nil, apperrors.NewValidationError("", "all preference flags are required")
	}

	person, err := s.personRepo.GetByID(personID)
	if err != nil || person.TenantID != tenantID {
		return nil, apperrors.ErrPersonNotFound
	}

	setting := &models.NotificationSetting{
		PersonID:       personID,
		EmailEnabled:   *req.EmailEnabled,
		TicketCreated:  *req.TicketCreated,
		TicketAssigned: *req.TicketAssigned,
		TicketResolved: *req.TicketResolved,
		SurveyInvite:   *req.SurveyInvite,
	}

	if err := s.repo.Upsert(setting); err != nil {
		return nil, fmt.Errorf("failed to save notification settings: %w", err)
	}

	return s.convertToResponse(setting), nil
}

// convertToResponse converts a NotificationSetting model to API response
func (s *NotificationSettingService) convertToResponse(setting *models.NotificationSetting) *NotificationSettingResponse {
	return &NotificationSettingResponse{
		PersonID:       setting.PersonID,
		EmailEnabled:   setting.EmailEnabled,
		TicketCreated:  setting.TicketCreated,
		TicketAssigned: setting.TicketAssigned,
		TicketResolved: setting.TicketResolved,
		SurveyInvite:   setting.SurveyInvite,
	}
}
