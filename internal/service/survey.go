package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// defaultSurveyTTL bounds how long an invite link stays answerable when
// no TTL is configured
const defaultSurveyTTL = 30 * 24 * time.Hour

// SurveyService handles satisfaction surveys. Surveys are created when a
// ticket is resolved and answered anonymously through an opaque token.
// Unanswered surveys expire after the configured TTL, checked lazily on
// every token read and submit.
type SurveyService struct {
	repo          repository.SurveyRepositoryInterface
	ticketRepo    repository.TicketRepositoryInterface
	notifier      NotificationServiceInterface
	validator     *validator.Validate
	publicBaseURL string
	ttl           time.Duration
}

// Ensure SurveyService implements SurveyServiceInterface
var _ SurveyServiceInterface = (*SurveyService)(nil)

// NewSurveyService creates a new survey service. A non-positive ttl falls
// back to the 30-day default.
func NewSurveyService(
	repo repository.SurveyRepositoryInterface,
	ticketRepo repository.TicketRepositoryInterface,
	notifier NotificationServiceInterface,
	validator *validator.Validate,
	publicBaseURL string,
	ttl time.Duration,
) *SurveyService {
	if ttl <= 0 {
		ttl = defaultSurveyTTL
	}
	return &SurveyService{
		repo:          repo,
		ticketRepo:    ticketRepo,
		notifier:      notifier,
		validator:     validator,
		publicBaseURL: publicBaseURL,
		ttl:           ttl,
	}
}

// SubmitSurveyRequest carries a survey answer
type SubmitSurveyRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// SurveyResponse represents a survey in admin API responses
type SurveyResponse struct {
	ID         uuid.UUID           `json:"id"`
	TicketID   uuid.UUID           `json:"ticket_id"`
	Status     models.SurveyStatus `json:"status"`
	Rating     *int                `json:"rating,omitempty"`
	Comment    string              `json:"comment,omitempty"`
	SentAt     *time.Time          `json:"sent_at,omitempty"`
	AnsweredAt *time.Time          `json:"answered_at,omitempty"`
}

// PublicSurveyResponse is the shape served on the token route. It exposes
// the ticket subject for context but no identifiers beyond the token.
type PublicSurveyResponse struct {
	TicketSubject string              `json:"ticket_subject"`
	Status        models.SurveyStatus `json:"status"`
}

// CreateForTicket creates the survey for a resolved ticket and sends the
// invite. A ticket gets at most one survey.
func (s *SurveyService) CreateForTicket(ticketID uuid.UUID) (*SurveyResponse, error) {
	ticket, err := s.ticketRepo.GetByID(ticketID)
	if err != nil {
		return nil, apperrors.ErrTicketNotFound
	}
	if ticket.Status != models.TicketStatusResolved {
		return nil, apperrors.ErrTicketNotResolved
	}

	if _, err := s.repo.GetByTicketID(ticketID); err == nil {
		return nil, apperrors.ErrSurveyExists
	}

	token, err := generateSurveyToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate survey token: %w", err)
	}

	now := time.Now().UTC()
	survey := &models.SatisfactionSurvey{
		TicketID: ticketID,
		Token:    token,
		Status:   models.SurveyStatusPending,
		SentAt:   &now,
	}

	if err := s.repo.Create(survey); err != nil {
		return nil, fmt.Errorf("failed to create survey: %w", err)
	}

	// Invite failures are logged by the notifier, not surfaced: the survey
	// exists either way and the link can be re-sent.
	_ = s.notifier.NotifyTicketEvent(models.EventSurveyInvite, ticketID, TemplateContext{
		"survey": TemplateContext{
			"link": s.surveyLink(token),
		},
	})

	return s.convertToResponse(survey), nil
}

// SendForTicket creates the survey for a resolved ticket on demand, or
// re-sends the invite when a pending survey already exists. The ticket
// must belong to the caller's tenant.
func (s *SurveyService) SendForTicket(tenantID, ticketID uuid.UUID) (*SurveyResponse, error) {
	ticket, err := s.ticketRepo.GetByID(ticketID)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrTicketNotFound
	}
	if ticket.Status != models.TicketStatusResolved {
		return nil, apperrors.ErrTicketNotResolved
	}

	survey, err := s.repo.GetByTicketID(ticketID)
	if err != nil {
		return s.CreateForTicket(ticketID)
	}

	switch survey.Status {
	case models.SurveyStatusAnswered:
		return nil, apperrors.ErrSurveyAlreadyAnswered
	case models.SurveyStatusExpired:
		return nil, apperrors.ErrSurveyExpired
	}

	// Re-sending restarts the expiry window
	now := time.Now().UTC()
	survey.SentAt = &now
	if err := s.repo.Update(survey); err != nil {
		return nil, fmt.Errorf("failed to update survey: %w", err)
	}

	_ = s.notifier.NotifyTicketEvent(models.EventSurveyInvite, ticketID, TemplateContext{
		"survey": TemplateContext{
			"link": s.surveyLink(survey.Token),
		},
	})

	return s.convertToResponse(survey), nil
}

// GetByTicketID retrieves the survey for a ticket. Tickets of other
// tenants are reported as not found.
func (s *SurveyService) GetByTicketID(tenantID, ticketID uuid.UUID) (*SurveyResponse, error) {
	ticket, err := s.ticketRepo.GetByID(ticketID)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrSurveyNotFound
	}

	survey, err := s.repo.GetByTicketID(ticketID)
	if err != nil {
		return nil, apperrors.ErrSurveyNotFound
	}

	return s.convertToResponse(survey), nil
}

// GetByToken serves the public survey page for a token
func (s *SurveyService) GetByToken(token string) (*PublicSurveyResponse, error) {
	survey, err := s.repo.GetByToken(token)
	if err != nil {
		return nil, apperrors.ErrSurveyNotFound
	}

	if err := s.expireIfDue(survey); err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.GetByID(survey.TicketID)
	if err != nil {
		return nil, apperrors.ErrSurveyNotFound
	}

	return &PublicSurveyResponse{
		TicketSubject: ticket.Subject,
		Status:        survey.Status,
	}, nil
}

// SubmitByToken records a survey answer. Each survey accepts exactly one
// answer; later submissions are rejected.
func (s *SurveyService) SubmitByToken(token string, req *SubmitSurveyRequest) (*SurveyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	survey, err := s.repo.GetByToken(token)
	if err != nil {
		return nil, apperrors.ErrSurveyNotFound
	}

	if err := s.expireIfDue(survey); err != nil {
		return nil, err
	}

	switch survey.Status {
	case models.SurveyStatusAnswered:
		return nil, apperrors.ErrSurveyAlreadyAnswered
	case models.SurveyStatusExpired:
		return nil, apperrors.ErrSurveyExpired
	}

	now := time.Now().UTC()
	rating := req.Rating
	survey.Rating = &rating
	survey.Comment = req.Comment
	survey.Status = models.SurveyStatusAnswered
	survey.AnsweredAt = &now

	if err := s.repo.Update(survey); err != nil {
		return nil, fmt.Errorf("failed to save survey answer: %w", err)
	}

	return s.convertToResponse(survey), nil
}

// expireIfDue moves a pending survey past its TTL to expired and
// persists the transition
func (s *SurveyService) expireIfDue(survey *models.SatisfactionSurvey) error {
	if survey.Status != models.SurveyStatusPending || survey.SentAt == nil {
		return nil
	}
	if time.Since(*survey.SentAt) <= s.ttl {
		return nil
	}

	survey.Status = models.SurveyStatusExpired
	if err := s.repo.Update(survey); err != nil {
		return fmt.Errorf("failed to expire survey: %w", err)
	}
	return nil
}

// surveyLink builds the public URL embedded in invite emails
func (s *SurveyService) surveyLink(token string) string {
	return strings.TrimRight(s.publicBaseURL, "/") + "/surveys/" + token
}

// generateSurveyToken returns 32 random bytes URL-safe base64 encoded
func generateSurveyToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// convertToResponse converts a SatisfactionSurvey model to API response
func (s *SurveyService) convertToResponse(survey *models.SatisfactionSurvey) *SurveyResponse {
	return &SurveyResponse{
		ID:         survey.ID,
		TicketID:   survey.TicketID,
		Status:     survey.Status,
		Rating:     survey.Rating,
		Comment:    survey.Comment,
		SentAt:     survey.SentAt,
		AnsweredAt: survey.AnsweredAt,
	}
}
