package service

import (
	"fmt"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EmailTemplateService handles business logic for notification templates
type EmailTemplateService struct {
	repo      repository.EmailTemplateRepositoryInterface
	validator *validator.Validate
}

// Ensure EmailTemplateService implements EmailTemplateServiceInterface
var _ EmailTemplateServiceInterface = (*EmailTemplateService)(nil)

// NewEmailTemplateService creates a new email template service
func NewEmailTemplateService(repo repository.EmailTemplateRepositoryInterface, validator *validator.Validate) *EmailTemplateService {
	return &EmailTemplateService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEmailTemplateRequest represents the data needed to create a template
type CreateEmailTemplateRequest struct {
	Event   string `json:"event" validate:"required"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required"`
}

// UpdateEmailTemplateRequest represents the data needed to update a template
type UpdateEmailTemplateRequest struct {
	Subject  *string `json:"subject" validate:"omitempty,max=200"`
	Body     *string `json:"body"`
	IsActive *bool   `json:"is_active"`
}

// PreviewRequest renders a template against a caller-supplied context.
// When Context is nil a built-in sample context is used.
type PreviewRequest struct {
	Context TemplateContext `json:"context"`
}

// PreviewDraftRequest renders a subject and body that have not been saved
// yet, so editors can check a template before creating it
type PreviewDraftRequest struct {
	Subject string          `json:"subject" validate:"required,max=200"`
	Body    string          `json:"body" validate:"required"`
	Context TemplateContext `json:"context"`
}

// EmailTemplateResponse represents the response data for a template
type EmailTemplateResponse struct {
	ID        uuid.UUID                `json:"id"`
	TenantID  uuid.UUID                `json:"tenant_id"`
	Event     models.NotificationEvent `json:"event"`
	Subject   string                   `json:"subject"`
	Body      string                   `json:"body"`
	Variables []string                 `json:"variables"`
	IsActive  bool                     `json:"is_active"`
	CreatedAt string                   `json:"created_at"`
	UpdatedAt string                   `json:"updated_at"`
}

// EmailTemplateListResponse represents a paginated list of templates
type EmailTemplateListResponse struct {
	Templates []EmailTemplateResponse `json:"templates"`
	Total     int64                   `json:"total"`
	Page      int                     `json:"page"`
	PageSize  int                     `json:"page_size"`
}

// PreviewResponse carries a rendered subject and body
type PreviewResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SampleTemplateContext is the context used for previews when the caller
// supplies none. Its shape mirrors what the notification dispatcher builds
// for real sends.
func SampleTemplateContext() TemplateContext {
	return TemplateContext{
		"ticket": TemplateContext{
			"id":       "00000000-0000-0000-0000-000000000000",
			"subject":  "Printer on floor 3 is jammed",
			"status":   "open",
			"priority": "medium",
		},
		"customer": TemplateContext{
			"name":    "Acme Corp",
			"email":   "support@acme.example",
			"company": "Acme Corp",
		},
		"person": TemplateContext{
			"first_name": "Jordan",
			"full_name":  "Jordan Reyes",
			"email":      "jordan@acme.example",
		},
		"survey": TemplateContext{
			"link": "https://helpdesk.example/surveys/sample-token",
		},
	}
}

// CreateTemplate creates a new template for a notification event
func (s *EmailTemplateService) CreateTemplate(tenantID uuid.UUID, req *CreateEmailTemplateRequest) (*EmailTemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	event := models.NotificationEvent(req.Event)
	if !models.IsValidNotificationEvent(event) {
		return nil, apperrors.ErrInvalidEvent
	}

	if _, err := s.repo.GetByEvent(tenantID, event); err == nil {
		return nil, apperrors.ErrEmailTemplateExists
	}

	template := &models.EmailTemplate{
		TenantID: tenantID,
		Event:    event,
		Subject:  req.Subject,
		Body:     req.Body,
		IsActive: true,
	}

	if err := s.repo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return s.convertToResponse(template), nil
}

// GetTemplateByID retrieves a template by ID. Templates of other tenants
// are reported as not found.
func (s *EmailTemplateService) GetTemplateByID(tenantID, id uuid.UUID) (*EmailTemplateResponse, error) {
	template, err := s.repo.GetByID(id)
	if err != nil || template.TenantID != tenantID {
		return nil, apperrors.ErrEmailTemplateNotFound
	}

	return s.convertToResponse(template), nil
}

// GetTemplatesByTenant retrieves templates for a tenant with pagination
func (s *EmailTemplateService) GetTemplatesByTenant(tenantID uuid.UUID, page, pageSize int) (*EmailTemplateListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	templates, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}

	responses := make([]EmailTemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = *s.convertToResponse(&template)
	}

	return &EmailTemplateListResponse{
		Templates: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// UpdateTemplate updates a template's subject, body or active flag. The
// bound event never changes; create a template for the other event instead.
func (s *EmailTemplateService) UpdateTemplate(tenantID, id uuid.UUID, req *UpdateEmailTemplateRequest) (*EmailTemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	template, err := s.repo.GetByID(id)
	if err != nil || template.TenantID != tenantID {
		return nil, apperrors.ErrEmailTemplateNotFound
	}

	if req.Subject != nil {
		template.Subject = *req.Subject
	}
	if req.Body != nil {
		template.Body = *req.Body
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := s.repo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	return s.convertToResponse(template), nil
}

// DeleteTemplate deletes a template
func (s *EmailTemplateService) DeleteTemplate(tenantID, id uuid.UUID) error {
	template, err := s.repo.GetByID(id)
	if err != nil || template.TenantID != tenantID {
		return apperrors.ErrEmailTemplateNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}

// PreviewTemplate renders a template against the given context, falling
// back to the sample context. Unknown placeholders stay literal so editors
// can spot typos.
func (s *EmailTemplateService) PreviewTemplate(tenantID, id uuid.UUID, req *PreviewRequest) (*PreviewResponse, error) {
	template, err := s.repo.GetByID(id)
	if err != nil || template.TenantID != tenantID {
		return nil, apperrors.ErrEmailTemplateNotFound
	}

	ctx := SampleTemplateContext()
	if req != nil && req.Context != nil {
		ctx = req.Context
	}

	return &PreviewResponse{
		Subject: RenderTemplate(template.Subject, ctx),
		Body:    RenderTemplate(template.Body, ctx),
	}, nil
}

// PreviewDraft renders an unsaved subject and body the same way
// PreviewTemplate renders stored templates
func (s *EmailTemplateService) PreviewDraft(req *PreviewDraftRequest) (*PreviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ctx := SampleTemplateContext()
	if req.Context != nil {
		ctx = req.Context
	}

	return &PreviewResponse{
		Subject: RenderTemplate(req.Subject, ctx),
		Body:    RenderTemplate(req.Body, ctx),
	}, nil
}

// convertToResponse converts an EmailTemplate model to API response
func (s *EmailTemplateService) convertToResponse(template *models.EmailTemplate) *EmailTemplateResponse {
	return &EmailTemplateResponse{
		ID:        template.ID,
		TenantID:  template.TenantID,
		Event:     template.Event,
		Subject:   template.Subject,
		Body:      template.Body,
		Variables: TemplateVariables(template.Subject + "\n" + template.Body),
		IsActive:  template.IsActive,
		CreatedAt: template.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: template.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
