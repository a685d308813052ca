package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2/clientcredentials"
)

// TriageConfig holds the AI provider connection settings
type TriageConfig struct {
	APIURL       string
	OAuthURL     string
	ClientID     string
	ClientSecret string
	Model        string
}

// TriageService requests routing/priority suggestions from the AI
// provider and manages their review lifecycle. Suggestions are only ever
// applied through an explicit accept.
type TriageService struct {
	repo       repository.TriageSuggestionRepositoryInterface
	ticketRepo repository.TicketRepositoryInterface
	sectorRepo repository.SectorRepositoryInterface
	deptRepo   repository.DepartmentRepositoryInterface
	cfg        TriageConfig
	httpClient *http.Client
}

// Ensure TriageService implements TriageServiceInterface
var _ TriageServiceInterface = (*TriageService)(nil)

// NewTriageService creates a new triage service. The HTTP client carries
// the OAuth2 client-credentials transport, which caches and refreshes the
// provider token transparently.
func NewTriageService(
	repo repository.TriageSuggestionRepositoryInterface,
	ticketRepo repository.TicketRepositoryInterface,
	sectorRepo repository.SectorRepositoryInterface,
	deptRepo repository.DepartmentRepositoryInterface,
	cfg TriageConfig,
) *TriageService {
	s := &TriageService{
		repo:       repo,
		ticketRepo: ticketRepo,
		sectorRepo: sectorRepo,
		deptRepo:   deptRepo,
		cfg:        cfg,
	}

	if cfg.APIURL != "" && cfg.OAuthURL != "" {
		oauthCfg := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.OAuthURL,
		}
		s.httpClient = oauthCfg.Client(context.Background())
		s.httpClient.Timeout = 15 * time.Second
	}

	return s
}

// triageCandidate is a sector or department offered to the provider
type triageCandidate struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Departments []triageCandidate `json:"departments,omitempty"`
}

// triageRequest is the payload sent to the provider
type triageRequest struct {
	Model       string            `json:"model"`
	Subject     string            `json:"subject"`
	Description string            `json:"description"`
	Sectors     []triageCandidate `json:"sectors"`
}

// triageProviderResponse is the provider's suggestion payload
type triageProviderResponse struct {
	SectorID     *uuid.UUID `json:"sector_id"`
	DepartmentID *uuid.UUID `json:"department_id"`
	Priority     string     `json:"priority"`
	Confidence   float64    `json:"confidence"`
	Rationale    string     `json:"rationale"`
}

// SuggestionListResponse represents a paginated list of suggestions
type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// SuggestionResponse represents a triage suggestion in API responses
type SuggestionResponse struct {
	ID           uuid.UUID               `json:"id"`
	TicketID     uuid.UUID               `json:"ticket_id"`
	SectorID     *uuid.UUID              `json:"sector_id,omitempty"`
	DepartmentID *uuid.UUID              `json:"department_id,omitempty"`
	Priority     models.TicketPriority   `json:"priority"`
	Confidence   float64                 `json:"confidence"`
	Model        string                  `json:"model"`
	Rationale    string                  `json:"rationale"`
	Status       models.SuggestionStatus `json:"status"`
	CreatedAt    string                  `json:"created_at"`
}

// RequestSuggestion asks the provider for a routing suggestion on a
// ticket and stores it pending review. Tickets of other tenants are
// reported as not found.
func (s *TriageService) RequestSuggestion(ctx context.Context, tenantID, ticketID uuid.UUID) (*SuggestionResponse, error) {
	if s.httpClient == nil {
		return nil, apperrors.ErrTriageProviderNotConfigured
	}

	ticket, err := s.ticketRepo.GetByID(ticketID)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrTicketNotFound
	}
	if ticket.Status == models.TicketStatusClosed {
		return nil, apperrors.ErrTicketClosed
	}

	candidates, err := s.buildCandidates(ticket.TenantID)
	if err != nil {
		return nil, err
	}

	payload := triageRequest{
		Model:       s.cfg.Model,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Sectors:     candidates,
	}

	provider, err := s.callProvider(ctx, &payload)
	if err != nil {
		return nil, err
	}

	priority := models.TicketPriority(provider.Priority)
	if !models.IsValidTicketPriority(priority) {
		priority = ticket.Priority
	}

	suggestion := &models.TriageSuggestion{
		TicketID:     ticketID,
		SectorID:     provider.SectorID,
		DepartmentID: provider.DepartmentID,
		Priority:     priority,
		Confidence:   provider.Confidence,
		Model:        s.cfg.Model,
		Rationale:    provider.Rationale,
		Status:       models.SuggestionStatusPending,
	}

	if err := s.repo.Create(suggestion); err != nil {
		return nil, fmt.Errorf("failed to store suggestion: %w", err)
	}

	return s.convertToResponse(suggestion), nil
}

// GetSuggestionsByTicket lists the suggestions recorded for a ticket
func (s *TriageService) GetSuggestionsByTicket(tenantID, ticketID uuid.UUID) ([]SuggestionResponse, error) {
	ticket, err := s.ticketRepo.GetByID(ticketID)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrTicketNotFound
	}

	suggestions, err := s.repo.GetByTicketID(ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestions: %w", err)
	}

	responses := make([]SuggestionResponse, len(suggestions))
	for i, suggestion := range suggestions {
		responses[i] = *s.convertToResponse(&suggestion)
	}
	return responses, nil
}

// ListPendingSuggestions lists a tenant's suggestions awaiting review,
// newest first
func (s *TriageService) ListPendingSuggestions(tenantID uuid.UUID, page, pageSize int) (*SuggestionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	suggestions, total, err := s.repo.GetPendingByTenant(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending suggestions: %w", err)
	}

	responses := make([]SuggestionResponse, len(suggestions))
	for i, suggestion := range suggestions {
		responses[i] = *s.convertToResponse(&suggestion)
	}

	return &SuggestionListResponse{
		Suggestions: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// AcceptSuggestion applies a pending suggestion's routing and priority to
// its ticket and marks it accepted. The suggestion's ticket must belong
// to the caller's tenant.
func (s *TriageService) AcceptSuggestion(tenantID, id uuid.UUID) (*SuggestionResponse, error) {
	suggestion, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSuggestionNotFound
	}

	ticket, err := s.ticketRepo.GetByID(suggestion.TicketID)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrSuggestionNotFound
	}

	if suggestion.Status != models.SuggestionStatusPending {
		return nil, apperrors.ErrSuggestionNotPending
	}
	if ticket.Status == models.TicketStatusClosed {
		return nil, apperrors.ErrTicketClosed
	}

	if suggestion.SectorID != nil {
		ticket.SectorID = suggestion.SectorID
	}
	if suggestion.DepartmentID != nil {
		ticket.DepartmentID = suggestion.DepartmentID
	}
	if suggestion.Priority != "" {
		ticket.Priority = suggestion.Priority
	}

	if err := s.ticketRepo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to apply suggestion: %w", err)
	}

	suggestion.Status = models.SuggestionStatusAccepted
	if err := s.repo.Update(suggestion); err != nil {
		return nil, fmt.Errorf("failed to update suggestion: %w", err)
	}

	return s.convertToResponse(suggestion), nil
}

// RejectSuggestion marks a pending suggestion rejected without touching
// the ticket
func (s *TriageService) RejectSuggestion(tenantID, id uuid.UUID) (*SuggestionResponse, error) {
	suggestion, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSuggestionNotFound
	}

	ticket, err := s.ticketRepo.GetByID(suggestion.TicketID)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrSuggestionNotFound
	}

	if suggestion.Status != models.SuggestionStatusPending {
		return nil, apperrors.ErrSuggestionNotPending
	}

	suggestion.Status = models.SuggestionStatusRejected
	if err := s.repo.Update(suggestion); err != nil {
		return nil, fmt.Errorf("failed to update suggestion: %w", err)
	}

	return s.convertToResponse(suggestion), nil
}

// buildCandidates collects the tenant's sectors and their departments to
// offer the provider as routing targets
func (s *TriageService) buildCandidates(tenantID uuid.UUID) ([]triageCandidate, error) {
	sectors, _, err := s.sectorRepo.GetByTenantID(tenantID, 100, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load sectors: %w", err)
	}

	candidates := make([]triageCandidate, 0, len(sectors))
	for _, sector := range sectors {
		candidate := triageCandidate{ID: sector.ID, Name: sector.Name}
		departments, _, err := s.deptRepo.GetBySectorID(sector.ID, 100, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load departments: %w", err)
		}
		for _, dept := range departments {
			candidate.Departments = append(candidate.Departments, triageCandidate{ID: dept.ID, Name: dept.Name})
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// callProvider posts the triage request and decodes the suggestion
func (s *TriageService) callProvider(ctx context.Context, payload *triageRequest) (*triageProviderResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal triage request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL+"/v1/triage", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build triage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTriageRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrTriageRequestFailed, resp.StatusCode, string(snippet))
	}

	var provider triageProviderResponse
	if err := json.NewDecoder(resp.Body).Decode(&provider); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", apperrors.ErrTriageRequestFailed, err)
	}

	return &provider, nil
}

// convertToResponse converts a TriageSuggestion model to API response
func (s *TriageService) convertToResponse(suggestion *models.TriageSuggestion) *SuggestionResponse {
	return &SuggestionResponse{
		ID:           suggestion.ID,
		TicketID:     suggestion.TicketID,
		SectorID:     suggestion.SectorID,
		DepartmentID: suggestion.DepartmentID,
		Priority:     suggestion.Priority,
		Confidence:   suggestion.Confidence,
		Model:        suggestion.Model,
		Rationale:    suggestion.Rationale,
		Status:       suggestion.Status,
		CreatedAt:    suggestion.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
