package service

import (
	"fmt"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TicketService handles business logic for tickets
type TicketService struct {
	repo         repository.TicketRepositoryInterface
	customerRepo repository.CustomerRepositoryInterface
	personRepo   repository.PersonRepositoryInterface
	sectorRepo   repository.SectorRepositoryInterface
	deptRepo     repository.DepartmentRepositoryInterface
	notifier     NotificationServiceInterface
	surveys      SurveyServiceInterface
	validator    *validator.Validate
	log          *logrus.Logger
}

// Ensure TicketService implements TicketServiceInterface
var _ TicketServiceInterface = (*TicketService)(nil)

// NewTicketService creates a new ticket service
func NewTicketService(
	repo repository.TicketRepositoryInterface,
	customerRepo repository.CustomerRepositoryInterface,
	personRepo repository.PersonRepositoryInterface,
	sectorRepo repository.SectorRepositoryInterface,
	deptRepo repository.DepartmentRepositoryInterface,
	notifier NotificationServiceInterface,
	surveys SurveyServiceInterface,
	validator *validator.Validate,
	log *logrus.Logger,
) *TicketService {
	if log == nil {
		log = logrus.New()
	}
	return &TicketService{
		repo:         repo,
		customerRepo: customerRepo,
		personRepo:   personRepo,
		sectorRepo:   sectorRepo,
		deptRepo:     deptRepo,
		notifier:     notifier,
		surveys:      surveys,
		validator:    validator,
		log:          log,
	}
}

// CreateTicketRequest represents the data needed to create a ticket
type CreateTicketRequest struct {
	CustomerID   uuid.UUID  `json:"customer_id" validate:"required"`
	RequesterID  *uuid.UUID `json:"requester_id"`
	SectorID     *uuid.UUID `json:"sector_id"`
	DepartmentID *uuid.UUID `json:"department_id"`
	Subject      string     `json:"subject" validate:"required,max=200"`
	Description  string     `json:"description" validate:"max=5000"`
	Priority     *string    `json:"priority"` // low, medium, high, urgent; defaults to medium
}

// UpdateTicketRequest represents the data needed to update a ticket
type UpdateTicketRequest struct {
	Subject      *string    `json:"subject" validate:"omitempty,max=200"`
	Description  *string    `json:"description" validate:"omitempty,max=5000"`
	Priority     *string    `json:"priority"`
	SectorID     *uuid.UUID `json:"sector_id"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

// AssignTicketRequest assigns a ticket to an official
type AssignTicketRequest struct {
	OfficialID uuid.UUID `json:"official_id" validate:"required"`
}

// UpdateTicketStatusRequest changes a ticket's lifecycle state
type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TicketListFilters narrows ticket list endpoints
type TicketListFilters struct {
	Status     string
	Priority   string
	SectorID   *uuid.UUID
	OfficialID *uuid.UUID
	CustomerID *uuid.UUID
}

// TicketResponse represents the response data for a ticket
type TicketResponse struct {
	ID           uuid.UUID             `json:"id"`
	TenantID     uuid.UUID             `json:"tenant_id"`
	CustomerID   uuid.UUID             `json:"customer_id"`
	RequesterID  *uuid.UUID            `json:"requester_id,omitempty"`
	OfficialID   *uuid.UUID            `json:"official_id,omitempty"`
	SectorID     *uuid.UUID            `json:"sector_id,omitempty"`
	DepartmentID *uuid.UUID            `json:"department_id,omitempty"`
	Subject      string                `json:"subject"`
	Description  string                `json:"description"`
	Status       models.TicketStatus   `json:"status"`
	Priority     models.TicketPriority `json:"priority"`
	CustomerName string                `json:"customer_name,omitempty"`
	OfficialName string                `json:"official_name,omitempty"`
	SectorName   string                `json:"sector_name,omitempty"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

// TicketListResponse represents a paginated list of tickets
type TicketListResponse struct {
	Tickets  []TicketResponse `json:"tickets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateTicket creates a new ticket and notifies the requester
func (s *TicketService) CreateTicket(tenantID uuid.UUID, req *CreateTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	customer, err := s.customerRepo.GetByID(req.CustomerID)
	if err != nil || customer.TenantID != tenantID {
		return nil, apperrors.ErrCustomerNotFound
	}

	if req.RequesterID != nil {
		requester, err := s.personRepo.GetByID(*req.RequesterID)
		if err != nil || requester.TenantID != tenantID {
			return nil, apperrors.ErrPersonNotFound
		}
	}

	priority := models.TicketPriorityMedium
	if req.Priority != nil {
		priority = models.TicketPriority(*req.Priority)
		if !models.IsValidTicketPriority(priority) {
			return nil, apperrors.ErrInvalidPriority
		}
	}

	if err := s.validateRouting(tenantID, req.SectorID, req.DepartmentID); err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		TenantID:     tenantID,
		CustomerID:   req.CustomerID,
		RequesterID:  req.RequesterID,
		SectorID:     req.SectorID,
		DepartmentID: req.DepartmentID,
		Subject:      req.Subject,
		Description:  req.Description,
		Status:       models.TicketStatusOpen,
		Priority:     priority,
	}

	if err := s.repo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.notify(models.EventTicketCreated, ticket.ID)

	return s.convertToResponse(ticket), nil
}

// GetTicketByID retrieves a ticket with its relations. Tickets of other
// tenants are reported as not found.
func (s *TicketService) GetTicketByID(tenantID, id uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.repo.GetWithRelations(id)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrTicketNotFound
	}

	return s.convertToResponse(ticket), nil
}

// GetTicketsByTenant retrieves tickets for a tenant with filters
func (s *TicketService) GetTicketsByTenant(tenantID uuid.UUID, filters TicketListFilters, page, pageSize int) (*TicketListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	repoFilters := repository.TicketFilters{
		SectorID:   filters.SectorID,
		OfficialID: filters.OfficialID,
		CustomerID: filters.CustomerID,
	}
	if filters.Status != "" {
		status := models.TicketStatus(filters.Status)
		if !models.IsValidTicketStatus(status) {
			return nil, apperrors.ErrInvalidStatus
		}
		repoFilters.Status = status
	}
	if filters.Priority != "" {
		priority := models.TicketPriority(filters.Priority)
		if !models.IsValidTicketPriority(priority) {
			return nil, apperrors.ErrInvalidPriority
		}
		repoFilters.Priority = priority
	}

	offset := (page - 1) * pageSize
	tickets, total, err := s.repo.GetByTenantID(tenantID, repoFilters, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	responses := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = *s.convertToResponse(&ticket)
	}

	return &TicketListResponse{
		Tickets:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateTicket updates a ticket's editable fields. Closed tickets are
// immutable.
func (s *TicketService) UpdateTicket(tenantID, id uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ticket, err := s.repo.GetByID(id)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrTicketNotFound
	}
	if ticket.Status == models.TicketStatusClosed {
		return nil, apperrors.ErrTicketClosed
	}

	if req.Priority != nil {
		priority := models.TicketPriority(*req.Priority)
		if !models.IsValidTicketPriority(priority) {
			return nil, apperrors.ErrInvalidPriority
		}
		ticket.Priority = priority
	}
	if req.SectorID != nil || req.DepartmentID != nil {
		sectorID := ticket.SectorID
		deptID := ticket.DepartmentID
		if req.SectorID != nil {
			sectorID = req.SectorID
		}
		if req.DepartmentID != nil {
			deptID = req.DepartmentID
		}
		if err := s.validateRouting(ticket.TenantID, sectorID, deptID); err != nil {
			return nil, err
		}
		ticket.SectorID = sectorID
		ticket.DepartmentID = deptID
	}
	if req.Subject != nil {
		ticket.Subject = *req.Subject
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}

	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	return s.convertToResponse(ticket), nil
}

// AssignTicket assigns a ticket to an official and notifies them. Open
// tickets move to in_progress on assignment.
func (s *TicketService) AssignTicket(tenantID, id uuid.UUID, req *AssignTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ticket, err := s.repo.GetByID(id)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrTicketNotFound
	}
	if ticket.Status == models.TicketStatusClosed {
		return nil, apperrors.ErrTicketClosed
	}

	official, err := s.personRepo.GetByID(req.OfficialID)
	if err != nil || official.TenantID != ticket.TenantID {
		return nil, apperrors.ErrPersonNotFound
	}
	if RoleRank(official.Role) < RoleRank(models.PersonRoleOfficial) {
		return nil, apperrors.ErrPersonNotOfficial
	}

	ticket.OfficialID = &official.ID
	if ticket.Status == models.TicketStatusOpen {
		ticket.Status = models.TicketStatusInProgress
	}

	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to assign ticket: %w", err)
	}

	s.notify(models.EventTicketAssigned, ticket.ID)

	return s.convertToResponse(ticket), nil
}

// UpdateTicketStatus changes a ticket's status. Resolving a ticket
// notifies the requester and creates the satisfaction survey.
func (s *TicketService) UpdateTicketStatus(tenantID, id uuid.UUID, req *UpdateTicketStatusRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.TicketStatus(req.Status)
	if !models.IsValidTicketStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	ticket, err := s.repo.GetByID(id)
	if err != nil || ticket.TenantID != tenantID {
		return nil, apperrors.ErrTicketNotFound
	}
	if ticket.Status == models.TicketStatusClosed && status != models.TicketStatusOpen {
		return nil, apperrors.ErrTicketClosed
	}
	if ticket.Status == status {
		return s.convertToResponse(ticket), nil
	}

	ticket.Status = status
	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}

	if status == models.TicketStatusResolved {
		s.notify(models.EventTicketResolved, ticket.ID)
		if _, err := s.surveys.CreateForTicket(ticket.ID); err != nil && !apperrors.IsAlreadyExists(err) {
			s.log.WithFields(logrus.Fields{
				"ticket_id": ticket.ID,
				"error":     err.Error(),
			}).Warn("Failed to create satisfaction survey")
		}
	}

	return s.convertToResponse(ticket), nil
}

// validateRouting checks that the sector and department exist, belong to
// the tenant, and that the department belongs to the sector
func (s *TicketService) validateRouting(tenantID uuid.UUID, sectorID, deptID *uuid.UUID) error {
	if deptID != nil && sectorID == nil {
		return apperrors.NewValidationError("department_id", "a department requires its sector")
	}
	if sectorID != nil {
		sector, err := s.sectorRepo.GetByID(*sectorID)
		if err != nil || sector.TenantID != tenantID {
			return apperrors.ErrSectorNotFound
		}
	}
	if deptID != nil {
		dept, err := s.deptRepo.GetByID(*deptID)
		if err != nil || dept.TenantID != tenantID {
			return apperrors.ErrDepartmentNotFound
		}
		if sectorID != nil && dept.SectorID != *sectorID {
			return apperrors.NewValidationError("department_id", "department does not belong to the sector")
		}
	}
	return nil
}

// notify dispatches a ticket event, logging rather than propagating
// failures
func (s *TicketService) notify(event models.NotificationEvent, ticketID uuid.UUID) {
	if err := s.notifier.NotifyTicketEvent(event, ticketID, nil); err != nil {
		s.log.WithFields(logrus.Fields{
			"ticket_id": ticketID,
			"event":     event,
			"error":     err.Error(),
		}).Warn("Failed to dispatch ticket notification")
	}
}

// convertToResponse converts a Ticket model to API response
func (s *TicketService) convertToResponse(ticket *models.Ticket) *TicketResponse {
	resp := &TicketResponse{
		ID:           ticket.ID,
		TenantID:     ticket.TenantID,
		CustomerID:   ticket.CustomerID,
		RequesterID:  ticket.RequesterID,
		OfficialID:   ticket.OfficialID,
		SectorID:     ticket.SectorID,
		DepartmentID: ticket.DepartmentID,
		Subject:      ticket.Subject,
		Description:  ticket.Description,
		Status:       ticket.Status,
		Priority:     ticket.Priority,
		CreatedAt:    ticket.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    ticket.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if ticket.Customer.ID != uuid.Nil {
		resp.CustomerName = ticket.Customer.Name
	}
	if ticket.Official != nil {
		resp.OfficialName = ticket.Official.FullName
	}
	if ticket.Sector != nil {
		resp.SectorName = ticket.Sector.Name
	}

	return resp
}
