package service

import (
	"fmt"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TenantService handles business logic for tenants
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	validator *validator.Validate
}

// Ensure TenantService implements TenantServiceInterface
var _ TenantServiceInterface = (*TenantService)(nil)

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTenantRequest represents the data needed to create a tenant
type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"required,max=60,lowercase"`
}

// UpdateTenantRequest represents the data needed to update a tenant
type UpdateTenantRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}

// TenantResponse represents the response data for a tenant
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateTenant creates a new tenant
func (s *TenantService) CreateTenant(req *CreateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetBySlug(req.Slug); err == nil {
		return nil, apperrors.ErrTenantExists
	}

	tenant := &models.Tenant{
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: true,
	}

	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return s.convertToResponse(tenant), nil
}

// GetTenantByID retrieves a tenant by ID
func (s *TenantService) GetTenantByID(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTenantNotFound
	}

	return s.convertToResponse(tenant), nil
}

// GetTenantBySlug retrieves a tenant by its slug
func (s *TenantService) GetTenantBySlug(slug string) (*TenantResponse, error) {
	tenant, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, apperrors.ErrTenantNotFound
	}

	return s.convertToResponse(tenant), nil
}

// GetAllTenants retrieves tenants with pagination
func (s *TenantService) GetAllTenants(page, pageSize int) (*TenantListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	tenants, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenants: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i, tenant := range tenants {
		responses[i] = *s.convertToResponse(&tenant)
	}

	return &TenantListResponse{
		Tenants:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateTenant updates a tenant
func (s *TenantService) UpdateTenant(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTenantNotFound
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return s.convertToResponse(tenant), nil
}

// DeleteTenant deletes a tenant
func (s *TenantService) DeleteTenant(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrTenantNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	return nil
}

// convertToResponse converts a Tenant model to API response
func (s *TenantService) convertToResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Slug:      tenant.Slug,
		IsActive:  tenant.IsActive,
		CreatedAt: tenant.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: tenant.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
