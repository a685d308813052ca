package service

import (
	"fmt"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SectorService handles business logic for sectors
type SectorService struct {
	repo      repository.SectorRepositoryInterface
	validator *validator.Validate
}

// Ensure SectorService implements SectorServiceInterface
var _ SectorServiceInterface = (*SectorService)(nil)

// NewSectorService creates a new sector service
func NewSectorService(repo repository.SectorRepositoryInterface, validator *validator.Validate) *SectorService {
	return &SectorService{
		repo:      repo,
		validator: validator,
	}
}

// CreateSectorRequest represents the data needed to create a sector
type CreateSectorRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=300"`
}

// UpdateSectorRequest represents the data needed to update a sector
type UpdateSectorRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=300"`
	IsActive    *bool   `json:"is_active"`
}

// SectorResponse represents the response data for a sector
type SectorResponse struct {
	ID          uuid.UUID            `json:"id"`
	TenantID    uuid.UUID            `json:"tenant_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	IsActive    bool                 `json:"is_active"`
	Departments []DepartmentResponse `json:"departments,omitempty"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// SectorListResponse represents a paginated list of sectors
type SectorListResponse struct {
	Sectors  []SectorResponse `json:"sectors"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateSector creates a new sector
func (s *SectorService) CreateSector(tenantID uuid.UUID, req *CreateSectorRequest) (*SectorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(tenantID, req.Name); err == nil {
		return nil, apperrors.ErrSectorExists
	}

	sector := &models.Sector{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Create(sector); err != nil {
		return nil, fmt.Errorf("failed to create sector: %w", err)
	}

	return s.convertToResponse(sector), nil
}

// GetSectorByID retrieves a sector with its departments. Sectors of other
// tenants are reported as not found.
func (s *SectorService) GetSectorByID(tenantID, id uuid.UUID) (*SectorResponse, error) {
	sector, err := s.repo.GetWithDepartments(id)
	if err != nil || sector.TenantID != tenantID {
		return nil, apperrors.ErrSectorNotFound
	}

	resp := s.convertToResponse(sector)
	resp.Departments = make([]DepartmentResponse, len(sector.Departments))
	for i, dept := range sector.Departments {
		resp.Departments[i] = *convertDepartmentToResponse(&dept)
	}

	return resp, nil
}

// GetSectorsByTenant retrieves sectors for a tenant with pagination
func (s *SectorService) GetSectorsByTenant(tenantID uuid.UUID, page, pageSize int) (*SectorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	sectors, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get sectors: %w", err)
	}

	responses := make([]SectorResponse, len(sectors))
	for i, sector := range sectors {
		responses[i] = *s.convertToResponse(&sector)
	}

	return &SectorListResponse{
		Sectors:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateSector updates a sector
func (s *SectorService) UpdateSector(tenantID, id uuid.UUID, req *UpdateSectorRequest) (*SectorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sector, err := s.repo.GetByID(id)
	if err != nil || sector.TenantID != tenantID {
		return nil, apperrors.ErrSectorNotFound
	}

	if req.Name != nil && *req.Name != sector.Name {
		if _, err := s.repo.GetByName(sector.TenantID, *req.Name); err == nil {
			return nil, apperrors.ErrSectorExists
		}
		sector.Name = *req.Name
	}
	if req.Description != nil {
		sector.Description = *req.Description
	}
	if req.IsActive != nil {
		sector.IsActive = *req.IsActive
	}

	if err := s.repo.Update(sector); err != nil {
		return nil, fmt.Errorf("failed to update sector: %w", err)
	}

	return s.convertToResponse(sector), nil
}

// DeleteSector deletes a sector
func (s *SectorService) DeleteSector(tenantID, id uuid.UUID) error {
	sector, err := s.repo.GetByID(id)
	if err != nil || sector.TenantID != tenantID {
		return apperrors.ErrSectorNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete sector: %w", err)
	}

	return nil
}

// convertToResponse converts a Sector model to API response
func (s *SectorService) convertToResponse(sector *models.Sector) *SectorResponse {
	return &SectorResponse{
		ID:          sector.ID,
		TenantID:    sector.TenantID,
		Name:        sector.Name,
		Description: sector.Description,
		IsActive:    sector.IsActive,
		CreatedAt:   sector.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   sector.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
