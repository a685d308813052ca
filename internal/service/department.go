package service

import (
	"fmt"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo       repository.DepartmentRepositoryInterface
	sectorRepo repository.SectorRepositoryInterface
	personRepo repository.PersonRepositoryInterface
	validator  *validator.Validate
}

// Ensure DepartmentService implements DepartmentServiceInterface
var _ DepartmentServiceInterface = (*DepartmentService)(nil)

// NewDepartmentService creates a new department service
func NewDepartmentService(
	repo repository.DepartmentRepositoryInterface,
	sectorRepo repository.SectorRepositoryInterface,
	personRepo repository.PersonRepositoryInterface,
	validator *validator.Validate,
) *DepartmentService {
	return &DepartmentService{
		repo:       repo,
		sectorRepo: sectorRepo,
		personRepo: personRepo,
		validator:  validator,
	}
}

// CreateDepartmentRequest represents the data needed to create a department
type CreateDepartmentRequest struct {
	SectorID    uuid.UUID `json:"sector_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description" validate:"max=300"`
}

// UpdateDepartmentRequest represents the data needed to update a department
type UpdateDepartmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=300"`
	IsActive    *bool   `json:"is_active"`
}

// DepartmentResponse represents the response data for a department
type DepartmentResponse struct {
	ID          uuid.UUID        `json:"id"`
	TenantID    uuid.UUID        `json:"tenant_id"`
	SectorID    uuid.UUID        `json:"sector_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	IsActive    bool             `json:"is_active"`
	Officials   []PersonResponse `json:"officials,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// DepartmentListResponse represents a paginated list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CreateDepartment creates a new department under a sector
func (s *DepartmentService) CreateDepartment(tenantID uuid.UUID, req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sector, err := s.sectorRepo.GetByID(req.SectorID)
	if err != nil {
		return nil, apperrors.ErrSectorNotFound
	}
	if sector.TenantID != tenantID {
		return nil, apperrors.ErrSectorNotFound
	}

	if _, err := s.repo.GetByName(req.SectorID, req.Name); err == nil {
		return nil, apperrors.ErrDepartmentExists
	}

	department := &models.Department{
		TenantID:    tenantID,
		SectorID:    req.SectorID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return convertDepartmentToResponse(department), nil
}

// GetDepartmentByID retrieves a department with its officials. Departments
// of other tenants are reported as not found.
func (s *DepartmentService) GetDepartmentByID(tenantID, id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.repo.GetWithOfficials(id)
	if err != nil || department.TenantID != tenantID {
		return nil, apperrors.ErrDepartmentNotFound
	}

	resp := convertDepartmentToResponse(department)
	resp.Officials = make([]PersonResponse, len(department.Officials))
	for i, official := range department.Officials {
		resp.Officials[i] = *convertPersonToResponse(&official)
	}

	return resp, nil
}

// GetDepartmentsBySector retrieves departments for a sector with pagination.
// The sector must belong to the caller's tenant.
func (s *DepartmentService) GetDepartmentsBySector(tenantID, sectorID uuid.UUID, page, pageSize int) (*DepartmentListResponse, error) {
	sector, err := s.sectorRepo.GetByID(sectorID)
	if err != nil || sector.TenantID != tenantID {
		return nil, apperrors.ErrSectorNotFound
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	departments, total, err := s.repo.GetBySectorID(sectorID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}

	return s.toListResponse(departments, total, page, pageSize), nil
}

// GetDepartmentsByTenant retrieves departments for a tenant with pagination
func (s *DepartmentService) GetDepartmentsByTenant(tenantID uuid.UUID, page, pageSize int) (*DepartmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	departments, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}

	return s.toListResponse(departments, total, page, pageSize), nil
}

// UpdateDepartment updates a department
func (s *DepartmentService) UpdateDepartment(tenantID, id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	department, err := s.repo.GetByID(id)
	if err != nil || department.TenantID != tenantID {
		return nil, apperrors.ErrDepartmentNotFound
	}

	if req.Name != nil && *req.Name != department.Name {
		if _, err := s.repo.GetByName(department.SectorID, *req.Name); err == nil {
			return nil, apperrors.ErrDepartmentExists
		}
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := s.repo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return convertDepartmentToResponse(department), nil
}

// DeleteDepartment deletes a department
func (s *DepartmentService) DeleteDepartment(tenantID, id uuid.UUID) error {
	department, err := s.repo.GetByID(id)
	if err != nil || department.TenantID != tenantID {
		return apperrors.ErrDepartmentNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	return nil
}

// AddOfficial attaches an official to a department. Only people holding
// the official role (or above) can be attached.
func (s *DepartmentService) AddOfficial(tenantID, departmentID, personID uuid.UUID) error {
	department, err := s.repo.GetWithOfficials(departmentID)
	if err != nil || department.TenantID != tenantID {
		return apperrors.ErrDepartmentNotFound
	}

	person, err := s.personRepo.GetByID(personID)
	if err != nil {
		return apperrors.ErrPersonNotFound
	}
	if RoleRank(person.Role) < RoleRank(models.PersonRoleOfficial) {
		return apperrors.ErrPersonNotOfficial
	}
	if person.TenantID != department.TenantID {
		return apperrors.ErrPersonNotFound
	}

	for _, official := range department.Officials {
		if official.ID == personID {
			return apperrors.ErrOfficialAttached
		}
	}

	if err := s.repo.AddOfficial(departmentID, personID); err != nil {
		return fmt.Errorf("failed to add official: %w", err)
	}

	return nil
}

// RemoveOfficial detaches an official from a department
func (s *DepartmentService) RemoveOfficial(tenantID, departmentID, personID uuid.UUID) error {
	department, err := s.repo.GetWithOfficials(departmentID)
	if err != nil || department.TenantID != tenantID {
		return apperrors.ErrDepartmentNotFound
	}

	attached := false
	for _, official := range department.Officials {
		if official.ID == personID {
			attached = true
			break
		}
	}
	if !attached {
		return apperrors.ErrOfficialNotAttached
	}

	if err := s.repo.RemoveOfficial(departmentID, personID); err != nil {
		return fmt.Errorf("failed to remove official: %w", err)
	}

	return nil
}

func (s *DepartmentService) toListResponse(departments []models.Department, total int64, page, pageSize int) *DepartmentListResponse {
	responses := make([]DepartmentResponse, len(departments))
	for i, department := range departments {
		responses[i] = *convertDepartmentToResponse(&department)
	}

	return &DepartmentListResponse{
		Departments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}
}

// convertDepartmentToResponse converts a Department model to API response.
// Shared with the sector service which embeds departments in its responses.
func convertDepartmentToResponse(department *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:          department.ID,
		TenantID:    department.TenantID,
		SectorID:    department.SectorID,
		Name:        department.Name,
		Description: department.Description,
		IsActive:    department.IsActive,
		CreatedAt:   department.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   department.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
