package service

import (
	"fmt"
	"strings"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PersonService handles business logic for help desk people
type PersonService struct {
	repo      repository.PersonRepositoryInterface
	validator *validator.Validate
}

// Ensure PersonService implements PersonServiceInterface
var _ PersonServiceInterface = (*PersonService)(nil)

// NewPersonService creates a new person service
func NewPersonService(repo repository.PersonRepositoryInterface, validator *validator.Validate) *PersonService {
	return &PersonService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePersonRequest represents the data needed to create a person
type CreatePersonRequest struct {
	FirstName  string     `json:"first_name" validate:"required,max=100"`
	LastName   string     `json:"last_name" validate:"required,max=100"`
	Email      string     `json:"email" validate:"required,email,max=255"`
	Phone      string     `json:"phone" validate:"max=20"`
	Password   string     `json:"password" validate:"required,min=8,max=72"`
	Role       *string    `json:"role" example:"official"` // Optional: defaults to "official". Valid values: admin, manager, official, requester
	CustomerID *uuid.UUID `json:"customer_id"`             // Required for requesters, forbidden otherwise
}

// UpdatePersonRequest represents the data needed to update a person
type UpdatePersonRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=72"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateRoleRequest changes a person's role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// PersonResponse represents the response data for a person
type PersonResponse struct {
	ID         uuid.UUID         `json:"id"`
	TenantID   uuid.UUID         `json:"tenant_id"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	FullName   string            `json:"full_name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Role       models.PersonRole `json:"role"`
	CustomerID *uuid.UUID        `json:"customer_id,omitempty"`
	IsActive   bool              `json:"is_active"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

// PersonListResponse represents a paginated list of people
type PersonListResponse struct {
	People   []PersonResponse `json:"people"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// AssignableRolesResponse lists the roles a viewer may grant
type AssignableRolesResponse struct {
	Roles []models.PersonRole `json:"roles"`
}

// CreatePerson creates a new person. The viewer's role bounds the role the
// new person may receive.
func (s *PersonService) CreatePerson(tenantID uuid.UUID, viewerRole models.PersonRole, req *CreatePersonRequest) (*PersonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.PersonRoleOfficial
	if req.Role != nil {
		role = models.PersonRole(*req.Role)
		if !IsValidRole(role) {
			return nil, apperrors.ErrInvalidRole
		}
	}
	if !CanAssign(viewerRole, role) {
		return nil, apperrors.ErrRoleNotAssignable
	}

	if role == models.PersonRoleRequester && req.CustomerID == nil {
		return nil, apperrors.NewValidationError("customer_id", "requesters must belong to a customer")
	}
	if role != models.PersonRoleRequester && req.CustomerID != nil {
		return nil, apperrors.NewValidationError("customer_id", "only requesters belong to a customer")
	}

	if _, err := s.repo.GetByEmail(strings.ToLower(req.Email)); err == nil {
		return nil, apperrors.ErrPersonExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	person := &models.Person{
		TenantID:     tenantID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		FullName:     req.FirstName + " " + req.LastName,
		Email:        strings.ToLower(req.Email),
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		CustomerID:   req.CustomerID,
		IsActive:     true,
	}

	if err := s.repo.Create(person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return s.convertToResponse(person), nil
}

// GetPersonByID retrieves a person by ID. People of other tenants and
// people above the viewer's rank are not visible.
func (s *PersonService) GetPersonByID(tenantID, id uuid.UUID, viewerRole models.PersonRole) (*PersonResponse, error) {
	person, err := s.repo.GetByID(id)
	if err != nil || person.TenantID != tenantID {
		return nil, apperrors.ErrPersonNotFound
	}

	if RoleRank(person.Role) > RoleRank(viewerRole) {
		return nil, apperrors.ErrPersonNotFound
	}

	return s.convertToResponse(person), nil
}

// GetPeopleByTenant retrieves people for a tenant, limited to roles the
// viewer may see
func (s *PersonService) GetPeopleByTenant(tenantID uuid.UUID, viewerRole models.PersonRole, page, pageSize int) (*PersonListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	people, total, err := s.repo.GetByTenantID(tenantID, VisibleRoles(viewerRole), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get people: %w", err)
	}

	return s.toListResponse(people, total, page, pageSize), nil
}

// SearchPeople searches people by name or email, limited to roles the
// viewer may see
func (s *PersonService) SearchPeople(tenantID uuid.UUID, viewerRole models.PersonRole, query string, page, pageSize int) (*PersonListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	people, total, err := s.repo.Search(tenantID, VisibleRoles(viewerRole), query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search people: %w", err)
	}

	return s.toListResponse(people, total, page, pageSize), nil
}

// UpdatePerson updates a person the viewer is allowed to manage
func (s *PersonService) UpdatePerson(tenantID, id uuid.UUID, viewerRole models.PersonRole, req *UpdatePersonRequest) (*PersonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	person, err := s.repo.GetByID(id)
	if err != nil || person.TenantID != tenantID {
		return nil, apperrors.ErrPersonNotFound
	}

	if !CanManage(viewerRole, person.Role) {
		return nil, apperrors.NewAuthorizationError("cannot manage a person at or above your role")
	}

	if req.Email != nil && !strings.EqualFold(*req.Email, person.Email) {
		if _, err := s.repo.GetByEmail(strings.ToLower(*req.Email)); err == nil {
			return nil, apperrors.ErrPersonExists
		}
		person.Email = strings.ToLower(*req.Email)
	}
	if req.FirstName != nil {
		person.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		person.LastName = *req.LastName
	}
	if req.FirstName != nil || req.LastName != nil {
		person.FullName = person.FirstName + " " + person.LastName
	}
	if req.Phone != nil {
		person.Phone = *req.Phone
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		person.PasswordHash = string(hash)
	}
	if req.IsActive != nil {
		person.IsActive = *req.IsActive
	}

	if err := s.repo.Update(person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return s.convertToResponse(person), nil
}

// UpdatePersonRole changes a person's role. The viewer must be able to
// manage the person's current role and to grant the new one.
func (s *PersonService) UpdatePersonRole(tenantID, id uuid.UUID, viewerRole models.PersonRole, req *UpdateRoleRequest) (*PersonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	newRole := models.PersonRole(req.Role)
	if !IsValidRole(newRole) {
		return nil, apperrors.ErrInvalidRole
	}

	person, err := s.repo.GetByID(id)
	if err != nil || person.TenantID != tenantID {
		return nil, apperrors.ErrPersonNotFound
	}

	if !CanManage(viewerRole, person.Role) || !CanAssign(viewerRole, newRole) {
		return nil, apperrors.ErrRoleNotAssignable
	}

	if err := s.repo.UpdateRole(id, newRole); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	person.Role = newRole
	return s.convertToResponse(person), nil
}

// GetAssignableRoles lists the roles the viewer may grant
func (s *PersonService) GetAssignableRoles(viewerRole models.PersonRole) *AssignableRolesResponse {
	roles := AssignableRoles(viewerRole)
	if roles == nil {
		roles = []models.PersonRole{}
	}
	return &AssignableRolesResponse{Roles: roles}
}

// DeletePerson deletes a person the viewer is allowed to manage
func (s *PersonService) DeletePerson(tenantID, id uuid.UUID, viewerRole models.PersonRole) error {
	person, err := s.repo.GetByID(id)
	if err != nil || person.TenantID != tenantID {
		return apperrors.ErrPersonNotFound
	}

	if !CanManage(viewerRole, person.Role) {
		return apperrors.NewAuthorizationError("cannot manage a person at or above your role")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	return nil
}

func (s *PersonService) toListResponse(people []models.Person, total int64, page, pageSize int) *PersonListResponse {
	responses := make([]PersonResponse, len(people))
	for i, person := range people {
		responses[i] = *s.convertToResponse(&person)
	}

	return &PersonListResponse{
		People:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// convertToResponse converts a Person model to API response
func (s *PersonService) convertToResponse(person *models.Person) *PersonResponse {
	return convertPersonToResponse(person)
}

// convertPersonToResponse is shared with services that embed people in
// their responses
func convertPersonToResponse(person *models.Person) *PersonResponse {
	return &PersonResponse{
		ID:         person.ID,
		TenantID:   person.TenantID,
		FirstName:  person.FirstName,
		LastName:   person.LastName,
		FullName:   person.FullName,
		Email:      person.Email,
		Phone:      person.Phone,
		Role:       person.Role,
		CustomerID: person.CustomerID,
		IsActive:   person.IsActive,
		CreatedAt:  person.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  person.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
