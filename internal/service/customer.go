package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// importHeader is the exact column set customer CSV imports must carry
var importHeader = []string{"name", "email", "phone", "document", "company"}

// CustomerService handles business logic for customers
type CustomerService struct {
	repo      repository.CustomerRepositoryInterface
	validator *validator.Validate
}

// Ensure CustomerService implements CustomerServiceInterface
var _ CustomerServiceInterface = (*CustomerService)(nil)

// NewCustomerService creates a new customer service
func NewCustomerService(repo repository.CustomerRepositoryInterface, validator *validator.Validate) *CustomerService {
	return &CustomerService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCustomerRequest represents the data needed to create a customer
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"max=20"`
	Document string `json:"document" validate:"max=40"`
	Company  string `json:"company" validate:"max=200"`
	Notes    string `json:"notes" validate:"max=500"`
}

// UpdateCustomerRequest represents the data needed to update a customer
type UpdateCustomerRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Document *string `json:"document" validate:"omitempty,max=40"`
	Company  *string `json:"company" validate:"omitempty,max=200"`
	Notes    *string `json:"notes" validate:"omitempty,max=500"`
	IsActive *bool   `json:"is_active"`
}

// SetCustomerActiveRequest toggles a customer's active flag
type SetCustomerActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// CustomerResponse represents the response data for a customer
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	Company   string    `json:"company"`
	Notes     string    `json:"notes"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CustomerListResponse represents a paginated list of customers
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// ImportRowError describes why a single CSV row was skipped
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult reports the outcome of a CSV import
type ImportResult struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(tenantID uuid.UUID, req *CreateCustomerRequest) (*CustomerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByEmail(tenantID, req.Email); err == nil {
		return nil, apperrors.ErrCustomerExists
	}

	customer := &models.Customer{
		TenantID: tenantID,
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Phone:    req.Phone,
		Document: req.Document,
		Company:  req.Company,
		Notes:    req.Notes,
		IsActive: true,
	}

	if err := s.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return s.convertToResponse(customer), nil
}

// GetCustomerByID retrieves a customer by ID. Customers of other tenants
// are reported as not found.
func (s *CustomerService) GetCustomerByID(tenantID, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil || customer.TenantID != tenantID {
		return nil, apperrors.ErrCustomerNotFound
	}

	return s.convertToResponse(customer), nil
}

// GetCustomersByTenant retrieves customers for a tenant with pagination
func (s *CustomerService) GetCustomersByTenant(tenantID uuid.UUID, page, pageSize int) (*CustomerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	customers, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return s.toListResponse(customers, total, page, pageSize), nil
}

// SearchCustomers searches customers by name, email or company
func (s *CustomerService) SearchCustomers(tenantID uuid.UUID, query string, page, pageSize int) (*CustomerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	customers, total, err := s.repo.Search(tenantID, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	return s.toListResponse(customers, total, page, pageSize), nil
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(tenantID, id uuid.UUID, req *UpdateCustomerRequest) (*CustomerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	customer, err := s.repo.GetByID(id)
	if err != nil || customer.TenantID != tenantID {
		return nil, apperrors.ErrCustomerNotFound
	}

	if req.Email != nil && !strings.EqualFold(*req.Email, customer.Email) {
		if _, err := s.repo.GetByEmail(customer.TenantID, *req.Email); err == nil {
			return nil, apperrors.ErrCustomerExists
		}
		customer.Email = strings.ToLower(*req.Email)
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Document != nil {
		customer.Document = *req.Document
	}
	if req.Company != nil {
		customer.Company = *req.Company
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := s.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return s.convertToResponse(customer), nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(tenantID, id uuid.UUID) error {
	customer, err := s.repo.GetByID(id)
	if err != nil || customer.TenantID != tenantID {
		return apperrors.ErrCustomerNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}

// SetCustomerActive activates or deactivates a customer
func (s *CustomerService) SetCustomerActive(tenantID, id uuid.UUID, isActive bool) (*CustomerResponse, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil || customer.TenantID != tenantID {
		return nil, apperrors.ErrCustomerNotFound
	}

	if err := s.repo.SetActiveStatus(id, isActive); err != nil {
		return nil, fmt.Errorf("failed to update customer status: %w", err)
	}

	customer.IsActive = isActive
	return s.convertToResponse(customer), nil
}

// ImportCustomers reads a CSV stream with the header
// name,email,phone,document,company and creates one customer per valid row.
// Rows that fail validation or collide with existing emails are skipped and
// reported; a bad header aborts the whole import.
func (s *CustomerService) ImportCustomers(tenantID uuid.UUID, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.ErrInvalidCSVHeader
	}
	if len(header) != len(importHeader) {
		return nil, apperrors.ErrInvalidCSVHeader
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), importHeader[i]) {
			return nil, apperrors.ErrInvalidCSVHeader
		}
	}

	result := &ImportResult{}
	seen := make(map[string]bool)
	row := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportRowError{Row: row, Reason: "malformed row"})
			continue
		}

		req := &CreateCustomerRequest{
			Name:     strings.TrimSpace(record[0]),
			Email:    strings.TrimSpace(record[1]),
			Phone:    strings.TrimSpace(record[2]),
			Document: strings.TrimSpace(record[3]),
			Company:  strings.TrimSpace(record[4]),
		}

		if err := s.validator.Struct(req); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportRowError{Row: row, Reason: "invalid name or email"})
			continue
		}

		email := strings.ToLower(req.Email)
		if seen[email] {
			result.Skipped++
			result.Errors = append(result.Errors, ImportRowError{Row: row, Reason: "duplicate email in file"})
			continue
		}
		if _, err := s.repo.GetByEmail(tenantID, email); err == nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportRowError{Row: row, Reason: "email already registered"})
			continue
		}

		customer := &models.Customer{
			TenantID: tenantID,
			Name:     req.Name,
			Email:    email,
			Phone:    req.Phone,
			Document: req.Document,
			Company:  req.Company,
			IsActive: true,
		}
		if err := s.repo.Create(customer); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportRowError{Row: row, Reason: "database error"})
			continue
		}

		seen[email] = true
		result.Imported++
	}

	return result, nil
}

func (s *CustomerService) toListResponse(customers []models.Customer, total int64, page, pageSize int) *CustomerListResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = *s.convertToResponse(&customer)
	}

	return &CustomerListResponse{
		Customers: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}
}

// convertToResponse converts a Customer model to API response
func (s *CustomerService) convertToResponse(customer *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        customer.ID,
		TenantID:  customer.TenantID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Document:  customer.Document,
		Company:   customer.Company,
		Notes:     customer.Notes,
		IsActive:  customer.IsActive,
		CreatedAt: customer.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: customer.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
