package service

import (
	"fmt"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InventoryService handles business logic for inventory products and
// stock movements
type InventoryService struct {
	repo      repository.InventoryRepositoryInterface
	validator *validator.Validate
}

// Ensure InventoryService implements InventoryServiceInterface
var _ InventoryServiceInterface = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service
func NewInventoryService(repo repository.InventoryRepositoryInterface, validator *validator.Validate) *InventoryService {
	return &InventoryService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProductRequest represents the data needed to create a product
type CreateProductRequest struct {
	SKU         string `json:"sku" validate:"required,max=60"`
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category" validate:"max=100"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	MinQuantity int    `json:"min_quantity" validate:"min=0"`
	Location    string `json:"location" validate:"max=100"`
}

// UpdateProductRequest represents the data needed to update a product
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	MinQuantity *int    `json:"min_quantity" validate:"omitempty,min=0"`
	Location    *string `json:"location" validate:"omitempty,max=100"`
	Status      *string `json:"status"` // available, assigned, retired
}

// CreateMovementRequest records a stock movement against a product
type CreateMovementRequest struct {
	Type     string     `json:"type" validate:"required,oneof=in out"`
	Quantity int        `json:"quantity" validate:"required,min=1"`
	Note     string     `json:"note" validate:"max=300"`
	PersonID *uuid.UUID `json:"person_id"`
}

// ProductResponse represents the response data for a product
type ProductResponse struct {
	ID          uuid.UUID            `json:"id"`
	TenantID    uuid.UUID            `json:"tenant_id"`
	SKU         string               `json:"sku"`
	Name        string               `json:"name"`
	Category    string               `json:"category"`
	Quantity    int                  `json:"quantity"`
	MinQuantity int                  `json:"min_quantity"`
	Location    string               `json:"location"`
	Status      models.ProductStatus `json:"status"`
	LowStock    bool                 `json:"low_stock"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// ProductListResponse represents a paginated list of products
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// MovementResponse represents a stock movement
type MovementResponse struct {
	ID        uuid.UUID           `json:"id"`
	ProductID uuid.UUID           `json:"product_id"`
	PersonID  *uuid.UUID          `json:"person_id,omitempty"`
	Type      models.MovementType `json:"type"`
	Quantity  int                 `json:"quantity"`
	Note      string              `json:"note"`
	CreatedAt string              `json:"created_at"`
}

// MovementListResponse represents a paginated list of movements
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// CreateProduct creates a new inventory product
func (s *InventoryService) CreateProduct(tenantID uuid.UUID, req *CreateProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetProductBySKU(tenantID, req.SKU); err == nil {
		return nil, apperrors.ErrProductExists
	}

	product := &models.InventoryProduct{
		TenantID:    tenantID,
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Location:    req.Location,
		Status:      models.ProductStatusAvailable,
	}

	if err := s.repo.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.convertToResponse(product), nil
}

// GetProductByID retrieves a product by ID. Products of other tenants are
// reported as not found.
func (s *InventoryService) GetProductByID(tenantID, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.repo.GetProductByID(id)
	if err != nil || product.TenantID != tenantID {
		return nil, apperrors.ErrProductNotFound
	}

	return s.convertToResponse(product), nil
}

// GetProductsByTenant retrieves products for a tenant with pagination,
// optionally filtered by category
func (s *InventoryService) GetProductsByTenant(tenantID uuid.UUID, category string, page, pageSize int) (*ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	products, total, err := s.repo.GetProductsByTenantID(tenantID, category, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *s.convertToResponse(&product)
	}

	return &ProductListResponse{
		Products: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetLowStockProducts lists products at or below their minimum quantity
func (s *InventoryService) GetLowStockProducts(tenantID uuid.UUID) ([]ProductResponse, error) {
	products, err := s.repo.GetLowStock(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get low-stock products: %w", err)
	}

	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *s.convertToResponse(&product)
	}
	return responses, nil
}

// UpdateProduct updates a product's descriptive fields. Quantity only
// changes through movements.
func (s *InventoryService) UpdateProduct(tenantID, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.repo.GetProductByID(id)
	if err != nil || product.TenantID != tenantID {
		return nil, apperrors.ErrProductNotFound
	}

	if req.Status != nil {
		status := models.ProductStatus(*req.Status)
		switch status {
		case models.ProductStatusAvailable, models.ProductStatusAssigned, models.ProductStatusRetired:
			product.Status = status
		default:
			return nil, apperrors.ErrInvalidStatus
		}
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.MinQuantity != nil {
		product.MinQuantity = *req.MinQuantity
	}
	if req.Location != nil {
		product.Location = *req.Location
	}

	if err := s.repo.UpdateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.convertToResponse(product), nil
}

// DeleteProduct deletes a product
func (s *InventoryService) DeleteProduct(tenantID, id uuid.UUID) error {
	product, err := s.repo.GetProductByID(id)
	if err != nil || product.TenantID != tenantID {
		return apperrors.ErrProductNotFound
	}

	if err := s.repo.DeleteProduct(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// CreateMovement records a stock movement. Outgoing movements may not
// drive the quantity below zero.
func (s *InventoryService) CreateMovement(tenantID, productID uuid.UUID, req *CreateMovementRequest) (*MovementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.repo.GetProductByID(productID)
	if err != nil || product.TenantID != tenantID {
		return nil, apperrors.ErrProductNotFound
	}

	movementType := models.MovementType(req.Type)
	if movementType == models.MovementOut && req.Quantity > product.Quantity {
		return nil, apperrors.ErrInsufficientStock
	}

	movement := &models.InventoryMovement{
		ProductID: productID,
		PersonID:  req.PersonID,
		Type:      movementType,
		Quantity:  req.Quantity,
		Note:      req.Note,
	}

	if err := s.repo.CreateMovement(movement); err != nil {
		return nil, fmt.Errorf("failed to create movement: %w", err)
	}

	return s.convertMovementToResponse(movement), nil
}

// GetMovementsByProduct retrieves movements for a product with pagination
func (s *InventoryService) GetMovementsByProduct(tenantID, productID uuid.UUID, page, pageSize int) (*MovementListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	product, err := s.repo.GetProductByID(productID)
	if err != nil || product.TenantID != tenantID {
		return nil, apperrors.ErrProductNotFound
	}

	offset := (page - 1) * pageSize
	movements, total, err := s.repo.GetMovementsByProductID(productID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get movements: %w", err)
	}

	responses := make([]MovementResponse, len(movements))
	for i, movement := range movements {
		responses[i] = *s.convertMovementToResponse(&movement)
	}

	return &MovementListResponse{
		Movements: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// convertToResponse converts an InventoryProduct model to API response
func (s *InventoryService) convertToResponse(product *models.InventoryProduct) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		TenantID:    product.TenantID,
		SKU:         product.SKU,
		Name:        product.Name,
		Category:    product.Category,
		Quantity:    product.Quantity,
		MinQuantity: product.MinQuantity,
		Location:    product.Location,
		Status:      product.Status,
		LowStock:    product.Quantity <= product.MinQuantity && product.Status != models.ProductStatusRetired,
		CreatedAt:   product.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   product.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// convertMovementToResponse converts an InventoryMovement model to API response
func (s *InventoryService) convertMovementToResponse(movement *models.InventoryMovement) *MovementResponse {
	return &MovementResponse{
		ID:        movement.ID,
		ProductID: movement.ProductID,
		PersonID:  movement.PersonID,
		Type:      movement.Type,
		Quantity:  movement.Quantity,
		Note:      movement.Note,
		CreatedAt: movement.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
