package handlers

import (
	"net/http"
	"strconv"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InventoryHandler handles HTTP requests for products and stock movements
type InventoryHandler struct {
	inventoryService service.InventoryServiceInterface
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService service.InventoryServiceInterface) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// CreateProduct creates a new product
// @Summary Create a new product
// @Description Create a product in the caller's tenant. SKU must be unique per tenant.
// @Tags inventory
// @Accept json
// @Produce json
// @Param product body service.CreateProductRequest true "Product data"
// @Success 201 {object} service.ProductResponse "Successfully created product"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "SKU already in use"
// @Security BearerAuth
// @Router /inventory/products [post]
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.inventoryService.CreateProduct(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProduct retrieves a product by ID
// @Summary Get product by ID
// @Description Get a specific product with its stock level
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} service.ProductResponse "Successfully retrieved product"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /inventory/products/{id} [get]
func (h *InventoryHandler) GetProduct(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.inventoryService.GetProductByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts lists the tenant's products
// @Summary List products
// @Description Get the tenant's products with pagination. Pass category to filter.
// @Tags inventory
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProductListResponse "Successfully retrieved products"
// @Security BearerAuth
// @Router /inventory/products [get]
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	products, err := h.inventoryService.GetProductsByTenant(tenantID, c.Query("category"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// ListLowStock lists products at or below their reorder level
// @Summary List low-stock products
// @Description Get the tenant's products whose quantity is at or below the reorder level
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {array} service.ProductResponse "Low-stock products"
// @Security BearerAuth
// @Router /inventory/products/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	products, err := h.inventoryService.GetLowStockProducts(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// UpdateProduct updates a product
// @Summary Update product
// @Description Update a product's descriptive fields. Quantity only changes through movements.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body service.UpdateProductRequest true "Product data"
// @Success 200 {object} service.ProductResponse "Successfully updated product"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /inventory/products/{id} [put]
func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.inventoryService.UpdateProduct(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct deletes a product
// @Summary Delete product
// @Description Soft-delete a product
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Successfully deleted product"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /inventory/products/{id} [delete]
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteProduct(tenantID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateMovement records a stock movement for a product
// @Summary Record stock movement
// @Description Record an inbound or outbound stock movement. Outbound movements cannot exceed current stock.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param movement body service.CreateMovementRequest true "Movement data"
// @Success 201 {object} service.MovementResponse "Successfully recorded movement"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /inventory/products/{id}/movements [post]
func (h *InventoryHandler) CreateMovement(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movement, err := h.inventoryService.CreateMovement(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movement)
}

// ListMovements lists a product's stock movements
// @Summary List stock movements
// @Description Get a product's stock movement history with pagination
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MovementListResponse "Movement history"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /inventory/products/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	movements, err := h.inventoryService.GetMovementsByProduct(tenantID, id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movements)
}
