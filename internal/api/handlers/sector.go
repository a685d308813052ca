package handlers

import (
	"net/http"
	"strconv"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SectorHandler handles HTTP requests for sectors
type SectorHandler struct {
	sectorService service.SectorServiceInterface
}

// NewSectorHandler creates a new sector handler
func NewSectorHandler(sectorService service.SectorServiceInterface) *SectorHandler {
	return &SectorHandler{
		sectorService: sectorService,
	}
}

// CreateSector creates a new sector
// @Summary Create a new sector
// @Description Create a sector in the caller's tenant
// @Tags sectors
// @Accept json
// @Produce json
// @Param sector body service.CreateSectorRequest true "Sector data"
// @Success 201 {object} service.SectorResponse "Successfully created sector"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Sector already exists"
// @Security BearerAuth
// @Router /sectors [post]
func (h *SectorHandler) CreateSector(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sector, err := h.sectorService.CreateSector(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sector)
}

// GetSector retrieves a sector with its departments
// @Summary Get sector by ID
// @Description Get a specific sector including its departments
// @Tags sectors
// @Accept json
// @Produce json
// @Param id path string true "Sector ID (UUID)"
// @Success 200 {object} service.SectorResponse "Successfully retrieved sector"
// @Failure 404 {object} ErrorResponse "Sector not found"
// @Security BearerAuth
// @Router /sectors/{id} [get]
func (h *SectorHandler) GetSector(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sector, err := h.sectorService.GetSectorByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sector)
}

// ListSectors lists the tenant's sectors
// @Summary List sectors
// @Description Get the tenant's sectors with pagination
// @Tags sectors
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SectorListResponse "Successfully retrieved sectors"
// @Security BearerAuth
// @Router /sectors [get]
func (h *SectorHandler) ListSectors(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	sectors, err := h.sectorService.GetSectorsByTenant(tenantID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sectors)
}

// UpdateSector updates a sector
// @Summary Update sector
// @Description Update a sector's name, description or active flag
// @Tags sectors
// @Accept json
// @Produce json
// @Param id path string true "Sector ID (UUID)"
// @Param sector body service.UpdateSectorRequest true "Sector data"
// @Success 200 {object} service.SectorResponse "Successfully updated sector"
// @Failure 404 {object} ErrorResponse "Sector not found"
// @Security BearerAuth
// @Router /sectors/{id} [put]
func (h *SectorHandler) UpdateSector(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sector, err := h.sectorService.UpdateSector(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sector)
}

// DeleteSector deletes a sector
// @Summary Delete sector
// @Description Soft-delete a sector
// @Tags sectors
// @Accept json
// @Produce json
// @Param id path string true "Sector ID (UUID)"
// @Success 204 "Successfully deleted sector"
// @Failure 404 {object} ErrorResponse "Sector not found"
// @Security BearerAuth
// @Router /sectors/{id} [delete]
func (h *SectorHandler) DeleteSector(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sectorService.DeleteSector(tenantID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
