package handlers

import (
	"net/http"
	"strconv"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DepartmentHandler handles HTTP requests for departments
type DepartmentHandler struct {
	departmentService service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(departmentService service.DepartmentServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// CreateDepartment creates a new department
// @Summary Create a new department
// @Description Create a department under an existing sector of the caller's tenant
// @Tags departments
// @Accept json
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department data"
// @Success 201 {object} service.DepartmentResponse "Successfully created department"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Sector not found"
// @Failure 409 {object} ErrorResponse "Department name already used in sector"
// @Security BearerAuth
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.departmentService.CreateDepartment(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetDepartment retrieves a department with its officials
// @Summary Get department by ID
// @Description Get a specific department including its attached officials
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {object} service.DepartmentResponse "Successfully retrieved department"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	department, err := h.departmentService.GetDepartmentByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// ListDepartments lists departments, optionally scoped to a sector
// @Summary List departments
// @Description Get the tenant's departments with pagination. Pass sector_id to list a single sector's departments.
// @Tags departments
// @Accept json
// @Produce json
// @Param sector_id query string false "Sector ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DepartmentListResponse "Successfully retrieved departments"
// @Security BearerAuth
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var (
		departments *service.DepartmentListResponse
		err         error
	)
	if raw := c.Query("sector_id"); raw != "" {
		sectorID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sector_id"})
			return
		}
		departments, err = h.departmentService.GetDepartmentsBySector(tenantID, sectorID, page, pageSize)
	} else {
		departments, err = h.departmentService.GetDepartmentsByTenant(tenantID, page, pageSize)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, departments)
}

// UpdateDepartment updates a department
// @Summary Update department
// @Description Update a department's name, description or active flag
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param department body service.UpdateDepartmentRequest true "Department data"
// @Success 200 {object} service.DepartmentResponse "Successfully updated department"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.departmentService.UpdateDepartment(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment deletes a department
// @Summary Delete department
// @Description Soft-delete a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 204 "Successfully deleted department"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.departmentService.DeleteDepartment(tenantID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddOfficial attaches an official to a department
// @Summary Attach official to department
// @Description Attach a person with at least the official role to a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param personId path string true "Person ID (UUID)"
// @Success 204 "Successfully attached official"
// @Failure 400 {object} ErrorResponse "Person is not an official"
// @Failure 404 {object} ErrorResponse "Department or person not found"
// @Failure 409 {object} ErrorResponse "Official already attached"
// @Security BearerAuth
// @Router /departments/{id}/officials/{personId} [post]
func (h *DepartmentHandler) AddOfficial(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	departmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	personID, ok := parseIDParam(c, "personId")
	if !ok {
		return
	}

	if err := h.departmentService.AddOfficial(tenantID, departmentID, personID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveOfficial detaches an official from a department
// @Summary Detach official from department
// @Description Remove a previously attached official from a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param personId path string true "Person ID (UUID)"
// @Success 204 "Successfully detached official"
// @Failure 400 {object} ErrorResponse "Official not attached"
// @Failure 404 {object} ErrorResponse "Department or person not found"
// @Security BearerAuth
// @Router /departments/{id}/officials/{personId} [delete]
func (h *DepartmentHandler) RemoveOfficial(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	departmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	personID, ok := parseIDParam(c, "personId")
	if !ok {
		return
	}

	if err := h.departmentService.RemoveOfficial(tenantID, departmentID, personID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
