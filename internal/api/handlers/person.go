package handlers

import (
	"net/http"
	"strconv"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PersonHandler handles HTTP requests for personnel
type PersonHandler struct {
	personService service.PersonServiceInterface
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(personService service.PersonServiceInterface) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// CreatePerson creates a new person
// @Summary Create a new person
// @Description Create a person in the caller's tenant. The caller can only assign roles below their own.
// @Tags people
// @Accept json
// @Produce json
// @Param person body service.CreatePersonRequest true "Person data"
// @Success 201 {object} service.PersonResponse "Successfully created person"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not assignable by caller"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /people [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	role, _ := auth.GetRole(c)

	var req service.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.personService.CreatePerson(tenantID, role, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, person)
}

// GetPerson retrieves a person by ID
// @Summary Get person by ID
// @Description Get a specific person. People ranked above the caller are not visible.
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} service.PersonResponse "Successfully retrieved person"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Security BearerAuth
// @Router /people/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	role, _ := auth.GetRole(c)

	person, err := h.personService.GetPersonByID(tenantID, id, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// ListPeople lists the tenant's people visible to the caller
// @Summary List people
// @Description Get the tenant's people with pagination, limited to roles at or below the caller's. Pass q to search by name or email.
// @Tags people
// @Accept json
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PersonListResponse "Successfully retrieved people"
// @Security BearerAuth
// @Router /people [get]
func (h *PersonHandler) ListPeople(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	role, _ := auth.GetRole(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var (
		people *service.PersonListResponse
		err    error
	)
	if query := c.Query("q"); query != "" {
		people, err = h.personService.SearchPeople(tenantID, role, query, page, pageSize)
	} else {
		people, err = h.personService.GetPeopleByTenant(tenantID, role, page, pageSize)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, people)
}

// UpdatePerson updates a person's profile fields
// @Summary Update person
// @Description Update a person's profile. The caller must outrank the target.
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Param person body service.UpdatePersonRequest true "Person data"
// @Success 200 {object} service.PersonResponse "Successfully updated person"
// @Failure 403 {object} ErrorResponse "Caller cannot manage this person"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Security BearerAuth
// @Router /people/{id} [put]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	role, _ := auth.GetRole(c)

	var req service.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.personService.UpdatePerson(tenantID, id, role, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// UpdatePersonRole changes a person's role
// @Summary Change a person's role
// @Description Assign a new role to a person. The caller must outrank both the current and the new role.
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Param role body service.UpdateRoleRequest true "New role"
// @Success 200 {object} service.PersonResponse "Successfully updated role"
// @Failure 403 {object} ErrorResponse "Role not assignable by caller"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Security BearerAuth
// @Router /people/{id}/role [put]
func (h *PersonHandler) UpdatePersonRole(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	role, _ := auth.GetRole(c)

	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.personService.UpdatePersonRole(tenantID, id, role, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// GetAssignableRoles lists roles the caller may assign
// @Summary List assignable roles
// @Description Get the roles the caller is allowed to assign to other people
// @Tags people
// @Accept json
// @Produce json
// @Success 200 {object} service.AssignableRolesResponse "Assignable roles"
// @Security BearerAuth
// @Router /people/roles/assignable [get]
func (h *PersonHandler) GetAssignableRoles(c *gin.Context) {
	role, _ := auth.GetRole(c)
	c.JSON(http.StatusOK, h.personService.GetAssignableRoles(role))
}

// DeletePerson deletes a person
// @Summary Delete person
// @Description Soft-delete a person. The caller must outrank the target.
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 204 "Successfully deleted person"
// @Failure 403 {object} ErrorResponse "Caller cannot manage this person"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Security BearerAuth
// @Router /people/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	role, _ := auth.GetRole(c)

	if err := h.personService.DeletePerson(tenantID, id, role); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
