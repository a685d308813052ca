package handlers

import (
	"net/http"
	"strconv"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TicketHandler handles HTTP requests for tickets
type TicketHandler struct {
	ticketService service.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// CreateTicket creates a new ticket
// @Summary Create a new ticket
// @Description Open a ticket for a customer of the caller's tenant
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body service.CreateTicketRequest true "Ticket data"
// @Success 201 {object} service.TicketResponse "Successfully created ticket"
// @Failure 400 {object} ErrorResponse "Invalid request body or routing"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.CreateTicket(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// GetTicket retrieves a ticket by ID
// @Summary Get ticket by ID
// @Description Get a specific ticket with its customer, official and routing
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {object} service.TicketResponse "Successfully retrieved ticket"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Security BearerAuth
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicketByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// ListTickets lists the tenant's tickets
// @Summary List tickets
// @Description Get the tenant's tickets with pagination. Filter by status, priority, sector_id, official_id or customer_id.
// @Tags tickets
// @Accept json
// @Produce json
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param sector_id query string false "Sector ID (UUID)"
// @Param official_id query string false "Official ID (UUID)"
// @Param customer_id query string false "Customer ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TicketListResponse "Successfully retrieved tickets"
// @Security BearerAuth
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filters := service.TicketListFilters{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	if raw := c.Query("sector_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sector_id"})
			return
		}
		filters.SectorID = &id
	}
	if raw := c.Query("official_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid official_id"})
			return
		}
		filters.OfficialID = &id
	}
	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id"})
			return
		}
		filters.CustomerID = &id
	}

	tickets, err := h.ticketService.GetTicketsByTenant(tenantID, filters, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// UpdateTicket updates a ticket's editable fields
// @Summary Update ticket
// @Description Update a ticket's subject, description, priority or routing. Closed tickets cannot be edited.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param ticket body service.UpdateTicketRequest true "Ticket data"
// @Success 200 {object} service.TicketResponse "Successfully updated ticket"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Failure 409 {object} ErrorResponse "Ticket is closed"
// @Security BearerAuth
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.UpdateTicket(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// AssignTicket assigns a ticket to an official
// @Summary Assign ticket
// @Description Assign a ticket to an official of the same tenant. Open tickets move to in_progress.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param assignment body service.AssignTicketRequest true "Assignment data"
// @Success 200 {object} service.TicketResponse "Successfully assigned ticket"
// @Failure 400 {object} ErrorResponse "Person is not an official"
// @Failure 404 {object} ErrorResponse "Ticket or official not found"
// @Security BearerAuth
// @Router /tickets/{id}/assign [put]
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.AssignTicket(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// UpdateTicketStatus changes a ticket's lifecycle state
// @Summary Update ticket status
// @Description Move a ticket through its lifecycle. Resolving a ticket triggers a satisfaction survey.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param status body service.UpdateTicketStatusRequest true "New status"
// @Success 200 {object} service.TicketResponse "Successfully updated status"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /tickets/{id}/status [put]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.UpdateTicketStatus(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
