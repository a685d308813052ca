package handlers

import (
	"net/http"
	"strconv"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TriageHandler handles HTTP requests for AI triage suggestions
type TriageHandler struct {
	triageService service.TriageServiceInterface
}

// NewTriageHandler creates a new triage handler
func NewTriageHandler(triageService service.TriageServiceInterface) *TriageHandler {
	return &TriageHandler{
		triageService: triageService,
	}
}

// RequestSuggestion asks the AI provider for a routing suggestion
// @Summary Request AI triage suggestion
// @Description Ask the configured AI provider to suggest routing and priority for a ticket
// @Tags triage
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 201 {object} service.SuggestionResponse "Suggestion created"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Failure 409 {object} ErrorResponse "Ticket is closed"
// @Failure 502 {object} ErrorResponse "AI provider request failed"
// @Failure 503 {object} ErrorResponse "AI provider not configured"
// @Security BearerAuth
// @Router /tickets/{id}/ai-suggestions [post]
func (h *TriageHandler) RequestSuggestion(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	suggestion, err := h.triageService.RequestSuggestion(c.Request.Context(), tenantID, ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, suggestion)
}

// ListSuggestions lists a ticket's triage suggestions
// @Summary List AI triage suggestions
// @Description Get a ticket's triage suggestions, most recent first
// @Tags triage
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {array} service.SuggestionResponse "Suggestions"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Security BearerAuth
// @Router /tickets/{id}/ai-suggestions [get]
func (h *TriageHandler) ListSuggestions(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	suggestions, err := h.triageService.GetSuggestionsByTicket(tenantID, ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// ListPendingSuggestions lists the tenant's pending suggestions
// @Summary List pending AI triage suggestions
// @Description Get every pending suggestion across the tenant's tickets, most recent first
// @Tags triage
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SuggestionListResponse "Pending suggestions"
// @Security BearerAuth
// @Router /ai-suggestions [get]
func (h *TriageHandler) ListPendingSuggestions(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	suggestions, err := h.triageService.ListPendingSuggestions(tenantID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// AcceptSuggestion applies a pending suggestion to its ticket
// @Summary Accept AI triage suggestion
// @Description Apply a pending suggestion's routing and priority to the ticket
// @Tags triage
// @Accept json
// @Produce json
// @Param id path string true "Suggestion ID (UUID)"
// @Success 200 {object} service.SuggestionResponse "Suggestion accepted"
// @Failure 404 {object} ErrorResponse "Suggestion not found"
// @Failure 409 {object} ErrorResponse "Suggestion is not pending"
// @Security BearerAuth
// @Router /ai-suggestions/{id}/accept [put]
func (h *TriageHandler) AcceptSuggestion(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	suggestion, err := h.triageService.AcceptSuggestion(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// RejectSuggestion discards a pending suggestion
// @Summary Reject AI triage suggestion
// @Description Mark a pending suggestion as rejected without touching the ticket
// @Tags triage
// @Accept json
// @Produce json
// @Param id path string true "Suggestion ID (UUID)"
// @Success 200 {object} service.SuggestionResponse "Suggestion rejected"
// @Failure 404 {object} ErrorResponse "Suggestion not found"
// @Failure 409 {object} ErrorResponse "Suggestion is not pending"
// @Security BearerAuth
// @Router /ai-suggestions/{id}/reject [put]
func (h *TriageHandler) RejectSuggestion(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	suggestion, err := h.triageService.RejectSuggestion(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
