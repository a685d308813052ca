package handlers

import (
	"net/http"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SurveyHandler handles HTTP requests for satisfaction surveys
type SurveyHandler struct {
	surveyService service.SurveyServiceInterface
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveyService service.SurveyServiceInterface) *SurveyHandler {
	return &SurveyHandler{
		surveyService: surveyService,
	}
}

// GetTicketSurvey retrieves the survey attached to a ticket
// @Summary Get a ticket's survey
// @Description Get the satisfaction survey created for a ticket, if any
// @Tags surveys
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {object} service.SurveyResponse "Survey"
// @Failure 404 {object} ErrorResponse "Survey not found"
// @Security BearerAuth
// @Router /tickets/{id}/survey [get]
func (h *SurveyHandler) GetTicketSurvey(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	survey, err := h.surveyService.GetByTicketID(tenantID, ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, survey)
}

// SendTicketSurvey creates or re-sends a ticket's satisfaction survey
// @Summary Send a ticket's survey
// @Description Create a survey for a resolved ticket, or re-send the invite if an unanswered one already exists
// @Tags surveys
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 201 {object} service.SurveyResponse "Survey created or re-sent"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Failure 409 {object} ErrorResponse "Ticket not resolved or survey already answered"
// @Failure 410 {object} ErrorResponse "Survey expired"
// @Security BearerAuth
// @Router /tickets/{id}/satisfaction-survey [post]
func (h *SurveyHandler) SendTicketSurvey(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	survey, err := h.surveyService.SendForTicket(tenantID, ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, survey)
}

// GetPublicSurvey retrieves a survey by its public token
// @Summary Get survey by token
// @Description Public endpoint. Get the survey behind an emailed token, exposing only the ticket subject and answer state.
// @Tags surveys
// @Accept json
// @Produce json
// @Param token path string true "Survey token"
// @Success 200 {object} service.PublicSurveyResponse "Survey"
// @Failure 404 {object} ErrorResponse "Survey not found"
// @Router /satisfaction-surveys/{token} [get]
func (h *SurveyHandler) GetPublicSurvey(c *gin.Context) {
	survey, err := h.surveyService.GetByToken(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, survey)
}

// SubmitPublicSurvey records a survey answer
// @Summary Submit survey answer
// @Description Public endpoint. Record a rating and optional comment for the survey behind an emailed token.
// @Tags surveys
// @Accept json
// @Produce json
// @Param token path string true "Survey token"
// @Param answer body service.SubmitSurveyRequest true "Survey answer"
// @Success 200 {object} service.SurveyResponse "Recorded answer"
// @Failure 404 {object} ErrorResponse "Survey not found"
// @Failure 409 {object} ErrorResponse "Survey already answered"
// @Failure 410 {object} ErrorResponse "Survey expired"
// @Router /satisfaction-surveys/{token} [post]
func (h *SurveyHandler) SubmitPublicSurvey(c *gin.Context) {
	var req service.SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	survey, err := h.surveyService.SubmitByToken(c.Param("token"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, survey)
}
