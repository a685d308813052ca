package handlers

import (
	"net/http"
	"strconv"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmailTemplateHandler handles HTTP requests for email templates
type EmailTemplateHandler struct {
	templateService service.EmailTemplateServiceInterface
}

// NewEmailTemplateHandler creates a new email template handler
func NewEmailTemplateHandler(templateService service.EmailTemplateServiceInterface) *EmailTemplateHandler {
	return &EmailTemplateHandler{
		templateService: templateService,
	}
}

// CreateTemplate creates a new email template
// @Summary Create a new email template
// @Description Create an email template for a notification event. One template per event per tenant.
// @Tags email-templates
// @Accept json
// @Produce json
// @Param template body service.CreateEmailTemplateRequest true "Template data"
// @Success 201 {object} service.EmailTemplateResponse "Successfully created template"
// @Failure 400 {object} ErrorResponse "Invalid event or request body"
// @Failure 409 {object} ErrorResponse "Template already exists for event"
// @Security BearerAuth
// @Router /email-templates [post]
func (h *EmailTemplateHandler) CreateTemplate(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.CreateTemplate(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

// GetTemplate retrieves a template by ID
// @Summary Get email template by ID
// @Description Get a specific email template including the variables it references
// @Tags email-templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 200 {object} service.EmailTemplateResponse "Successfully retrieved template"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /email-templates/{id} [get]
func (h *EmailTemplateHandler) GetTemplate(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	template, err := h.templateService.GetTemplateByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// ListTemplates lists the tenant's email templates
// @Summary List email templates
// @Description Get the tenant's email templates with pagination
// @Tags email-templates
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.EmailTemplateListResponse "Successfully retrieved templates"
// @Security BearerAuth
// @Router /email-templates [get]
func (h *EmailTemplateHandler) ListTemplates(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	templates, err := h.templateService.GetTemplatesByTenant(tenantID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

// UpdateTemplate updates a template
// @Summary Update email template
// @Description Update a template's subject, body or active flag. The event cannot be changed.
// @Tags email-templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Param template body service.UpdateEmailTemplateRequest true "Template data"
// @Success 200 {object} service.EmailTemplateResponse "Successfully updated template"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /email-templates/{id} [put]
func (h *EmailTemplateHandler) UpdateTemplate(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.UpdateTemplate(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteTemplate deletes a template
// @Summary Delete email template
// @Description Soft-delete an email template
// @Tags email-templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 204 "Successfully deleted template"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /email-templates/{id} [delete]
func (h *EmailTemplateHandler) DeleteTemplate(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.templateService.DeleteTemplate(tenantID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewTemplate renders a template with a sample or provided context
// @Summary Preview email template
// @Description Render a template's subject and body. Uses the provided context, or built-in sample data when omitted.
// @Tags email-templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Param context body service.PreviewRequest false "Substitution context"
// @Success 200 {object} service.PreviewResponse "Rendered preview"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /email-templates/{id}/preview [post]
func (h *EmailTemplateHandler) PreviewTemplate(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.PreviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	preview, err := h.templateService.PreviewTemplate(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// PreviewDraftTemplate renders an unsaved subject and body
// @Summary Preview a draft email template
// @Description Render a subject and body that have not been saved yet. Uses the provided context, or built-in sample data when omitted.
// @Tags email-templates
// @Accept json
// @Produce json
// @Param draft body service.PreviewDraftRequest true "Draft subject, body and optional context"
// @Success 200 {object} service.PreviewResponse "Rendered preview"
// @Failure 400 {object} ErrorResponse "Missing subject or body"
// @Security BearerAuth
// @Router /email-templates/preview [post]
func (h *EmailTemplateHandler) PreviewDraftTemplate(c *gin.Context) {
	var req service.PreviewDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preview, err := h.templateService.PreviewDraft(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}
