package handlers

import (
	"net/http"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationSettingHandler handles HTTP requests for notification preferences
type NotificationSettingHandler struct {
	settingService service.NotificationSettingServiceInterface
}

// NewNotificationSettingHandler creates a new notification setting handler
func NewNotificationSettingHandler(settingService service.NotificationSettingServiceInterface) *NotificationSettingHandler {
	return &NotificationSettingHandler{
		settingService: settingService,
	}
}

// GetSettings retrieves a person's notification preferences
// @Summary Get notification settings
// @Description Get a person's notification preferences. Returns defaults when the person never saved any.
// @Tags notification-settings
// @Accept json
// @Produce json
// @Param personId path string true "Person ID (UUID)"
// @Success 200 {object} service.NotificationSettingResponse "Notification settings"
// @Security BearerAuth
// @Router /notification-settings/{personId} [get]
func (h *NotificationSettingHandler) GetSettings(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	personID, ok := parseIDParam(c, "personId")
	if !ok {
		return
	}

	settings, err := h.settingService.GetByPersonID(tenantID, personID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces a person's notification preferences
// @Summary Update notification settings
// @Description Replace a person's notification preferences. All flags must be supplied.
// @Tags notification-settings
// @Accept json
// @Produce json
// @Param personId path string true "Person ID (UUID)"
// @Param settings body service.UpdateNotificationSettingRequest true "Full settings snapshot"
// @Success 200 {object} service.NotificationSettingResponse "Updated settings"
// @Failure 400 {object} ErrorResponse "Missing flags"
// @Security BearerAuth
// @Router /notification-settings/{personId} [put]
func (h *NotificationSettingHandler) UpdateSettings(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	personID, ok := parseIDParam(c, "personId")
	if !ok {
		return
	}

	var req service.UpdateNotificationSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingService.Update(tenantID, personID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
