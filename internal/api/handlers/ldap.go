package handlers

import (
	"net/http"

	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LDAPHandler handles HTTP requests for directory lookups
type LDAPHandler struct {
	ldapService service.LDAPServiceInterface
}

// NewLDAPHandler creates a new LDAP handler
func NewLDAPHandler(ldapService service.LDAPServiceInterface) *LDAPHandler {
	return &LDAPHandler{
		ldapService: ldapService,
	}
}

// SearchUsers searches the corporate directory by name
// @Summary Search directory users
// @Description Search the corporate directory for people whose name starts with the given prefix
// @Tags directory
// @Accept json
// @Produce json
// @Param name query string true "Name prefix"
// @Success 200 {array} service.LDAPUser "Matching users"
// @Failure 400 {object} ErrorResponse "Missing name parameter"
// @Failure 503 {object} ErrorResponse "Directory not configured"
// @Security BearerAuth
// @Router /directory/users [get]
func (h *LDAPHandler) SearchUsers(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	users, err := h.ldapService.SearchUsersByName(name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
