package auth

import (
	"net/http"
	"strings"

	"helpdesk-admin-backend/internal/database/models"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}
		if claims.Kind != "access" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh tokens cannot be used for API access"})
			c.Abort()
			return
		}

		c.Set("person_id", claims.PersonID)
		c.Set("tenant_id", claims.TenantID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireRole restricts an endpoint to callers at or above the given rank
func (m *Middleware) RequireRole(minimum models.PersonRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok || service.RoleRank(models.PersonRole(roleStr)) < service.RoleRank(minimum) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this resource"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetPersonID extracts the caller's person ID from context
func GetPersonID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("person_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetTenantID extracts the caller's tenant ID from context
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("tenant_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetRole extracts the caller's role from context
func GetRole(c *gin.Context) (models.PersonRole, bool) {
	v, exists := c.Get("role")
	if !exists {
		return "", false
	}
	roleStr, ok := v.(string)
	return models.PersonRole(roleStr), ok
}

// GetEmail extracts the caller's email from context
func GetEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get("email")
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
