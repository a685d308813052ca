package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in tenant"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound              = &NotFoundError{Entity: "tenant"}
	ErrCustomerNotFound            = &NotFoundError{Entity: "customer"}
	ErrPersonNotFound              = &NotFoundError{Entity: "person"}
	ErrSectorNotFound              = &NotFoundError{Entity: "sector"}
	ErrDepartmentNotFound          = &NotFoundError{Entity: "department"}
	ErrEmailTemplateNotFound       = &NotFoundError{Entity: "email template"}
	ErrNotificationSettingNotFound = &NotFoundError{Entity: "notification setting"}
	ErrProductNotFound             = &NotFoundError{Entity: "inventory product"}
	ErrMovementNotFound            = &NotFoundError{Entity: "inventory movement"}
	ErrTicketNotFound              = &NotFoundError{Entity: "ticket"}
	ErrSuggestionNotFound          = &NotFoundError{Entity: "triage suggestion"}
	ErrSurveyNotFound              = &NotFoundError{Entity: "satisfaction survey"}
	ErrEmailMessageNotFound        = &NotFoundError{Entity: "email message"}
)

// Already Exists Errors
var (
	ErrTenantExists        = &AlreadyExistsError{Entity: "tenant", Context: "with this name or slug"}
	ErrCustomerExists      = &AlreadyExistsError{Entity: "customer", Context: "with this email"}
	ErrPersonExists        = &AlreadyExistsError{Entity: "person", Context: "with this email"}
	ErrSectorExists        = &AlreadyExistsError{Entity: "sector", Context: "with this name in the tenant"}
	ErrDepartmentExists    = &AlreadyExistsError{Entity: "department", Context: "with this name in the sector"}
	ErrEmailTemplateExists = &AlreadyExistsError{Entity: "email template", Context: "for this event in the tenant"}
	ErrProductExists       = &AlreadyExistsError{Entity: "inventory product", Context: "with this SKU in the tenant"}
	ErrSurveyExists        = &AlreadyExistsError{Entity: "satisfaction survey", Context: "for this ticket"}
	ErrOfficialAttached    = &AlreadyExistsError{Entity: "official", Context: "in this department"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPriority         = errors.New("invalid priority")
	ErrInvalidEvent            = errors.New("invalid notification event")
	ErrInvalidRole             = errors.New("invalid role")
	ErrRoleNotAssignable       = errors.New("role is above the caller's rank")
	ErrPersonNotOfficial       = errors.New("person is not an official")
	ErrOfficialNotAttached     = errors.New("official is not attached to this department")
	ErrTicketNotResolved       = errors.New("ticket is not resolved")
	ErrTicketClosed            = errors.New("ticket is closed")
	ErrSurveyAlreadyAnswered   = errors.New("survey has already been answered")
	ErrSurveyExpired           = errors.New("survey has expired")
	ErrSuggestionNotPending    = errors.New("suggestion has already been reviewed")
	ErrInsufficientStock       = errors.New("movement would drive stock below zero")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidCSVHeader        = errors.New("unexpected CSV header")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrPersonInactive      = &AuthenticationError{Message: "person is deactivated"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrPersonEmailNotFound = &AuthenticationError{Message: "person email not found in context"}
)

// Configuration Errors
var (
	ErrTriageProviderNotConfigured = &ConfigurationError{Message: "AI triage provider is not configured"}
	ErrTriageRequestFailed         = errors.New("AI triage provider request failed")
	ErrSMTPNotConfigured           = &ConfigurationError{Message: "SMTP host is not configured"}
	ErrExportStorageNotConfigured  = &ConfigurationError{Message: "export object storage is not configured"}
	ErrLDAPNotConfigured           = &ConfigurationError{Message: "LDAP directory is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
