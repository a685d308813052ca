package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "helpdesk-admin-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Message(t *testing.T) {
	assert.Equal(t, "ticket not found", apperrors.ErrTicketNotFound.Error())
	assert.Equal(t, "satisfaction survey not found", apperrors.ErrSurveyNotFound.Error())
}

func TestNotFoundError_Is(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", apperrors.ErrTicketNotFound)

	assert.True(t, errors.Is(wrapped, apperrors.ErrTicketNotFound))
	assert.False(t, errors.Is(wrapped, apperrors.ErrCustomerNotFound))
}

func TestAlreadyExistsError_Message(t *testing.T) {
	assert.Equal(t, "customer already exists with this email", apperrors.ErrCustomerExists.Error())
	assert.Equal(t, "tenant already exists with this name or slug", apperrors.ErrTenantExists.Error())
}

func TestValidationError_Message(t *testing.T) {
	err := apperrors.NewValidationError("customer_id", "requesters must belong to a customer")
	assert.Equal(t, "validation error: customer_id - requesters must belong to a customer", err.Error())

	bare := apperrors.NewValidationError("", "bad input")
	assert.Equal(t, "validation error: bad input", bare.Error())
}

func TestCategoryHelpers(t *testing.T) {
	assert.True(t, apperrors.IsNotFound(apperrors.ErrPersonNotFound))
	assert.False(t, apperrors.IsNotFound(apperrors.ErrPersonExists))

	assert.True(t, apperrors.IsAlreadyExists(apperrors.ErrSectorExists))
	assert.False(t, apperrors.IsAlreadyExists(apperrors.ErrSectorNotFound))

	assert.True(t, apperrors.IsValidation(apperrors.NewValidationError("rating", "must be 1-5")))
	assert.True(t, apperrors.IsAuthentication(apperrors.ErrInvalidCredentials))
	assert.True(t, apperrors.IsAuthorization(apperrors.NewAuthorizationError("forbidden")))
	assert.True(t, apperrors.IsConfiguration(apperrors.ErrTriageProviderNotConfigured))
	assert.False(t, apperrors.IsConfiguration(apperrors.ErrTriageRequestFailed))
}

func TestCategoryHelpers_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", apperrors.ErrSurveyNotFound)
	assert.True(t, apperrors.IsNotFound(wrapped))

	wrappedAuth := fmt.Errorf("login: %w", apperrors.ErrPersonInactive)
	assert.True(t, apperrors.IsAuthentication(wrappedAuth))
}

func TestSentinelErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(apperrors.ErrInvalidStatus, apperrors.ErrInvalidPriority))
	assert.False(t, errors.Is(apperrors.ErrSurveyExpired, apperrors.ErrSurveyAlreadyAnswered))
}
