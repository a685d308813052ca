package service_test

import (
	"testing"

	"helpdesk-admin-backend/internal/config"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestLDAPSearchWithoutHostConfigured(t *testing.T) {
	svc := service.NewLDAPService(&config.Config{})

	users, err := svc.SearchUsersByName("jordan")

	assert.Nil(t, users)
	assert.ErrorIs(t, err, apperrors.ErrLDAPNotConfigured)
}
