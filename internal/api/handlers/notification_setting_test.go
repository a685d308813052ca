package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"helpdesk-admin-backend/internal/api/handlers"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/mocks"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationSettingHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSettingSv *mocks.MockNotificationSettingServiceInterface
	handler       *handlers.NotificationSettingHandler
	router        *gin.Engine
	tenantID      uuid.UUID
}

func (suite *NotificationSettingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSettingSv = mocks.NewMockNotificationSettingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewNotificationSettingHandler(suite.mockSettingSv)
	suite.tenantID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("tenant_id", suite.tenantID)
		c.Next()
	})
	suite.router.GET("/notification-settings/:personId", suite.handler.GetSettings)
	suite.router.PUT("/notification-settings/:personId", suite.handler.UpdateSettings)
}

func (suite *NotificationSettingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationSettingHandlerTestSuite) TestGetSettings_Defaults() {
	personID := uuid.New()
	settings := &service.NotificationSettingResponse{
		PersonID:       personID,
		EmailEnabled:   true,
		TicketCreated:  true,
		TicketAssigned: true,
		TicketResolved: true,
		SurveyInvite:   true,
	}
	suite.mockSettingSv.EXPECT().GetByPersonID(suite.tenantID, personID).Return(settings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notification-settings/"+personID.String(), nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.NotificationSettingResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.EmailEnabled)
	assert.True(suite.T(), resp.SurveyInvite)
}

func (suite *NotificationSettingHandlerTestSuite) TestGetSettings_PersonNotFound() {
	personID := uuid.New()
	suite.mockSettingSv.EXPECT().GetByPersonID(suite.tenantID, personID).Return(nil, apperrors.ErrPersonNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notification-settings/"+personID.String(), nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *NotificationSettingHandlerTestSuite) TestUpdateSettings_Success() {
	personID := uuid.New()
	updated := &service.NotificationSettingResponse{
		PersonID:       personID,
		EmailEnabled:   true,
		TicketResolved: false,
		SurveyInvite:   true,
	}
	suite.mockSettingSv.EXPECT().Update(suite.tenantID, personID, gomock.Any()).Return(updated, nil)

	body := `{"email_enabled":true,"ticket_created":true,"ticket_assigned":true,"ticket_resolved":false,"survey_invite":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/notification-settings/"+personID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.NotificationSettingResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.TicketResolved)
}

func (suite *NotificationSettingHandlerTestSuite) TestUpdateSettings_MissingFlags() {
	personID := uuid.New()
	suite.mockSettingSv.EXPECT().Update(suite.tenantID, personID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("ticket_resolved", "all flags must be supplied"))

	body := `{"email_enabled":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/notification-settings/"+personID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *NotificationSettingHandlerTestSuite) TestUpdateSettings_InvalidPersonID() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/notification-settings/not-a-uuid", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestNotificationSettingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationSettingHandlerTestSuite))
}
