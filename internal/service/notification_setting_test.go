package service_test

import (
	"testing"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/mocks"
	"helpdesk-admin-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationSettingServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockNotificationSettingRepositoryInterface
	mockPersonRepo *mocks.MockPersonRepositoryInterface
	settingService *service.NotificationSettingService
	tenantID       uuid.UUID
}

func (suite *NotificationSettingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockNotificationSettingRepositoryInterface(suite.ctrl)
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.settingService = service.NewNotificationSettingService(suite.mockRepo, suite.mockPersonRepo)
	suite.tenantID = uuid.New()
}

func (suite *NotificationSettingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func boolPtr(b bool) *bool { return &b }

func (suite *NotificationSettingServiceTestSuite) TestGetByPersonID_NoRowReturnsDefaults() {
	personID := uuid.New()

	suite.mockPersonRepo.EXPECT().GetByID(personID).Return(&models.Person{TenantID: suite.tenantID}, nil)
	suite.mockRepo.EXPECT().GetByPersonID(personID).Return(nil, apperrors.ErrNotificationSettingNotFound)

	resp, err := suite.settingService.GetByPersonID(suite.tenantID, personID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.EmailEnabled)
	assert.True(suite.T(), resp.TicketCreated)
	assert.True(suite.T(), resp.SurveyInvite)
}

func (suite *NotificationSettingServiceTestSuite) TestGetByPersonID_SavedRowWins() {
	personID := uuid.New()
	setting := &models.NotificationSetting{PersonID: personID, EmailEnabled: true, TicketResolved: false, TicketCreated: true}

	suite.mockPersonRepo.EXPECT().GetByID(personID).Return(&models.Person{TenantID: suite.tenantID}, nil)
	suite.mockRepo.EXPECT().GetByPersonID(personID).Return(setting, nil)

	resp, err := suite.settingService.GetByPersonID(suite.tenantID, personID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.TicketResolved)
	assert.True(suite.T(), resp.TicketCreated)
}

func (suite *NotificationSettingServiceTestSuite) TestGetByPersonID_UnknownPerson() {
	personID := uuid.New()

	suite.mockPersonRepo.EXPECT().GetByID(personID).Return(nil, apperrors.ErrPersonNotFound)

	resp, err := suite.settingService.GetByPersonID(suite.tenantID, personID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

func (suite *NotificationSettingServiceTestSuite) TestGetByPersonID_OtherTenantHidden() {
	personID := uuid.New()

	suite.mockPersonRepo.EXPECT().GetByID(personID).Return(&models.Person{TenantID: uuid.New()}, nil)

	resp, err := suite.settingService.GetByPersonID(suite.tenantID, personID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

func (suite *NotificationSettingServiceTestSuite) TestUpdate_UpsertsFullSnapshot() {
	personID := uuid.New()
	req := &service.UpdateNotificationSettingRequest{
		EmailEnabled:   boolPtr(true),
		TicketCreated:  boolPtr(false),
		TicketAssigned: boolPtr(true),
		TicketResolved: boolPtr(true),
		SurveyInvite:   boolPtr(false),
	}

	suite.mockPersonRepo.EXPECT().GetByID(personID).Return(&models.Person{TenantID: suite.tenantID}, nil)
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(s *models.NotificationSetting) error {
		assert.Equal(suite.T(), personID, s.PersonID)
		assert.False(suite.T(), s.TicketCreated)
		assert.False(suite.T(), s.SurveyInvite)
		return nil
	})

	resp, err := suite.settingService.Update(suite.tenantID, personID, req)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.TicketCreated)
}

func (suite *NotificationSettingServiceTestSuite) TestUpdate_MissingFlagRejected() {
	req := &service.UpdateNotificationSettingRequest{
		EmailEnabled: boolPtr(true),
	}

	resp, err := suite.settingService.Update(suite.tenantID, uuid.New(), req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestNotificationSettingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationSettingServiceTestSuite))
}
