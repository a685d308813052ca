package service_test

import (
	"testing"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/mocks"
	"helpdesk-admin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmailTemplateServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockEmailTemplateRepositoryInterface
	templateService *service.EmailTemplateService
	tenantID        uuid.UUID
}

func (suite *EmailTemplateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEmailTemplateRepositoryInterface(suite.ctrl)
	suite.templateService = service.NewEmailTemplateService(suite.mockRepo, validator.New())
	suite.tenantID = uuid.New()
}

func (suite *EmailTemplateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmailTemplateServiceTestSuite) TestCreateTemplate_Success() {
	req := &service.CreateEmailTemplateRequest{
		Event:   "ticket_created",
		Subject: "Ticket received: {{ticket.subject}}",
		Body:    "Hi {{person.first_name}}, we opened ticket {{ticket.id}}.",
	}

	suite.mockRepo.EXPECT().GetByEvent(suite.tenantID, models.EventTicketCreated).Return(nil, apperrors.ErrEmailTemplateNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.EmailTemplate) error {
		assert.Equal(suite.T(), models.EventTicketCreated, t.Event)
		assert.True(suite.T(), t.IsActive)
		return nil
	})

	resp, err := suite.templateService.CreateTemplate(suite.tenantID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"ticket.subject", "person.first_name", "ticket.id"}, resp.Variables)
}

func (suite *EmailTemplateServiceTestSuite) TestCreateTemplate_UnknownEvent() {
	req := &service.CreateEmailTemplateRequest{Event: "ticket_escalated", Subject: "x", Body: "y"}

	resp, err := suite.templateService.CreateTemplate(suite.tenantID, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidEvent)
}

func (suite *EmailTemplateServiceTestSuite) TestCreateTemplate_DuplicateEvent() {
	req := &service.CreateEmailTemplateRequest{Event: "ticket_resolved", Subject: "x", Body: "y"}

	suite.mockRepo.EXPECT().GetByEvent(suite.tenantID, models.EventTicketResolved).Return(&models.EmailTemplate{}, nil)

	resp, err := suite.templateService.CreateTemplate(suite.tenantID, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailTemplateExists)
}

func (suite *EmailTemplateServiceTestSuite) TestUpdateTemplate_DeactivateKeepsEvent() {
	id := uuid.New()
	template := &models.EmailTemplate{
		BaseModel: models.BaseModel{ID: id},
		TenantID:  suite.tenantID,
		Event:     models.EventSurveyInvite,
		Subject:   "old",
		Body:      "old body",
		IsActive:  true,
	}
	inactive := false

	suite.mockRepo.EXPECT().GetByID(id).Return(template, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(t *models.EmailTemplate) error {
		assert.False(suite.T(), t.IsActive)
		assert.Equal(suite.T(), models.EventSurveyInvite, t.Event)
		return nil
	})

	resp, err := suite.templateService.UpdateTemplate(suite.tenantID, id, &service.UpdateEmailTemplateRequest{IsActive: &inactive})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.IsActive)
}

func (suite *EmailTemplateServiceTestSuite) TestUpdateTemplate_NotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, apperrors.ErrEmailTemplateNotFound)

	resp, err := suite.templateService.UpdateTemplate(suite.tenantID, id, &service.UpdateEmailTemplateRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailTemplateNotFound)
}

func (suite *EmailTemplateServiceTestSuite) TestUpdateTemplate_OtherTenantHidden() {
	id := uuid.New()
	template := &models.EmailTemplate{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New(), Event: models.EventTicketCreated}

	suite.mockRepo.EXPECT().GetByID(id).Return(template, nil)

	resp, err := suite.templateService.UpdateTemplate(suite.tenantID, id, &service.UpdateEmailTemplateRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailTemplateNotFound)
}

func (suite *EmailTemplateServiceTestSuite) TestPreviewTemplate_SampleContext() {
	id := uuid.New()
	template := &models.EmailTemplate{
		BaseModel: models.BaseModel{ID: id},
		TenantID:  suite.tenantID,
		Subject:   "Re: {{ticket.subject}}",
		Body:      "Hello {{person.first_name}}, rate us at {{survey.link}}. {{unknown.path}} stays.",
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(template, nil)

	resp, err := suite.templateService.PreviewTemplate(suite.tenantID, id, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Re: Printer on floor 3 is jammed", resp.Subject)
	assert.Contains(suite.T(), resp.Body, "Hello Jordan")
	assert.Contains(suite.T(), resp.Body, "https://helpdesk.example/surveys/sample-token")
	// typos stay visible instead of rendering empty
	assert.Contains(suite.T(), resp.Body, "{{unknown.path}}")
}

func (suite *EmailTemplateServiceTestSuite) TestPreviewTemplate_CallerContextWins() {
	id := uuid.New()
	template := &models.EmailTemplate{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Subject: "{{ticket.subject}}", Body: "b"}

	suite.mockRepo.EXPECT().GetByID(id).Return(template, nil)

	resp, err := suite.templateService.PreviewTemplate(suite.tenantID, id, &service.PreviewRequest{
		Context: service.TemplateContext{"ticket": service.TemplateContext{"subject": "Custom subject"}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Custom subject", resp.Subject)
}

func (suite *EmailTemplateServiceTestSuite) TestDeleteTemplate_NotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, apperrors.ErrEmailTemplateNotFound)

	err := suite.templateService.DeleteTemplate(suite.tenantID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailTemplateNotFound)
}

func (suite *EmailTemplateServiceTestSuite) TestDeleteTemplate_OtherTenantHidden() {
	id := uuid.New()
	template := &models.EmailTemplate{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New()}

	suite.mockRepo.EXPECT().GetByID(id).Return(template, nil)

	err := suite.templateService.DeleteTemplate(suite.tenantID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailTemplateNotFound)
}

func (suite *EmailTemplateServiceTestSuite) TestPreviewDraft_RendersWithoutSaving() {
	resp, err := suite.templateService.PreviewDraft(&service.PreviewDraftRequest{
		Subject: "Re: {{ticket.subject}}",
		Body:    "Hi {{person.first_name}}",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Re: Printer on floor 3 is jammed", resp.Subject)
	assert.Equal(suite.T(), "Hi Jordan", resp.Body)
}

func (suite *EmailTemplateServiceTestSuite) TestPreviewDraft_MissingBodyRejected() {
	resp, err := suite.templateService.PreviewDraft(&service.PreviewDraftRequest{Subject: "s"})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func TestEmailTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmailTemplateServiceTestSuite))
}
