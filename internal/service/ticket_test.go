package service_test

import (
	"testing"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/mocks"
	"helpdesk-admin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeNotifier records dispatched events instead of sending email
type fakeNotifier struct {
	events []models.NotificationEvent
	err    error
}

func (f *fakeNotifier) NotifyTicketEvent(event models.NotificationEvent, ticketID uuid.UUID, extra service.TemplateContext) error {
	f.events = append(f.events, event)
	return f.err
}

func (f *fakeNotifier) ProcessMessage(payload any) error { return nil }

// fakeSurveys records survey creation requests
type fakeSurveys struct {
	created []uuid.UUID
	err     error
}

func (f *fakeSurveys) CreateForTicket(ticketID uuid.UUID) (*service.SurveyResponse, error) {
	f.created = append(f.created, ticketID)
	if f.err != nil {
		return nil, f.err
	}
	return &service.SurveyResponse{TicketID: ticketID}, nil
}

func (f *fakeSurveys) SendForTicket(tenantID, ticketID uuid.UUID) (*service.SurveyResponse, error) {
	return nil, apperrors.ErrSurveyNotFound
}

func (f *fakeSurveys) GetByTicketID(tenantID, ticketID uuid.UUID) (*service.SurveyResponse, error) {
	return nil, apperrors.ErrSurveyNotFound
}

func (f *fakeSurveys) GetByToken(token string) (*service.PublicSurveyResponse, error) {
	return nil, apperrors.ErrSurveyNotFound
}

func (f *fakeSurveys) SubmitByToken(token string, req *service.SubmitSurveyRequest) (*service.SurveyResponse, error) {
	return nil, apperrors.ErrSurveyNotFound
}

type TicketServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockTicketRepo   *mocks.MockTicketRepositoryInterface
	mockCustomerRepo *mocks.MockCustomerRepositoryInterface
	mockPersonRepo   *mocks.MockPersonRepositoryInterface
	mockSectorRepo   *mocks.MockSectorRepositoryInterface
	mockDeptRepo     *mocks.MockDepartmentRepositoryInterface
	notifier         *fakeNotifier
	surveys          *fakeSurveys
	ticketService    *service.TicketService
	tenantID         uuid.UUID
}

func (suite *TicketServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTicketRepo = mocks.NewMockTicketRepositoryInterface(suite.ctrl)
	suite.mockCustomerRepo = mocks.NewMockCustomerRepositoryInterface(suite.ctrl)
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.mockSectorRepo = mocks.NewMockSectorRepositoryInterface(suite.ctrl)
	suite.mockDeptRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.notifier = &fakeNotifier{}
	suite.surveys = &fakeSurveys{}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	suite.ticketService = service.NewTicketService(
		suite.mockTicketRepo,
		suite.mockCustomerRepo,
		suite.mockPersonRepo,
		suite.mockSectorRepo,
		suite.mockDeptRepo,
		suite.notifier,
		suite.surveys,
		validator.New(),
		logger,
	)
	suite.tenantID = uuid.New()
}

func (suite *TicketServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TicketServiceTestSuite) TestCreateTicket_Success() {
	customerID := uuid.New()
	customer := &models.Customer{BaseModel: models.BaseModel{ID: customerID}, TenantID: suite.tenantID}

	suite.mockCustomerRepo.EXPECT().GetByID(customerID).Return(customer, nil)
	suite.mockTicketRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Ticket) error {
		assert.Equal(suite.T(), models.TicketStatusOpen, t.Status)
		assert.Equal(suite.T(), models.TicketPriorityMedium, t.Priority)
		return nil
	})

	resp, err := suite.ticketService.CreateTicket(suite.tenantID, &service.CreateTicketRequest{
		CustomerID: customerID,
		Subject:    "Printer jam",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TicketStatusOpen, resp.Status)
	assert.Equal(suite.T(), []models.NotificationEvent{models.EventTicketCreated}, suite.notifier.events)
}

func (suite *TicketServiceTestSuite) TestCreateTicket_CustomerFromOtherTenant() {
	customerID := uuid.New()
	customer := &models.Customer{BaseModel: models.BaseModel{ID: customerID}, TenantID: uuid.New()}

	suite.mockCustomerRepo.EXPECT().GetByID(customerID).Return(customer, nil)

	resp, err := suite.ticketService.CreateTicket(suite.tenantID, &service.CreateTicketRequest{
		CustomerID: customerID,
		Subject:    "Printer jam",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCustomerNotFound)
	assert.Empty(suite.T(), suite.notifier.events)
}

func (suite *TicketServiceTestSuite) TestCreateTicket_InvalidPriority() {
	customerID := uuid.New()
	customer := &models.Customer{BaseModel: models.BaseModel{ID: customerID}, TenantID: suite.tenantID}
	bad := "critical"

	suite.mockCustomerRepo.EXPECT().GetByID(customerID).Return(customer, nil)

	resp, err := suite.ticketService.CreateTicket(suite.tenantID, &service.CreateTicketRequest{
		CustomerID: customerID,
		Subject:    "Printer jam",
		Priority:   &bad,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPriority)
}

func (suite *TicketServiceTestSuite) TestCreateTicket_DepartmentWithoutSector() {
	customerID := uuid.New()
	deptID := uuid.New()
	customer := &models.Customer{BaseModel: models.BaseModel{ID: customerID}, TenantID: suite.tenantID}

	suite.mockCustomerRepo.EXPECT().GetByID(customerID).Return(customer, nil)

	resp, err := suite.ticketService.CreateTicket(suite.tenantID, &service.CreateTicketRequest{
		CustomerID:   customerID,
		Subject:      "Printer jam",
		DepartmentID: &deptID,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TicketServiceTestSuite) TestCreateTicket_DepartmentOutsideSector() {
	customerID := uuid.New()
	sectorID := uuid.New()
	deptID := uuid.New()
	customer := &models.Customer{BaseModel: models.BaseModel{ID: customerID}, TenantID: suite.tenantID}
	sector := &models.Sector{BaseModel: models.BaseModel{ID: sectorID}, TenantID: suite.tenantID}
	dept := &models.Department{BaseModel: models.BaseModel{ID: deptID}, TenantID: suite.tenantID, SectorID: uuid.New()}

	suite.mockCustomerRepo.EXPECT().GetByID(customerID).Return(customer, nil)
	suite.mockSectorRepo.EXPECT().GetByID(sectorID).Return(sector, nil)
	suite.mockDeptRepo.EXPECT().GetByID(deptID).Return(dept, nil)

	resp, err := suite.ticketService.CreateTicket(suite.tenantID, &service.CreateTicketRequest{
		CustomerID:   customerID,
		Subject:      "Printer jam",
		SectorID:     &sectorID,
		DepartmentID: &deptID,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TicketServiceTestSuite) TestGetTicketsByTenant_InvalidStatusFilter() {
	resp, err := suite.ticketService.GetTicketsByTenant(suite.tenantID, service.TicketListFilters{Status: "on-hold"}, 1, 20)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *TicketServiceTestSuite) TestUpdateTicket_ClosedIsImmutable() {
	id := uuid.New()
	closed := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Status: models.TicketStatusClosed}
	subject := "New subject"

	suite.mockTicketRepo.EXPECT().GetByID(id).Return(closed, nil)

	resp, err := suite.ticketService.UpdateTicket(suite.tenantID, id, &service.UpdateTicketRequest{Subject: &subject})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTicketClosed)
}

func (suite *TicketServiceTestSuite) TestUpdateTicket_OtherTenantHidden() {
	id := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New(), Status: models.TicketStatusOpen}
	subject := "New subject"

	suite.mockTicketRepo.EXPECT().GetByID(id).Return(ticket, nil)

	resp, err := suite.ticketService.UpdateTicket(suite.tenantID, id, &service.UpdateTicketRequest{Subject: &subject})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTicketNotFound)
}

func (suite *TicketServiceTestSuite) TestAssignTicket_MovesOpenToInProgress() {
	id := uuid.New()
	officialID := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Status: models.TicketStatusOpen}
	official := &models.Person{BaseModel: models.BaseModel{ID: officialID}, TenantID: suite.tenantID, Role: models.PersonRoleOfficial}

	suite.mockTicketRepo.EXPECT().GetByID(id).Return(ticket, nil)
	suite.mockPersonRepo.EXPECT().GetByID(officialID).Return(official, nil)
	suite.mockTicketRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(t *models.Ticket) error {
		assert.Equal(suite.T(), models.TicketStatusInProgress, t.Status)
		assert.Equal(suite.T(), officialID, *t.OfficialID)
		return nil
	})

	resp, err := suite.ticketService.AssignTicket(suite.tenantID, id, &service.AssignTicketRequest{OfficialID: officialID})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TicketStatusInProgress, resp.Status)
	assert.Equal(suite.T(), []models.NotificationEvent{models.EventTicketAssigned}, suite.notifier.events)
}

func (suite *TicketServiceTestSuite) TestAssignTicket_RequesterRejected() {
	id := uuid.New()
	requesterID := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Status: models.TicketStatusOpen}
	requester := &models.Person{BaseModel: models.BaseModel{ID: requesterID}, TenantID: suite.tenantID, Role: models.PersonRoleRequester}

	suite.mockTicketRepo.EXPECT().GetByID(id).Return(ticket, nil)
	suite.mockPersonRepo.EXPECT().GetByID(requesterID).Return(requester, nil)

	resp, err := suite.ticketService.AssignTicket(suite.tenantID, id, &service.AssignTicketRequest{OfficialID: requesterID})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotOfficial)
}

func (suite *TicketServiceTestSuite) TestUpdateTicketStatus_ResolvedCreatesSurvey() {
	id := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Status: models.TicketStatusInProgress}

	suite.mockTicketRepo.EXPECT().GetByID(id).Return(ticket, nil)
	suite.mockTicketRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.ticketService.UpdateTicketStatus(suite.tenantID, id, &service.UpdateTicketStatusRequest{Status: "resolved"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TicketStatusResolved, resp.Status)
	assert.Equal(suite.T(), []models.NotificationEvent{models.EventTicketResolved}, suite.notifier.events)
	assert.Equal(suite.T(), []uuid.UUID{id}, suite.surveys.created)
}

func (suite *TicketServiceTestSuite) TestUpdateTicketStatus_ClosedOnlyReopens() {
	id := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Status: models.TicketStatusClosed}

	suite.mockTicketRepo.EXPECT().GetByID(id).Return(ticket, nil)

	resp, err := suite.ticketService.UpdateTicketStatus(suite.tenantID, id, &service.UpdateTicketStatusRequest{Status: "resolved"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTicketClosed)
}

func (suite *TicketServiceTestSuite) TestUpdateTicketStatus_ReopenClosedTicket() {
	id := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Status: models.TicketStatusClosed}

	suite.mockTicketRepo.EXPECT().GetByID(id).Return(ticket, nil)
	suite.mockTicketRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.ticketService.UpdateTicketStatus(suite.tenantID, id, &service.UpdateTicketStatusRequest{Status: "open"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TicketStatusOpen, resp.Status)
}

func (suite *TicketServiceTestSuite) TestUpdateTicketStatus_NoOpWhenUnchanged() {
	id := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Status: models.TicketStatusOpen}

	suite.mockTicketRepo.EXPECT().GetByID(id).Return(ticket, nil)

	resp, err := suite.ticketService.UpdateTicketStatus(suite.tenantID, id, &service.UpdateTicketStatusRequest{Status: "open"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TicketStatusOpen, resp.Status)
	assert.Empty(suite.T(), suite.notifier.events)
	assert.Empty(suite.T(), suite.surveys.created)
}

func (suite *TicketServiceTestSuite) TestUpdateTicketStatus_OtherTenantHidden() {
	id := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New(), Status: models.TicketStatusOpen}

	suite.mockTicketRepo.EXPECT().GetByID(id).Return(ticket, nil)

	resp, err := suite.ticketService.UpdateTicketStatus(suite.tenantID, id, &service.UpdateTicketStatusRequest{Status: "resolved"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTicketNotFound)
	assert.Empty(suite.T(), suite.notifier.events)
	assert.Empty(suite.T(), suite.surveys.created)
}

func (suite *TicketServiceTestSuite) TestGetTicketByID_OtherTenantHidden() {
	id := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New(), Status: models.TicketStatusOpen}

	suite.mockTicketRepo.EXPECT().GetWithRelations(id).Return(ticket, nil)

	resp, err := suite.ticketService.GetTicketByID(suite.tenantID, id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTicketNotFound)
}

func TestTicketServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TicketServiceTestSuite))
}
