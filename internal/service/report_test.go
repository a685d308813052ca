package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/mocks"
	"helpdesk-admin-backend/internal/repository"
	"helpdesk-admin-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTicketRepo *mocks.MockTicketRepositoryInterface
	mockSurveyRepo *mocks.MockSurveyRepositoryInterface
	reportService  *service.ReportService
	tenantID       uuid.UUID
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTicketRepo = mocks.NewMockTicketRepositoryInterface(suite.ctrl)
	suite.mockSurveyRepo = mocks.NewMockSurveyRepositoryInterface(suite.ctrl)
	suite.reportService = service.NewReportService(suite.mockTicketRepo, suite.mockSurveyRepo, nil)
	suite.tenantID = uuid.New()
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) TestGetTicketSummary() {
	suite.mockTicketRepo.EXPECT().CountByStatus(suite.tenantID).Return([]repository.StatusCount{
		{Status: models.TicketStatusOpen, Count: 4},
		{Status: models.TicketStatusResolved, Count: 6},
	}, nil)
	suite.mockTicketRepo.EXPECT().CountBySector(suite.tenantID).Return([]repository.GroupCount{
		{Name: "Facilities", Count: 7},
	}, nil)
	suite.mockTicketRepo.EXPECT().CountByOfficial(suite.tenantID).Return([]repository.GroupCount{
		{Name: "Jordan Reyes", Count: 5},
	}, nil)

	resp, err := suite.reportService.GetTicketSummary(suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(10), resp.Total)
	assert.Len(suite.T(), resp.ByStatus, 2)
	assert.Equal(suite.T(), "Facilities", resp.BySector[0].Name)
}

func (suite *ReportServiceTestSuite) TestGetSatisfactionReport() {
	suite.mockSurveyRepo.EXPECT().GetStats(suite.tenantID).Return(&repository.SurveyStats{
		Sent:          8,
		Answered:      2,
		AverageRating: 4.5,
	}, nil)

	resp, err := suite.reportService.GetSatisfactionReport(suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(8), resp.Sent)
	assert.Equal(suite.T(), 0.25, resp.ResponseRate)
	assert.Equal(suite.T(), 4.5, resp.AverageRating)
}

func (suite *ReportServiceTestSuite) TestGetSatisfactionReport_NoSurveys() {
	suite.mockSurveyRepo.EXPECT().GetStats(suite.tenantID).Return(&repository.SurveyStats{}, nil)

	resp, err := suite.reportService.GetSatisfactionReport(suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), float64(0), resp.ResponseRate)
}

func (suite *ReportServiceTestSuite) TestExportTickets_WritesCSV() {
	now := time.Now()
	official := &models.Person{FullName: "Jordan Reyes"}
	sector := &models.Sector{Name: "Facilities"}
	tickets := []models.Ticket{
		{
			BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Subject:   "Printer jam",
			Status:    models.TicketStatusOpen,
			Priority:  models.TicketPriorityMedium,
			Customer:  models.Customer{Name: "Acme Corp"},
			Official:  official,
			Sector:    sector,
		},
		{
			BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Subject:   "VPN down",
			Status:    models.TicketStatusResolved,
			Priority:  models.TicketPriorityHigh,
			Customer:  models.Customer{Name: "Globex"},
		},
	}

	suite.mockTicketRepo.EXPECT().GetForExport(suite.tenantID).Return(tickets, nil)

	resp, err := suite.reportService.ExportTickets(context.Background(), suite.tenantID, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Rows)
	assert.Empty(suite.T(), resp.Location)
	assert.Contains(suite.T(), resp.Filename, suite.tenantID.String())

	records, err := csv.NewReader(bytes.NewReader(resp.Data)).ReadAll()
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), records, 3)
	assert.Equal(suite.T(), "subject", records[0][1])
	assert.Equal(suite.T(), "Printer jam", records[1][1])
	assert.Equal(suite.T(), "Jordan Reyes", records[1][5])
	assert.Equal(suite.T(), "Facilities", records[1][6])
	// unassigned columns stay empty
	assert.Equal(suite.T(), "", records[2][5])
	assert.Equal(suite.T(), "", records[2][6])
}

func (suite *ReportServiceTestSuite) TestExportTickets_UploadWithoutStore() {
	suite.mockTicketRepo.EXPECT().GetForExport(suite.tenantID).Return(nil, nil)

	resp, err := suite.reportService.ExportTickets(context.Background(), suite.tenantID, true)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExportStorageNotConfigured)
}

func (suite *ReportServiceTestSuite) TestExportTickets_EmptyTenant() {
	suite.mockTicketRepo.EXPECT().GetForExport(suite.tenantID).Return(nil, nil)

	resp, err := suite.reportService.ExportTickets(context.Background(), suite.tenantID, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.Rows)

	records, err := csv.NewReader(bytes.NewReader(resp.Data)).ReadAll()
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), records, 1)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
