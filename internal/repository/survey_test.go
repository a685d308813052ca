package repository

import (
	"testing"
	"time"

	"helpdesk-admin-backend/internal/database/models"
	"helpdesk-admin-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SurveyRepositoryTestSuite tests the SurveyRepository
type SurveyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SurveyRepository
	factories     *testutils.FactorySet
	tenant        *models.Tenant
	customer      *models.Customer
}

func (suite *SurveyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSurveyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *SurveyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SurveyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenant = suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)
	suite.customer = suite.factories.Customer.WithTenant(suite.tenant.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.customer).Error)
}

func (suite *SurveyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SurveyRepositoryTestSuite) createSurvey() *models.SatisfactionSurvey {
	ticket := suite.factories.Ticket.WithStatus(suite.tenant.ID, suite.customer.ID, models.TicketStatusResolved)
	suite.NoError(suite.baseTestSuite.DB.Create(ticket).Error)

	survey := suite.factories.Survey.WithTicket(ticket.ID)
	suite.NoError(suite.repo.Create(survey))
	return survey
}

func (suite *SurveyRepositoryTestSuite) answer(survey *models.SatisfactionSurvey, rating int) {
	now := time.Now()
	survey.Status = models.SurveyStatusAnswered
	survey.Rating = &rating
	survey.AnsweredAt = &now
	suite.NoError(suite.repo.Update(survey))
}

func (suite *SurveyRepositoryTestSuite) TestCreateAndGetByTicketID() {
	survey := suite.createSurvey()

	retrieved, err := suite.repo.GetByTicketID(survey.TicketID)
	suite.NoError(err)
	suite.Equal(survey.ID, retrieved.ID)
	suite.Equal(models.SurveyStatusPending, retrieved.Status)
}

func (suite *SurveyRepositoryTestSuite) TestGetByToken() {
	survey := suite.createSurvey()

	retrieved, err := suite.repo.GetByToken(survey.Token)
	suite.NoError(err)
	suite.Equal(survey.ID, retrieved.ID)

	_, err = suite.repo.GetByToken("unknown-token")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *SurveyRepositoryTestSuite) TestUpdateRecordsAnswer() {
	survey := suite.createSurvey()
	suite.answer(survey, 4)

	retrieved, err := suite.repo.GetByID(survey.ID)
	suite.NoError(err)
	suite.Equal(models.SurveyStatusAnswered, retrieved.Status)
	suite.NotNil(retrieved.Rating)
	suite.Equal(4, *retrieved.Rating)
	suite.NotNil(retrieved.AnsweredAt)
}

func (suite *SurveyRepositoryTestSuite) TestGetStats() {
	first := suite.createSurvey()
	second := suite.createSurvey()
	suite.createSurvey() // stays pending

	suite.answer(first, 5)
	suite.answer(second, 4)

	stats, err := suite.repo.GetStats(suite.tenant.ID)
	suite.NoError(err)
	suite.Equal(int64(3), stats.Sent)
	suite.Equal(int64(2), stats.Answered)
	suite.InDelta(4.5, stats.AverageRating, 0.001)
}

func (suite *SurveyRepositoryTestSuite) TestGetStatsEmptyTenant() {
	stats, err := suite.repo.GetStats(suite.tenant.ID)
	suite.NoError(err)
	suite.Equal(int64(0), stats.Sent)
	suite.Equal(int64(0), stats.Answered)
	suite.Equal(0.0, stats.AverageRating)
}

func TestSurveyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SurveyRepositoryTestSuite))
}
