package repository

import (
	"testing"
	"time"

	"helpdesk-admin-backend/internal/database/models"
	"helpdesk-admin-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TriageSuggestionRepositoryTestSuite tests the TriageSuggestionRepository
type TriageSuggestionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TriageSuggestionRepository
	factories     *testutils.FactorySet
	ticket        *models.Ticket
}

func (suite *TriageSuggestionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTriageSuggestionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TriageSuggestionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TriageSuggestionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)
	customer := suite.factories.Customer.WithTenant(tenant.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(customer).Error)
	suite.ticket = suite.factories.Ticket.WithCustomer(tenant.ID, customer.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.ticket).Error)
}

func (suite *TriageSuggestionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TriageSuggestionRepositoryTestSuite) createSuggestion(confidence float64, createdAt time.Time) *models.TriageSuggestion {
	suggestion := &models.TriageSuggestion{
		TicketID:   suite.ticket.ID,
		Priority:   models.TicketPriorityHigh,
		Confidence: confidence,
		Model:      "triage-v2",
		Rationale:  "keywords matched the infrastructure taxonomy",
		Status:     models.SuggestionStatusPending,
	}
	suggestion.CreatedAt = createdAt
	suggestion.UpdatedAt = createdAt
	suite.NoError(suite.repo.Create(suggestion))
	return suggestion
}

func (suite *TriageSuggestionRepositoryTestSuite) TestCreateAndGetByID() {
	suggestion := suite.createSuggestion(0.87, time.Now())

	retrieved, err := suite.repo.GetByID(suggestion.ID)
	suite.NoError(err)
	suite.Equal("triage-v2", retrieved.Model)
	suite.InDelta(0.87, retrieved.Confidence, 0.001)
	suite.Equal(models.SuggestionStatusPending, retrieved.Status)
}

func (suite *TriageSuggestionRepositoryTestSuite) TestGetByTicketIDNewestFirst() {
	older := suite.createSuggestion(0.60, time.Now().Add(-time.Hour))
	newer := suite.createSuggestion(0.90, time.Now())

	suggestions, err := suite.repo.GetByTicketID(suite.ticket.ID)
	suite.NoError(err)
	suite.Len(suggestions, 2)
	suite.Equal(newer.ID, suggestions[0].ID)
	suite.Equal(older.ID, suggestions[1].ID)
}

func (suite *TriageSuggestionRepositoryTestSuite) TestGetByStatus() {
	pending := suite.createSuggestion(0.70, time.Now())

	accepted := suite.createSuggestion(0.95, time.Now())
	accepted.Status = models.SuggestionStatusAccepted
	suite.NoError(suite.repo.Update(accepted))

	suggestions, total, err := suite.repo.GetByStatus(models.SuggestionStatusPending, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(pending.ID, suggestions[0].ID)
}

func (suite *TriageSuggestionRepositoryTestSuite) TestGetPendingByTenantScopedAndOrdered() {
	older := suite.createSuggestion(0.60, time.Now().Add(-time.Hour))
	newer := suite.createSuggestion(0.90, time.Now())

	accepted := suite.createSuggestion(0.95, time.Now())
	accepted.Status = models.SuggestionStatusAccepted
	suite.NoError(suite.repo.Update(accepted))

	otherTenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherTenant).Error)
	otherCustomer := suite.factories.Customer.WithTenant(otherTenant.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(otherCustomer).Error)
	otherTicket := suite.factories.Ticket.WithCustomer(otherTenant.ID, otherCustomer.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(otherTicket).Error)
	foreign := &models.TriageSuggestion{
		TicketID:   otherTicket.ID,
		Priority:   models.TicketPriorityLow,
		Confidence: 0.50,
		Model:      "triage-v2",
		Status:     models.SuggestionStatusPending,
	}
	suite.NoError(suite.repo.Create(foreign))

	suggestions, total, err := suite.repo.GetPendingByTenant(suite.ticket.TenantID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(suggestions, 2)
	suite.Equal(newer.ID, suggestions[0].ID)
	suite.Equal(older.ID, suggestions[1].ID)
}

func (suite *TriageSuggestionRepositoryTestSuite) TestGetPendingByTenantPagination() {
	for i := 0; i < 3; i++ {
		suite.createSuggestion(0.70, time.Now().Add(time.Duration(i)*time.Minute))
	}

	first, total, err := suite.repo.GetPendingByTenant(suite.ticket.TenantID, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(first, 2)

	second, _, err := suite.repo.GetPendingByTenant(suite.ticket.TenantID, 2, 2)
	suite.NoError(err)
	suite.Len(second, 1)
}

func (suite *TriageSuggestionRepositoryTestSuite) TestUpdateStatus() {
	suggestion := suite.createSuggestion(0.80, time.Now())

	suggestion.Status = models.SuggestionStatusRejected
	suite.NoError(suite.repo.Update(suggestion))

	retrieved, err := suite.repo.GetByID(suggestion.ID)
	suite.NoError(err)
	suite.Equal(models.SuggestionStatusRejected, retrieved.Status)
}

func TestTriageSuggestionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TriageSuggestionRepositoryTestSuite))
}
