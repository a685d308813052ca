package repository

import (
	"testing"
	"time"

	"helpdesk-admin-backend/internal/database/models"
	"helpdesk-admin-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// EmailMessageRepositoryTestSuite tests the EmailMessageRepository
type EmailMessageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmailMessageRepository
	factories     *testutils.FactorySet
	tenant        *models.Tenant
}

func (suite *EmailMessageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEmailMessageRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *EmailMessageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EmailMessageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenant = suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)
}

func (suite *EmailMessageRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EmailMessageRepositoryTestSuite) createMessage(status models.EmailStatus, createdAt time.Time) *models.EmailMessage {
	message := &models.EmailMessage{
		TenantID:  suite.tenant.ID,
		Recipient: "jordan.reyes@acme.example",
		Event:     models.EventTicketCreated,
		Subject:   "Ticket created",
		Body:      "Your ticket was created.",
		Status:    status,
	}
	message.CreatedAt = createdAt
	message.UpdatedAt = createdAt
	suite.NoError(suite.repo.Create(message))
	return message
}

func (suite *EmailMessageRepositoryTestSuite) TestCreateAndGetByID() {
	message := suite.createMessage(models.EmailStatusQueued, time.Now())

	retrieved, err := suite.repo.GetByID(message.ID)
	suite.NoError(err)
	suite.Equal("jordan.reyes@acme.example", retrieved.Recipient)
	suite.Equal(models.EmailStatusQueued, retrieved.Status)
	suite.Equal(0, retrieved.Attempts)
}

func (suite *EmailMessageRepositoryTestSuite) TestGetByStatusOldestFirstWithLimit() {
	older := suite.createMessage(models.EmailStatusQueued, time.Now().Add(-2*time.Hour))
	newer := suite.createMessage(models.EmailStatusQueued, time.Now().Add(-time.Hour))
	suite.createMessage(models.EmailStatusSent, time.Now())

	messages, err := suite.repo.GetByStatus(models.EmailStatusQueued, 10)
	suite.NoError(err)
	suite.Len(messages, 2)
	suite.Equal(older.ID, messages[0].ID)
	suite.Equal(newer.ID, messages[1].ID)

	messages, err = suite.repo.GetByStatus(models.EmailStatusQueued, 1)
	suite.NoError(err)
	suite.Len(messages, 1)
	suite.Equal(older.ID, messages[0].ID)
}

func (suite *EmailMessageRepositoryTestSuite) TestUpdateRecordsDeliveryOutcome() {
	message := suite.createMessage(models.EmailStatusQueued, time.Now())

	message.Status = models.EmailStatusFailed
	message.Attempts = 1
	message.LastError = "dial tcp: connection refused"
	suite.NoError(suite.repo.Update(message))

	retrieved, err := suite.repo.GetByID(message.ID)
	suite.NoError(err)
	suite.Equal(models.EmailStatusFailed, retrieved.Status)
	suite.Equal(1, retrieved.Attempts)
	suite.Equal("dial tcp: connection refused", retrieved.LastError)
}

func TestEmailMessageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmailMessageRepositoryTestSuite))
}
