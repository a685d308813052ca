package repository

import (
	"testing"

	"helpdesk-admin-backend/internal/database/models"
	"helpdesk-admin-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// NotificationSettingRepositoryTestSuite tests the NotificationSettingRepository
type NotificationSettingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationSettingRepository
	factories     *testutils.FactorySet
	person        *models.Person
}

func (suite *NotificationSettingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationSettingRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *NotificationSettingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *NotificationSettingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)
	suite.person = suite.factories.Person.WithTenant(tenant.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.person).Error)
}

func (suite *NotificationSettingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationSettingRepositoryTestSuite) TestGetByPersonIDNoRow() {
	setting, err := suite.repo.GetByPersonID(suite.person.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(setting)
}

func (suite *NotificationSettingRepositoryTestSuite) TestUpsertInsertsThenUpdates() {
	setting := models.DefaultNotificationSetting(suite.person.ID)
	setting.TicketResolved = false
	suite.NoError(suite.repo.Upsert(setting))

	retrieved, err := suite.repo.GetByPersonID(suite.person.ID)
	suite.NoError(err)
	suite.True(retrieved.EmailEnabled)
	suite.False(retrieved.TicketResolved)

	// Second upsert for the same person replaces the flags in place
	updated := models.DefaultNotificationSetting(suite.person.ID)
	updated.EmailEnabled = false
	suite.NoError(suite.repo.Upsert(updated))

	retrieved, err = suite.repo.GetByPersonID(suite.person.ID)
	suite.NoError(err)
	suite.False(retrieved.EmailEnabled)
	suite.True(retrieved.TicketResolved)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.NotificationSetting{}).
		Where("person_id = ?", suite.person.ID).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestNotificationSettingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationSettingRepositoryTestSuite))
}
