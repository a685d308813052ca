package repository

import (
	"testing"

	"helpdesk-admin-backend/internal/database/models"
	"helpdesk-admin-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TicketRepositoryTestSuite tests the TicketRepository
type TicketRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TicketRepository
	factories     *testutils.FactorySet
	tenant        *models.Tenant
	customer      *models.Customer
	sector        *models.Sector
	official      *models.Person
}

func (suite *TicketRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTicketRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TicketRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TicketRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.tenant = suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)
	suite.customer = suite.factories.Customer.WithTenant(suite.tenant.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.customer).Error)
	suite.sector = suite.factories.Sector.WithName(suite.tenant.ID, "IT")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.sector).Error)
	suite.official = suite.factories.Person.WithRole(suite.tenant.ID, models.PersonRoleOfficial)
	suite.official.FullName = "Jordan Reyes"
	suite.NoError(suite.baseTestSuite.DB.Create(suite.official).Error)
}

func (suite *TicketRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TicketRepositoryTestSuite) createTicket(status models.TicketStatus, priority models.TicketPriority) *models.Ticket {
	ticket := suite.factories.Ticket.WithStatus(suite.tenant.ID, suite.customer.ID, status)
	ticket.Priority = priority
	suite.NoError(suite.repo.Create(ticket))
	return ticket
}

func (suite *TicketRepositoryTestSuite) TestCreateAndGetByID() {
	ticket := suite.createTicket(models.TicketStatusOpen, models.TicketPriorityMedium)

	retrieved, err := suite.repo.GetByID(ticket.ID)
	suite.NoError(err)
	suite.Equal(ticket.Subject, retrieved.Subject)
	suite.Equal(models.TicketStatusOpen, retrieved.Status)
}

func (suite *TicketRepositoryTestSuite) TestGetWithRelations() {
	ticket := suite.createTicket(models.TicketStatusOpen, models.TicketPriorityMedium)

	retrieved, err := suite.repo.GetWithRelations(ticket.ID)
	suite.NoError(err)
	suite.Equal(suite.customer.Name, retrieved.Customer.Name)
}

func (suite *TicketRepositoryTestSuite) TestGetByTenantIDStatusAndPriorityFilters() {
	suite.createTicket(models.TicketStatusOpen, models.TicketPriorityHigh)
	suite.createTicket(models.TicketStatusOpen, models.TicketPriorityLow)
	suite.createTicket(models.TicketStatusResolved, models.TicketPriorityHigh)

	tickets, total, err := suite.repo.GetByTenantID(suite.tenant.ID, TicketFilters{Status: models.TicketStatusOpen}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(tickets, 2)

	filters := TicketFilters{Status: models.TicketStatusOpen, Priority: models.TicketPriorityHigh}
	tickets, total, err = suite.repo.GetByTenantID(suite.tenant.ID, filters, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(models.TicketPriorityHigh, tickets[0].Priority)
}

func (suite *TicketRepositoryTestSuite) TestGetByTenantIDSectorAndOfficialFilters() {
	routed := suite.createTicket(models.TicketStatusInProgress, models.TicketPriorityMedium)
	routed.SectorID = &suite.sector.ID
	routed.OfficialID = &suite.official.ID
	suite.NoError(suite.repo.Update(routed))

	suite.createTicket(models.TicketStatusOpen, models.TicketPriorityMedium)

	tickets, total, err := suite.repo.GetByTenantID(suite.tenant.ID, TicketFilters{SectorID: &suite.sector.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(routed.ID, tickets[0].ID)

	tickets, total, err = suite.repo.GetByTenantID(suite.tenant.ID, TicketFilters{OfficialID: &suite.official.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(routed.ID, tickets[0].ID)
}

func (suite *TicketRepositoryTestSuite) TestCountByStatus() {
	suite.createTicket(models.TicketStatusOpen, models.TicketPriorityMedium)
	suite.createTicket(models.TicketStatusOpen, models.TicketPriorityMedium)
	suite.createTicket(models.TicketStatusResolved, models.TicketPriorityMedium)

	counts, err := suite.repo.CountByStatus(suite.tenant.ID)
	suite.NoError(err)

	byStatus := make(map[models.TicketStatus]int64)
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	suite.Equal(int64(2), byStatus[models.TicketStatusOpen])
	suite.Equal(int64(1), byStatus[models.TicketStatusResolved])
}

func (suite *TicketRepositoryTestSuite) TestCountBySectorIncludesUnrouted() {
	routed := suite.createTicket(models.TicketStatusOpen, models.TicketPriorityMedium)
	routed.SectorID = &suite.sector.ID
	suite.NoError(suite.repo.Update(routed))

	suite.createTicket(models.TicketStatusOpen, models.TicketPriorityMedium)

	counts, err := suite.repo.CountBySector(suite.tenant.ID)
	suite.NoError(err)
	suite.Len(counts, 2)

	byName := make(map[string]int64)
	for _, c := range counts {
		byName[c.Name] = c.Count
	}
	suite.Equal(int64(1), byName["IT"])
	suite.Equal(int64(1), byName[""]) // unrouted bucket
}

func (suite *TicketRepositoryTestSuite) TestCountByOfficial() {
	assigned := suite.createTicket(models.TicketStatusInProgress, models.TicketPriorityMedium)
	assigned.OfficialID = &suite.official.ID
	suite.NoError(suite.repo.Update(assigned))

	counts, err := suite.repo.CountByOfficial(suite.tenant.ID)
	suite.NoError(err)

	byName := make(map[string]int64)
	for _, c := range counts {
		byName[c.Name] = c.Count
	}
	suite.Equal(int64(1), byName["Jordan Reyes"])
}

func (suite *TicketRepositoryTestSuite) TestGetForExportPreloadsRelations() {
	ticket := suite.createTicket(models.TicketStatusOpen, models.TicketPriorityMedium)
	ticket.SectorID = &suite.sector.ID
	suite.NoError(suite.repo.Update(ticket))

	tickets, err := suite.repo.GetForExport(suite.tenant.ID)
	suite.NoError(err)
	suite.Len(tickets, 1)
	suite.Equal(suite.customer.Name, tickets[0].Customer.Name)
	suite.Equal("IT", tickets[0].Sector.Name)
}

func TestTicketRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TicketRepositoryTestSuite))
}
