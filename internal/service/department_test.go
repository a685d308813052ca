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

type DepartmentServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockDepartmentRepositoryInterface
	mockSectorRepo    *mocks.MockSectorRepositoryInterface
	mockPersonRepo    *mocks.MockPersonRepositoryInterface
	departmentService *service.DepartmentService
	tenantID          uuid.UUID
}

func (suite *DepartmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.mockSectorRepo = mocks.NewMockSectorRepositoryInterface(suite.ctrl)
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.departmentService = service.NewDepartmentService(
		suite.mockRepo,
		suite.mockSectorRepo,
		suite.mockPersonRepo,
		validator.New(),
	)
	suite.tenantID = uuid.New()
}

func (suite *DepartmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_Success() {
	sectorID := uuid.New()
	sector := &models.Sector{BaseModel: models.BaseModel{ID: sectorID}, TenantID: suite.tenantID}
	req := &service.CreateDepartmentRequest{SectorID: sectorID, Name: "Hardware"}

	suite.mockSectorRepo.EXPECT().GetByID(sectorID).Return(sector, nil)
	suite.mockRepo.EXPECT().GetByName(sectorID, "Hardware").Return(nil, apperrors.ErrDepartmentNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(d *models.Department) error {
		assert.Equal(suite.T(), suite.tenantID, d.TenantID)
		assert.Equal(suite.T(), sectorID, d.SectorID)
		assert.True(suite.T(), d.IsActive)
		return nil
	})

	resp, err := suite.departmentService.CreateDepartment(suite.tenantID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Hardware", resp.Name)
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_SectorFromOtherTenant() {
	sectorID := uuid.New()
	sector := &models.Sector{BaseModel: models.BaseModel{ID: sectorID}, TenantID: uuid.New()}

	suite.mockSectorRepo.EXPECT().GetByID(sectorID).Return(sector, nil)

	resp, err := suite.departmentService.CreateDepartment(suite.tenantID, &service.CreateDepartmentRequest{
		SectorID: sectorID,
		Name:     "Hardware",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSectorNotFound)
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_DuplicateNameInSector() {
	sectorID := uuid.New()
	sector := &models.Sector{BaseModel: models.BaseModel{ID: sectorID}, TenantID: suite.tenantID}

	suite.mockSectorRepo.EXPECT().GetByID(sectorID).Return(sector, nil)
	suite.mockRepo.EXPECT().GetByName(sectorID, "Hardware").Return(&models.Department{}, nil)

	resp, err := suite.departmentService.CreateDepartment(suite.tenantID, &service.CreateDepartmentRequest{
		SectorID: sectorID,
		Name:     "Hardware",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDepartmentExists)
}

func (suite *DepartmentServiceTestSuite) TestAddOfficial_Success() {
	departmentID := uuid.New()
	personID := uuid.New()
	department := &models.Department{BaseModel: models.BaseModel{ID: departmentID}, TenantID: suite.tenantID}
	official := &models.Person{BaseModel: models.BaseModel{ID: personID}, TenantID: suite.tenantID, Role: models.PersonRoleOfficial}

	suite.mockRepo.EXPECT().GetWithOfficials(departmentID).Return(department, nil)
	suite.mockPersonRepo.EXPECT().GetByID(personID).Return(official, nil)
	suite.mockRepo.EXPECT().AddOfficial(departmentID, personID).Return(nil)

	assert.NoError(suite.T(), suite.departmentService.AddOfficial(suite.tenantID, departmentID, personID))
}

func (suite *DepartmentServiceTestSuite) TestAddOfficial_DepartmentFromOtherTenant() {
	departmentID := uuid.New()
	department := &models.Department{BaseModel: models.BaseModel{ID: departmentID}, TenantID: uuid.New()}

	suite.mockRepo.EXPECT().GetWithOfficials(departmentID).Return(department, nil)

	err := suite.departmentService.AddOfficial(suite.tenantID, departmentID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrDepartmentNotFound)
}

func (suite *DepartmentServiceTestSuite) TestAddOfficial_RequesterRejected() {
	departmentID := uuid.New()
	personID := uuid.New()
	department := &models.Department{BaseModel: models.BaseModel{ID: departmentID}, TenantID: suite.tenantID}
	requester := &models.Person{BaseModel: models.BaseModel{ID: personID}, TenantID: suite.tenantID, Role: models.PersonRoleRequester}

	suite.mockRepo.EXPECT().GetWithOfficials(departmentID).Return(department, nil)
	suite.mockPersonRepo.EXPECT().GetByID(personID).Return(requester, nil)

	err := suite.departmentService.AddOfficial(suite.tenantID, departmentID, personID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotOfficial)
}

func (suite *DepartmentServiceTestSuite) TestAddOfficial_CrossTenantRejected() {
	departmentID := uuid.New()
	personID := uuid.New()
	department := &models.Department{BaseModel: models.BaseModel{ID: departmentID}, TenantID: suite.tenantID}
	official := &models.Person{BaseModel: models.BaseModel{ID: personID}, TenantID: uuid.New(), Role: models.PersonRoleOfficial}

	suite.mockRepo.EXPECT().GetWithOfficials(departmentID).Return(department, nil)
	suite.mockPersonRepo.EXPECT().GetByID(personID).Return(official, nil)

	err := suite.departmentService.AddOfficial(suite.tenantID, departmentID, personID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

func (suite *DepartmentServiceTestSuite) TestAddOfficial_AlreadyAttached() {
	departmentID := uuid.New()
	personID := uuid.New()
	department := &models.Department{
		BaseModel: models.BaseModel{ID: departmentID},
		TenantID:  suite.tenantID,
		Officials: []models.Person{{BaseModel: models.BaseModel{ID: personID}}},
	}
	official := &models.Person{BaseModel: models.BaseModel{ID: personID}, TenantID: suite.tenantID, Role: models.PersonRoleOfficial}

	suite.mockRepo.EXPECT().GetWithOfficials(departmentID).Return(department, nil)
	suite.mockPersonRepo.EXPECT().GetByID(personID).Return(official, nil)

	err := suite.departmentService.AddOfficial(suite.tenantID, departmentID, personID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOfficialAttached)
}

func (suite *DepartmentServiceTestSuite) TestRemoveOfficial_NotAttached() {
	departmentID := uuid.New()
	department := &models.Department{BaseModel: models.BaseModel{ID: departmentID}, TenantID: suite.tenantID}

	suite.mockRepo.EXPECT().GetWithOfficials(departmentID).Return(department, nil)

	err := suite.departmentService.RemoveOfficial(suite.tenantID, departmentID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrOfficialNotAttached)
}

func (suite *DepartmentServiceTestSuite) TestRemoveOfficial_Success() {
	departmentID := uuid.New()
	personID := uuid.New()
	department := &models.Department{
		BaseModel: models.BaseModel{ID: departmentID},
		TenantID:  suite.tenantID,
		Officials: []models.Person{{BaseModel: models.BaseModel{ID: personID}}},
	}

	suite.mockRepo.EXPECT().GetWithOfficials(departmentID).Return(department, nil)
	suite.mockRepo.EXPECT().RemoveOfficial(departmentID, personID).Return(nil)

	assert.NoError(suite.T(), suite.departmentService.RemoveOfficial(suite.tenantID, departmentID, personID))
}

func (suite *DepartmentServiceTestSuite) TestGetDepartmentByID_IncludesOfficials() {
	id := uuid.New()
	department := &models.Department{
		BaseModel: models.BaseModel{ID: id},
		TenantID:  suite.tenantID,
		Name:      "Hardware",
		Officials: []models.Person{
			{BaseModel: models.BaseModel{ID: uuid.New()}, FullName: "Jordan Reyes", Role: models.PersonRoleOfficial},
		},
	}

	suite.mockRepo.EXPECT().GetWithOfficials(id).Return(department, nil)

	resp, err := suite.departmentService.GetDepartmentByID(suite.tenantID, id)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Officials, 1)
	assert.Equal(suite.T(), "Jordan Reyes", resp.Officials[0].FullName)
}

func (suite *DepartmentServiceTestSuite) TestGetDepartmentByID_OtherTenantHidden() {
	id := uuid.New()
	department := &models.Department{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New(), Name: "Hardware"}

	suite.mockRepo.EXPECT().GetWithOfficials(id).Return(department, nil)

	resp, err := suite.departmentService.GetDepartmentByID(suite.tenantID, id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDepartmentNotFound)
}

func TestDepartmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceTestSuite))
}
