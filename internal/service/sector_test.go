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

type SectorServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockSectorRepositoryInterface
	sectorService *service.SectorService
	tenantID      uuid.UUID
}

func (suite *SectorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSectorRepositoryInterface(suite.ctrl)
	suite.sectorService = service.NewSectorService(suite.mockRepo, validator.New())
	suite.tenantID = uuid.New()
}

func (suite *SectorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SectorServiceTestSuite) TestCreateSector_Success() {
	req := &service.CreateSectorRequest{Name: "Facilities", Description: "Buildings and hardware"}

	suite.mockRepo.EXPECT().GetByName(suite.tenantID, "Facilities").Return(nil, apperrors.ErrSectorNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.Sector) error {
		assert.Equal(suite.T(), suite.tenantID, s.TenantID)
		assert.True(suite.T(), s.IsActive)
		return nil
	})

	resp, err := suite.sectorService.CreateSector(suite.tenantID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Facilities", resp.Name)
}

func (suite *SectorServiceTestSuite) TestCreateSector_DuplicateName() {
	req := &service.CreateSectorRequest{Name: "Facilities"}

	suite.mockRepo.EXPECT().GetByName(suite.tenantID, "Facilities").Return(&models.Sector{}, nil)

	resp, err := suite.sectorService.CreateSector(suite.tenantID, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSectorExists)
}

func (suite *SectorServiceTestSuite) TestGetSectorByID_IncludesDepartments() {
	id := uuid.New()
	sector := &models.Sector{
		BaseModel: models.BaseModel{ID: id},
		TenantID:  suite.tenantID,
		Name:      "Facilities",
		Departments: []models.Department{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Hardware"},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Cleaning"},
		},
	}

	suite.mockRepo.EXPECT().GetWithDepartments(id).Return(sector, nil)

	resp, err := suite.sectorService.GetSectorByID(suite.tenantID, id)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Departments, 2)
	assert.Equal(suite.T(), "Hardware", resp.Departments[0].Name)
}

func (suite *SectorServiceTestSuite) TestGetSectorByID_OtherTenantHidden() {
	id := uuid.New()
	sector := &models.Sector{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New(), Name: "Facilities"}

	suite.mockRepo.EXPECT().GetWithDepartments(id).Return(sector, nil)

	resp, err := suite.sectorService.GetSectorByID(suite.tenantID, id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSectorNotFound)
}

func (suite *SectorServiceTestSuite) TestUpdateSector_RenameToTakenName() {
	id := uuid.New()
	sector := &models.Sector{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Name: "Facilities"}
	taken := "IT"

	suite.mockRepo.EXPECT().GetByID(id).Return(sector, nil)
	suite.mockRepo.EXPECT().GetByName(suite.tenantID, "IT").Return(&models.Sector{}, nil)

	resp, err := suite.sectorService.UpdateSector(suite.tenantID, id, &service.UpdateSectorRequest{Name: &taken})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSectorExists)
}

func (suite *SectorServiceTestSuite) TestUpdateSector_SameNameSkipsUniquenessCheck() {
	id := uuid.New()
	sector := &models.Sector{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Name: "Facilities"}
	same := "Facilities"
	inactive := false

	suite.mockRepo.EXPECT().GetByID(id).Return(sector, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(s *models.Sector) error {
		assert.False(suite.T(), s.IsActive)
		return nil
	})

	resp, err := suite.sectorService.UpdateSector(suite.tenantID, id, &service.UpdateSectorRequest{Name: &same, IsActive: &inactive})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.IsActive)
}

func (suite *SectorServiceTestSuite) TestDeleteSector_NotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, apperrors.ErrSectorNotFound)

	assert.ErrorIs(suite.T(), suite.sectorService.DeleteSector(suite.tenantID, id), apperrors.ErrSectorNotFound)
}

func (suite *SectorServiceTestSuite) TestDeleteSector_OtherTenantHidden() {
	id := uuid.New()
	sector := &models.Sector{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New()}

	suite.mockRepo.EXPECT().GetByID(id).Return(sector, nil)

	assert.ErrorIs(suite.T(), suite.sectorService.DeleteSector(suite.tenantID, id), apperrors.ErrSectorNotFound)
}

func TestSectorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SectorServiceTestSuite))
}
