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
	"golang.org/x/crypto/bcrypt"
)

type PersonServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPersonRepo *mocks.MockPersonRepositoryInterface
	personService  *service.PersonService
	tenantID       uuid.UUID
}

func (suite *PersonServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.personService = service.NewPersonService(suite.mockPersonRepo, validator.New())
	suite.tenantID = uuid.New()
}

func (suite *PersonServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func strPtr(s string) *string { return &s }

func (suite *PersonServiceTestSuite) TestCreatePerson_DefaultsToOfficial() {
	req := &service.CreatePersonRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
		Password:  "correct-horse",
	}

	suite.mockPersonRepo.EXPECT().GetByEmail("ada@example.com").Return(nil, apperrors.ErrPersonNotFound)
	suite.mockPersonRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Person) error {
		assert.Equal(suite.T(), models.PersonRoleOfficial, p.Role)
		assert.Equal(suite.T(), "ada@example.com", p.Email)
		assert.Equal(suite.T(), "Ada Lovelace", p.FullName)
		// password must be hashed, never stored raw
		assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("correct-horse")))
		return nil
	})

	resp, err := suite.personService.CreatePerson(suite.tenantID, models.PersonRoleManager, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PersonRoleOfficial, resp.Role)
}

func (suite *PersonServiceTestSuite) TestCreatePerson_RoleAboveViewerRejected() {
	req := &service.CreatePersonRequest{
		FirstName: "Eve",
		LastName:  "Adams",
		Email:     "eve@example.com",
		Password:  "password123",
		Role:      strPtr("manager"),
	}

	resp, err := suite.personService.CreatePerson(suite.tenantID, models.PersonRoleManager, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleNotAssignable)
}

func (suite *PersonServiceTestSuite) TestCreatePerson_AdminMayCreateAdmin() {
	req := &service.CreatePersonRequest{
		FirstName: "Root",
		LastName:  "Admin",
		Email:     "root@example.com",
		Password:  "password123",
		Role:      strPtr("admin"),
	}

	suite.mockPersonRepo.EXPECT().GetByEmail("root@example.com").Return(nil, apperrors.ErrPersonNotFound)
	suite.mockPersonRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.personService.CreatePerson(suite.tenantID, models.PersonRoleAdmin, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PersonRoleAdmin, resp.Role)
}

func (suite *PersonServiceTestSuite) TestCreatePerson_UnknownRole() {
	req := &service.CreatePersonRequest{
		FirstName: "Eve",
		LastName:  "Adams",
		Email:     "eve@example.com",
		Password:  "password123",
		Role:      strPtr("superuser"),
	}

	resp, err := suite.personService.CreatePerson(suite.tenantID, models.PersonRoleAdmin, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

func (suite *PersonServiceTestSuite) TestCreatePerson_RequesterNeedsCustomer() {
	req := &service.CreatePersonRequest{
		FirstName: "Req",
		LastName:  "User",
		Email:     "req@example.com",
		Password:  "password123",
		Role:      strPtr("requester"),
	}

	resp, err := suite.personService.CreatePerson(suite.tenantID, models.PersonRoleManager, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PersonServiceTestSuite) TestCreatePerson_OfficialMayNotHaveCustomer() {
	customerID := uuid.New()
	req := &service.CreatePersonRequest{
		FirstName:  "Off",
		LastName:   "Icial",
		Email:      "off@example.com",
		Password:   "password123",
		CustomerID: &customerID,
	}

	resp, err := suite.personService.CreatePerson(suite.tenantID, models.PersonRoleManager, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PersonServiceTestSuite) TestCreatePerson_DuplicateEmail() {
	req := &service.CreatePersonRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "password123",
	}

	suite.mockPersonRepo.EXPECT().GetByEmail("ada@example.com").Return(&models.Person{}, nil)

	resp, err := suite.personService.CreatePerson(suite.tenantID, models.PersonRoleManager, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonExists)
}

func (suite *PersonServiceTestSuite) TestGetPersonByID_AboveViewerHidden() {
	id := uuid.New()
	admin := &models.Person{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Role: models.PersonRoleAdmin}

	suite.mockPersonRepo.EXPECT().GetByID(id).Return(admin, nil)

	resp, err := suite.personService.GetPersonByID(suite.tenantID, id, models.PersonRoleManager)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

func (suite *PersonServiceTestSuite) TestGetPersonByID_OtherTenantHidden() {
	id := uuid.New()
	foreign := &models.Person{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New(), Role: models.PersonRoleOfficial}

	suite.mockPersonRepo.EXPECT().GetByID(id).Return(foreign, nil)

	resp, err := suite.personService.GetPersonByID(suite.tenantID, id, models.PersonRoleAdmin)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

func (suite *PersonServiceTestSuite) TestGetPeopleByTenant_ScopesToVisibleRoles() {
	suite.mockPersonRepo.EXPECT().
		GetByTenantID(suite.tenantID, gomock.Any(), 20, 0).
		DoAndReturn(func(_ uuid.UUID, roles []models.PersonRole, _, _ int) ([]models.Person, int64, error) {
			assert.ElementsMatch(suite.T(), []models.PersonRole{
				models.PersonRoleManager,
				models.PersonRoleOfficial,
				models.PersonRoleRequester,
			}, roles)
			return nil, 0, nil
		})

	_, err := suite.personService.GetPeopleByTenant(suite.tenantID, models.PersonRoleManager, 1, 20)

	assert.NoError(suite.T(), err)
}

func (suite *PersonServiceTestSuite) TestUpdatePerson_CannotManagePeer() {
	id := uuid.New()
	peer := &models.Person{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Role: models.PersonRoleManager}

	suite.mockPersonRepo.EXPECT().GetByID(id).Return(peer, nil)

	resp, err := suite.personService.UpdatePerson(suite.tenantID, id, models.PersonRoleManager, &service.UpdatePersonRequest{FirstName: strPtr("New")})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *PersonServiceTestSuite) TestUpdatePerson_OtherTenantHidden() {
	id := uuid.New()
	foreign := &models.Person{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New(), Role: models.PersonRoleOfficial}

	suite.mockPersonRepo.EXPECT().GetByID(id).Return(foreign, nil)

	resp, err := suite.personService.UpdatePerson(suite.tenantID, id, models.PersonRoleAdmin, &service.UpdatePersonRequest{FirstName: strPtr("New")})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

func (suite *PersonServiceTestSuite) TestUpdatePersonRole_Success() {
	id := uuid.New()
	official := &models.Person{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Role: models.PersonRoleOfficial}

	suite.mockPersonRepo.EXPECT().GetByID(id).Return(official, nil)
	suite.mockPersonRepo.EXPECT().UpdateRole(id, models.PersonRoleRequester).Return(nil)

	resp, err := suite.personService.UpdatePersonRole(suite.tenantID, id, models.PersonRoleManager, &service.UpdateRoleRequest{Role: "requester"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PersonRoleRequester, resp.Role)
}

func (suite *PersonServiceTestSuite) TestUpdatePersonRole_PromotionAboveViewerRejected() {
	id := uuid.New()
	official := &models.Person{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Role: models.PersonRoleOfficial}

	suite.mockPersonRepo.EXPECT().GetByID(id).Return(official, nil)

	resp, err := suite.personService.UpdatePersonRole(suite.tenantID, id, models.PersonRoleManager, &service.UpdateRoleRequest{Role: "manager"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleNotAssignable)
}

func (suite *PersonServiceTestSuite) TestGetAssignableRoles_EmptyForRequester() {
	resp := suite.personService.GetAssignableRoles(models.PersonRoleRequester)

	assert.NotNil(suite.T(), resp)
	assert.Empty(suite.T(), resp.Roles)
}

func (suite *PersonServiceTestSuite) TestDeletePerson_CannotManageAbove() {
	id := uuid.New()
	admin := &models.Person{BaseModel: models.BaseModel{ID: id}, TenantID: suite.tenantID, Role: models.PersonRoleAdmin}

	suite.mockPersonRepo.EXPECT().GetByID(id).Return(admin, nil)

	err := suite.personService.DeletePerson(suite.tenantID, id, models.PersonRoleManager)

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *PersonServiceTestSuite) TestDeletePerson_OtherTenantHidden() {
	id := uuid.New()
	foreign := &models.Person{BaseModel: models.BaseModel{ID: id}, TenantID: uuid.New(), Role: models.PersonRoleRequester}

	suite.mockPersonRepo.EXPECT().GetByID(id).Return(foreign, nil)

	err := suite.personService.DeletePerson(suite.tenantID, id, models.PersonRoleAdmin)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

func TestPersonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}
