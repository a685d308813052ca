package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"helpdesk-admin-backend/internal/api/handlers"
	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/mocks"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PersonHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPersonSv *mocks.MockPersonServiceInterface
	handler      *handlers.PersonHandler
	router       *gin.Engine
	tenantID     uuid.UUID
}

func (suite *PersonHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPersonSv = mocks.NewMockPersonServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPersonHandler(suite.mockPersonSv)
	suite.tenantID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("tenant_id", suite.tenantID)
		c.Set("role", "manager")
		c.Next()
	})
	suite.router.POST("/people", suite.handler.CreatePerson)
	suite.router.GET("/people", suite.handler.ListPeople)
	suite.router.GET("/people/roles/assignable", suite.handler.GetAssignableRoles)
	suite.router.GET("/people/:id", suite.handler.GetPerson)
	suite.router.PUT("/people/:id", suite.handler.UpdatePerson)
	suite.router.PUT("/people/:id/role", suite.handler.UpdatePersonRole)
	suite.router.DELETE("/people/:id", suite.handler.DeletePerson)
}

func (suite *PersonHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PersonHandlerTestSuite) TestCreatePerson_Success() {
	req := &service.CreatePersonRequest{
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     "jordan.reyes@acme.example",
		Password:  "change-me-please",
	}
	created := &service.PersonResponse{
		ID:        uuid.New(),
		TenantID:  suite.tenantID,
		FirstName: "Jordan",
		LastName:  "Reyes",
		FullName:  "Jordan Reyes",
		Role:      models.PersonRoleOfficial,
		IsActive:  true,
	}
	suite.mockPersonSv.EXPECT().CreatePerson(suite.tenantID, models.PersonRoleManager, req).Return(created, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/people", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var resp service.PersonResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jordan Reyes", resp.FullName)
	assert.Equal(suite.T(), models.PersonRoleOfficial, resp.Role)
}

func (suite *PersonHandlerTestSuite) TestCreatePerson_RoleNotAssignable() {
	suite.mockPersonSv.EXPECT().CreatePerson(suite.tenantID, models.PersonRoleManager, gomock.Any()).
		Return(nil, apperrors.ErrRoleNotAssignable)

	body := `{"first_name":"Alex","last_name":"Stone","email":"alex@acme.example","password":"change-me-please","role":"admin"}`
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/people", strings.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	assert.Contains(suite.T(), w.Body.String(), apperrors.ErrRoleNotAssignable.Error())
}

func (suite *PersonHandlerTestSuite) TestCreatePerson_DuplicateEmail() {
	suite.mockPersonSv.EXPECT().CreatePerson(suite.tenantID, models.PersonRoleManager, gomock.Any()).
		Return(nil, apperrors.ErrPersonExists)

	body := `{"first_name":"Jordan","last_name":"Reyes","email":"jordan.reyes@acme.example","password":"change-me-please"}`
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/people", strings.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *PersonHandlerTestSuite) TestGetPerson_Success() {
	id := uuid.New()
	suite.mockPersonSv.EXPECT().GetPersonByID(suite.tenantID, id, models.PersonRoleManager).
		Return(&service.PersonResponse{ID: id, FullName: "Morgan Diaz"}, nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/people/"+id.String(), nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Morgan Diaz")
}

func (suite *PersonHandlerTestSuite) TestGetPerson_HiddenAboveCallerRank() {
	id := uuid.New()
	suite.mockPersonSv.EXPECT().GetPersonByID(suite.tenantID, id, models.PersonRoleManager).
		Return(nil, apperrors.ErrPersonNotFound)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/people/"+id.String(), nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PersonHandlerTestSuite) TestListPeople_Defaults() {
	list := &service.PersonListResponse{
		People:   []service.PersonResponse{{ID: uuid.New(), FullName: "Jordan Reyes"}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}
	suite.mockPersonSv.EXPECT().GetPeopleByTenant(suite.tenantID, models.PersonRoleManager, 1, 20).Return(list, nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/people", nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.PersonListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
}

func (suite *PersonHandlerTestSuite) TestListPeople_WithSearchQuery() {
	list := &service.PersonListResponse{Page: 1, PageSize: 20}
	suite.mockPersonSv.EXPECT().SearchPeople(suite.tenantID, models.PersonRoleManager, "jordan", 1, 20).Return(list, nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/people?q=jordan", nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *PersonHandlerTestSuite) TestUpdatePerson_Forbidden() {
	id := uuid.New()
	suite.mockPersonSv.EXPECT().UpdatePerson(suite.tenantID, id, models.PersonRoleManager, gomock.Any()).
		Return(nil, apperrors.NewAuthorizationError("caller cannot manage this person"))

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPut, "/people/"+id.String(), strings.NewReader(`{"first_name":"Sam"}`))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *PersonHandlerTestSuite) TestUpdatePersonRole_Success() {
	id := uuid.New()
	updated := &service.PersonResponse{ID: id, Role: models.PersonRoleOfficial}
	suite.mockPersonSv.EXPECT().UpdatePersonRole(suite.tenantID, id, models.PersonRoleManager, &service.UpdateRoleRequest{Role: "official"}).
		Return(updated, nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPut, "/people/"+id.String()+"/role", strings.NewReader(`{"role":"official"}`))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "official")
}

func (suite *PersonHandlerTestSuite) TestUpdatePersonRole_InvalidRole() {
	id := uuid.New()
	suite.mockPersonSv.EXPECT().UpdatePersonRole(suite.tenantID, id, models.PersonRoleManager, gomock.Any()).
		Return(nil, apperrors.ErrInvalidRole)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPut, "/people/"+id.String()+"/role", strings.NewReader(`{"role":"superuser"}`))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PersonHandlerTestSuite) TestGetAssignableRoles() {
	roles := &service.AssignableRolesResponse{
		Roles: []models.PersonRole{models.PersonRoleOfficial, models.PersonRoleRequester},
	}
	suite.mockPersonSv.EXPECT().GetAssignableRoles(models.PersonRoleManager).Return(roles)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/people/roles/assignable", nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.AssignableRolesResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Roles, 2)
}

func (suite *PersonHandlerTestSuite) TestDeletePerson_Success() {
	id := uuid.New()
	suite.mockPersonSv.EXPECT().DeletePerson(suite.tenantID, id, models.PersonRoleManager).Return(nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodDelete, "/people/"+id.String(), nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestPersonHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PersonHandlerTestSuite))
}
