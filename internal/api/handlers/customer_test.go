package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"helpdesk-admin-backend/internal/api/handlers"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/mocks"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockCustSv *mocks.MockCustomerServiceInterface
	handler    *handlers.CustomerHandler
	router     *gin.Engine
	tenantID   uuid.UUID
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCustSv = mocks.NewMockCustomerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCustomerHandler(suite.mockCustSv)
	suite.tenantID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("tenant_id", suite.tenantID)
		c.Next()
	})
	suite.router.POST("/customers", suite.handler.CreateCustomer)
	suite.router.GET("/customers", suite.handler.ListCustomers)
	suite.router.GET("/customers/:id", suite.handler.GetCustomer)
	suite.router.PUT("/customers/:id", suite.handler.UpdateCustomer)
	suite.router.DELETE("/customers/:id", suite.handler.DeleteCustomer)
	suite.router.PUT("/customers/:id/active", suite.handler.SetCustomerActive)
	suite.router.POST("/customers/import", suite.handler.ImportCustomers)
}

func (suite *CustomerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Success() {
	req := &service.CreateCustomerRequest{
		Name:  "Initech LLC",
		Email: "it@initech.example",
	}
	created := &service.CustomerResponse{
		ID:       uuid.New(),
		TenantID: suite.tenantID,
		Name:     "Initech LLC",
		Email:    "it@initech.example",
		IsActive: true,
	}
	suite.mockCustSv.EXPECT().CreateCustomer(suite.tenantID, req).Return(created, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var resp service.CustomerResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), created.ID, resp.ID)
	assert.Equal(suite.T(), "Initech LLC", resp.Name)
	assert.True(suite.T(), resp.IsActive)
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Duplicate() {
	suite.mockCustSv.EXPECT().CreateCustomer(suite.tenantID, gomock.Any()).Return(nil, apperrors.ErrCustomerExists)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(`{"name":"Initech LLC","email":"it@initech.example"}`))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), apperrors.ErrCustomerExists.Error())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_InvalidJSON() {
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(`{"name":`))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestGetCustomer_Success() {
	id := uuid.New()
	suite.mockCustSv.EXPECT().GetCustomerByID(suite.tenantID, id).Return(&service.CustomerResponse{ID: id, Name: "Acme Corp"}, nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/customers/"+id.String(), nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Acme Corp")
}

func (suite *CustomerHandlerTestSuite) TestGetCustomer_NotFound() {
	id := uuid.New()
	suite.mockCustSv.EXPECT().GetCustomerByID(suite.tenantID, id).Return(nil, apperrors.ErrCustomerNotFound)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/customers/"+id.String(), nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestGetCustomer_InvalidID() {
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/customers/not-a-uuid", nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid id")
}

func (suite *CustomerHandlerTestSuite) TestListCustomers_Defaults() {
	list := &service.CustomerListResponse{
		Customers: []service.CustomerResponse{{ID: uuid.New(), Name: "Acme Corp"}},
		Total:     1,
		Page:      1,
		PageSize:  20,
	}
	suite.mockCustSv.EXPECT().GetCustomersByTenant(suite.tenantID, 1, 20).Return(list, nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/customers", nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.CustomerListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Customers, 1)
}

func (suite *CustomerHandlerTestSuite) TestListCustomers_WithSearchQuery() {
	list := &service.CustomerListResponse{Page: 2, PageSize: 5}
	suite.mockCustSv.EXPECT().SearchCustomers(suite.tenantID, "initech", 2, 5).Return(list, nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/customers?q=initech&page=2&page_size=5", nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestUpdateCustomer_Success() {
	id := uuid.New()
	name := "Initech Global"
	suite.mockCustSv.EXPECT().UpdateCustomer(suite.tenantID, id, &service.UpdateCustomerRequest{Name: &name}).
		Return(&service.CustomerResponse{ID: id, Name: name}, nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPut, "/customers/"+id.String(), strings.NewReader(`{"name":"Initech Global"}`))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Initech Global")
}

func (suite *CustomerHandlerTestSuite) TestDeleteCustomer_Success() {
	id := uuid.New()
	suite.mockCustSv.EXPECT().DeleteCustomer(suite.tenantID, id).Return(nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodDelete, "/customers/"+id.String(), nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestDeleteCustomer_NotFound() {
	id := uuid.New()
	suite.mockCustSv.EXPECT().DeleteCustomer(suite.tenantID, id).Return(apperrors.ErrCustomerNotFound)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodDelete, "/customers/"+id.String(), nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestSetCustomerActive_Success() {
	id := uuid.New()
	suite.mockCustSv.EXPECT().SetCustomerActive(suite.tenantID, id, false).
		Return(&service.CustomerResponse{ID: id, IsActive: false}, nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPut, "/customers/"+id.String()+"/active", strings.NewReader(`{"is_active":false}`))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"is_active":false`)
}

func (suite *CustomerHandlerTestSuite) TestSetCustomerActive_NotFound() {
	id := uuid.New()
	suite.mockCustSv.EXPECT().SetCustomerActive(suite.tenantID, id, true).
		Return(nil, apperrors.ErrCustomerNotFound)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPut, "/customers/"+id.String()+"/active", strings.NewReader(`{"is_active":true}`))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CustomerHandlerTestSuite) newImportRequest(csv string) *http.Request {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "customers.csv")
	assert.NoError(suite.T(), err)
	_, err = part.Write([]byte(csv))
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), writer.Close())

	httpReq := httptest.NewRequest(http.MethodPost, "/customers/import", &buf)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	return httpReq
}

func (suite *CustomerHandlerTestSuite) TestImportCustomers_Success() {
	csv := "name,email,phone,document,company\nAcme Corp,billing@acme.example,,,Acme\n"
	result := &service.ImportResult{Imported: 1, Skipped: 0}
	suite.mockCustSv.EXPECT().ImportCustomers(suite.tenantID, gomock.Any()).Return(result, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.newImportRequest(csv))

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.ImportResult
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Imported)
}

func (suite *CustomerHandlerTestSuite) TestImportCustomers_MissingFile() {
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/customers/import", nil)
	suite.router.ServeHTTP(w, httpReq)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "CSV file is required")
}

func (suite *CustomerHandlerTestSuite) TestImportCustomers_BadHeader() {
	csv := "full_name,mail\nAcme Corp,billing@acme.example\n"
	suite.mockCustSv.EXPECT().ImportCustomers(suite.tenantID, gomock.Any()).Return(nil, apperrors.ErrInvalidCSVHeader)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.newImportRequest(csv))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), apperrors.ErrInvalidCSVHeader.Error())
}

func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
