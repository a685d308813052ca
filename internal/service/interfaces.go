package service

import (
	"context"
	"io"

	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	CreateTenant(req *CreateTenantRequest) (*TenantResponse, error)
	GetTenantByID(id uuid.UUID) (*TenantResponse, error)
	GetTenantBySlug(slug string) (*TenantResponse, error)
	GetAllTenants(page, pageSize int) (*TenantListResponse, error)
	UpdateTenant(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error)
	DeleteTenant(id uuid.UUID) error
}

// CustomerServiceInterface defines the interface for customer service.
// Per-record operations take the caller's tenant ID and treat records of
// other tenants as not found.
type CustomerServiceInterface interface {
	CreateCustomer(tenantID uuid.UUID, req *CreateCustomerRequest) (*CustomerResponse, error)
	GetCustomerByID(tenantID, id uuid.UUID) (*CustomerResponse, error)
	GetCustomersByTenant(tenantID uuid.UUID, page, pageSize int) (*CustomerListResponse, error)
	SearchCustomers(tenantID uuid.UUID, query string, page, pageSize int) (*CustomerListResponse, error)
	UpdateCustomer(tenantID, id uuid.UUID, req *UpdateCustomerRequest) (*CustomerResponse, error)
	DeleteCustomer(tenantID, id uuid.UUID) error
	SetCustomerActive(tenantID, id uuid.UUID, isActive bool) (*CustomerResponse, error)
	ImportCustomers(tenantID uuid.UUID, r io.Reader) (*ImportResult, error)
}

// PersonServiceInterface defines the interface for person service
type PersonServiceInterface interface {
	CreatePerson(tenantID uuid.UUID, viewerRole models.PersonRole, req *CreatePersonRequest) (*PersonResponse, error)
	GetPersonByID(tenantID, id uuid.UUID, viewerRole models.PersonRole) (*PersonResponse, error)
	GetPeopleByTenant(tenantID uuid.UUID, viewerRole models.PersonRole, page, pageSize int) (*PersonListResponse, error)
	SearchPeople(tenantID uuid.UUID, viewerRole models.PersonRole, query string, page, pageSize int) (*PersonListResponse, error)
	UpdatePerson(tenantID, id uuid.UUID, viewerRole models.PersonRole, req *UpdatePersonRequest) (*PersonResponse, error)
	UpdatePersonRole(tenantID, id uuid.UUID, viewerRole models.PersonRole, req *UpdateRoleRequest) (*PersonResponse, error)
	GetAssignableRoles(viewerRole models.PersonRole) *AssignableRolesResponse
	DeletePerson(tenantID, id uuid.UUID, viewerRole models.PersonRole) error
}

// SectorServiceInterface defines the interface for sector service
type SectorServiceInterface interface {
	CreateSector(tenantID uuid.UUID, req *CreateSectorRequest) (*SectorResponse, error)
	GetSectorByID(tenantID, id uuid.UUID) (*SectorResponse, error)
	GetSectorsByTenant(tenantID uuid.UUID, page, pageSize int) (*SectorListResponse, error)
	UpdateSector(tenantID, id uuid.UUID, req *UpdateSectorRequest) (*SectorResponse, error)
	DeleteSector(tenantID, id uuid.UUID) error
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	CreateDepartment(tenantID uuid.UUID, req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetDepartmentByID(tenantID, id uuid.UUID) (*DepartmentResponse, error)
	GetDepartmentsBySector(tenantID, sectorID uuid.UUID, page, pageSize int) (*DepartmentListResponse, error)
	GetDepartmentsByTenant(tenantID uuid.UUID, page, pageSize int) (*DepartmentListResponse, error)
	UpdateDepartment(tenantID, id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(tenantID, id uuid.UUID) error
	AddOfficial(tenantID, departmentID, personID uuid.UUID) error
	RemoveOfficial(tenantID, departmentID, personID uuid.UUID) error
}

// EmailTemplateServiceInterface defines the interface for email template service
type EmailTemplateServiceInterface interface {
	CreateTemplate(tenantID uuid.UUID, req *CreateEmailTemplateRequest) (*EmailTemplateResponse, error)
	GetTemplateByID(tenantID, id uuid.UUID) (*EmailTemplateResponse, error)
	GetTemplatesByTenant(tenantID uuid.UUID, page, pageSize int) (*EmailTemplateListResponse, error)
	UpdateTemplate(tenantID, id uuid.UUID, req *UpdateEmailTemplateRequest) (*EmailTemplateResponse, error)
	DeleteTemplate(tenantID, id uuid.UUID) error
	PreviewTemplate(tenantID, id uuid.UUID, req *PreviewRequest) (*PreviewResponse, error)
	PreviewDraft(req *PreviewDraftRequest) (*PreviewResponse, error)
}

// NotificationSettingServiceInterface defines the interface for notification setting service
type NotificationSettingServiceInterface interface {
	GetByPersonID(tenantID, personID uuid.UUID) (*NotificationSettingResponse, error)
	Update(tenantID, personID uuid.UUID, req *UpdateNotificationSettingRequest) (*NotificationSettingResponse, error)
}

// InventoryServiceInterface defines the interface for inventory service
type InventoryServiceInterface interface {
	CreateProduct(tenantID uuid.UUID, req *CreateProductRequest) (*ProductResponse, error)
	GetProductByID(tenantID, id uuid.UUID) (*ProductResponse, error)
	GetProductsByTenant(tenantID uuid.UUID, category string, page, pageSize int) (*ProductListResponse, error)
	GetLowStockProducts(tenantID uuid.UUID) ([]ProductResponse, error)
	UpdateProduct(tenantID, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(tenantID, id uuid.UUID) error
	CreateMovement(tenantID, productID uuid.UUID, req *CreateMovementRequest) (*MovementResponse, error)
	GetMovementsByProduct(tenantID, productID uuid.UUID, page, pageSize int) (*MovementListResponse, error)
}

// TicketServiceInterface defines the interface for ticket service
type TicketServiceInterface interface {
	CreateTicket(tenantID uuid.UUID, req *CreateTicketRequest) (*TicketResponse, error)
	GetTicketByID(tenantID, id uuid.UUID) (*TicketResponse, error)
	GetTicketsByTenant(tenantID uuid.UUID, filters TicketListFilters, page, pageSize int) (*TicketListResponse, error)
	UpdateTicket(tenantID, id uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error)
	AssignTicket(tenantID, id uuid.UUID, req *AssignTicketRequest) (*TicketResponse, error)
	UpdateTicketStatus(tenantID, id uuid.UUID, req *UpdateTicketStatusRequest) (*TicketResponse, error)
}

// TriageServiceInterface defines the interface for triage service
type TriageServiceInterface interface {
	RequestSuggestion(ctx context.Context, tenantID, ticketID uuid.UUID) (*SuggestionResponse, error)
	GetSuggestionsByTicket(tenantID, ticketID uuid.UUID) ([]SuggestionResponse, error)
	ListPendingSuggestions(tenantID uuid.UUID, page, pageSize int) (*SuggestionListResponse, error)
	AcceptSuggestion(tenantID, id uuid.UUID) (*SuggestionResponse, error)
	RejectSuggestion(tenantID, id uuid.UUID) (*SuggestionResponse, error)
}

// SurveyServiceInterface defines the interface for survey service
type SurveyServiceInterface interface {
	CreateForTicket(ticketID uuid.UUID) (*SurveyResponse, error)
	SendForTicket(tenantID, ticketID uuid.UUID) (*SurveyResponse, error)
	GetByTicketID(tenantID, ticketID uuid.UUID) (*SurveyResponse, error)
	GetByToken(token string) (*PublicSurveyResponse, error)
	SubmitByToken(token string, req *SubmitSurveyRequest) (*SurveyResponse, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	GetTicketSummary(tenantID uuid.UUID) (*TicketSummaryResponse, error)
	GetSatisfactionReport(tenantID uuid.UUID) (*SatisfactionReportResponse, error)
	ExportTickets(ctx context.Context, tenantID uuid.UUID, upload bool) (*ExportResponse, error)
}

// NotificationServiceInterface defines the interface for the notification dispatcher
type NotificationServiceInterface interface {
	NotifyTicketEvent(event models.NotificationEvent, ticketID uuid.UUID, extra TemplateContext) error
	ProcessMessage(payload any) error
}

// LDAPServiceInterface defines the interface for LDAP directory search
type LDAPServiceInterface interface {
	SearchUsersByName(name string) ([]LDAPUser, error)
}
