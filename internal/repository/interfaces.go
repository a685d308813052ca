package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TicketFilters narrows ticket listings
type TicketFilters struct {
	Status     models.TicketStatus
	Priority   models.TicketPriority
	SectorID   *uuid.UUID
	OfficialID *uuid.UUID
	CustomerID *uuid.UUID
}

// StatusCount is a ticket count grouped by status
type StatusCount struct {
	Status models.TicketStatus `json:"status"`
	Count  int64               `json:"count"`
}

// GroupCount is a ticket count grouped by a named dimension (sector or
// official)
type GroupCount struct {
	ID    *uuid.UUID `json:"id"`
	Name  string     `json:"name"`
	Count int64      `json:"count"`
}

// SurveyStats aggregates satisfaction survey answers for a tenant
type SurveyStats struct {
	Sent          int64   `json:"sent"`
	Answered      int64   `json:"answered"`
	AverageRating float64 `json:"average_rating"`
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	Update(tenant *models.Tenant) error
	Delete(id uuid.UUID) error
}

// CustomerRepositoryInterface defines the interface for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	GetByEmail(tenantID uuid.UUID, email string) (*models.Customer, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Customer, int64, error)
	Search(tenantID uuid.UUID, query string, limit, offset int) ([]models.Customer, int64, error)
	Update(customer *models.Customer) error
	Delete(id uuid.UUID) error
	SetActiveStatus(id uuid.UUID, isActive bool) error
}

// PersonRepositoryInterface defines the interface for person repository operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	GetByID(id uuid.UUID) (*models.Person, error)
	GetByEmail(email string) (*models.Person, error)
	GetByTenantID(tenantID uuid.UUID, roles []models.PersonRole, limit, offset int) ([]models.Person, int64, error)
	Search(tenantID uuid.UUID, roles []models.PersonRole, query string, limit, offset int) ([]models.Person, int64, error)
	Update(person *models.Person) error
	UpdateRole(id uuid.UUID, role models.PersonRole) error
	Delete(id uuid.UUID) error
}

// SectorRepositoryInterface defines the interface for sector repository operations
type SectorRepositoryInterface interface {
	Create(sector *models.Sector) error
	GetByID(id uuid.UUID) (*models.Sector, error)
	GetByName(tenantID uuid.UUID, name string) (*models.Sector, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Sector, int64, error)
	GetWithDepartments(id uuid.UUID) (*models.Sector, error)
	Update(sector *models.Sector) error
	Delete(id uuid.UUID) error
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(department *models.Department) error
	GetByID(id uuid.UUID) (*models.Department, error)
	GetByName(sectorID uuid.UUID, name string) (*models.Department, error)
	GetBySectorID(sectorID uuid.UUID, limit, offset int) ([]models.Department, int64, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Department, int64, error)
	GetWithOfficials(id uuid.UUID) (*models.Department, error)
	AddOfficial(departmentID, personID uuid.UUID) error
	RemoveOfficial(departmentID, personID uuid.UUID) error
	Update(department *models.Department) error
	Delete(id uuid.UUID) error
}

// EmailTemplateRepositoryInterface defines the interface for email template repository operations
type EmailTemplateRepositoryInterface interface {
	Create(template *models.EmailTemplate) error
	GetByID(id uuid.UUID) (*models.EmailTemplate, error)
	GetByEvent(tenantID uuid.UUID, event models.NotificationEvent) (*models.EmailTemplate, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.EmailTemplate, int64, error)
	Update(template *models.EmailTemplate) error
	Delete(id uuid.UUID) error
}

// NotificationSettingRepositoryInterface defines the interface for notification setting repository operations
type NotificationSettingRepositoryInterface interface {
	GetByPersonID(personID uuid.UUID) (*models.NotificationSetting, error)
	Upsert(setting *models.NotificationSetting) error
}

// InventoryRepositoryInterface defines the interface for inventory repository operations
type InventoryRepositoryInterface interface {
	CreateProduct(product *models.InventoryProduct) error
	GetProductByID(id uuid.UUID) (*models.InventoryProduct, error)
	GetProductBySKU(tenantID uuid.UUID, sku string) (*models.InventoryProduct, error)
	GetProductsByTenantID(tenantID uuid.UUID, category string, limit, offset int) ([]models.InventoryProduct, int64, error)
	GetLowStock(tenantID uuid.UUID) ([]models.InventoryProduct, error)
	UpdateProduct(product *models.InventoryProduct) error
	DeleteProduct(id uuid.UUID) error
	CreateMovement(movement *models.InventoryMovement) error
	GetMovementsByProductID(productID uuid.UUID, limit, offset int) ([]models.InventoryMovement, int64, error)
}

// TicketRepositoryInterface defines the interface for ticket repository operations
type TicketRepositoryInterface interface {
	Create(ticket *models.Ticket) error
	GetByID(id uuid.UUID) (*models.Ticket, error)
	GetWithRelations(id uuid.UUID) (*models.Ticket, error)
	GetByTenantID(tenantID uuid.UUID, filters TicketFilters, limit, offset int) ([]models.Ticket, int64, error)
	Update(ticket *models.Ticket) error
	CountByStatus(tenantID uuid.UUID) ([]StatusCount, error)
	CountBySector(tenantID uuid.UUID) ([]GroupCount, error)
	CountByOfficial(tenantID uuid.UUID) ([]GroupCount, error)
	GetForExport(tenantID uuid.UUID) ([]models.Ticket, error)
}

// TriageSuggestionRepositoryInterface defines the interface for triage suggestion repository operations
type TriageSuggestionRepositoryInterface interface {
	Create(suggestion *models.TriageSuggestion) error
	GetByID(id uuid.UUID) (*models.TriageSuggestion, error)
	GetByTicketID(ticketID uuid.UUID) ([]models.TriageSuggestion, error)
	GetByStatus(status models.SuggestionStatus, limit, offset int) ([]models.TriageSuggestion, int64, error)
	GetPendingByTenant(tenantID uuid.UUID, limit, offset int) ([]models.TriageSuggestion, int64, error)
	Update(suggestion *models.TriageSuggestion) error
}

// SurveyRepositoryInterface defines the interface for satisfaction survey repository operations
type SurveyRepositoryInterface interface {
	Create(survey *models.SatisfactionSurvey) error
	GetByID(id uuid.UUID) (*models.SatisfactionSurvey, error)
	GetByToken(token string) (*models.SatisfactionSurvey, error)
	GetByTicketID(ticketID uuid.UUID) (*models.SatisfactionSurvey, error)
	Update(survey *models.SatisfactionSurvey) error
	GetStats(tenantID uuid.UUID) (*SurveyStats, error)
}

// EmailMessageRepositoryInterface defines the interface for email message repository operations
type EmailMessageRepositoryInterface interface {
	Create(message *models.EmailMessage) error
	GetByID(id uuid.UUID) (*models.EmailMessage, error)
	GetByStatus(status models.EmailStatus, limit int) ([]models.EmailMessage, error)
	Update(message *models.EmailMessage) error
}
