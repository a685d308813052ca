package testutils

import (
	"time"

	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	// Suffix keeps names unique across tests that create several tenants
	suffix := id.String()[:8]
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Tenant " + suffix,
		Slug:     "test-tenant-" + suffix,
		IsActive: true,
	}
}

// WithName sets a custom name and slug for the tenant
func (f *TenantFactory) WithName(name, slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	tenant.Slug = slug
	return tenant
}

// PersonFactory provides methods to create test Person data
type PersonFactory struct{}

// NewPersonFactory creates a new PersonFactory
func NewPersonFactory() *PersonFactory {
	return &PersonFactory{}
}

// Create creates a test Person with default values
func (f *PersonFactory) Create() *models.Person {
	id := uuid.New()
	// Unique email avoids collisions with the partial unique index
	email := "person-" + id.String()[:8] + "@test.com"

	return &models.Person{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:  uuid.New(),
		FirstName: "John",
		LastName:  "Doe",
		FullName:  "John Doe",
		Email:     email,
		Phone:     "+1-555-0123",
		Role:      models.PersonRoleOfficial,
		IsActive:  true,
	}
}

// WithTenant sets the tenant ID for the person
func (f *PersonFactory) WithTenant(tenantID uuid.UUID) *models.Person {
	person := f.Create()
	person.TenantID = tenantID
	return person
}

// WithRole sets a custom role for the person
func (f *PersonFactory) WithRole(tenantID uuid.UUID, role models.PersonRole) *models.Person {
	person := f.Create()
	person.TenantID = tenantID
	person.Role = role
	return person
}

// WithEmail sets a custom email for the person
func (f *PersonFactory) WithEmail(email string) *models.Person {
	person := f.Create()
	person.Email = email
	return person
}

// Requester creates a person with the requester role attached to a customer
func (f *PersonFactory) Requester(tenantID, customerID uuid.UUID) *models.Person {
	person := f.Create()
	person.TenantID = tenantID
	person.Role = models.PersonRoleRequester
	person.CustomerID = &customerID
	return person
}

// CustomerFactory provides methods to create test Customer data
type CustomerFactory struct{}

// NewCustomerFactory creates a new CustomerFactory
func NewCustomerFactory() *CustomerFactory {
	return &CustomerFactory{}
}

// Create creates a test Customer with default values
func (f *CustomerFactory) Create() *models.Customer {
	id := uuid.New()
	email := "customer-" + id.String()[:8] + "@test.com"

	return &models.Customer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: uuid.New(),
		Name:     "Test Customer",
		Email:    email,
		Phone:    "+1-555-0100",
		Company:  "Test Company",
		IsActive: true,
	}
}

// WithTenant sets the tenant ID for the customer
func (f *CustomerFactory) WithTenant(tenantID uuid.UUID) *models.Customer {
	customer := f.Create()
	customer.TenantID = tenantID
	return customer
}

// WithEmail sets a custom email for the customer
func (f *CustomerFactory) WithEmail(email string) *models.Customer {
	customer := f.Create()
	customer.Email = email
	return customer
}

// SectorFactory provides methods to create test Sector data
type SectorFactory struct{}

// NewSectorFactory creates a new SectorFactory
func NewSectorFactory() *SectorFactory {
	return &SectorFactory{}
}

// Create creates a test Sector with default values
func (f *SectorFactory) Create() *models.Sector {
	id := uuid.New()
	return &models.Sector{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		Name:        "Sector " + id.String()[:8],
		Description: "A test sector",
		IsActive:    true,
	}
}

// WithTenant sets the tenant ID for the sector
func (f *SectorFactory) WithTenant(tenantID uuid.UUID) *models.Sector {
	sector := f.Create()
	sector.TenantID = tenantID
	return sector
}

// WithName sets a custom name for the sector
func (f *SectorFactory) WithName(tenantID uuid.UUID, name string) *models.Sector {
	sector := f.Create()
	sector.TenantID = tenantID
	sector.Name = name
	return sector
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	id := uuid.New()
	return &models.Department{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		SectorID:    uuid.New(),
		Name:        "Department " + id.String()[:8],
		Description: "A test department",
		IsActive:    true,
	}
}

// WithSector sets the tenant and sector IDs for the department
func (f *DepartmentFactory) WithSector(tenantID, sectorID uuid.UUID) *models.Department {
	department := f.Create()
	department.TenantID = tenantID
	department.SectorID = sectorID
	return department
}

// EmailTemplateFactory provides methods to create test EmailTemplate data
type EmailTemplateFactory struct{}

// NewEmailTemplateFactory creates a new EmailTemplateFactory
func NewEmailTemplateFactory() *EmailTemplateFactory {
	return &EmailTemplateFactory{}
}

// Create creates a test EmailTemplate with default values
func (f *EmailTemplateFactory) Create() *models.EmailTemplate {
	return &models.EmailTemplate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: uuid.New(),
		Event:    models.EventTicketCreated,
		Subject:  "Ticket {{ticket.subject}} created",
		Body:     "Hello {{person.first_name}}, ticket {{ticket.subject}} was created.",
		IsActive: true,
	}
}

// WithEvent sets the tenant and event for the template
func (f *EmailTemplateFactory) WithEvent(tenantID uuid.UUID, event models.NotificationEvent) *models.EmailTemplate {
	template := f.Create()
	template.TenantID = tenantID
	template.Event = event
	return template
}

// ProductFactory provides methods to create test InventoryProduct data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates a test InventoryProduct with default values
func (f *ProductFactory) Create() *models.InventoryProduct {
	id := uuid.New()
	return &models.InventoryProduct{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		SKU:         "SKU-" + id.String()[:8],
		Name:        "Test Product",
		Category:    "peripherals",
		Quantity:    10,
		MinQuantity: 2,
		Location:    "Shelf A",
		Status:      models.ProductStatusAvailable,
	}
}

// WithTenant sets the tenant ID for the product
func (f *ProductFactory) WithTenant(tenantID uuid.UUID) *models.InventoryProduct {
	product := f.Create()
	product.TenantID = tenantID
	return product
}

// WithQuantity sets the stock quantities for the product
func (f *ProductFactory) WithQuantity(tenantID uuid.UUID, quantity, minQuantity int) *models.InventoryProduct {
	product := f.Create()
	product.TenantID = tenantID
	product.Quantity = quantity
	product.MinQuantity = minQuantity
	return product
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates a test Ticket with default values
func (f *TicketFactory) Create() *models.Ticket {
	return &models.Ticket{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		CustomerID:  uuid.New(),
		Subject:     "Printer is on fire",
		Description: "The office printer caught fire again.",
		Status:      models.TicketStatusOpen,
		Priority:    models.TicketPriorityMedium,
	}
}

// WithCustomer sets the tenant and customer IDs for the ticket
func (f *TicketFactory) WithCustomer(tenantID, customerID uuid.UUID) *models.Ticket {
	ticket := f.Create()
	ticket.TenantID = tenantID
	ticket.CustomerID = customerID
	return ticket
}

// WithStatus sets a custom status for the ticket
func (f *TicketFactory) WithStatus(tenantID, customerID uuid.UUID, status models.TicketStatus) *models.Ticket {
	ticket := f.WithCustomer(tenantID, customerID)
	ticket.Status = status
	return ticket
}

// SurveyFactory provides methods to create test SatisfactionSurvey data
type SurveyFactory struct{}

// NewSurveyFactory creates a new SurveyFactory
func NewSurveyFactory() *SurveyFactory {
	return &SurveyFactory{}
}

// Create creates a pending test SatisfactionSurvey with default values
func (f *SurveyFactory) Create() *models.SatisfactionSurvey {
	id := uuid.New()
	now := time.Now()
	return &models.SatisfactionSurvey{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		TicketID: uuid.New(),
		Token:    "token-" + id.String(),
		Status:   models.SurveyStatusPending,
		SentAt:   &now,
	}
}

// WithTicket sets the ticket ID for the survey
func (f *SurveyFactory) WithTicket(ticketID uuid.UUID) *models.SatisfactionSurvey {
	survey := f.Create()
	survey.TicketID = ticketID
	return survey
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant        *TenantFactory
	Person        *PersonFactory
	Customer      *CustomerFactory
	Sector        *SectorFactory
	Department    *DepartmentFactory
	EmailTemplate *EmailTemplateFactory
	Product       *ProductFactory
	Ticket        *TicketFactory
	Survey        *SurveyFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:        NewTenantFactory(),
		Person:        NewPersonFactory(),
		Customer:      NewCustomerFactory(),
		Sector:        NewSectorFactory(),
		Department:    NewDepartmentFactory(),
		EmailTemplate: NewEmailTemplateFactory(),
		Product:       NewProductFactory(),
		Ticket:        NewTicketFactory(),
		Survey:        NewSurveyFactory(),
	}
}

// CreateFullTenantHierarchy creates a tenant with a customer, an official,
// a sector, a department and an open ticket wired together
func (fs *FactorySet) CreateFullTenantHierarchy() (*models.Tenant, *models.Customer, *models.Person, *models.Sector, *models.Department, *models.Ticket) {
	tenant := fs.Tenant.Create()
	customer := fs.Customer.WithTenant(tenant.ID)
	official := fs.Person.WithRole(tenant.ID, models.PersonRoleOfficial)
	sector := fs.Sector.WithTenant(tenant.ID)
	department := fs.Department.WithSector(tenant.ID, sector.ID)

	ticket := fs.Ticket.WithCustomer(tenant.ID, customer.ID)
	ticket.SectorID = &sector.ID
	ticket.DepartmentID = &department.ID

	return tenant, customer, official, sector, department, ticket
}
