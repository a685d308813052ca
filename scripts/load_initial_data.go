package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"helpdesk-admin-backend/internal/config"
	"helpdesk-admin-backend/internal/database"
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

type CustomerData struct {
	TenantSlug string `yaml:"tenant_slug"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone,omitempty"`
	Document   string `yaml:"document,omitempty"`
	Company    string `yaml:"company,omitempty"`
}

type SectorData struct {
	TenantSlug  string `yaml:"tenant_slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type DepartmentData struct {
	TenantSlug  string `yaml:"tenant_slug"`
	SectorName  string `yaml:"sector_name"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type PersonData struct {
	TenantSlug    string `yaml:"tenant_slug"`
	FirstName     string `yaml:"first_name"`
	LastName      string `yaml:"last_name"`
	Email         string `yaml:"email"`
	Phone         string `yaml:"phone,omitempty"`
	Password      string `yaml:"password"`
	Role          string `yaml:"role"`
	CustomerEmail string `yaml:"customer_email,omitempty"`
}

type EmailTemplateData struct {
	TenantSlug string `yaml:"tenant_slug"`
	Event      string `yaml:"event"`
	Subject    string `yaml:"subject"`
	Body       string `yaml:"body"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type CustomersFile struct {
	Customers []CustomerData `yaml:"customers"`
}

type SectorsFile struct {
	Sectors []SectorData `yaml:"sectors"`
}

type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

type PeopleFile struct {
	People []PersonData `yaml:"people"`
}

type EmailTemplatesFile struct {
	EmailTemplates []EmailTemplateData `yaml:"email_templates"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for
// Postgres readiness
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	tenants, err := loadYAMLSection(dataDir, "tenants", func(f *TenantsFile) []TenantData { return f.Tenants })
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	customers, err := loadYAMLSection(dataDir, "customers", func(f *CustomersFile) []CustomerData { return f.Customers })
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	sectors, err := loadYAMLSection(dataDir, "sectors", func(f *SectorsFile) []SectorData { return f.Sectors })
	if err != nil {
		return fmt.Errorf("failed to load sectors: %w", err)
	}

	departments, err := loadYAMLSection(dataDir, "departments", func(f *DepartmentsFile) []DepartmentData { return f.Departments })
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}

	people, err := loadYAMLSection(dataDir, "people", func(f *PeopleFile) []PersonData { return f.People })
	if err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}

	templates, err := loadYAMLSection(dataDir, "email_templates", func(f *EmailTemplatesFile) []EmailTemplateData { return f.EmailTemplates })
	if err != nil {
		return fmt.Errorf("failed to load email templates: %w", err)
	}

	// Create tenants first; everything else hangs off them
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Slug, err)
		}
		tenantMap[tenantData.Slug] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("Tenants: %d created, %d total", tenantCreated, len(tenants))

	customerMap := make(map[string]*models.Customer)
	customerCreated := 0
	for _, customerData := range customers {
		customer, created, err := createCustomer(db, customerData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create customer %s: %w", customerData.Email, err)
		}
		customerMap[customerData.Email] = customer
		if created {
			customerCreated++
		}
	}
	log.Printf("Customers: %d created, %d total", customerCreated, len(customers))

	sectorMap := make(map[string]*models.Sector)
	sectorCreated := 0
	for _, sectorData := range sectors {
		sector, created, err := createSector(db, sectorData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create sector %s: %w", sectorData.Name, err)
		}
		sectorMap[sectorData.TenantSlug+"/"+sectorData.Name] = sector
		if created {
			sectorCreated++
		}
	}
	log.Printf("Sectors: %d created, %d total", sectorCreated, len(sectors))

	departmentCreated := 0
	for _, departmentData := range departments {
		_, created, err := createDepartment(db, departmentData, tenantMap, sectorMap)
		if err != nil {
			return fmt.Errorf("failed to create department %s: %w", departmentData.Name, err)
		}
		if created {
			departmentCreated++
		}
	}
	log.Printf("Departments: %d created, %d total", departmentCreated, len(departments))

	personCreated := 0
	for _, personData := range people {
		_, created, err := createPerson(db, personData, tenantMap, customerMap)
		if err != nil {
			return fmt.Errorf("failed to create person %s: %w", personData.Email, err)
		}
		if created {
			personCreated++
		}
	}
	log.Printf("People: %d created, %d total", personCreated, len(people))

	templateCreated := 0
	for _, templateData := range templates {
		_, created, err := createEmailTemplate(db, templateData, tenantMap)
		if err != nil {
			log.Printf("Warning: failed to create template %s: %v", templateData.Event, err)
			continue
		}
		if created {
			templateCreated++
		}
	}
	log.Printf("Email templates: %d created, %d total", templateCreated, len(templates))

	return nil
}

// loadYAMLSection walks the data directory and collects entries from every
// YAML file whose path contains the section name
func loadYAMLSection[F any, D any](dataDir, section string, extract func(*F) []D) ([]D, error) {
	var all []D

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, section) {
			var file F
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, extract(&file)...)
		}
		return nil
	})

	return all, err
}

func createTenant(db *gorm.DB, tenantData TenantData) (*models.Tenant, bool, error) {
	var tenant models.Tenant
	if err := db.Where("slug = ?", tenantData.Slug).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			tenant = models.Tenant{
				Name:     tenantData.Name,
				Slug:     tenantData.Slug,
				IsActive: true,
			}

			if err := db.Create(&tenant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tenant: %w", err)
			}
			return &tenant, true, nil
		}
		return nil, false, fmt.Errorf("failed to query tenant: %w", err)
	}

	return &tenant, false, nil
}

func createCustomer(db *gorm.DB, customerData CustomerData, tenantMap map[string]*models.Tenant) (*models.Customer, bool, error) {
	tenant := tenantMap[customerData.TenantSlug]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for customer %s", customerData.TenantSlug, customerData.Email)
	}

	email := strings.ToLower(customerData.Email)

	var customer models.Customer
	if err := db.Where("tenant_id = ? AND email = ?", tenant.ID, email).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			customer = models.Customer{
				TenantID: tenant.ID,
				Name:     customerData.Name,
				Email:    email,
				Phone:    customerData.Phone,
				Document: customerData.Document,
				Company:  customerData.Company,
				IsActive: true,
			}

			if err := db.Create(&customer).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create customer: %w", err)
			}
			return &customer, true, nil
		}
		return nil, false, fmt.Errorf("failed to query customer: %w", err)
	}

	return &customer, false, nil
}

func createSector(db *gorm.DB, sectorData SectorData, tenantMap map[string]*models.Tenant) (*models.Sector, bool, error) {
	tenant := tenantMap[sectorData.TenantSlug]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for sector %s", sectorData.TenantSlug, sectorData.Name)
	}

	var sector models.Sector
	if err := db.Where("tenant_id = ? AND name = ?", tenant.ID, sectorData.Name).First(&sector).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			sector = models.Sector{
				TenantID:    tenant.ID,
				Name:        sectorData.Name,
				Description: sectorData.Description,
				IsActive:    true,
			}

			if err := db.Create(&sector).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create sector: %w", err)
			}
			return &sector, true, nil
		}
		return nil, false, fmt.Errorf("failed to query sector: %w", err)
	}

	return &sector, false, nil
}

func createDepartment(db *gorm.DB, departmentData DepartmentData, tenantMap map[string]*models.Tenant, sectorMap map[string]*models.Sector) (*models.Department, bool, error) {
	tenant := tenantMap[departmentData.TenantSlug]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for department %s", departmentData.TenantSlug, departmentData.Name)
	}

	sector := sectorMap[departmentData.TenantSlug+"/"+departmentData.SectorName]
	if sector == nil {
		return nil, false, fmt.Errorf("sector %s not found for department %s", departmentData.SectorName, departmentData.Name)
	}

	var department models.Department
	if err := db.Where("sector_id = ? AND name = ?", sector.ID, departmentData.Name).First(&department).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			department = models.Department{
				TenantID:    tenant.ID,
				SectorID:    sector.ID,
				Name:        departmentData.Name,
				Description: departmentData.Description,
				IsActive:    true,
			}

			if err := db.Create(&department).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create department: %w", err)
			}
			return &department, true, nil
		}
		return nil, false, fmt.Errorf("failed to query department: %w", err)
	}

	return &department, false, nil
}

func createPerson(db *gorm.DB, personData PersonData, tenantMap map[string]*models.Tenant, customerMap map[string]*models.Customer) (*models.Person, bool, error) {
	tenant := tenantMap[personData.TenantSlug]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for person %s", personData.TenantSlug, personData.Email)
	}

	role := models.PersonRole(personData.Role)
	if role == "" {
		role = models.PersonRoleOfficial
	}

	var customerID *uuid.UUID
	if personData.CustomerEmail != "" {
		if customer := customerMap[personData.CustomerEmail]; customer != nil {
			customerID = &customer.ID
		} else {
			log.Printf("Warning: customer %s not found for person %s", personData.CustomerEmail, personData.Email)
		}
	}

	email := strings.ToLower(personData.Email)

	var person models.Person
	if err := db.Where("email = ?", email).First(&person).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(personData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			person = models.Person{
				TenantID:     tenant.ID,
				FirstName:    personData.FirstName,
				LastName:     personData.LastName,
				FullName:     strings.TrimSpace(personData.FirstName + " " + personData.LastName),
				Email:        email,
				Phone:        personData.Phone,
				PasswordHash: string(hash),
				Role:         role,
				CustomerID:   customerID,
				IsActive:     true,
			}

			if err := db.Create(&person).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create person: %w", err)
			}
			return &person, true, nil
		}
		return nil, false, fmt.Errorf("failed to query person: %w", err)
	}

	return &person, false, nil
}

func createEmailTemplate(db *gorm.DB, templateData EmailTemplateData, tenantMap map[string]*models.Tenant) (*models.EmailTemplate, bool, error) {
	tenant := tenantMap[templateData.TenantSlug]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for template %s", templateData.TenantSlug, templateData.Event)
	}

	event := models.NotificationEvent(templateData.Event)
	if !models.IsValidNotificationEvent(event) {
		return nil, false, fmt.Errorf("unknown notification event %s", templateData.Event)
	}

	var template models.EmailTemplate
	if err := db.Where("tenant_id = ? AND event = ?", tenant.ID, event).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			template = models.EmailTemplate{
				TenantID: tenant.ID,
				Event:    event,
				Subject:  templateData.Subject,
				Body:     templateData.Body,
				IsActive: true,
			}

			if err := db.Create(&template).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create template: %w", err)
			}
			return &template, true, nil
		}
		return nil, false, fmt.Errorf("failed to query template: %w", err)
	}

	return &template, false, nil
}
