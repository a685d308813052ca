package repository

import (
	"helpdesk-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketRepository handles database operations for tickets
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetWithRelations retrieves a ticket with its customer, people and routing
func (r *TicketRepository) GetWithRelations(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.
		Preload("Customer").
		Preload("Requester").
		Preload("Official").
		Preload("Sector").
		Preload("Department").
		First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetByTenantID retrieves tickets for a tenant with filters and pagination
func (r *TicketRepository) GetByTenantID(tenantID uuid.UUID, filters TicketFilters, limit, offset int) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var total int64

	query := r.db.Model(&models.Ticket{}).Where("tenant_id = ?", tenantID)
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Priority != "" {
		query = query.Where("priority = ?", filters.Priority)
	}
	if filters.SectorID != nil {
		query = query.Where("sector_id = ?", *filters.SectorID)
	}
	if filters.OfficialID != nil {
		query = query.Where("official_id = ?", *filters.OfficialID)
	}
	if filters.CustomerID != nil {
		query = query.Where("customer_id = ?", *filters.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

// Update updates a ticket
func (r *TicketRepository) Update(ticket *models.Ticket) error {
	return r.db.Save(ticket).Error
}

// CountByStatus counts a tenant's tickets grouped by status
func (r *TicketRepository) CountByStatus(tenantID uuid.UUID) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.Ticket{}).
		Select("status, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// CountBySector counts a tenant's tickets grouped by sector; unrouted
// tickets appear with a nil ID and empty name
func (r *TicketRepository) CountBySector(tenantID uuid.UUID) ([]GroupCount, error) {
	var counts []GroupCount
	err := r.db.Model(&models.Ticket{}).
		Select("tickets.sector_id AS id, COALESCE(sectors.name, '') AS name, COUNT(*) AS count").
		Joins("LEFT JOIN sectors ON sectors.id = tickets.sector_id").
		Where("tickets.tenant_id = ?", tenantID).
		Group("tickets.sector_id, sectors.name").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// CountByOfficial counts a tenant's tickets grouped by assigned official;
// unassigned tickets appear with a nil ID and empty name
func (r *TicketRepository) CountByOfficial(tenantID uuid.UUID) ([]GroupCount, error) {
	var counts []GroupCount
	err := r.db.Model(&models.Ticket{}).
		Select("tickets.official_id AS id, COALESCE(people.full_name, '') AS name, COUNT(*) AS count").
		Joins("LEFT JOIN people ON people.id = tickets.official_id").
		Where("tickets.tenant_id = ?", tenantID).
		Group("tickets.official_id, people.full_name").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// GetForExport retrieves every ticket for a tenant with the relations the
// CSV export needs
func (r *TicketRepository) GetForExport(tenantID uuid.UUID) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.
		Preload("Customer").
		Preload("Official").
		Preload("Sector").
		Preload("Department").
		Where("tenant_id = ?", tenantID).
		Order("created_at").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}
