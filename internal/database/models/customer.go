package models

import "github.com/google/uuid"

// Customer represents a client organization or end-user that raises tickets
type Customer struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name     string    `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	// Partial unique index excludes soft-deleted records so a removed customer can be re-imported
	Email    string `json:"email" gorm:"size:255;not null;uniqueIndex:idx_customers_email_active,where:deleted_at IS NULL" validate:"required,email,max=255"`
	Phone    string `json:"phone" gorm:"size:20" validate:"max=20"`
	Document string `json:"document" gorm:"size:40" validate:"max=40"`
	Company  string `json:"company" gorm:"size:200" validate:"max=200"`
	Notes    string `json:"notes" gorm:"size:500" validate:"max=500"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	Tenant     Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Requesters []Person `json:"requesters,omitempty" gorm:"foreignKey:CustomerID"`
	Tickets    []Ticket `json:"tickets,omitempty" gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
