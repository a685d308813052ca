package models

import "github.com/google/uuid"

// Sector represents a top-level organizational grouping used for ticket
// routing and permissions
type Sector struct {
	BaseModel
	TenantID    uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_sectors_tenant_name,where:deleted_at IS NULL" validate:"required"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_sectors_tenant_name,where:deleted_at IS NULL" validate:"required,max=100"`
	Description string    `json:"description" gorm:"size:300" validate:"max=300"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Tenant      Tenant       `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Departments []Department `json:"departments,omitempty" gorm:"foreignKey:SectorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Sector
func (Sector) TableName() string {
	return "sectors"
}
