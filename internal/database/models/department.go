package models

import "github.com/google/uuid"

// Department represents a department inside a sector. Officials are
// attached to departments and tickets are routed to them.
type Department struct {
	BaseModel
	TenantID    uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	SectorID    uuid.UUID `json:"sector_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_departments_sector_name,where:deleted_at IS NULL" validate:"required"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_departments_sector_name,where:deleted_at IS NULL" validate:"required,max=100"`
	Description string    `json:"description" gorm:"size:300" validate:"max=300"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Sector    Sector   `json:"sector,omitempty" gorm:"foreignKey:SectorID;constraint:OnDelete:CASCADE"`
	Officials []Person `json:"officials,omitempty" gorm:"many2many:department_officials;"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
