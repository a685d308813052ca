package models

// Tenant represents an organization using the help desk. Every other
// entity is scoped to exactly one tenant.
type Tenant struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null;uniqueIndex:idx_tenants_name_active,where:deleted_at IS NULL" validate:"required,max=100"`
	Slug     string `json:"slug" gorm:"size:60;not null;uniqueIndex:idx_tenants_slug_active,where:deleted_at IS NULL" validate:"required,max=60"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	Customers []Customer `json:"customers,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	People    []Person   `json:"people,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Sectors   []Sector   `json:"sectors,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
