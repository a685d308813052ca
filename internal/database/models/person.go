package models

import "github.com/google/uuid"

// PersonRole represents the role of a person in the help desk hierarchy
type PersonRole string

const (
	PersonRoleAdmin     PersonRole = "admin"
	PersonRoleManager   PersonRole = "manager"
	PersonRoleOfficial  PersonRole = "official"
	PersonRoleRequester PersonRole = "requester"
)

// Person represents a user of the help desk: support staff (officials,
// managers, admins) or a requester attached to a customer.
type Person struct {
	BaseModel
	TenantID  uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName string    `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName  string    `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	FullName  string    `json:"full_name" gorm:"size:200;not null" validate:"required,max=200"`
	// Partial unique index excludes soft-deleted records to allow re-adding people
	Email        string     `json:"email" gorm:"size:255;not null;uniqueIndex:idx_people_email_active,where:deleted_at IS NULL" validate:"required,email,max=255"`
	Phone        string     `json:"phone" gorm:"size:20" validate:"max=20"`
	PasswordHash string     `json:"-" gorm:"size:100"`
	Role         PersonRole `json:"role" gorm:"type:varchar(20);not null;default:'official'" validate:"required"`
	CustomerID   *uuid.UUID `json:"customer_id,omitempty" gorm:"type:uuid;index"` // set for requesters only
	IsActive     bool       `json:"is_active" gorm:"default:true"`

	// Relationships
	Tenant      Tenant       `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Customer    *Customer    `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	Departments []Department `json:"departments,omitempty" gorm:"many2many:department_officials;"`
}

// TableName returns the table name for Person
func (Person) TableName() string {
	return "people"
}
