package models

import "github.com/google/uuid"

// TicketStatus represents the lifecycle state of a ticket
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// IsValidTicketStatus reports whether s names a known status
func IsValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority represents the urgency of a ticket
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// IsValidTicketPriority reports whether p names a known priority
func IsValidTicketPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// Ticket represents a support request raised by a requester on behalf of
// a customer and routed to a sector/department/official
type Ticket struct {
	BaseModel
	TenantID     uuid.UUID      `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	CustomerID   uuid.UUID      `json:"customer_id" gorm:"type:uuid;not null;index" validate:"required"`
	RequesterID  *uuid.UUID     `json:"requester_id,omitempty" gorm:"type:uuid;index"`
	OfficialID   *uuid.UUID     `json:"official_id,omitempty" gorm:"type:uuid;index"`
	SectorID     *uuid.UUID     `json:"sector_id,omitempty" gorm:"type:uuid;index"`
	DepartmentID *uuid.UUID     `json:"department_id,omitempty" gorm:"type:uuid;index"`
	Subject      string         `json:"subject" gorm:"size:200;not null" validate:"required,max=200"`
	Description  string         `json:"description" gorm:"type:text" validate:"max=5000"`
	Status       TicketStatus   `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	Priority     TicketPriority `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`

	// Relationships
	Tenant      Tenant             `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Customer    Customer           `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Requester   *Person            `json:"requester,omitempty" gorm:"foreignKey:RequesterID;constraint:OnDelete:SET NULL"`
	Official    *Person            `json:"official,omitempty" gorm:"foreignKey:OfficialID;constraint:OnDelete:SET NULL"`
	Sector      *Sector            `json:"sector,omitempty" gorm:"foreignKey:SectorID;constraint:OnDelete:SET NULL"`
	Department  *Department        `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
	Suggestions []TriageSuggestion `json:"suggestions,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
