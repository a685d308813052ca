package models

import "github.com/google/uuid"

// SuggestionStatus represents the review state of an AI triage suggestion
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusAccepted SuggestionStatus = "accepted"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

// TriageSuggestion stores a routing/priority recommendation produced by
// the AI provider for a ticket. Accepting a pending suggestion applies it
// to the ticket; suggestions are never applied automatically.
type TriageSuggestion struct {
	BaseModel
	TicketID     uuid.UUID        `json:"ticket_id" gorm:"type:uuid;not null;index" validate:"required"`
	SectorID     *uuid.UUID       `json:"sector_id,omitempty" gorm:"type:uuid"`
	DepartmentID *uuid.UUID       `json:"department_id,omitempty" gorm:"type:uuid"`
	Priority     TicketPriority   `json:"priority" gorm:"type:varchar(10)"`
	Confidence   float64          `json:"confidence"`
	Model        string           `json:"model" gorm:"size:100"`
	Rationale    string           `json:"rationale" gorm:"size:1000"`
	Status       SuggestionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	Ticket     Ticket      `json:"ticket,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Sector     *Sector     `json:"sector,omitempty" gorm:"foreignKey:SectorID;constraint:OnDelete:SET NULL"`
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for TriageSuggestion
func (TriageSuggestion) TableName() string {
	return "triage_suggestions"
}
