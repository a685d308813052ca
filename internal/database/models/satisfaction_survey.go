package models

import (
	"time"

	"github.com/google/uuid"
)

// SurveyStatus represents the answer state of a satisfaction survey
type SurveyStatus string

const (
	SurveyStatusPending  SurveyStatus = "pending"
	SurveyStatusAnswered SurveyStatus = "answered"
	SurveyStatusExpired  SurveyStatus = "expired"
)

// SatisfactionSurvey is created when a ticket is resolved. It is reached
// by requesters through an opaque token, never through the admin API.
type SatisfactionSurvey struct {
	BaseModel
	TicketID   uuid.UUID    `json:"ticket_id" gorm:"type:uuid;not null;uniqueIndex:idx_surveys_ticket,where:deleted_at IS NULL" validate:"required"`
	Token      string       `json:"token" gorm:"size:64;not null;uniqueIndex:idx_surveys_token,where:deleted_at IS NULL"`
	Status     SurveyStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Rating     *int         `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment    string       `json:"comment" gorm:"size:1000" validate:"max=1000"`
	SentAt     *time.Time   `json:"sent_at,omitempty"`
	AnsweredAt *time.Time   `json:"answered_at,omitempty"`

	Ticket Ticket `json:"ticket,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SatisfactionSurvey
func (SatisfactionSurvey) TableName() string {
	return "satisfaction_surveys"
}
