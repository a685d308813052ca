package models

import "github.com/google/uuid"

// EmailStatus represents the delivery state of an outbound email
type EmailStatus string

const (
	EmailStatusQueued EmailStatus = "queued"
	EmailStatusSent   EmailStatus = "sent"
	EmailStatusFailed EmailStatus = "failed"
)

// EmailMessage is a rendered outbound notification email. Messages are
// persisted before being published to the send queue so the worker can
// recover them by ID.
type EmailMessage struct {
	BaseModel
	TenantID  uuid.UUID         `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	PersonID  *uuid.UUID        `json:"person_id,omitempty" gorm:"type:uuid;index"`
	TicketID  *uuid.UUID        `json:"ticket_id,omitempty" gorm:"type:uuid;index"`
	Recipient string            `json:"recipient" gorm:"size:255;not null" validate:"required,email"`
	Event     NotificationEvent `json:"event" gorm:"type:varchar(40);not null"`
	Subject   string            `json:"subject" gorm:"size:200;not null"`
	Body      string            `json:"body" gorm:"type:text;not null"`
	Status    EmailStatus       `json:"status" gorm:"type:varchar(20);not null;default:'queued';index"`
	Attempts  int               `json:"attempts" gorm:"not null;default:0"`
	LastError string            `json:"last_error" gorm:"size:500"`
}

// TableName returns the table name for EmailMessage
func (EmailMessage) TableName() string {
	return "email_messages"
}
