package models

import "github.com/google/uuid"

// NotificationEvent identifies a ticket lifecycle event that can trigger
// an email notification
type NotificationEvent string

const (
	EventTicketCreated  NotificationEvent = "ticket_created"
	EventTicketAssigned NotificationEvent = "ticket_assigned"
	EventTicketResolved NotificationEvent = "ticket_resolved"
	EventSurveyInvite   NotificationEvent = "survey_invite"
)

// ValidNotificationEvents lists every event a template can be bound to
var ValidNotificationEvents = []NotificationEvent{
	EventTicketCreated,
	EventTicketAssigned,
	EventTicketResolved,
	EventSurveyInvite,
}

// IsValidNotificationEvent reports whether e names a known event
func IsValidNotificationEvent(e NotificationEvent) bool {
	for _, v := range ValidNotificationEvents {
		if e == v {
			return true
		}
	}
	return false
}

// EmailTemplate holds the subject and body sent for a notification event.
// Bodies use {{a.b.c}} placeholders substituted at send time.
type EmailTemplate struct {
	BaseModel
	TenantID uuid.UUID         `json:"tenant_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_templates_tenant_event,where:deleted_at IS NULL" validate:"required"`
	Event    NotificationEvent `json:"event" gorm:"type:varchar(40);not null;uniqueIndex:idx_templates_tenant_event,where:deleted_at IS NULL" validate:"required"`
	Subject  string            `json:"subject" gorm:"size:200;not null" validate:"required,max=200"`
	Body     string            `json:"body" gorm:"type:text;not null" validate:"required"`
	IsActive bool              `json:"is_active" gorm:"default:true"`

	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EmailTemplate
func (EmailTemplate) TableName() string {
	return "email_templates"
}
