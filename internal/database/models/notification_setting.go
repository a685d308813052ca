package models

import "github.com/google/uuid"

// NotificationSetting stores a person's notification preferences.
// Absence of a row means everything enabled; see DefaultNotificationSetting.
type NotificationSetting struct {
	BaseModel
	PersonID       uuid.UUID `json:"person_id" gorm:"type:uuid;not null;uniqueIndex:idx_notification_settings_person,where:deleted_at IS NULL" validate:"required"`
	EmailEnabled   bool      `json:"email_enabled" gorm:"default:true"`
	TicketCreated  bool      `json:"ticket_created" gorm:"default:true"`
	TicketAssigned bool      `json:"ticket_assigned" gorm:"default:true"`
	TicketResolved bool      `json:"ticket_resolved" gorm:"default:true"`
	SurveyInvite   bool      `json:"survey_invite" gorm:"default:true"`

	Person Person `json:"person,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for NotificationSetting
func (NotificationSetting) TableName() string {
	return "notification_settings"
}

// DefaultNotificationSetting returns the all-enabled preferences used when
// a person has never saved their own
func DefaultNotificationSetting(personID uuid.UUID) *NotificationSetting {
	return &NotificationSetting{
		PersonID:       personID,
		EmailEnabled:   true,
		TicketCreated:  true,
		TicketAssigned: true,
		TicketResolved: true,
		SurveyInvite:   true,
	}
}

// Allows reports whether the settings permit sending email for the event
func (s *NotificationSetting) Allows(event NotificationEvent) bool {
	if !s.EmailEnabled {
		return false
	}
	switch event {
	case EventTicketCreated:
		return s.TicketCreated
	case EventTicketAssigned:
		return s.TicketAssigned
	case EventTicketResolved:
		return s.TicketResolved
	case EventSurveyInvite:
		return s.SurveyInvite
	}
	return false
}
