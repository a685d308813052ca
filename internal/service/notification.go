package service

import (
	"fmt"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/mailer"
	"helpdesk-admin-backend/internal/queue"
	"helpdesk-admin-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NotificationService renders and dispatches event emails. Messages are
// persisted before being queued so the worker can recover them by ID.
type NotificationService struct {
	templateRepo repository.EmailTemplateRepositoryInterface
	settingRepo  repository.NotificationSettingRepositoryInterface
	messageRepo  repository.EmailMessageRepositoryInterface
	ticketRepo   repository.TicketRepositoryInterface
	queue        queue.Queue
	sender       mailer.Sender
	topic        string
	log          *logrus.Logger
}

// Ensure NotificationService implements NotificationServiceInterface
var _ NotificationServiceInterface = (*NotificationService)(nil)

// NewNotificationService creates a new notification service
func NewNotificationService(
	templateRepo repository.EmailTemplateRepositoryInterface,
	settingRepo repository.NotificationSettingRepositoryInterface,
	messageRepo repository.EmailMessageRepositoryInterface,
	ticketRepo repository.TicketRepositoryInterface,
	q queue.Queue,
	sender mailer.Sender,
	topic string,
	log *logrus.Logger,
) *NotificationService {
	if log == nil {
		log = logrus.New()
	}
	return &NotificationService{
		templateRepo: templateRepo,
		settingRepo:  settingRepo,
		messageRepo:  messageRepo,
		ticketRepo:   ticketRepo,
		queue:        q,
		sender:       sender,
		topic:        topic,
		log:          log,
	}
}

// NotifyTicketEvent dispatches the email for a ticket lifecycle event.
// Missing templates and opted-out recipients are silent no-ops: ticket
// operations never fail because a notification could not be produced.
func (s *NotificationService) NotifyTicketEvent(event models.NotificationEvent, ticketID uuid.UUID, extra TemplateContext) error {
	if !models.IsValidNotificationEvent(event) {
		return apperrors.ErrInvalidEvent
	}

	ticket, err := s.ticketRepo.GetWithRelations(ticketID)
	if err != nil {
		return apperrors.ErrTicketNotFound
	}

	recipient, person := s.recipientFor(event, ticket)
	if recipient == "" {
		s.log.WithFields(logrus.Fields{
			"ticket_id": ticketID,
			"event":     event,
		}).Debug("No recipient for notification, skipping")
		return nil
	}

	if person != nil && !s.allows(person.ID, event) {
		s.log.WithFields(logrus.Fields{
			"person_id": person.ID,
			"event":     event,
		}).Debug("Recipient opted out of notification, skipping")
		return nil
	}

	template, err := s.templateRepo.GetByEvent(ticket.TenantID, event)
	if err != nil || !template.IsActive {
		s.log.WithFields(logrus.Fields{
			"tenant_id": ticket.TenantID,
			"event":     event,
		}).Debug("No active template for event, skipping")
		return nil
	}

	ctx := s.buildContext(ticket, person)
	for key, value := range extra {
		ctx[key] = value
	}

	message := &models.EmailMessage{
		TenantID:  ticket.TenantID,
		TicketID:  &ticket.ID,
		Recipient: recipient,
		Event:     event,
		Subject:   RenderTemplate(template.Subject, ctx),
		Body:      RenderTemplate(template.Body, ctx),
		Status:    models.EmailStatusQueued,
	}
	if person != nil {
		message.PersonID = &person.ID
	}

	if err := s.messageRepo.Create(message); err != nil {
		return fmt.Errorf("failed to persist email message: %w", err)
	}

	if err := s.queue.Publish(s.topic, message.ID.String()); err != nil {
		return fmt.Errorf("failed to queue email message: %w", err)
	}

	return nil
}

// ProcessMessage is the queue handler: it loads the persisted message by
// ID, sends it, and records the outcome. Returning an error triggers the
// queue's retry.
func (s *NotificationService) ProcessMessage(payload any) error {
	raw, ok := payload.(string)
	if !ok {
		s.log.Warn("Dropping email job with non-string payload")
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		s.log.WithField("payload", raw).Warn("Dropping email job with invalid message ID")
		return nil
	}

	message, err := s.messageRepo.GetByID(id)
	if err != nil {
		return apperrors.ErrEmailMessageNotFound
	}
	if message.Status == models.EmailStatusSent {
		return nil
	}

	message.Attempts++
	if err := s.sender.Send(message.Recipient, message.Subject, message.Body); err != nil {
		message.Status = models.EmailStatusFailed
		message.LastError = err.Error()
		if updateErr := s.messageRepo.Update(message); updateErr != nil {
			s.log.WithField("error", updateErr.Error()).Error("Failed to record email failure")
		}
		return err
	}

	message.Status = models.EmailStatusSent
	message.LastError = ""
	if err := s.messageRepo.Update(message); err != nil {
		return fmt.Errorf("failed to record email delivery: %w", err)
	}

	return nil
}

// recipientFor picks the email address and, when the recipient is a help
// desk person, the person whose preferences apply. Requester-facing events
// fall back to the customer's contact address when the ticket carries no
// requester.
func (s *NotificationService) recipientFor(event models.NotificationEvent, ticket *models.Ticket) (string, *models.Person) {
	switch event {
	case models.EventTicketAssigned:
		if ticket.Official != nil {
			return ticket.Official.Email, ticket.Official
		}
		return "", nil
	default:
		if ticket.Requester != nil {
			return ticket.Requester.Email, ticket.Requester
		}
		return ticket.Customer.Email, nil
	}
}

// allows reports whether the person's preferences permit the event email
func (s *NotificationService) allows(personID uuid.UUID, event models.NotificationEvent) bool {
	setting, err := s.settingRepo.GetByPersonID(personID)
	if err != nil {
		setting = models.DefaultNotificationSetting(personID)
	}
	return setting.Allows(event)
}

// buildContext assembles the placeholder context for a ticket event
func (s *NotificationService) buildContext(ticket *models.Ticket, person *models.Person) TemplateContext {
	ctx := TemplateContext{
		"ticket": TemplateContext{
			"id":       ticket.ID.String(),
			"subject":  ticket.Subject,
			"status":   string(ticket.Status),
			"priority": string(ticket.Priority),
		},
		"customer": TemplateContext{
			"name":    ticket.Customer.Name,
			"email":   ticket.Customer.Email,
			"company": ticket.Customer.Company,
		},
	}

	if person != nil {
		ctx["person"] = TemplateContext{
			"first_name": person.FirstName,
			"full_name":  person.FullName,
			"email":      person.Email,
		}
	}
	if ticket.Official != nil {
		ctx["official"] = TemplateContext{
			"full_name": ticket.Official.FullName,
			"email":     ticket.Official.Email,
		}
	}
	if ticket.Sector != nil {
		ctx["sector"] = TemplateContext{"name": ticket.Sector.Name}
	}
	if ticket.Department != nil {
		ctx["department"] = TemplateContext{"name": ticket.Department.Name}
	}

	return ctx
}
