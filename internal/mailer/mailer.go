package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sender delivers a rendered email to a single recipient
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPConfig holds the connection settings for the SMTP sender
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// SMTPSender delivers mail through a plain SMTP relay
type SMTPSender struct {
	config SMTPConfig
}

// NewSMTPSender creates a sender for the given relay
func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{config: config}
}

// Send composes an RFC 5322 message and submits it to the relay
func (s *SMTPSender) Send(to, subject, body string) error {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%s", s.config.Host, s.config.Port)

	var auth smtp.Auth
	if s.config.User != "" {
		auth = smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
	}

	if err := smtp.SendMail(addr, auth, s.config.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// LogSender writes the message to the log instead of sending it. Used in
// development when no SMTP host is configured.
type LogSender struct {
	log *logrus.Logger
}

// NewLogSender creates a log-only sender
func NewLogSender(log *logrus.Logger) *LogSender {
	if log == nil {
		log = logrus.New()
	}
	return &LogSender{log: log}
}

// Send logs the message fields
func (s *LogSender) Send(to, subject, body string) error {
	s.log.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
		"bytes":   len(body),
	}).Info("Email delivery skipped (log sender)")
	return nil
}
