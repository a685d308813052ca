package mailer

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLogSenderLogsInsteadOfSending(t *testing.T) {
	logger, hook := test.NewNullLogger()
	sender := NewLogSender(logger)

	err := sender.Send("jordan.reyes@acme.example", "Ticket resolved", "Your ticket was resolved.")

	assert.NoError(t, err)
	assert.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "jordan.reyes@acme.example", hook.LastEntry().Data["to"])
	assert.Equal(t, "Ticket resolved", hook.LastEntry().Data["subject"])
}

func TestNewLogSenderDefaultsLogger(t *testing.T) {
	sender := NewLogSender(nil)
	assert.NotNil(t, sender)
	assert.NoError(t, sender.Send("a@b.example", "s", "b"))
}

func TestSMTPSenderRequiresReachableRelay(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{
		Host: "127.0.0.1",
		Port: "1", // nothing listens here
		From: "helpdesk@acme.example",
	})

	err := sender.Send("jordan.reyes@acme.example", "subject", "body")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
