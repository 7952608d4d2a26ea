package utils

import (
	"testing"
	"time"

	"vhotelok-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailer_LogsInsteadOfSendingWithoutHost(t *testing.T) {
	mailer := NewMailer(config.Settings{})

	err := mailer.SendCheckInReminder(
		"guest@example.com", "Lev", "Grand Plaza", "Deluxe",
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 1, 5, 0, 0, 0, 0, time.UTC),
	)
	assert.NoError(t, err, "mock mode never fails")
}

func TestMailer_WrapsDeliveryFailure(t *testing.T) {
	// Port 1 is never an SMTP server, so the dial fails fast.
	mailer := NewMailer(config.Settings{SMTPHost: "127.0.0.1", SMTPPort: 1, SMTPFrom: "noreply@vhotelok.ru"})

	err := mailer.SendCheckInReminder(
		"guest@example.com", "Lev", "Grand Plaza", "Deluxe",
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 1, 5, 0, 0, 0, 0, time.UTC),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email to guest@example.com")
}
