package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"vhotelok-backend/config"

	"github.com/sirupsen/logrus"
)

// Mailer sends transactional email over plain SMTP. When no SMTP host
// is configured it logs the message instead, which keeps local
// environments working without a mail server.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailer(settings config.Settings) *Mailer {
	return &Mailer{
		host:     settings.SMTPHost,
		port:     settings.SMTPPort,
		username: settings.SMTPUsername,
		password: settings.SMTPPassword,
		from:     settings.SMTPFrom,
	}
}

// SendCheckInReminder notifies a guest that their stay starts today.
func (m *Mailer) SendCheckInReminder(to, guestName, hotelTitle, roomTitle string, dateFrom, dateTo time.Time) error {
	subject := "Your check-in is today"
	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder that your stay at %s (%s) starts today.\n\nCheck-in: %s\nCheck-out: %s\n\nWe look forward to welcoming you!\n",
		guestName, hotelTitle, roomTitle,
		dateFrom.Format("2006-01-02"), dateTo.Format("2006-01-02"),
	)
	return m.send(to, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.host == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Infof("📨 [MOCK EMAIL]\n%s", body)
		return nil
	}

	headers := []string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	logrus.WithField("to", to).Info("✅ email sent")
	return nil
}
