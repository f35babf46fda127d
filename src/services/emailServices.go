package services

import (
	"errors"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/bakrinola/portfolio-backend/src/config"
	"github.com/bakrinola/portfolio-backend/src/models"
)

// ErrEmailDisabled is returned when SMTP settings are absent; callers log it
// and move on, since notification failure never fails a contact submission.
var ErrEmailDisabled = errors.New("email service not configured")

type EmailService struct {
	cfg config.EmailConfig
}

// NewEmailService creates a new instance of EmailService
func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled reports whether SMTP settings are present.
func (s *EmailService) Enabled() bool {
	return s.cfg.Host != "" && s.cfg.User != ""
}

// SendContactNotification emails the admin about a new contact submission.
func (s *EmailService) SendContactNotification(contact *models.ContactModel) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}

	to := s.cfg.AdminTo
	if to == "" {
		to = s.cfg.User
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "New Contact Form Submission: "+contact.Subject)
	m.SetBody("text/html", contactBody(contact))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending contact notification: %w", err)
	}
	return nil
}

func contactBody(contact *models.ContactModel) string {
	phone := contact.Phone
	if phone == "" {
		phone = "not provided"
	}
	return fmt.Sprintf(`<html><body>
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<p><em>Received %s</em></p>
</body></html>`,
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Email),
		html.EscapeString(phone),
		html.EscapeString(contact.Subject),
		html.EscapeString(contact.Message),
		contact.Date.Format("Monday, January 2, 2006 15:04 MST"))
}
