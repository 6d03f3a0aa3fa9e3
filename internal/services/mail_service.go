// internal/services/mail_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/truvalue/truvalue-backend/internal/config"
	"github.com/truvalue/truvalue-backend/internal/models"
)

// MailService delivers transactional mail (email confirmation, password
// reset). Without SMTP credentials it logs the links instead of sending,
// which keeps local development working.
type MailService struct {
	cfg *config.Config
}

func NewMailService(cfg *config.Config) *MailService {
	return &MailService{cfg: cfg}
}

func (s *MailService) SendConfirmationEmail(user *models.User, token string) error {
	confirmURL := fmt.Sprintf("%s/confirm-email?token=%s", s.cfg.Frontend.BaseURL, token)

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please confirm your email address by opening the link below:</p><p><a href=%q>%s</a></p>",
		user.Username, confirmURL, confirmURL,
	)

	return s.send(user.Email, "Confirm your Truvalue account", body, confirmURL)
}

func (s *MailService) SendPasswordResetEmail(user *models.User, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.Frontend.BaseURL, token)

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>A password reset was requested for your account. The link below is valid for one hour:</p><p><a href=%q>%s</a></p>",
		user.Username, resetURL, resetURL,
	)

	return s.send(user.Email, "Reset your Truvalue password", body, resetURL)
}

func (s *MailService) send(to, subject, body, link string) error {
	if s.cfg.Email.SMTPUsername == "" {
		logrus.WithFields(logrus.Fields{
			"to":   to,
			"link": link,
		}).Info("SMTP not configured, logging mail link instead")
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Email.FromEmail, s.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}

	return nil
}
