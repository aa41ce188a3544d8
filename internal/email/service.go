// Package email provides the mail transport boundary used to deliver
// OTP codes. Transport unavailability is a signalled, non-fatal
// condition: callers degrade to a diagnostic fallback.
package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// ErrTransportUnavailable indicates no usable mail transport is
// configured. Callers must treat this as non-fatal.
var ErrTransportUnavailable = errors.New("mail transport unavailable")

// Sender defines the interface for delivering OTP emails
type Sender interface {
	SendOTPEmail(to, code string) error
}

// Config contains the SMTP transport settings
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromAddress  string
}

// Service implements Sender over SMTP
type Service struct {
	cfg Config
}

// NewService creates a new SMTP email service
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

var otpTemplate = template.Must(template.New("otp").Parse(`
	<h2>Suraksha - Email Verification</h2>
	<p>Your verification code is: <strong>{{.Code}}</strong></p>
	<p>This code will expire in 5 minutes.</p>
	<p>If you didn't request this code, please ignore this email.</p>
	<br>
	<p>Stay secure with Suraksha!</p>
`))

// SendOTPEmail delivers a one-time code to the recipient. Returns
// ErrTransportUnavailable when the SMTP transport is not configured.
func (s *Service) SendOTPEmail(to, code string) error {
	if s.cfg.SMTPHost == "" || s.cfg.SMTPPort == 0 || s.cfg.FromAddress == "" {
		return ErrTransportUnavailable
	}

	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, map[string]string{"Code": code}); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, "Suraksha"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Suraksha - Email Verification Code")
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUsername, s.cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}
