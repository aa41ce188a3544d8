package email

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOTPEmailWithoutTransport(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty config", Config{}},
		{"missing host", Config{SMTPPort: 587, FromAddress: "noreply@example.com"}},
		{"missing port", Config{SMTPHost: "smtp.example.com", FromAddress: "noreply@example.com"}},
		{"missing from", Config{SMTPHost: "smtp.example.com", SMTPPort: 587}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(tt.cfg)
			err := s.SendOTPEmail("asha@example.com", "123456")
			assert.ErrorIs(t, err, ErrTransportUnavailable)
		})
	}
}

func TestOTPTemplateRendersCode(t *testing.T) {
	var body bytes.Buffer
	require.NoError(t, otpTemplate.Execute(&body, map[string]string{"Code": "654321"}))
	assert.Contains(t, body.String(), "654321")
	assert.Contains(t, body.String(), "Suraksha")
}
