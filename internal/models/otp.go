package models

import "time"

// OTPChallenge holds a pending one-time code for an email address.
// At most one challenge exists per email at any instant; issuing a new
// code replaces the previous challenge.
type OTPChallenge struct {
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// Expired reports whether the challenge is past its expiry time
func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
