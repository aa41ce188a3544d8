package repository

import "errors"

var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")

	// Session errors
	ErrNoSession = errors.New("no active session")

	// OTP challenge errors
	ErrChallengeNotFound = errors.New("otp challenge not found")
)

// Retention bounds for the capacity-limited collections
const (
	MaxAlerts             = 50
	MaxScanHistoryEntries = 100
	MaxEmailNotifications = 100
	MaxOTPAttempts        = 3
)
