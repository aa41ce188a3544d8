package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken indicates the token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired indicates the token has expired
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidCredentials indicates the email/password pair does not match
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotVerified indicates the user has not completed OTP verification
	ErrNotVerified = errors.New("email not verified")
	// ErrRegistrationClosed indicates new registrations are disabled
	ErrRegistrationClosed = errors.New("registration is closed")

	// ErrChallengeExpired indicates the OTP is past its expiry; the
	// challenge has been deleted
	ErrChallengeExpired = errors.New("otp has expired")
	// ErrAttemptsExhausted indicates too many failed OTP attempts; the
	// challenge has been deleted
	ErrAttemptsExhausted = errors.New("too many failed otp attempts")
)

// MismatchError reports a wrong OTP code together with the number of
// attempts left before the challenge is invalidated
type MismatchError struct {
	Remaining int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("invalid otp, %d attempts remaining", e.Remaining)
}
