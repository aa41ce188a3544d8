// Package storage provides the flat key-value persistence boundary.
// All application state is stored as JSON blobs under fixed string keys.
package storage

import "context"

// Well-known keys for the persisted collections. OTP challenges use a
// per-email key built with OTPKey.
const (
	KeyUsers         = "registered_users"
	KeySession       = "current_user"
	KeyAlerts        = "security_alerts"
	KeyScanHistory   = "scan_history"
	KeyBreaches      = "dark_web_breaches"
	KeyNotifications = "email_notifications"

	otpKeyPrefix = "otp_"
)

// OTPKey returns the storage key for an email's OTP challenge
func OTPKey(email string) string {
	return otpKeyPrefix + email
}

// Store is a durable string-keyed blob store. Get reports found=false
// for missing keys rather than an error; Delete of a missing key is a
// no-op. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
