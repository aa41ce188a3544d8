// Package repository defines the persistence interfaces for the
// application's collections. Implementations live in repository/kv and
// serialize each collection as a JSON blob in the key-value store.
package repository

import (
	"context"

	"suraksha/internal/models"

	"github.com/google/uuid"
)

// UserRepository manages the flat list of registered users, keyed by
// email (case-insensitive)
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	MarkVerified(ctx context.Context, email string) error
	List(ctx context.Context) ([]models.User, error)
}

// SessionRepository manages the single "current user" pointer
type SessionRepository interface {
	Set(ctx context.Context, user *models.User) error
	Get(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

// ChallengeRepository manages per-email OTP challenges. Save replaces
// any existing challenge for the email.
type ChallengeRepository interface {
	Save(ctx context.Context, challenge *models.OTPChallenge) error
	Get(ctx context.Context, email string) (*models.OTPChallenge, error)
	Delete(ctx context.Context, email string) error
}

// AlertRepository manages the bounded, most-recent-first alert list
type AlertRepository interface {
	Insert(ctx context.Context, alert models.Alert) error
	Resolve(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.Alert, error)
}

// ScanHistoryRepository manages the bounded scan history list
type ScanHistoryRepository interface {
	Insert(ctx context.Context, entry models.ScanHistoryEntry) error
	List(ctx context.Context) ([]models.ScanHistoryEntry, error)
	Recent(ctx context.Context, n int) ([]models.ScanHistoryEntry, error)
}

// BreachRepository manages the simulated dark-web breach records
type BreachRepository interface {
	Replace(ctx context.Context, breaches []models.Breach) error
	List(ctx context.Context) ([]models.Breach, error)
}

// NotificationRepository manages the email analysis history
type NotificationRepository interface {
	Insert(ctx context.Context, analysis models.EmailAnalysis) error
	List(ctx context.Context) ([]models.EmailAnalysis, error)
}
