// Package testutil provides utilities for testing
package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"suraksha/internal/alert"
	"suraksha/internal/api/handlers"
	"suraksha/internal/auth"
	"suraksha/internal/config"
	"suraksha/internal/darkweb"
	"suraksha/internal/models"
	"suraksha/internal/repository"
	"suraksha/internal/repository/kv"
	"suraksha/internal/scanner"
	"suraksha/internal/storage"
	"suraksha/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockEmailSender records OTP emails instead of sending them
type MockEmailSender struct {
	mu   sync.Mutex
	sent []SentOTP
}

// SentOTP is one recorded OTP email
type SentOTP struct {
	To   string
	Code string
}

func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

func (s *MockEmailSender) SendOTPEmail(to, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, SentOTP{To: to, Code: code})
	return nil
}

// Sent returns a copy of all recorded OTP emails
func (s *MockEmailSender) Sent() []SentOTP {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SentOTP, len(s.sent))
	copy(out, s.sent)
	return out
}

// LastCode returns the code of the most recently recorded OTP email
func (s *MockEmailSender) LastCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return ""
	}
	return s.sent[len(s.sent)-1].Code
}

// TestContext holds common test dependencies over an in-memory store
type TestContext struct {
	T                *testing.T
	Store            *storage.MemoryStore
	Config           *config.Config
	UserRepo         repository.UserRepository
	SessionRepo      repository.SessionRepository
	ChallengeRepo    repository.ChallengeRepository
	AlertRepo        repository.AlertRepository
	HistoryRepo      repository.ScanHistoryRepository
	BreachRepo       repository.BreachRepository
	NotificationRepo repository.NotificationRepository
	AuthService      *auth.Service
	Ledger           *alert.Ledger
	Scanner          *scanner.Scanner
	DarkWebService   *darkweb.Service
	EmailSender      *MockEmailSender
	AuthHandler      *handlers.AuthHandler
	Logger           *zap.Logger
}

// TestConfig returns a configuration suitable for tests
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.API.Port = "8080"
	cfg.Auth = config.AuthConfig{
		JWTSecret:        "test-secret",
		JWTExpiration:    1,
		OTPTTL:           5 * time.Minute,
		RegistrationOpen: true,
	}
	cfg.Monitor = config.MonitorConfig{
		Schedule:                 "@every 30s",
		NetworkThreatProbability: 0.10,
		AppThreatProbability:     0.05,
	}
	cfg.RateLimit.Requests = 1000
	cfg.RateLimit.Window = 60
	cfg.RateLimit.Burst = 50
	return cfg
}

// NewTestContext creates a new test context with all dependencies
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Initialize validators
	validation.Initialize()

	cfg := TestConfig()
	store := storage.NewMemoryStore()
	logger := zap.NewNop()

	// Initialize repositories
	userRepo := kv.NewUserRepository(store)
	sessionRepo := kv.NewSessionRepository(store)
	challengeRepo := kv.NewChallengeRepository(store)
	alertRepo := kv.NewAlertRepository(store)
	historyRepo := kv.NewScanHistoryRepository(store)
	breachRepo := kv.NewBreachRepository(store)
	notificationRepo := kv.NewNotificationRepository(store)

	// Initialize services
	emailSender := NewMockEmailSender()
	authService := auth.NewService(cfg, userRepo, sessionRepo, challengeRepo, emailSender, logger)
	ledger := alert.NewLedger(alertRepo, historyRepo)

	return &TestContext{
		T:                t,
		Store:            store,
		Config:           cfg,
		UserRepo:         userRepo,
		SessionRepo:      sessionRepo,
		ChallengeRepo:    challengeRepo,
		AlertRepo:        alertRepo,
		HistoryRepo:      historyRepo,
		BreachRepo:       breachRepo,
		NotificationRepo: notificationRepo,
		AuthService:      authService,
		Ledger:           ledger,
		Scanner:          scanner.New(scanner.NewOSFileInfo()),
		DarkWebService:   darkweb.NewService(breachRepo),
		EmailSender:      emailSender,
		AuthHandler:      handlers.NewAuthHandler(authService, logger),
		Logger:           logger,
	}
}

// CreateTestUser creates a verified or unverified user directly through
// the repository and returns it
func (tc *TestContext) CreateTestUser(name, emailAddr, password string, verified bool) *models.User {
	tc.T.Helper()

	hashed, err := tc.AuthService.HashPassword(password)
	require.NoError(tc.T, err, "Failed to hash password")

	user := &models.User{
		ID:          uuid.New(),
		Name:        name,
		Email:       emailAddr,
		Password:    hashed,
		CompanyName: "Test Traders",
		GSTNumber:   "27AAPFU0939F1ZV",
		Language:    "English",
		IsVerified:  verified,
		CreatedAt:   time.Now().UTC(),
	}

	err = tc.UserRepo.Create(context.Background(), user)
	require.NoError(tc.T, err, "Failed to create test user")
	return user
}

// GetTestJWT generates a JWT token for testing
func (tc *TestContext) GetTestJWT(user *models.User) string {
	tc.T.Helper()

	token, err := tc.AuthService.GenerateToken(user)
	require.NoError(tc.T, err, "Failed to generate test JWT")
	return token
}

// SaveChallenge stores an OTP challenge directly, bypassing the issue
// flow. Useful for expiry and attempt-count scenarios.
func (tc *TestContext) SaveChallenge(challenge *models.OTPChallenge) {
	tc.T.Helper()
	require.NoError(tc.T, tc.ChallengeRepo.Save(context.Background(), challenge))
}
