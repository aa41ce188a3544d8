// Package auth provides user registration, credential checks, the OTP
// verification flow, and JWT token handling.
package auth

import (
	"context"
	"errors"
	"time"

	"suraksha/internal/config"
	"suraksha/internal/email"
	"suraksha/internal/models"
	"suraksha/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service provides authentication functionality
type Service struct {
	config     *config.Config
	users      repository.UserRepository
	sessions   repository.SessionRepository
	challenges repository.ChallengeRepository
	mailer     email.Sender
	logger     *zap.Logger
}

// NewService creates a new authentication service
func NewService(
	cfg *config.Config,
	users repository.UserRepository,
	sessions repository.SessionRepository,
	challenges repository.ChallengeRepository,
	mailer email.Sender,
	logger *zap.Logger,
) *Service {
	return &Service{
		config:     cfg,
		users:      users,
		sessions:   sessions,
		challenges: challenges,
		mailer:     mailer,
		logger:     logger,
	}
}

// Register creates a new unverified user. Fails with
// repository.ErrEmailExists when the email is already taken
// (case-insensitive).
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if !s.config.Auth.RegistrationOpen {
		return nil, ErrRegistrationClosed
	}

	hashed, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = models.SupportedLanguages[0]
	}

	user := &models.User{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		CompanyName: req.CompanyName,
		GSTNumber:   req.GSTNumber,
		Language:    language,
		IsVerified:  false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and verification state. On success the
// session pointer is set to a copy of the record and an access token is
// returned.
func (s *Service) Login(ctx context.Context, emailAddr, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, "", err
	}

	if err := s.ComparePasswords(user.Password, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, "", ErrNotVerified
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout clears the session pointer
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser returns the session pointer, or repository.ErrNoSession
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.sessions.Get(ctx)
}

// IssueOTP generates and stores a fresh challenge for the email,
// replacing any existing one, and hands the code to the mail transport.
// An unavailable transport is non-fatal: the code is logged so the flow
// can proceed in environments without mail capability.
func (s *Service) IssueOTP(ctx context.Context, emailAddr string) error {
	if _, err := s.users.GetByEmail(ctx, emailAddr); err != nil {
		return err
	}

	now := time.Now().UTC()
	challenge := &models.OTPChallenge{
		Code:      GenerateOTP(),
		Email:     emailAddr,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.config.Auth.OTPTTL),
		Attempts:  0,
	}

	if err := s.challenges.Save(ctx, challenge); err != nil {
		return err
	}

	if err := s.mailer.SendOTPEmail(emailAddr, challenge.Code); err != nil {
		if errors.Is(err, email.ErrTransportUnavailable) {
			s.logger.Warn("mail transport unavailable, otp available in log only",
				zap.String("email", emailAddr),
				zap.String("code", challenge.Code),
			)
			return nil
		}
		return err
	}
	return nil
}

// VerifyOTP checks a submitted code against the stored challenge.
// Expired or exhausted challenges are deleted and reported with
// ErrChallengeExpired / ErrAttemptsExhausted. A mismatch increments the
// attempt count and returns a MismatchError with the remaining count.
// On success the challenge is consumed and the user marked verified.
func (s *Service) VerifyOTP(ctx context.Context, emailAddr, code string) error {
	challenge, err := s.challenges.Get(ctx, emailAddr)
	if err != nil {
		return err
	}

	if challenge.Expired(time.Now().UTC()) {
		if err := s.challenges.Delete(ctx, emailAddr); err != nil {
			return err
		}
		return ErrChallengeExpired
	}

	if challenge.Attempts >= repository.MaxOTPAttempts {
		if err := s.challenges.Delete(ctx, emailAddr); err != nil {
			return err
		}
		return ErrAttemptsExhausted
	}

	if challenge.Code != code {
		challenge.Attempts++
		if challenge.Attempts >= repository.MaxOTPAttempts {
			if err := s.challenges.Delete(ctx, emailAddr); err != nil {
				return err
			}
			return ErrAttemptsExhausted
		}
		if err := s.challenges.Save(ctx, challenge); err != nil {
			return err
		}
		return &MismatchError{Remaining: repository.MaxOTPAttempts - challenge.Attempts}
	}

	if err := s.challenges.Delete(ctx, emailAddr); err != nil {
		return err
	}
	return s.users.MarkVerified(ctx, emailAddr)
}

// ResendOTP deletes any existing challenge and issues a new one. The
// 60 second resend cooldown is enforced client-side, not here.
func (s *Service) ResendOTP(ctx context.Context, emailAddr string) error {
	if err := s.challenges.Delete(ctx, emailAddr); err != nil {
		return err
	}
	return s.IssueOTP(ctx, emailAddr)
}

// GenerateToken generates a new JWT access token for the user
func (s *Service) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(time.Duration(s.config.Auth.JWTExpiration) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}

// ValidateToken validates a JWT token and returns the claims
func (s *Service) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, ErrInvalidToken
}

// HashPassword hashes a password using bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// ComparePasswords compares a hashed password with a plain text password
func (s *Service) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GetUserFromContext retrieves the authenticated user from the gin context
func GetUserFromContext(c *gin.Context) *models.User {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	if u, ok := user.(*models.User); ok {
		return u
	}
	return nil
}
