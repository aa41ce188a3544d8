package auth_test

import (
	"context"
	"testing"
	"time"

	"suraksha/internal/auth"
	"suraksha/internal/models"
	"suraksha/internal/repository"
	"suraksha/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	tc := testutil.NewTestContext(t)
	ctx := context.Background()

	req := models.RegisterRequest{
		Name:        "Asha Patel",
		Email:       "asha@example.com",
		Password:    "strongpassword",
		CompanyName: "Patel Traders",
		GSTNumber:   "27AAPFU0939F1ZV",
		Language:    "Hindi",
	}

	user, err := tc.AuthService.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "Hindi", user.Language)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "strongpassword", user.Password, "password must be stored hashed")

	// Duplicate email is rejected case-insensitively
	req.Email = "ASHA@example.com"
	_, err = tc.AuthService.Register(ctx, req)
	assert.ErrorIs(t, err, repository.ErrEmailExists)
}

func TestRegisterDefaultsLanguage(t *testing.T) {
	tc := testutil.NewTestContext(t)

	user, err := tc.AuthService.Register(context.Background(), models.RegisterRequest{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "English", user.Language)
}

func TestRegisterClosed(t *testing.T) {
	tc := testutil.NewTestContext(t)
	tc.Config.Auth.RegistrationOpen = false

	_, err := tc.AuthService.Register(context.Background(), models.RegisterRequest{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "strongpassword",
	})
	assert.ErrorIs(t, err, auth.ErrRegistrationClosed)
}

func TestLogin(t *testing.T) {
	tc := testutil.NewTestContext(t)
	ctx := context.Background()

	tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", true)

	user, token, err := tc.AuthService.Login(ctx, "asha@example.com", "strongpassword")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "asha@example.com", user.Email)

	// The session pointer now holds the user
	current, err := tc.AuthService.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginFailures(t *testing.T) {
	tc := testutil.NewTestContext(t)
	ctx := context.Background()

	tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", true)
	tc.CreateTestUser("Ravi", "ravi@example.com", "strongpassword", false)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"unknown email", "nobody@example.com", "strongpassword", repository.ErrUserNotFound},
		{"wrong password", "asha@example.com", "wrongpassword", auth.ErrInvalidCredentials},
		{"unverified user", "ravi@example.com", "strongpassword", auth.ErrNotVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tc.AuthService.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogout(t *testing.T) {
	tc := testutil.NewTestContext(t)
	ctx := context.Background()

	tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", true)
	_, _, err := tc.AuthService.Login(ctx, "asha@example.com", "strongpassword")
	require.NoError(t, err)

	require.NoError(t, tc.AuthService.Logout(ctx))

	_, err = tc.AuthService.CurrentUser(ctx)
	assert.ErrorIs(t, err, repository.ErrNoSession)
}

func TestIssueAndVerifyOTP(t *testing.T) {
	tc := testutil.NewTestContext(t)
	ctx := context.Background()

	user := tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", false)

	require.NoError(t, tc.AuthService.IssueOTP(ctx, user.Email))
	code := tc.EmailSender.LastCode()
	require.Len(t, code, 6)

	require.NoError(t, tc.AuthService.VerifyOTP(ctx, user.Email, code))

	// The user is now verified and the challenge consumed
	stored, err := tc.UserRepo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)

	err = tc.AuthService.VerifyOTP(ctx, user.Email, code)
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}

func TestIssueOTPUnknownUser(t *testing.T) {
	tc := testutil.NewTestContext(t)

	err := tc.AuthService.IssueOTP(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Empty(t, tc.EmailSender.Sent())
}

func TestVerifyOTPMismatchCountsAttempts(t *testing.T) {
	tc := testutil.NewTestContext(t)
	ctx := context.Background()

	user := tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", false)
	require.NoError(t, tc.AuthService.IssueOTP(ctx, user.Email))
	code := tc.EmailSender.LastCode()

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	// First two mismatches report the shrinking remaining count
	var mismatch *auth.MismatchError
	err := tc.AuthService.VerifyOTP(ctx, user.Email, wrong)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Remaining)

	err = tc.AuthService.VerifyOTP(ctx, user.Email, wrong)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, mismatch.Remaining)

	// The third mismatch invalidates the challenge
	err = tc.AuthService.VerifyOTP(ctx, user.Email, wrong)
	assert.ErrorIs(t, err, auth.ErrAttemptsExhausted)

	// Even the correct code is now rejected: the challenge is gone
	err = tc.AuthService.VerifyOTP(ctx, user.Email, code)
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)

	stored, err := tc.UserRepo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.False(t, stored.IsVerified)
}

func TestVerifyOTPExpired(t *testing.T) {
	tc := testutil.NewTestContext(t)
	ctx := context.Background()

	user := tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", false)

	now := time.Now().UTC()
	tc.SaveChallenge(&models.OTPChallenge{
		Code:      "123456",
		Email:     user.Email,
		IssuedAt:  now.Add(-10 * time.Minute),
		ExpiresAt: now.Add(-5 * time.Minute),
	})

	err := tc.AuthService.VerifyOTP(ctx, user.Email, "123456")
	assert.ErrorIs(t, err, auth.ErrChallengeExpired)

	// The expired challenge was deleted
	err = tc.AuthService.VerifyOTP(ctx, user.Email, "123456")
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}

func TestResendOTPReplacesChallenge(t *testing.T) {
	tc := testutil.NewTestContext(t)
	ctx := context.Background()

	user := tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", false)
	require.NoError(t, tc.AuthService.IssueOTP(ctx, user.Email))
	first := tc.EmailSender.LastCode()

	// Burn an attempt so we can observe the reset
	wrong := "000000"
	if wrong == first {
		wrong = "000001"
	}
	_ = tc.AuthService.VerifyOTP(ctx, user.Email, wrong)

	require.NoError(t, tc.AuthService.ResendOTP(ctx, user.Email))
	second := tc.EmailSender.LastCode()

	challenge, err := tc.ChallengeRepo.Get(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, second, challenge.Code)
	assert.Equal(t, 0, challenge.Attempts)

	if first != second {
		err := tc.AuthService.VerifyOTP(ctx, user.Email, first)
		var mismatch *auth.MismatchError
		assert.ErrorAs(t, err, &mismatch)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tc := testutil.NewTestContext(t)

	user := tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", true)
	token := tc.GetTestJWT(user)

	claims, err := tc.AuthService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, (*claims)["email"])
	assert.Equal(t, user.ID.String(), (*claims)["user_id"])
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	tc := testutil.NewTestContext(t)

	_, err := tc.AuthService.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
