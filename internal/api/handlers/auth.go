package handlers

import (
	"errors"
	"net/http"

	"suraksha/internal/auth"
	"suraksha/internal/models"
	"suraksha/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for registration, login, and the
// OTP verification flow
type AuthHandler struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an unverified account and send a verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration details"
// @Success 201 {object} models.SuccessResponse "User registered"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 403 {object} models.ErrorResponse "Registration closed"
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "email already registered"})
		case errors.Is(err, auth.ErrRegistrationClosed):
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "registration is closed"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "registration failed"})
		}
		return
	}

	// Kick off the verification flow right away
	if err := h.authService.IssueOTP(c.Request.Context(), user.Email); err != nil {
		h.logger.Error("failed to issue otp after registration", zap.Error(err))
	}

	c.JSON(http.StatusCreated, models.SuccessResponse{
		Message: "registered successfully, check your email for the verification code",
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate a verified user and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 403 {object} models.ErrorResponse "Email not verified"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound), errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		case errors.Is(err, auth.ErrNotVerified):
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "email not verified"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process login"})
		}
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: token,
		User:        user.ToResponse(),
	})
}

// Logout godoc
// @Summary User logout
// @Description Clear the current session
// @Tags auth
// @Produce json
// @Success 200 {object} models.SuccessResponse "Logged out"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process logout"})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Message: "logged out"})
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := auth.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user.ToResponse())
}

// SendOTP godoc
// @Summary Send verification code
// @Description Issue a fresh OTP for the email, replacing any prior code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.OTPSendRequest true "Target email"
// @Success 200 {object} models.SuccessResponse "Code sent"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/otp/send [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req models.OTPSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.authService.IssueOTP(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to send verification code"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "verification code sent"})
}

// VerifyOTP godoc
// @Summary Verify a one-time code
// @Description Check the submitted code; success consumes the challenge
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.OTPVerifyRequest true "Email and code"
// @Success 200 {object} models.SuccessResponse "Email verified"
// @Failure 400 {object} models.OTPVerifyResponse "Code mismatch"
// @Failure 404 {object} models.ErrorResponse "No pending challenge"
// @Failure 410 {object} models.ErrorResponse "Code expired"
// @Failure 429 {object} models.ErrorResponse "Attempts exhausted"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req models.OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.authService.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		var mismatch *auth.MismatchError
		switch {
		case errors.Is(err, repository.ErrChallengeNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "verification code not found, request a new one"})
		case errors.Is(err, auth.ErrChallengeExpired):
			c.JSON(http.StatusGone, models.ErrorResponse{Error: "verification code expired, request a new one"})
		case errors.Is(err, auth.ErrAttemptsExhausted):
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: "too many failed attempts, request a new code"})
		case errors.As(err, &mismatch):
			c.JSON(http.StatusBadRequest, models.OTPVerifyResponse{
				Message:           "invalid verification code",
				RemainingAttempts: &mismatch.Remaining,
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "email verified successfully"})
}

// ResendOTP godoc
// @Summary Resend verification code
// @Description Invalidate any pending code and issue a new one
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.OTPSendRequest true "Target email"
// @Success 200 {object} models.SuccessResponse "Code sent"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/otp/resend [post]
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req models.OTPSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.authService.ResendOTP(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to resend verification code"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "verification code sent"})
}
