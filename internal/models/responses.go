package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// LoginResponse represents the response to a successful login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// OTPVerifyResponse reports the outcome of an OTP verification attempt
type OTPVerifyResponse struct {
	Message           string `json:"message"`
	RemainingAttempts *int   `json:"remaining_attempts,omitempty"`
}

// HealthScoreResponse carries the derived cyber health score
type HealthScoreResponse struct {
	Score int `json:"score"`
}

// MonitorStatusResponse reports whether background monitoring is running
type MonitorStatusResponse struct {
	Active bool `json:"active"`
}

// HealthResponse represents the service health check response
type HealthResponse struct {
	Status string `json:"status"`
}
