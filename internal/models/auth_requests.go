package models

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	CompanyName string `json:"company_name" binding:"omitempty,max=200"`
	GSTNumber   string `json:"gst_number" binding:"omitempty,min=15,max=15"`
	Language    string `json:"language" binding:"omitempty,language"`
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OTPSendRequest represents the request to issue an OTP for an email
type OTPSendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// OTPVerifyRequest represents the request to verify a submitted OTP
type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}
