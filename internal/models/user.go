package models

import (
	"time"

	"github.com/google/uuid"
)

// SupportedLanguages lists the alert languages a user may select at
// registration. The first entry is the default.
var SupportedLanguages = []string{
	"English", "Hindi", "Marathi", "Gujarati", "Bengali",
	"Tamil", "Telugu", "Kannada", "Malayalam", "Punjabi",
}

// User represents a registered user in the system
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	CompanyName string    `json:"company_name"`
	GSTNumber   string    `json:"gst_number"`
	Language    string    `json:"language"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserResponse is the outward-facing view of a user, without credentials
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name"`
	GSTNumber   string    `json:"gst_number"`
	Language    string    `json:"language"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse strips credential fields from a user record
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		CompanyName: u.CompanyName,
		GSTNumber:   u.GSTNumber,
		Language:    u.Language,
		IsVerified:  u.IsVerified,
		CreatedAt:   u.CreatedAt,
	}
}
