package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertSeverity represents how urgent a security alert is
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// AlertCategory represents the kind of threat an alert describes
type AlertCategory string

const (
	CategoryPhishing   AlertCategory = "phishing"
	CategoryMalware    AlertCategory = "malware"
	CategorySuspicious AlertCategory = "suspicious"
	CategoryDarkWeb    AlertCategory = "darkweb"
)

// AlertStatus represents the lifecycle state of an alert
type AlertStatus string

const (
	StatusActive   AlertStatus = "active"
	StatusResolved AlertStatus = "resolved"
)

// Alert represents a recorded security alert
type Alert struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    AlertSeverity `json:"severity"`
	Category    AlertCategory `json:"category"`
	Status      AlertStatus   `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
}

// NewAlert creates an active alert with a fresh id and timestamp
func NewAlert(title, description string, severity AlertSeverity, category AlertCategory) Alert {
	return Alert{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Severity:    severity,
		Category:    category,
		Status:      StatusActive,
		Timestamp:   time.Now().UTC(),
	}
}
