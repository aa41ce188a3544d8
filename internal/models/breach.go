package models

import "time"

// BreachType identifies which piece of user data appeared in a breach
type BreachType string

const (
	BreachTypeEmail BreachType = "email"
	BreachTypeGST   BreachType = "gst"
)

// Breach represents a simulated dark-web breach record
type Breach struct {
	ID        string        `json:"id"`
	Type      BreachType    `json:"type"`
	Value     string        `json:"value"`
	Source    string        `json:"source"`
	DateFound time.Time     `json:"date_found"`
	Severity  AlertSeverity `json:"severity"`
	Status    AlertStatus   `json:"status"`
}
