// Package darkweb provides the simulated dark-web breach lookup. There
// is no real crawling: lookups synthesize fixed breach records for the
// supplied identifiers and persist them.
package darkweb

import (
	"context"
	"time"

	"suraksha/internal/models"
	"suraksha/internal/repository"
)

// Service runs simulated breach lookups
type Service struct {
	breaches repository.BreachRepository
}

// NewService creates a new dark-web lookup service
func NewService(breaches repository.BreachRepository) *Service {
	return &Service{breaches: breaches}
}

// CheckBreaches produces the simulated breach records for an email and
// GST number, replaces the stored set, and returns them. The GST value
// is masked before it is recorded.
func (s *Service) CheckBreaches(ctx context.Context, email, gstNumber string) ([]models.Breach, error) {
	now := time.Now().UTC()
	records := []models.Breach{
		{
			ID:        "1",
			Type:      models.BreachTypeEmail,
			Value:     email,
			Source:    "Data breach - TechCorp 2024",
			DateFound: now,
			Severity:  models.SeverityHigh,
			Status:    models.StatusActive,
		},
	}

	if gstNumber != "" {
		records = append(records, models.Breach{
			ID:        "2",
			Type:      models.BreachTypeGST,
			Value:     MaskGST(gstNumber),
			Source:    "Business database leak",
			DateFound: now.Add(-7 * 24 * time.Hour),
			Severity:  models.SeverityMedium,
			Status:    models.StatusResolved,
		})
	}

	if err := s.breaches.Replace(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Breaches returns the stored breach records from the last lookup
func (s *Service) Breaches(ctx context.Context) ([]models.Breach, error) {
	return s.breaches.List(ctx)
}

// MaskGST hides the middle of a GST number, keeping the first six and
// everything after the ninth character. Short values are returned as-is.
func MaskGST(gst string) string {
	if len(gst) < 10 {
		return gst
	}
	return gst[:6] + "***" + gst[9:]
}
