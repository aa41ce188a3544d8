// Package alert provides the security alert ledger, the derived cyber
// health score, and the background monitoring loop.
package alert

import (
	"context"

	"suraksha/internal/models"
	"suraksha/internal/repository"

	"github.com/google/uuid"
)

// healthHistoryWindow is how many recent scan passes feed the score
const healthHistoryWindow = 5

// Ledger manages recorded alerts and scan history
type Ledger struct {
	alerts  repository.AlertRepository
	history repository.ScanHistoryRepository
}

// NewLedger creates a new alert ledger
func NewLedger(alerts repository.AlertRepository, history repository.ScanHistoryRepository) *Ledger {
	return &Ledger{alerts: alerts, history: history}
}

// RecordAlert persists an alert at the head of the bounded list
func (l *Ledger) RecordAlert(ctx context.Context, alert models.Alert) error {
	return l.alerts.Insert(ctx, alert)
}

// Resolve marks the alert resolved; unknown ids are a no-op
func (l *Ledger) Resolve(ctx context.Context, id uuid.UUID) error {
	return l.alerts.Resolve(ctx, id)
}

// Delete removes the alert; unknown ids are a no-op
func (l *Ledger) Delete(ctx context.Context, id uuid.UUID) error {
	return l.alerts.Delete(ctx, id)
}

// Alerts returns the recorded alerts, most recent first
func (l *Ledger) Alerts(ctx context.Context) ([]models.Alert, error) {
	return l.alerts.List(ctx)
}

// RecordScanHistory persists a scan pass at the head of the bounded list
func (l *Ledger) RecordScanHistory(ctx context.Context, entry models.ScanHistoryEntry) error {
	return l.history.Insert(ctx, entry)
}

// History returns the scan history, most recent first
func (l *Ledger) History(ctx context.Context) ([]models.ScanHistoryEntry, error) {
	return l.history.List(ctx)
}

// HealthScore derives the cyber health score: 100, minus 10 per active
// alert, minus 5 times the average threats found over the most recent
// scan passes, clamped to [0,100]. Empty state yields the neutral 100.
func (l *Ledger) HealthScore(ctx context.Context) (int, error) {
	alerts, err := l.alerts.List(ctx)
	if err != nil {
		return 0, err
	}

	active := 0
	for _, a := range alerts {
		if a.Status == models.StatusActive {
			active++
		}
	}

	recent, err := l.history.Recent(ctx, healthHistoryWindow)
	if err != nil {
		return 0, err
	}

	avgThreats := 0.0
	if len(recent) > 0 {
		total := 0
		for _, entry := range recent {
			total += entry.ThreatsFound
		}
		avgThreats = float64(total) / float64(len(recent))
	}

	score := 100.0 - float64(active)*10 - avgThreats*5
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score), nil
}
