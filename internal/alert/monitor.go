package alert

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"suraksha/internal/config"
	"suraksha/internal/models"
	"suraksha/internal/notify"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Monitor runs the periodic simulated device scan. It owns a cron
// scheduler with a Start/Stop lifecycle; starting an active monitor is
// a no-op and Stop synchronously prevents further ticks.
type Monitor struct {
	ledger     *Ledger
	dispatcher notify.Dispatcher
	cfg        config.MonitorConfig
	logger     *zap.Logger

	// randFloat is injectable so tests can drive the threat simulation
	randFloat func() float64
	randIntn  func(n int) int

	mu     sync.Mutex
	cron   *cron.Cron
	active bool
}

// NewMonitor creates a background monitor over the given ledger
func NewMonitor(ledger *Ledger, dispatcher notify.Dispatcher, cfg config.MonitorConfig, logger *zap.Logger) *Monitor {
	return &Monitor{
		ledger:     ledger,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     logger,
		randFloat:  rand.Float64,
		randIntn:   rand.Intn,
	}
}

// Start schedules the periodic scan. A no-op when already active.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active {
		return nil
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(toCronSpec(m.cfg.Schedule), func() {
		m.Tick(context.Background())
	}); err != nil {
		return err
	}

	c.Start()
	m.cron = c
	m.active = true
	m.logger.Info("background security monitoring started",
		zap.String("schedule", m.cfg.Schedule))
	return nil
}

// Stop halts scheduling. A tick already executing runs to completion.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return
	}

	m.cron.Stop()
	m.cron = nil
	m.active = false
	m.logger.Info("background security monitoring stopped")
}

// Active reports whether monitoring is running
func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Tick performs one simulated device scan: independent low-probability
// threat checks, a high-severity alert when anything fires, and a scan
// history entry either way.
func (m *Monitor) Tick(ctx context.Context) {
	threats := m.scanDeviceThreats()

	if len(threats) > 0 {
		a := models.NewAlert(
			"Security Threat Detected",
			strings.Join(threats, ", "),
			models.SeverityHigh,
			models.CategoryMalware,
		)
		if err := m.ledger.RecordAlert(ctx, a); err != nil {
			m.logger.Error("failed to record threat alert", zap.Error(err))
		} else {
			m.dispatcher.Notify("Suraksha Security Alert", a.Description)
		}
	}

	entry := models.ScanHistoryEntry{
		Timestamp:    time.Now().UTC(),
		ThreatsFound: m.randIntn(3),
		FilesScanned: m.randIntn(100) + 50,
	}
	if err := m.ledger.RecordScanHistory(ctx, entry); err != nil {
		m.logger.Error("failed to record scan history", zap.Error(err))
	}
}

// scanDeviceThreats draws the two independent simulated threat checks
func (m *Monitor) scanDeviceThreats() []string {
	var threats []string
	if m.randFloat() < m.cfg.NetworkThreatProbability {
		threats = append(threats, "Suspicious network activity detected")
	}
	if m.randFloat() < m.cfg.AppThreatProbability {
		threats = append(threats, "Potentially malicious app behavior detected")
	}
	return threats
}

// toCronSpec passes through cron expressions and @every shorthands
func toCronSpec(schedule string) string {
	if schedule == "" {
		return "@every 30s"
	}
	return schedule
}
