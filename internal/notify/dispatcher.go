// Package notify provides the alert delivery boundary. Dispatch is
// fire-and-forget: delivery failures are logged and never propagate to
// the caller.
package notify

import (
	"suraksha/internal/models"

	"go.uber.org/zap"
)

// Dispatcher hands produced alerts to the notification and voice
// playback subsystems
type Dispatcher interface {
	Notify(title, body string)
	Speak(message, language string, severity models.AlertSeverity)
}

// LogDispatcher writes notifications and localized voice alerts to the
// structured log. It stands in for platform notification and
// text-to-speech backends.
type LogDispatcher struct {
	logger *zap.Logger
}

// NewLogDispatcher creates a log-backed dispatcher
func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Notify(title, body string) {
	d.logger.Info("notification dispatched",
		zap.String("title", title),
		zap.String("body", body),
	)
}

func (d *LogDispatcher) Speak(message, language string, severity models.AlertSeverity) {
	alert := BuildVoiceAlert(message, language, severity)
	d.logger.Info("voice alert dispatched",
		zap.String("message", alert.Message),
		zap.String("language_code", alert.LanguageCode),
		zap.String("severity", string(severity)),
		zap.Float64("pitch", alert.Pitch),
		zap.Float64("rate", alert.Rate),
	)
}
