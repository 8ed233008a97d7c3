// Package notify is the fire-and-forget channel for user-visible messages.
// The core decides what to say and when; how it is rendered is up to the
// sink implementation.
package notify

import "log/slog"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Sink receives user-facing messages. Implementations must not block and
// must not return errors to the caller; a dropped message is acceptable,
// a stalled mutation is not.
type Sink interface {
	Notify(severity Severity, message string)
}

// SlogSink writes notifications to a structured logger. It doubles as the
// default sink for the terminal client, where log output is the UI.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) Notify(severity Severity, message string) {
	switch severity {
	case SeverityError:
		s.Logger.Error(message)
	case SeverityWarning:
		s.Logger.Warn(message)
	default:
		s.Logger.Info(message)
	}
}
