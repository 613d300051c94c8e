// Package notify defines the toast side-channel the storefront core pushes
// user-facing messages into. Core operations never consume a return value
// from the sink.
package notify

import "log"

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

type Toast struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

type Sink interface {
	Push(t Toast)
}

// LogSink writes toasts to a logger.
type LogSink struct {
	Logger *log.Logger
}

func (s *LogSink) Push(t Toast) {
	if s.Logger == nil {
		return
	}
	s.Logger.Printf("toast [%s] %s: %s", t.Severity, t.Title, t.Description)
}
