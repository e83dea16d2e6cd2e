// Package analytics records interaction events. With no analytics id
// configured every call is a no-op.
package analytics

import (
	"io"
	"log/slog"
	"math"
)

// Tracker emits analytics events as structured log records.
type Tracker struct {
	id     string
	logger *slog.Logger
}

// New returns a Tracker writing to logger. An empty id disables it.
func New(id string, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tracker{id: id, logger: logger.With("analytics_id", id)}
}

// Disabled returns a Tracker that drops everything.
func Disabled() *Tracker { return New("", nil) }

// Enabled reports whether events are emitted.
func (t *Tracker) Enabled() bool { return t != nil && t.id != "" }

// TrackEvent records a user interaction. A negative value is omitted.
func (t *Tracker) TrackEvent(action, category, label string, value int) {
	if !t.Enabled() {
		return
	}
	attrs := []any{"action", action, "category", category}
	if label != "" {
		attrs = append(attrs, "label", label)
	}
	if value >= 0 {
		attrs = append(attrs, "value", value)
	}
	t.logger.Info("event", attrs...)
}

// TrackPageView records navigation to path.
func (t *Tracker) TrackPageView(path string) {
	if !t.Enabled() {
		return
	}
	t.logger.Info("page_view", "page_path", path)
}

// ReportVital records a performance measurement, rounded to whole
// milliseconds.
func (t *Tracker) ReportVital(name string, value float64, id string) {
	if !t.Enabled() {
		return
	}
	t.logger.Info("event",
		"action", name,
		"category", "Web Vitals",
		"label", id,
		"value", int(math.Round(value)),
		"non_interaction", true,
	)
}
