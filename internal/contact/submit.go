package contact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/attmoc/attmoc/internal/analytics"
	"github.com/attmoc/attmoc/internal/clock"
)

// SubmitDelay is how long a simulated submission takes.
const SubmitDelay = 1500 * time.Millisecond

const (
	SuccessMessage = "Message sent successfully! We'll get back to you soon."
	FailureMessage = "Failed to send message. Please try again."
)

// Receipt confirms a submission.
type Receipt struct {
	Form        Form
	SubmittedAt time.Time
	Message     string
}

// Submitter simulates sending the form.
type Submitter struct {
	clk     clock.Clock
	delay   time.Duration
	tracker *analytics.Tracker
	logger  *slog.Logger
}

// NewSubmitter returns a Submitter. Nil arguments get working defaults.
func NewSubmitter(clk clock.Clock, tracker *analytics.Tracker, logger *slog.Logger) *Submitter {
	if clk == nil {
		clk = clock.Real()
	}
	if tracker == nil {
		tracker = analytics.Disabled()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Submitter{clk: clk, delay: SubmitDelay, tracker: tracker, logger: logger}
}

// Submit validates f, then waits SubmitDelay. Validation failures are
// returned before any event is tracked. Cancelling ctx during the wait
// aborts the submission and tracks submit_error.
func (s *Submitter) Submit(ctx context.Context, f Form) (Receipt, error) {
	if err := f.Validate(); err != nil {
		return Receipt{}, err
	}

	s.tracker.TrackEvent("contact_form", "submit_start", "contact_section", -1)

	select {
	case <-ctx.Done():
		s.tracker.TrackEvent("contact_form", "submit_error", "contact_section", -1)
		s.logger.Warn("contact form submission aborted", "error", ctx.Err())
		return Receipt{}, fmt.Errorf("submit contact form: %w", ctx.Err())
	case <-s.clk.After(s.delay):
	}

	s.logger.Info("contact form submitted", "name", f.Name, "email", f.Email, "subject", f.Subject)
	s.tracker.TrackEvent("contact_form", "submit_success", "contact_section", -1)
	return Receipt{Form: f, SubmittedAt: s.clk.Now(), Message: SuccessMessage}, nil
}
