package sequencer

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/attmoc/attmoc/internal/clock"
	"github.com/attmoc/attmoc/internal/script"
)

// FrameFunc receives the transcript after every transition. It runs with
// the Sequencer locked and must not call back into it.
type FrameFunc func(Transcript)

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithClock replaces the real clock.
func WithClock(clk clock.Clock) Option {
	return func(s *Sequencer) { s.clk = clk }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) { s.logger = logger }
}

// WithFrameFunc registers the frame callback.
func WithFrameFunc(fn FrameFunc) Option {
	return func(s *Sequencer) { s.onFrame = fn }
}

// Sequencer schedules a Machine's transitions on a clock. At most one
// timer is pending at any moment. Every timer carries the generation it
// was scheduled under; a timer that fires after Reset or Stop bumped the
// generation changes nothing.
type Sequencer struct {
	mu      sync.Mutex
	clk     clock.Clock
	logger  *slog.Logger
	onFrame FrameFunc
	name    string

	machine *Machine
	timer   *clock.Timer
	gen     uint64
	epoch   uint64
	running bool
}

// New validates p and returns a stopped Sequencer.
func New(p script.Preset, opts ...Option) (*Sequencer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Sequencer{
		clk:     clock.Real(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		name:    p.Name,
		machine: NewMachine(p),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start begins typing from the first line. Calling Start on a running
// Sequencer does nothing.
func (s *Sequencer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.machine.Init()
	s.logger.Debug("sequencer started", "script", s.name)
	s.scheduleLocked()
	s.emitLocked()
}

// Stop cancels the pending timer. The transcript keeps its last state.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.cancelLocked()
	s.logger.Debug("sequencer stopped", "script", s.name)
}

// Reset restarts the script from the beginning if epoch differs from
// the last epoch seen, cancelling the pending timer first. It reports
// whether a restart happened.
func (s *Sequencer) Reset(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch == s.epoch {
		return false
	}
	s.epoch = epoch
	s.cancelLocked()
	s.machine.Init()
	s.logger.Debug("sequencer reset", "script", s.name, "epoch", epoch)
	if s.running {
		s.scheduleLocked()
	}
	s.emitLocked()
	return true
}

// Transcript returns the current transcript.
func (s *Sequencer) Transcript() Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Render()
}

// Epoch returns the last epoch passed to Reset.
func (s *Sequencer) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// Running reports whether a timer chain is active.
func (s *Sequencer) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Sequencer) scheduleLocked() {
	s.gen++
	gen := s.gen
	s.timer = s.clk.AfterFunc(s.machine.Delay(), func() { s.fire(gen) })
}

func (s *Sequencer) cancelLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Sequencer) fire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || gen != s.gen {
		return
	}
	looped := s.machine.Phase() == ScriptComplete
	s.machine.Advance()
	if looped {
		s.logger.Debug("sequencer looped", "script", s.name)
	}
	s.scheduleLocked()
	s.emitLocked()
}

func (s *Sequencer) emitLocked() {
	if s.onFrame != nil {
		s.onFrame(s.machine.Render())
	}
}

// Frame is a transcript stamped with the time since the recording
// started.
type Frame struct {
	At         time.Duration
	Transcript Transcript
}

// Record plays p for the given number of loops on a fake clock and
// returns every frame, starting with the empty frame at zero. The last
// frame is the restart that closes the final loop.
func Record(p script.Preset, loops int) ([]Frame, error) {
	if loops < 1 {
		loops = 1
	}
	start := time.Unix(0, 0).UTC()
	clk := clock.Fake(start)

	var frames []Frame
	seq, err := New(p, WithClock(clk), WithFrameFunc(func(t Transcript) {
		frames = append(frames, Frame{At: clk.Now().Sub(start), Transcript: t})
	}))
	if err != nil {
		return nil, err
	}

	seq.Start()
	clk.Advance(time.Duration(loops) * p.Timing.LoopDuration(p.Lines))
	seq.Stop()
	return frames, nil
}
