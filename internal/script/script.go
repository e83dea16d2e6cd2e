package script

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

var (
	ErrEmptyScript   = errors.New("script: no lines")
	ErrInvalidTiming = errors.New("script: invalid timing")
	ErrUnknownMode   = errors.New("script: unknown mode")
)

// Script is an ordered list of lines, typed in order and restarted from
// the first line once exhausted. Empty lines are allowed.
type Script []string

// Len returns the number of lines.
func (s Script) Len() int { return len(s) }

// Runes returns the number of characters in line i.
func (s Script) Runes(i int) int { return utf8.RuneCountInString(s[i]) }

// Clone returns a copy that shares no backing array with s.
func (s Script) Clone() Script {
	out := make(Script, len(s))
	copy(out, s)
	return out
}

// Mode selects what happens to a line once it has been typed.
type Mode string

const (
	// ModeTerminal keeps completed lines on screen, like a shell session.
	ModeTerminal Mode = "terminal"
	// ModeEditor shows one entry at a time; each entry replaces the
	// previous one. Entries may span several lines.
	ModeEditor Mode = "editor"
)

// ParseMode returns the Mode for s. The empty string means ModeTerminal.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeTerminal:
		return ModeTerminal, nil
	case ModeEditor:
		return ModeEditor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Timing holds the fixed delays of the typewriter.
type Timing struct {
	// CharDelay elapses before each character is revealed.
	CharDelay time.Duration `yaml:"char_delay" json:"char_delay"`
	// LineDelay elapses between a line being fully typed and it being
	// committed.
	LineDelay time.Duration `yaml:"line_delay" json:"line_delay"`
	// LoopDelay elapses between the last commit and the restart.
	LoopDelay time.Duration `yaml:"loop_delay" json:"loop_delay"`
}

// Validate rejects negative delays and a zero character delay.
func (t Timing) Validate() error {
	if t.CharDelay <= 0 {
		return fmt.Errorf("%w: char delay must be positive, got %v", ErrInvalidTiming, t.CharDelay)
	}
	if t.LineDelay < 0 {
		return fmt.Errorf("%w: line delay must not be negative, got %v", ErrInvalidTiming, t.LineDelay)
	}
	if t.LoopDelay < 0 {
		return fmt.Errorf("%w: loop delay must not be negative, got %v", ErrInvalidTiming, t.LoopDelay)
	}
	return nil
}

// LoopDuration returns how long one full pass over s takes, including
// the restart pause.
func (t Timing) LoopDuration(s Script) time.Duration {
	var d time.Duration
	for i := range s {
		d += time.Duration(s.Runes(i))*t.CharDelay + t.LineDelay
	}
	return d + t.LoopDelay
}
