package sequencer

import (
	"strings"
	"time"

	"github.com/attmoc/attmoc/internal/script"
)

// Phase identifies which transition the machine takes next.
type Phase int

const (
	// Typing means the current line still has characters to reveal.
	Typing Phase = iota
	// LineComplete means the current line is fully revealed and waits to
	// be committed.
	LineComplete
	// ScriptComplete means every line is committed and the machine waits
	// to restart.
	ScriptComplete
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case LineComplete:
		return "line-complete"
	case ScriptComplete:
		return "script-complete"
	}
	return "unknown"
}

// Machine is the typewriter state machine. It is not safe for
// concurrent use; Sequencer serializes access to it.
type Machine struct {
	lines  script.Script
	timing script.Timing
	mode   script.Mode

	completed []string
	line      int
	char      int
}

// NewMachine returns a machine positioned at the first character of the
// first line.
func NewMachine(p script.Preset) *Machine {
	m := &Machine{
		lines:  p.Lines.Clone(),
		timing: p.Timing,
		mode:   p.Mode,
	}
	if m.mode == "" {
		m.mode = script.ModeTerminal
	}
	m.Init()
	return m
}

// Init clears the transcript and moves the cursor back to the start.
func (m *Machine) Init() {
	m.completed = nil
	m.line = 0
	m.char = 0
}

// Phase reports the current phase.
func (m *Machine) Phase() Phase {
	switch {
	case m.line >= len(m.lines):
		return ScriptComplete
	case m.char < m.lines.Runes(m.line):
		return Typing
	default:
		return LineComplete
	}
}

// Delay returns how long to wait before the next Advance.
func (m *Machine) Delay() time.Duration {
	switch m.Phase() {
	case Typing:
		return m.timing.CharDelay
	case LineComplete:
		return m.timing.LineDelay
	default:
		return m.timing.LoopDelay
	}
}

// Advance applies exactly one transition: reveal one character, commit
// the current line, or restart.
func (m *Machine) Advance() {
	switch m.Phase() {
	case Typing:
		m.char++
	case LineComplete:
		if m.mode == script.ModeTerminal {
			m.completed = append(m.completed, m.lines[m.line])
		}
		m.line++
		m.char = 0
	case ScriptComplete:
		m.Init()
	}
}

// Cursor returns the current line and character indices.
func (m *Machine) Cursor() (line, char int) { return m.line, m.char }

// Render projects the current state into a Transcript.
func (m *Machine) Render() Transcript {
	t := Transcript{
		Lines: append([]string(nil), m.completed...),
		Line:  m.line,
		Char:  m.char,
		Phase: m.Phase(),
	}
	if m.line < len(m.lines) {
		t.Partial = Prefix(m.lines[m.line], m.char)
	}
	return t
}

// Prefix returns the first n characters of s.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// CursorMarker follows the partial line when a transcript is printed.
const CursorMarker = "▋"

// Transcript is what a renderer shows: committed lines plus the line
// being typed.
type Transcript struct {
	Lines   []string
	Partial string
	Line    int
	Char    int
	Phase   Phase
}

// Empty reports whether nothing has been revealed yet.
func (t Transcript) Empty() bool {
	return len(t.Lines) == 0 && t.Partial == ""
}

// String renders the transcript as plain text with the cursor marker
// after the partial line.
func (t Transcript) String() string {
	var b strings.Builder
	for _, line := range t.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(t.Partial)
	b.WriteString(CursorMarker)
	return b.String()
}
