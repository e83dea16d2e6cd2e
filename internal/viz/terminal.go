package viz

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/attmoc/attmoc/internal/clock"
	"github.com/attmoc/attmoc/internal/script"
	"github.com/attmoc/attmoc/internal/sequencer"
)

const (
	DefaultBlink    = 400 * time.Millisecond
	terminalWidth   = 64
	terminalHeight  = 12
	chromeHeight    = 4
	minTerminalRows = 3
)

type frameMsg sequencer.Transcript

type blinkMsg struct{}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithTheme sets the color theme.
func WithTheme(t Theme) TerminalOption {
	return func(m *Terminal) { m.theme = t }
}

// WithBlink sets the cursor blink interval. Zero keeps the cursor solid.
func WithBlink(d time.Duration) TerminalOption {
	return func(m *Terminal) { m.blink = d }
}

// WithClock drives the typewriter from clk instead of the wall clock.
func WithClock(clk clock.Clock) TerminalOption {
	return func(m *Terminal) { m.clk = clk }
}

// WithLogger sets the logger handed to the sequencer.
func WithLogger(logger *slog.Logger) TerminalOption {
	return func(m *Terminal) { m.logger = logger }
}

// Terminal is the animated terminal window. Frames arrive from the
// sequencer's timer goroutines through a one-slot channel that always
// holds the newest transcript.
type Terminal struct {
	seq    *sequencer.Sequencer
	frames chan sequencer.Transcript
	vp     viewport.Model

	title  string
	theme  Theme
	blink  time.Duration
	clk    clock.Clock
	logger *slog.Logger

	transcript sequencer.Transcript
	cursorOn   bool
	epoch      uint64
	standalone bool
}

// NewTerminal builds a stopped terminal for p. Init starts it.
func NewTerminal(p script.Preset, opts ...TerminalOption) (*Terminal, error) {
	m := &Terminal{
		frames:   make(chan sequencer.Transcript, 1),
		vp:       viewport.New(terminalWidth, terminalHeight),
		title:    p.Title,
		theme:    ThemeEmerald,
		blink:    DefaultBlink,
		clk:      clock.Real(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		cursorOn: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.title == "" {
		m.title = p.Name
	}

	seq, err := sequencer.New(p,
		sequencer.WithClock(m.clk),
		sequencer.WithLogger(m.logger),
		sequencer.WithFrameFunc(m.publish),
	)
	if err != nil {
		return nil, err
	}
	m.seq = seq
	return m, nil
}

// Standalone makes the terminal a full program of its own: it quits on
// q and fills the window.
func (m *Terminal) Standalone() *Terminal {
	m.standalone = true
	return m
}

// publish runs under the sequencer lock, so it never blocks.
func (m *Terminal) publish(t sequencer.Transcript) {
	select {
	case m.frames <- t:
		return
	default:
	}
	select {
	case <-m.frames:
	default:
	}
	select {
	case m.frames <- t:
	default:
	}
}

func waitForFrame(ch <-chan sequencer.Transcript) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return nil
		}
		return frameMsg(t)
	}
}

func (m *Terminal) blinkCmd() tea.Cmd {
	if m.blink <= 0 {
		return nil
	}
	return tea.Tick(m.blink, func(time.Time) tea.Msg { return blinkMsg{} })
}

func (m *Terminal) Init() tea.Cmd {
	m.seq.Start()
	return tea.Batch(waitForFrame(m.frames), m.blinkCmd())
}

func (m *Terminal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.standalone {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			m.Close()
			return m, tea.Quit
		case "r":
			m.Restart()
			return m, nil
		}
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok && m.standalone {
		m.SetSize(size.Width-4, size.Height-chromeHeight)
		return m, nil
	}
	return m, m.update(msg)
}

func (m *Terminal) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		m.transcript = sequencer.Transcript(msg)
		m.refresh()
		return waitForFrame(m.frames)
	case blinkMsg:
		m.cursorOn = !m.cursorOn
		m.refresh()
		return m.blinkCmd()
	}
	return nil
}

// Restart bumps the reset epoch so the script types again from the top.
func (m *Terminal) Restart() {
	m.epoch++
	m.seq.Reset(m.epoch)
}

// Close stops the sequencer. The terminal cannot be restarted.
func (m *Terminal) Close() {
	m.seq.Stop()
}

// SetTheme switches colors on the next render.
func (m *Terminal) SetTheme(t Theme) {
	m.theme = t
	m.refresh()
}

// SetSize resizes the scrollable body.
func (m *Terminal) SetSize(width, height int) {
	if height < minTerminalRows {
		height = minTerminalRows
	}
	if width < 10 {
		width = 10
	}
	m.vp.Width = width
	m.vp.Height = height
	m.refresh()
}

// Transcript returns the last frame received.
func (m *Terminal) Transcript() sequencer.Transcript { return m.transcript }

// Epoch returns the current reset epoch.
func (m *Terminal) Epoch() uint64 { return m.epoch }

func (m *Terminal) refresh() {
	m.vp.SetContent(m.body())
	m.vp.GotoBottom()
}

func (m *Terminal) body() string {
	var b strings.Builder
	for _, line := range m.transcript.Lines {
		b.WriteString(m.theme.LineStyle(line).Render(line))
		b.WriteByte('\n')
	}
	if m.transcript.Partial != "" {
		b.WriteString(m.theme.LineStyle(m.transcript.Partial).Render(m.transcript.Partial))
	}
	if m.cursorOn {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Primary).Render(sequencer.CursorMarker))
	} else {
		b.WriteString(" ")
	}
	return b.String()
}

func (m *Terminal) View() string {
	header := dotRed + " " + dotYellow + " " + dotGreen + "  " +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.title)
	view := Panel(m.theme).Render(header + "\n" + m.vp.View())
	if m.standalone {
		view += "\n" + KeyHint.Render("r restart  q quit")
	}
	return view
}
