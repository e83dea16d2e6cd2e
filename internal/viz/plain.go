package viz

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/attmoc/attmoc/internal/sequencer"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// PlainRenderer redraws the whole transcript on every frame with raw ANSI
// escapes. It is meant for non-interactive playback.
type PlainRenderer struct {
	mu    sync.Mutex
	w     io.Writer
	title string
	theme Theme
	color bool
}

// NewPlainRenderer writes to w. With color off, lines are printed without
// styling.
func NewPlainRenderer(w io.Writer, title string, theme Theme, color bool) *PlainRenderer {
	return &PlainRenderer{w: w, title: title, theme: theme, color: color}
}

// OnFrame has the sequencer.FrameFunc signature.
func (r *PlainRenderer) OnFrame(t sequencer.Transcript) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s\n", r.title))
	b.WriteString("  " + strings.Repeat("-", terminalWidth) + "\n")

	for _, line := range t.Lines {
		b.WriteString("  " + r.style(line) + "\n")
	}
	b.WriteString("  " + r.style(t.Partial) + sequencer.CursorMarker + "\n")

	fmt.Fprint(r.w, b.String())
}

func (r *PlainRenderer) style(line string) string {
	if !r.color || line == "" {
		return line
	}
	return r.theme.LineStyle(line).Render(line)
}

func (r *PlainRenderer) Start() { fmt.Fprint(r.w, hideCursor) }
func (r *PlainRenderer) Stop()  { fmt.Fprint(r.w, showCursor) }

