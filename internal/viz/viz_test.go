package viz

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/attmoc/attmoc/internal/analytics"
	"github.com/attmoc/attmoc/internal/clock"
	"github.com/attmoc/attmoc/internal/content"
	"github.com/attmoc/attmoc/internal/script"
	"github.com/attmoc/attmoc/internal/sequencer"
)

func testPreset(lines ...string) script.Preset {
	return script.Preset{
		Name:  "test",
		Title: "test shell",
		Timing: script.Timing{
			CharDelay: 10 * time.Millisecond,
			LineDelay: 5 * time.Millisecond,
			LoopDelay: 20 * time.Millisecond,
		},
		Lines: lines,
	}
}

func newTestTerminal(t *testing.T, lines ...string) (*Terminal, *clock.FakeClock) {
	t.Helper()
	clk := clock.Fake(time.Unix(0, 0))
	term, err := NewTerminal(testPreset(lines...), WithClock(clk), WithBlink(DefaultBlink))
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	term.Init()
	t.Cleanup(term.Close)
	return term, clk
}

// nextFrame feeds the newest pending frame to the terminal.
func nextFrame(t *testing.T, term *Terminal) {
	t.Helper()
	select {
	case tr := <-term.frames:
		term.Update(frameMsg(tr))
	default:
		t.Fatal("expected a pending frame")
	}
}

func TestTerminalRejectsEmptyScript(t *testing.T) {
	if _, err := NewTerminal(testPreset()); err == nil {
		t.Error("expected error for empty script")
	}
}

func TestTerminalReceivesFrames(t *testing.T) {
	term, clk := newTestTerminal(t, "$ ab", "✓ ok")

	nextFrame(t, term)
	if !term.Transcript().Empty() {
		t.Errorf("expected empty first frame, got %+v", term.Transcript())
	}

	clk.Advance(10 * time.Millisecond)
	nextFrame(t, term)
	if term.Transcript().Partial != "$" {
		t.Errorf("expected partial %q, got %q", "$", term.Transcript().Partial)
	}

	// Frames that pile up collapse into the newest one.
	clk.Advance(35 * time.Millisecond)
	nextFrame(t, term)
	got := term.Transcript()
	if len(got.Lines) != 1 || got.Lines[0] != "$ ab" {
		t.Errorf("expected committed %q, got %v", "$ ab", got.Lines)
	}
	if got.Partial != "" {
		t.Errorf("expected empty partial, got %q", got.Partial)
	}
	if !strings.Contains(term.View(), "$ ab") {
		t.Errorf("view missing committed line:\n%s", term.View())
	}
}

func TestTerminalBlink(t *testing.T) {
	term, _ := newTestTerminal(t, "$ a")
	nextFrame(t, term)

	if !strings.Contains(term.View(), sequencer.CursorMarker) {
		t.Error("expected cursor before first blink")
	}
	_, cmd := term.Update(blinkMsg{})
	if cmd == nil {
		t.Error("expected blink to reschedule")
	}
	if strings.Contains(term.View(), sequencer.CursorMarker) {
		t.Error("expected cursor hidden after blink")
	}
	term.Update(blinkMsg{})
	if !strings.Contains(term.View(), sequencer.CursorMarker) {
		t.Error("expected cursor back after second blink")
	}
}

func TestTerminalSolidCursor(t *testing.T) {
	term, err := NewTerminal(testPreset("$ a"), WithClock(clock.Fake(time.Unix(0, 0))), WithBlink(0))
	if err != nil {
		t.Fatal(err)
	}
	if term.blinkCmd() != nil {
		t.Error("expected no blink command with zero interval")
	}
}

func TestTerminalRestart(t *testing.T) {
	term, clk := newTestTerminal(t, "$ abc")
	term = term.Standalone()

	clk.Advance(25 * time.Millisecond)
	nextFrame(t, term)
	if term.Transcript().Partial != "$ " {
		t.Fatalf("expected partial %q, got %q", "$ ", term.Transcript().Partial)
	}

	term.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if term.Epoch() != 1 {
		t.Errorf("expected epoch 1, got %d", term.Epoch())
	}
	nextFrame(t, term)
	if !term.Transcript().Empty() {
		t.Errorf("expected empty transcript after restart, got %+v", term.Transcript())
	}

	clk.Advance(10 * time.Millisecond)
	nextFrame(t, term)
	if term.Transcript().Partial != "$" {
		t.Errorf("expected typing to resume from the start, got %q", term.Transcript().Partial)
	}
}

func TestTerminalStandaloneQuit(t *testing.T) {
	term, _ := newTestTerminal(t, "$ a")
	term.Standalone()

	_, cmd := term.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func newTestApp(t *testing.T, f content.Features) (*App, *bytes.Buffer) {
	t.Helper()
	term, _ := newTestTerminal(t, "$ a")
	var buf bytes.Buffer
	tracker := analytics.New("G-TEST", slog.New(slog.NewTextHandler(&buf, nil)))
	return NewApp(term, f, tracker), &buf
}

func press(a *App, k tea.KeyMsg) {
	a.Update(k)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppNavigation(t *testing.T) {
	app, buf := newTestApp(t, content.Features{})

	if app.Section().ID != "hero" {
		t.Fatalf("expected hero first, got %s", app.Section().ID)
	}

	press(app, tea.KeyMsg{Type: tea.KeyTab})
	if app.Section().ID != "services" {
		t.Errorf("expected services, got %s", app.Section().ID)
	}
	press(app, runes("l"))
	press(app, tea.KeyMsg{Type: tea.KeyRight})
	if app.Section().ID != "about" {
		t.Errorf("expected about, got %s", app.Section().ID)
	}
	press(app, tea.KeyMsg{Type: tea.KeyShiftTab})
	press(app, runes("h"))
	press(app, tea.KeyMsg{Type: tea.KeyLeft})
	if app.Section().ID != "hero" {
		t.Errorf("expected hero, got %s", app.Section().ID)
	}

	// Wraps to the last section.
	press(app, tea.KeyMsg{Type: tea.KeyLeft})
	if app.Section().ID != "faq" {
		t.Errorf("expected faq, got %s", app.Section().ID)
	}

	if !strings.Contains(buf.String(), "page_path=/#services") {
		t.Errorf("expected page view for services, got %q", buf.String())
	}
}

func TestAppFeaturePages(t *testing.T) {
	app, buf := newTestApp(t, content.Features{Blog: true})

	press(app, tea.KeyMsg{Type: tea.KeyShiftTab})
	if app.Section().ID != "blog" {
		t.Fatalf("expected blog, got %s", app.Section().ID)
	}
	if !strings.Contains(buf.String(), "page_path=/blog") {
		t.Errorf("expected page view for /blog, got %q", buf.String())
	}
	if !strings.Contains(app.View(), content.Posts[0].Title) {
		t.Error("expected blog view to list posts")
	}
}

func TestAppBlogCategory(t *testing.T) {
	app, _ := newTestApp(t, content.Features{Blog: true})

	press(app, runes("c"))
	if app.Category() != content.AllCategories {
		t.Errorf("category key outside the blog must do nothing, got %s", app.Category())
	}

	press(app, tea.KeyMsg{Type: tea.KeyShiftTab})
	press(app, runes("c"))
	if app.Category() != content.Categories[1] {
		t.Errorf("expected %s, got %s", content.Categories[1], app.Category())
	}

	for app.Category() != "Mobile" {
		press(app, runes("c"))
	}
	if !strings.Contains(app.View(), "No posts") {
		t.Error("expected empty category message")
	}
	press(app, runes("c"))
	if app.Category() != content.AllCategories {
		t.Errorf("expected wrap to All, got %s", app.Category())
	}
}

func TestAppThemeCycle(t *testing.T) {
	app, _ := newTestApp(t, content.Features{})

	press(app, runes("t"))
	if app.Theme().Name != Themes[1].Name {
		t.Errorf("expected %s, got %s", Themes[1].Name, app.Theme().Name)
	}
	if app.terminal.theme.Name != app.Theme().Name {
		t.Error("expected terminal to follow the theme")
	}
}

func TestAppReset(t *testing.T) {
	app, buf := newTestApp(t, content.Features{})

	press(app, runes("r"))
	if app.terminal.Epoch() != 1 {
		t.Errorf("expected epoch 1, got %d", app.terminal.Epoch())
	}
	if !strings.Contains(buf.String(), "action=terminal_reset") {
		t.Errorf("expected reset event, got %q", buf.String())
	}
}

func TestAppCounterStops(t *testing.T) {
	app, _ := newTestApp(t, content.Features{})

	var cmd tea.Cmd
	for i := 0; i < counterSteps+5; i++ {
		_, cmd = app.Update(counterMsg{})
	}
	if app.counter != counterSteps {
		t.Errorf("expected counter %d, got %d", counterSteps, app.counter)
	}
	if cmd != nil {
		t.Error("expected no further ticks once counting finished")
	}
	if !strings.Contains(app.View(), "150+") {
		t.Error("expected final stat value in hero view")
	}
}

func TestAppReportsFirstCharacter(t *testing.T) {
	term, clk := newTestTerminal(t, "$ ab")
	var buf bytes.Buffer
	tracker := analytics.New("G-TEST", slog.New(slog.NewTextHandler(&buf, nil)))
	app := NewApp(term, content.Features{}, tracker)
	app.Init()

	// The empty frame from Start is not a character.
	app.Update(frameMsg(<-term.frames))
	if strings.Contains(buf.String(), "action=TTFC") {
		t.Fatalf("expected no vital before the first character, got %q", buf.String())
	}

	clk.Advance(10 * time.Millisecond)
	app.Update(frameMsg(<-term.frames))
	out := buf.String()
	if !strings.Contains(out, "action=TTFC") || !strings.Contains(out, "value=10") {
		t.Errorf("expected TTFC of 10ms, got %q", out)
	}
	if !strings.Contains(out, `category="Web Vitals"`) {
		t.Errorf("expected Web Vitals category, got %q", out)
	}
	if app.terminal.Transcript().Partial != "$" {
		t.Errorf("expected the frame to reach the terminal, got %q", app.terminal.Transcript().Partial)
	}

	clk.Advance(10 * time.Millisecond)
	app.Update(frameMsg(<-term.frames))
	if n := strings.Count(buf.String(), "action=TTFC"); n != 1 {
		t.Errorf("expected TTFC reported once, got %d", n)
	}
}

func TestAppQuit(t *testing.T) {
	app, _ := newTestApp(t, content.Features{})
	_, cmd := app.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if app.terminal.seq.Running() {
		t.Error("expected sequencer stopped on quit")
	}
}

func TestPlainRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlainRenderer(&buf, "demo", ThemeEmerald, false)

	r.Start()
	r.OnFrame(sequencer.Transcript{Lines: []string{"$ a"}, Partial: "✓ b"})
	r.Stop()

	out := buf.String()
	if !strings.HasPrefix(out, hideCursor) {
		t.Error("expected cursor hidden first")
	}
	if !strings.HasSuffix(out, showCursor) {
		t.Error("expected cursor shown last")
	}
	for _, want := range []string{clearScreen, "demo", "  $ a\n", "✓ b" + sequencer.CursorMarker} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("expected empty output for empty text")
	}
	if got := GradientText("a", "#000000", "#ffffff"); !strings.Contains(got, "a") {
		t.Errorf("expected text preserved, got %q", got)
	}
}

func TestHexHelpers(t *testing.T) {
	r, g, b := parseHex("#10b981")
	if r != 0x10 || g != 0xb9 || b != 0x81 {
		t.Errorf("expected 16,185,129, got %d,%d,%d", r, g, b)
	}
	if hexColor(300, -5, 171) != "#ff00ab" {
		t.Errorf("expected clamped #ff00ab, got %s", hexColor(300, -5, 171))
	}
}

func TestThemeLookup(t *testing.T) {
	if GetTheme("nope").Name != ThemeEmerald.Name {
		t.Error("expected fallback to emerald")
	}
	if NextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("expected NextTheme to wrap")
	}
	if ThemeEmerald.LineColor("$ ls") != ThemeEmerald.Command {
		t.Error("expected command color")
	}
	if ThemeEmerald.LineColor("✨ x") != ThemeEmerald.Sparkle {
		t.Error("expected sparkle color")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("expected a name per theme")
	}
}
