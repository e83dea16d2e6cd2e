package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line     string
		expected Category
	}{
		{"$ run", Command},
		{"✓ done", Status},
		{"✨ Building your digital future...", Status},
		{"> note", Announcement},
		{"plain text", Plain},
		{"", Plain},
		{" $ indented", Plain},
	}

	for _, tt := range tests {
		if got := Classify(tt.line); got != tt.expected {
			t.Errorf("Classify(%q): expected %s, got %s", tt.line, tt.expected, got)
		}
	}
}

func TestCategoryString(t *testing.T) {
	names := map[Category]string{Command: "command", Status: "status", Announcement: "announcement", Plain: "plain"}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("expected %s, got %s", want, c.String())
		}
	}
}

func TestSparkle(t *testing.T) {
	if !Sparkle("✨ hi") {
		t.Error("expected sparkle line")
	}
	if Sparkle("✓ hi") {
		t.Error("check mark is not a sparkle")
	}
}

func TestRunesCountsCharacters(t *testing.T) {
	s := Script{"✓ ok", ""}
	if s.Runes(0) != 4 {
		t.Errorf("expected 4 runes, got %d", s.Runes(0))
	}
	if s.Runes(1) != 0 {
		t.Errorf("expected 0 runes, got %d", s.Runes(1))
	}
}

func TestTimingValidate(t *testing.T) {
	tests := []struct {
		timing Timing
		ok     bool
	}{
		{TerminalTiming, true},
		{EditorTiming, true},
		{Timing{}, false},
		{Timing{CharDelay: time.Millisecond, LineDelay: -1}, false},
		{Timing{CharDelay: time.Millisecond, LoopDelay: -1}, false},
	}
	for i, tt := range tests {
		err := tt.timing.Validate()
		if tt.ok && err != nil {
			t.Errorf("case %d: unexpected error %v", i, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidTiming) {
			t.Errorf("case %d: expected ErrInvalidTiming, got %v", i, err)
		}
	}
}

func TestLoopDuration(t *testing.T) {
	timing := Timing{CharDelay: 10 * time.Millisecond, LineDelay: 5 * time.Millisecond, LoopDelay: 20 * time.Millisecond}
	got := timing.LoopDuration(Script{"$ a", "b"})
	if got != 70*time.Millisecond {
		t.Errorf("expected 70ms, got %v", got)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ModeTerminal {
		t.Errorf("empty mode: got %q, %v", m, err)
	}
	if m, err := ParseMode("editor"); err != nil || m != ModeEditor {
		t.Errorf("editor mode: got %q, %v", m, err)
	}
	if _, err := ParseMode("vim"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestBuiltinPresetsValid(t *testing.T) {
	for name, p := range Presets {
		if p.Name != name {
			t.Errorf("preset %s: name field is %q", name, p.Name)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	p, err := r.Get("")
	if err != nil {
		t.Fatalf("default preset: %v", err)
	}
	if p.Name != DefaultPreset {
		t.Errorf("expected %s, got %s", DefaultPreset, p.Name)
	}

	if _, err := r.Get("nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Preset{Name: "custom", Timing: TerminalTiming}); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("expected ErrEmptyScript, got %v", err)
	}
	if err := r.Register(Preset{Name: "custom", Timing: TerminalTiming, Lines: Script{"$ hi"}}); err != nil {
		t.Fatalf("register: %v", err)
	}
	names := r.List()
	if len(names) != len(Presets)+1 {
		t.Errorf("expected %d presets, got %v", len(Presets)+1, names)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := "name: demo\ntiming:\n  char_delay: 10ms\nlines:\n  - \"$ make\"\n  - \"✓ built\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != "demo" || len(p.Lines) != 2 {
		t.Errorf("unexpected preset %+v", p)
	}
	if p.Timing.CharDelay != 10*time.Millisecond {
		t.Errorf("expected char delay 10ms, got %v", p.Timing.CharDelay)
	}
	if p.Timing.LineDelay != TerminalTiming.LineDelay {
		t.Errorf("expected default line delay, got %v", p.Timing.LineDelay)
	}
	if p.Mode != ModeTerminal {
		t.Errorf("expected terminal mode, got %s", p.Mode)
	}
}

func TestLoadFileDefaultsNameToBaseName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scripts", "deploy.demo.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("lines:\n  - \"$ make\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != "deploy.demo" {
		t.Errorf("expected name deploy.demo, got %q", p.Name)
	}
}

func TestLoadFileRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("name: empty\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("expected ErrEmptyScript, got %v", err)
	}
}

func TestPresetRejectsInstantLoop(t *testing.T) {
	p := Preset{Name: "blank", Timing: Timing{CharDelay: time.Millisecond}, Lines: Script{"", ""}}
	if err := p.Validate(); !errors.Is(err, ErrInvalidTiming) {
		t.Errorf("expected ErrInvalidTiming, got %v", err)
	}
}
