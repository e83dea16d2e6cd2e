package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownPreset = errors.New("script: unknown preset")

// Registry resolves preset names, including scripts loaded from disk.
type Registry struct {
	presets map[string]Preset
}

// NewRegistry returns a registry holding the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]Preset, len(Presets))}
	for name, p := range Presets {
		r.presets[name] = p
	}
	return r
}

// Register adds or replaces a preset after validating it.
func (r *Registry) Register(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("script: preset has no name")
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("preset %s: %w", p.Name, err)
	}
	r.presets[p.Name] = p
	return nil
}

// Get returns the named preset; the empty name selects DefaultPreset.
func (r *Registry) Get(name string) (Preset, error) {
	if name == "" {
		name = DefaultPreset
	}
	p, ok := r.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, r.List())
	}
	return p, nil
}

// List returns the preset names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile reads a preset from a YAML file. Missing fields fall back to
// the terminal preset's timing and mode; a missing name falls back to
// the file's base name without extension.
func LoadFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	p := Preset{Name: FileName(path), Mode: ModeTerminal, Timing: TerminalTiming, Title: "terminal"}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// FileName returns the base name of path without its extension.
func FileName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
