package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/attmoc/attmoc/internal/script"
)

const (
	DefaultPreset      = script.DefaultPreset
	DefaultTheme       = "emerald"
	DefaultDataDir     = ".attmoc"
	DefaultCursorBlink = 400 * time.Millisecond
)

// Config is the YAML configuration of the showcase.
type Config struct {
	Preset      string        `yaml:"preset"`
	ScriptFile  string        `yaml:"script_file,omitempty"`
	Script      []string      `yaml:"script,omitempty"`
	Mode        string        `yaml:"mode,omitempty"`
	Timing      script.Timing `yaml:"timing,omitempty"`
	Theme       string        `yaml:"theme"`
	CursorBlink time.Duration `yaml:"cursor_blink"`
	DataDir     string        `yaml:"data_dir"`

	// Env is filled from the environment, never from YAML.
	Env Env `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:      DefaultPreset,
		Theme:       DefaultTheme,
		CursorBlink: DefaultCursorBlink,
		DataDir:     DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields that do not depend on the script registry.
func (c *Config) Validate() error {
	if c.CursorBlink < 0 {
		return fmt.Errorf("cursor_blink must not be negative, got %v", c.CursorBlink)
	}
	if _, err := script.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Timing.CharDelay < 0 || c.Timing.LineDelay < 0 || c.Timing.LoopDelay < 0 {
		return fmt.Errorf("%w: delays must not be negative", script.ErrInvalidTiming)
	}
	return nil
}

// ResolvePreset builds the preset to play: name is looked up in r (the
// empty name uses c.Preset), then the script file, inline script, mode
// and any non-zero timing fields of c override it.
func (c *Config) ResolvePreset(r *script.Registry, name string) (script.Preset, error) {
	if err := c.Validate(); err != nil {
		return script.Preset{}, err
	}

	var (
		p   script.Preset
		err error
	)
	switch {
	case name == "" && c.ScriptFile != "":
		p, err = script.LoadFile(c.ScriptFile)
	case name == "":
		p, err = r.Get(c.Preset)
	default:
		p, err = r.Get(name)
	}
	if err != nil {
		return script.Preset{}, err
	}

	if name == "" && len(c.Script) > 0 {
		p.Name = "config"
		p.Lines = script.Script(c.Script).Clone()
	}
	if c.Mode != "" {
		p.Mode, _ = script.ParseMode(c.Mode)
	}
	if c.Timing.CharDelay > 0 {
		p.Timing.CharDelay = c.Timing.CharDelay
	}
	if c.Timing.LineDelay > 0 {
		p.Timing.LineDelay = c.Timing.LineDelay
	}
	if c.Timing.LoopDelay > 0 {
		p.Timing.LoopDelay = c.Timing.LoopDelay
	}

	if err := p.Validate(); err != nil {
		return script.Preset{}, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return p, nil
}
