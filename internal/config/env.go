package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Flag is a feature flag. Only the exact value "true" enables it; any
// other value, including "1" or "TRUE", leaves it off.
type Flag bool

func (f *Flag) UnmarshalText(text []byte) error {
	*f = string(text) == "true"
	return nil
}

// Flags toggles the optional navigation entries.
type Flags struct {
	Careers Flag `env:"ATTMOC_FEATURE_CAREERS" envDefault:"false"`
	Quote   Flag `env:"ATTMOC_FEATURE_QUOTE" envDefault:"false"`
	Blog    Flag `env:"ATTMOC_FEATURE_BLOG" envDefault:"false"`
}

// Env holds settings read from the environment.
type Env struct {
	Flags
	AnalyticsID string `env:"ATTMOC_ANALYTICS_ID"`
	Theme       string `env:"ATTMOC_THEME"`
	LogFile     string `env:"ATTMOC_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads Env and applies it to c. A theme from the environment
// overrides the YAML theme.
func (c *Config) LoadEnv() error {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return err
	}
	c.Env = e
	if e.Theme != "" {
		c.Theme = e.Theme
	}
	return nil
}
