package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/wellcheck/internal/hostmsg"
)

// Config holds runtime configuration for wellcheck.
type Config struct {
	// HostOutput selects where host messages go: "none", "stdout",
	// "stderr", or a file path.
	HostOutput string `env:"WELLCHECK_HOST_OUTPUT" envDefault:"none"`

	// LogFile receives operational logs. Empty discards them; the TUI owns
	// the terminal so logs never go there.
	LogFile string `env:"WELLCHECK_LOG_FILE"`

	// RedirectTarget is the host element named in redirect messages.
	RedirectTarget string `env:"WELLCHECK_REDIRECT_TARGET" envDefault:"auto-click-target"`

	// UpdateRepo is the "owner/name" GitHub repository self-update pulls
	// releases from.
	UpdateRepo string `env:"WELLCHECK_UPDATE_REPO" envDefault:"abhisek/wellcheck"`
}

// DefaultUpdateRepo is where release builds are published.
const DefaultUpdateRepo = "abhisek/wellcheck"

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() Config {
	return Config{
		HostOutput:     "none",
		RedirectTarget: hostmsg.DefaultTarget,
		UpdateRepo:     DefaultUpdateRepo,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RedirectTarget == "" {
		cfg.RedirectTarget = hostmsg.DefaultTarget
	}
	if cfg.UpdateRepo == "" {
		cfg.UpdateRepo = DefaultUpdateRepo
	}
	return cfg, nil
}
