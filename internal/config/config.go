// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// File names inside the data directory. The three record files are a
// fixed external interface; only the directory is configurable.
const (
	ItemsFile   = "items.txt"
	UsersFile   = "users.txt"
	BillsFile   = "bills.txt"
	SessionFile = ".session"
)

// Config holds the runtime settings.
type Config struct {
	// DataDir is where the record files live. Defaults to the working
	// directory, matching how the files have always been laid out.
	DataDir string `env:"DATA_DIR" envDefault:"."`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// SessionSecret signs persisted session tokens. The default is fine
	// for a single-user till; set a real secret on shared machines.
	SessionSecret string `env:"SESSION_SECRET" envDefault:"supermarket-session-secret"`

	// SessionTTL bounds how long a persisted login stays resumable.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) ItemsPath() string   { return filepath.Join(c.DataDir, ItemsFile) }
func (c Config) UsersPath() string   { return filepath.Join(c.DataDir, UsersFile) }
func (c Config) BillsPath() string   { return filepath.Join(c.DataDir, BillsFile) }
func (c Config) SessionPath() string { return filepath.Join(c.DataDir, SessionFile) }
