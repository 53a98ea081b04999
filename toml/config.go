// Package toml loads the client configuration file.
package toml

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// History backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the search backend, e.g. "http://localhost:8000".
	BaseURL string `toml:"base_url"`

	// Timeout bounds the wait for a search response.
	Timeout Duration `toml:"timeout"`

	History HistoryConfig `toml:"history"`
}

// HistoryConfig selects and locates the recent-search store.
type HistoryConfig struct {
	// Backend is "file" (JSON file) or "sqlite".
	Backend string `toml:"backend"`

	// Path is the JSON history file for the file backend.
	Path string `toml:"path"`

	// DB is the database file for the sqlite backend.
	DB string `toml:"db"`
}

// Duration wraps time.Duration for TOML text encoding ("30s", "1m").
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() (*Config, error) {
	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		BaseURL: "http://localhost:8000",
		Timeout: Duration{30 * time.Second},
		History: HistoryConfig{
			Backend: BackendFile,
			Path:    filepath.Join(dataDir, "recent.json"),
			DB:      filepath.Join(dataDir, "history.db"),
		},
	}, nil
}

// Load reads the configuration at path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}
	return filepath.Join(configDir, "homeseek", "config.toml"), nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "homeseek"), nil
}
