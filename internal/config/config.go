package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Event source formats accepted for the events file.
const (
	FormatYAML = "yaml"
	FormatICS  = "ics"
)

// Config is the top-level application configuration.
type Config struct {
	// Timezone is the IANA timezone used for the process clock (e.g. "Asia/Seoul").
	Timezone string `yaml:"timezone" json:"timezone"`

	// EventsPath is the file the event set is seeded from.
	EventsPath string `yaml:"events" json:"events"`

	// EventsFormat selects the events file decoder: "yaml" or "ics".
	EventsFormat string `yaml:"format" json:"format"`

	// TickCron is the cron-style schedule driving notification evaluation
	// (e.g. "@every 1s").
	TickCron string `yaml:"tick" json:"tick"`

	// View is the default filtering window, "week" or "month".
	View string `yaml:"view" json:"view"`

	// HorizonDays is how far ahead recurring events are expanded when
	// scanning for due notifications.
	HorizonDays int `yaml:"horizon_days" json:"horizon_days"`

	// LogLevel sets the minimum log level ("debug", "info", "error").
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timezone:     "Asia/Seoul",
		EventsPath:   "events.yaml",
		EventsFormat: FormatYAML,
		TickCron:     "@every 1s",
		View:         "month",
		HorizonDays:  31,
		LogLevel:     "info",
	}
}

// Normalize fills in missing/zero values with defaults so partially-filled
// configs still behave correctly.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = "Asia/Seoul"
	}
	if c.EventsPath == "" {
		c.EventsPath = "events.yaml"
	}
	switch c.EventsFormat {
	case FormatYAML, FormatICS:
		// ok
	default:
		c.EventsFormat = FormatYAML
	}
	if c.TickCron == "" {
		c.TickCron = "@every 1s"
	}
	switch c.View {
	case "week", "month":
		// ok
	default:
		c.View = "month"
	}
	if c.HorizonDays <= 0 {
		c.HorizonDays = 31
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (creating
// the parent directory, 0600 perms) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename) with 0600
// permissions, creating the parent directory as needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".evcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save delegates to the package-level Save for convenience.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
