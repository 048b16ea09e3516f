// Package config handles the XDG configuration directory and the
// optional config.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "pomo"

	// SettingsFile is the optional settings filename inside the config dir.
	SettingsFile = "config.yaml"
)

// Defaults applied for settings left unset in config.yaml.
const (
	DefaultDataFile          = "tasks.json"
	DefaultReportFile        = "report.txt"
	DefaultWorkSeconds       = 1500
	DefaultShortBreakSeconds = 300
	DefaultLongBreakSeconds  = 900
)

// Settings holds the tunable values read from config.yaml.
type Settings struct {
	DataFile          string `yaml:"data_file"`
	ReportFile        string `yaml:"report_file"`
	WorkSeconds       int    `yaml:"work_seconds"`
	ShortBreakSeconds int    `yaml:"short_break_seconds"`
	LongBreakSeconds  int    `yaml:"long_break_seconds"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Settings are the merged file-plus-default settings.
	Settings Settings

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified config directory and
// loads config.yaml from it if present. A missing settings file is not an
// error; a malformed one, or non-positive durations, are.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func (c *Config) loadSettings() error {
	data, err := os.ReadFile(filepath.Join(c.Dir, SettingsFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", SettingsFile, err)
		}
		// No settings file: defaults only.
	} else if err := yaml.Unmarshal(data, &c.Settings); err != nil {
		return fmt.Errorf("parse %s: %w", SettingsFile, err)
	}

	s := &c.Settings
	if s.DataFile == "" {
		s.DataFile = DefaultDataFile
	}
	if s.ReportFile == "" {
		s.ReportFile = DefaultReportFile
	}
	if s.WorkSeconds == 0 {
		s.WorkSeconds = DefaultWorkSeconds
	}
	if s.ShortBreakSeconds == 0 {
		s.ShortBreakSeconds = DefaultShortBreakSeconds
	}
	if s.LongBreakSeconds == 0 {
		s.LongBreakSeconds = DefaultLongBreakSeconds
	}

	if s.WorkSeconds < 0 || s.ShortBreakSeconds < 0 || s.LongBreakSeconds < 0 {
		return fmt.Errorf("%s: durations must be positive", SettingsFile)
	}
	return nil
}

// DataPath returns the path to the JSON task file.
// Relative settings resolve under the config dir.
func (c *Config) DataPath() string {
	return c.resolve(c.Settings.DataFile)
}

// ReportPath returns the path to the plain-text report file.
func (c *Config) ReportPath() string {
	return c.resolve(c.Settings.ReportFile)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}

// WorkDuration returns the configured work interval length.
func (c *Config) WorkDuration() time.Duration {
	return time.Duration(c.Settings.WorkSeconds) * time.Second
}

// ShortBreakDuration returns the configured short break length.
func (c *Config) ShortBreakDuration() time.Duration {
	return time.Duration(c.Settings.ShortBreakSeconds) * time.Second
}

// LongBreakDuration returns the configured long break length.
func (c *Config) LongBreakDuration() time.Duration {
	return time.Duration(c.Settings.LongBreakSeconds) * time.Second
}

// MinutesPerPomodoro returns the whole minutes one work interval spans.
// Used for the minutes-spent aggregates.
func (c *Config) MinutesPerPomodoro() int {
	return c.Settings.WorkSeconds / 60
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
