// Package config loads the launcher configuration.
//
// The file is optional. Everything has a default, and the settings that
// define the backend contract (jar name, profile, child log level) are not
// configurable at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultJava            = "java"
	DefaultLogLevel        = "info"
	DefaultHealthTimeoutMS = 5000
	DefaultPollIntervalMS  = 500
	DefaultWaitTimeoutMS   = 120000
	configDirName          = "automates-desktop"
	configFileName         = "config.toml"
)

// Config is the launcher configuration.
type Config struct {
	// Java is the Java runtime used to run the bundled jar.
	Java string `toml:"java" yaml:"java"`
	// ResourceDir overrides where backend.jar is looked up.
	ResourceDir string `toml:"resource_dir" yaml:"resource_dir"`

	Log    LogConfig    `toml:"log" yaml:"log"`
	Health HealthConfig `toml:"health" yaml:"health"`
	UI     UIConfig     `toml:"ui" yaml:"ui"`
}

// LogConfig controls the launcher's own log file (not the backend's).
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	Path  string `toml:"path" yaml:"path"`
}

// HealthConfig bounds the readiness probe and the callers polling it.
type HealthConfig struct {
	// TimeoutMS bounds a single probe.
	TimeoutMS int `toml:"timeout_ms" yaml:"timeout_ms"`
	// PollIntervalMS is how often the front-end re-probes.
	PollIntervalMS int `toml:"poll_interval_ms" yaml:"poll_interval_ms"`
	// WaitTimeoutMS is how long headless mode waits for readiness.
	// Zero waits until interrupted.
	WaitTimeoutMS int `toml:"wait_timeout_ms" yaml:"wait_timeout_ms"`
}

type UIConfig struct {
	Headless bool `toml:"headless" yaml:"headless"`
	NoColor  bool `toml:"no_color" yaml:"no_color"`
}

// Default returns a config with every field set to its default.
func Default() *Config {
	return &Config{
		Java: DefaultJava,
		Log:  LogConfig{Level: DefaultLogLevel},
		Health: HealthConfig{
			TimeoutMS:      DefaultHealthTimeoutMS,
			PollIntervalMS: DefaultPollIntervalMS,
			WaitTimeoutMS:  DefaultWaitTimeoutMS,
		},
	}
}

// DefaultPath returns ~/.config/automates-desktop/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", configDirName, configFileName), nil
}

// Load reads path on top of the defaults. A missing file is not an error.
// Files ending in .yaml or .yml are decoded as YAML, everything else as TOML.
// Load only parses; call Validate once overrides have been applied.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config YAML: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config TOML: %w", err)
		}
	}
	return cfg, nil
}

// HealthTimeout returns the per-probe timeout.
func (c *Config) HealthTimeout() time.Duration {
	return ms(c.Health.TimeoutMS, DefaultHealthTimeoutMS)
}

// PollInterval returns the front-end re-probe interval.
func (c *Config) PollInterval() time.Duration {
	return ms(c.Health.PollIntervalMS, DefaultPollIntervalMS)
}

// WaitTimeout returns how long headless mode waits for the backend.
// Zero, only reachable by setting wait_timeout_ms = 0, means no limit.
func (c *Config) WaitTimeout() time.Duration {
	if c.Health.WaitTimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.Health.WaitTimeoutMS) * time.Millisecond
}

func ms(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Millisecond
}
