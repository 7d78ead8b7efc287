package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOMLAndYAMLAgree(t *testing.T) {
	tomlPath := writeFile(t, "config.toml", `
java = "/opt/jdk/bin/java"
resource_dir = "/opt/automates/resources"

[log]
level = "debug"

[health]
timeout_ms = 2000
poll_interval_ms = 250

[ui]
headless = true
`)
	yamlPath := writeFile(t, "config.yaml", `
java: /opt/jdk/bin/java
resource_dir: /opt/automates/resources
log:
  level: debug
health:
  timeout_ms: 2000
  poll_interval_ms: 250
ui:
  headless: true
`)

	fromTOML, err := Load(tomlPath)
	require.NoError(t, err)
	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)

	assert.Equal(t, fromTOML, fromYAML)
	assert.Equal(t, "/opt/jdk/bin/java", fromTOML.Java)
	assert.Equal(t, "debug", fromTOML.Log.Level)
	assert.Equal(t, 2*time.Second, fromTOML.HealthTimeout())
	assert.Equal(t, 250*time.Millisecond, fromTOML.PollInterval())
	// Untouched fields keep their defaults.
	assert.Equal(t, time.Duration(DefaultWaitTimeoutMS)*time.Millisecond, fromTOML.WaitTimeout())
	assert.True(t, fromTOML.UI.Headless)
}

func TestLoadRejectsMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "bad.toml", "java = [unterminated"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yml", "java: [unterminated"))
	assert.Error(t, err)
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.toml", "java = \"\"\n[log]\nlevel = \"trace\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyJava)
}

func TestZeroWaitTimeoutMeansNoLimit(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.toml", "[health]\nwait_timeout_ms = 0\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Zero(t, cfg.WaitTimeout())
	assert.Equal(t, time.Duration(DefaultPollIntervalMS)*time.Millisecond, cfg.PollInterval())

	cfg, err = Load(writeFile(t, "config.yaml", "health:\n  wait_timeout_ms: 0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.WaitTimeout())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"blank java", func(c *Config) { c.Java = "  " }, ErrEmptyJava},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, ErrInvalidLogLevel},
		{"upper level", func(c *Config) { c.Log.Level = "WARN" }, nil},
		{"negative timeout", func(c *Config) { c.Health.TimeoutMS = -1 }, ErrInvalidHealthTiming},
		{"zero means default", func(c *Config) { c.Health.PollIntervalMS = 0 }, nil},
		{"unbounded wait", func(c *Config) { c.Health.WaitTimeoutMS = 0 }, nil},
		{"poll slower than wait", func(c *Config) {
			c.Health.PollIntervalMS = 10_000
			c.Health.WaitTimeoutMS = 1_000
		}, ErrPollTooSlow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
