package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automates-desktop/internal/backend"
	"automates-desktop/internal/config"
)

func newFlagSet(t *testing.T, args ...string) (*pflag.FlagSet, *launchFlags) {
	t.Helper()
	f := &launchFlags{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "")
	fs.StringVar(&f.resourceDir, "resource-dir", "", "")
	fs.StringVar(&f.java, "java", "", "")
	fs.StringVar(&f.logLevel, "log-level", "", "")
	fs.StringVar(&f.logFile, "log-file", "", "")
	fs.BoolVar(&f.headless, "headless", false, "")
	fs.BoolVar(&f.noColor, "no-color", false, "")
	require.NoError(t, fs.Parse(args))
	return fs, f
}

func TestApplyFlagsOnlyChanged(t *testing.T) {
	cfg := config.Default()
	cfg.Java = "/from/config/java"
	cfg.UI.Headless = true

	fs, f := newFlagSet(t, "--resource-dir", "/opt/res", "--log-level", "debug")
	applyFlags(cfg, fs, *f)

	assert.Equal(t, "/opt/res", cfg.ResourceDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/from/config/java", cfg.Java, "unset flags keep config values")
	assert.True(t, cfg.UI.Headless)

	fs, f = newFlagSet(t, "--headless=false", "--java", "java17")
	applyFlags(cfg, fs, *f)
	assert.False(t, cfg.UI.Headless)
	assert.Equal(t, "java17", cfg.Java)
}

func TestLoadConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("java = \"/opt/jdk/bin/java\"\n[log]\nlevel = \"warn\"\n"), 0o644))

	fs, f := newFlagSet(t, "--config", path, "--log-level", "error")
	cfg, err := loadConfig(fs, *f)
	require.NoError(t, err)
	assert.Equal(t, "/opt/jdk/bin/java", cfg.Java)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	fs, f := newFlagSet(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "--log-level", "loud")
	_, err := loadConfig(fs, *f)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
}

func TestFlagOverridesInvalidFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"trace\"\n"), 0o644))

	fs, f := newFlagSet(t, "--config", path)
	_, err := loadConfig(fs, *f)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)

	fs, f = newFlagSet(t, "--config", path, "--log-level", "warn")
	cfg, err := loadConfig(fs, *f)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestDoctor(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Java = os.Args[0]
	cfg.ResourceDir = dir

	var out bytes.Buffer
	err := runDoctor(&out, cfg)
	assert.ErrorIs(t, err, ErrDoctorFailed)
	assert.Contains(t, out.String(), "✓ "+os.Args[0]+" found")
	assert.Contains(t, out.String(), "✗ "+filepath.Join(dir, backend.JarName)+" missing")

	require.NoError(t, os.WriteFile(filepath.Join(dir, backend.JarName), []byte("PK"), 0o644))
	out.Reset()
	require.NoError(t, runDoctor(&out, cfg))
	assert.Contains(t, out.String(), "Everything needed")
}

func TestDoctorMissingJava(t *testing.T) {
	cfg := config.Default()
	cfg.Java = "definitely-not-a-java-runtime"
	cfg.ResourceDir = t.TempDir()

	var out bytes.Buffer
	assert.ErrorIs(t, runDoctor(&out, cfg), ErrDoctorFailed)
	assert.Contains(t, out.String(), "✗ definitely-not-a-java-runtime not found in PATH")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "automates-desktop dev")
	assert.Contains(t, out.String(), "backend: backend.jar, profile desktop")
}
