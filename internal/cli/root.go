package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"automates-desktop/internal/config"
)

// launchFlags holds the persistent flags shared by run and doctor.
type launchFlags struct {
	configPath  string
	resourceDir string
	java        string
	logLevel    string
	logFile     string
	headless    bool
	noColor     bool
}

var flags launchFlags

var rootCmd = &cobra.Command{
	Use:   "automates-desktop",
	Short: "Desktop launcher for the Automates backend",
	Long: "automates-desktop starts the bundled backend on a free local port, " +
		"waits for it to become healthy and stops it again on exit.",
	SilenceUsage: true,
	RunE:         runLauncher,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (TOML, or YAML by extension; default ~/.config/automates-desktop/config.toml)")
	pf.StringVar(&flags.resourceDir, "resource-dir", "", "directory containing backend.jar")
	pf.StringVar(&flags.java, "java", "", "Java runtime used to run the backend")
	pf.StringVar(&flags.logLevel, "log-level", "", "launcher log level: debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", "launcher log file (default ~/.automates-desktop/launcher.log)")
	pf.BoolVar(&flags.headless, "headless", false, "no terminal UI; print the API URL and wait for Ctrl+C")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colors in the terminal UI")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(fs *pflag.FlagSet, f launchFlags) (*config.Config, error) {
	path := f.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, fs, f)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, fs *pflag.FlagSet, f launchFlags) {
	if fs.Changed("resource-dir") {
		cfg.ResourceDir = f.resourceDir
	}
	if fs.Changed("java") {
		cfg.Java = f.java
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-file") {
		cfg.Log.Path = f.logFile
	}
	if fs.Changed("headless") {
		cfg.UI.Headless = f.headless
	}
	if fs.Changed("no-color") {
		cfg.UI.NoColor = f.noColor
	}
}
