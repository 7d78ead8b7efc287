package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"automates-desktop/internal/backend"
	"automates-desktop/internal/desktop"
	"automates-desktop/internal/host"
	"automates-desktop/internal/logging"
	"automates-desktop/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the backend and the launcher UI (default)",
	Long: "Start the bundled backend on a free local port and show the launcher UI. " +
		"Quitting the UI, or Ctrl+C in headless mode, stops the backend.",
	Args: cobra.NoArgs,
	RunE: runLauncher,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runLauncher(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags(), flags)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	var cleanup func()
	if cfg.UI.Headless {
		cleanup, err = logging.SetupMulti(cfg.Log.Path, cmd.ErrOrStderr(), level)
	} else {
		cleanup, err = logging.Setup(cfg.Log.Path, level)
	}
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := desktop.New(desktop.Options{
		Config:  cfg,
		Logger:  slog.Default(),
		Metrics: backend.NewMetrics("automates_desktop"),
	})
	if err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start backend: %w", err)
	}

	if cfg.UI.Headless {
		return desktop.RunHeadless(ctx, app, desktop.HeadlessOptions{
			Out:          cmd.OutOrStdout(),
			PollInterval: cfg.PollInterval(),
			WaitTimeout:  cfg.WaitTimeout(),
		})
	}

	defer app.RequestExit()
	var exited <-chan struct{}
	if b, ok := host.TryState[backend.Backend](app); ok {
		exited = b.Exited()
	}
	return tui.Run(ctx, desktop.NewClient(app), tui.Options{
		PollInterval: cfg.PollInterval(),
		NoColor:      cfg.UI.NoColor,
		Exited:       exited,
	})
}
