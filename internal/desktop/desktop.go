// Package desktop wires the backend supervisor into a host.App: it picks the
// port, launches the backend during setup, registers the front-end commands,
// and kills the backend when exit is requested.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"automates-desktop/internal/backend"
	"automates-desktop/internal/config"
	"automates-desktop/internal/host"
	"automates-desktop/internal/logging"
	"automates-desktop/internal/paths"
	"automates-desktop/internal/ports"
	"automates-desktop/internal/proc"
)

// Command names exposed to the front-end.
const (
	CmdGetAPIURL        = "get_api_url"
	CmdIsBackendReady   = "is_backend_ready"
	CmdGetBackendHealth = "get_backend_health"
)

type Options struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *backend.Metrics

	// FindPort allocates the backend port. Nil means ports.FindFreePort.
	FindPort func() (uint16, error)
}

// New allocates the backend port and returns an app ready to Start.
// A port allocation failure is fatal and returned as is.
func New(opts Options) (*host.App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	findPort := opts.FindPort
	if findPort == nil {
		findPort = ports.FindFreePort
	}

	port, err := findPort()
	if err != nil {
		return nil, fmt.Errorf("allocate backend port: %w", err)
	}
	log.Info("backend port allocated", "port", port)

	app := host.NewApp(log)
	app.OnSetup(func(ctx context.Context, a *host.App) error {
		dir, err := paths.ResourceDir(cfg.ResourceDir)
		if err != nil {
			return err
		}
		log.Info("starting backend", "port", port, "jar", filepath.Join(dir, backend.JarName))
		b, err := backend.Start(backend.Options{
			Java:          cfg.Java,
			ResourceDir:   dir,
			Port:          port,
			HealthTimeout: cfg.HealthTimeout(),
			Logger:        log,
			Metrics:       opts.Metrics,
		})
		if err != nil {
			return err
		}
		host.Manage(a, b)
		return nil
	})

	app.Command(CmdGetAPIURL, getAPIURL)
	app.Command(CmdIsBackendReady, isBackendReady)
	app.Command(CmdGetBackendHealth, getBackendHealth)
	app.OnEvent(onRunEvent)
	return app, nil
}

func getAPIURL(ctx context.Context, a *host.App) (any, error) {
	b, err := host.State[backend.Backend](a)
	if err != nil {
		return nil, err
	}
	return b.APIURL(), nil
}

func isBackendReady(ctx context.Context, a *host.App) (any, error) {
	b, err := host.State[backend.Backend](a)
	if err != nil {
		return nil, err
	}
	return b.Ready(ctx), nil
}

func getBackendHealth(ctx context.Context, a *host.App) (any, error) {
	b, err := host.State[backend.Backend](a)
	if err != nil {
		return nil, err
	}
	return b.Health(ctx)
}

// onRunEvent kills the backend on exit request. Nothing here may fail the
// exit: kill errors are logged and dropped.
func onRunEvent(a *host.App, ev host.RunEvent) {
	if ev != host.EventExitRequested {
		return
	}
	defer logging.LogPanic("backend-shutdown", nil)

	log := a.Logger()
	b, ok := host.TryState[backend.Backend](a)
	if !ok {
		return
	}
	log.Info("exit requested, stopping backend", "pid", b.PID())
	switch err := b.Shutdown(); {
	case err == nil:
		log.Info("backend stopped")
	case errors.Is(err, proc.ErrNoChild):
		log.Debug("backend already stopped")
	default:
		log.Warn("backend kill failed", "err", err)
	}
	if s, err := b.Metrics().Summary(); err == nil && len(s) > 0 {
		log.Debug("backend metrics", "summary", s.String())
	}
}
