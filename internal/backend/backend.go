// Package backend launches the bundled Spring Boot server and answers the
// front-end's questions about it: where its API lives and whether it is up.
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"automates-desktop/internal/httpx"
	"automates-desktop/internal/proc"
)

// Fixed parts of the backend contract.
const (
	JarName    = "backend.jar"
	Profile    = "desktop"
	LogLevel   = "INFO"
	APIPath    = "/api"
	HealthPath = "/actuator/health"

	childName = "backend"
)

// LaunchError reports that the backend process could not be created.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch backend %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Args returns the command line passed to the Java runtime.
func Args(port uint16, jar string) []string {
	return []string{
		"-jar", jar,
		"--server.port=" + strconv.Itoa(int(port)),
		"--spring.profiles.active=" + Profile,
		"--logging.level.root=" + LogLevel,
	}
}

// Command builds (but does not start) the backend command.
func Command(java string, port uint16, resourceDir string) *exec.Cmd {
	cmd := exec.Command(java, Args(port, filepath.Join(resourceDir, JarName))...)
	cmd.SysProcAttr = sysProcAttr()
	return cmd
}

// Options configures Start.
type Options struct {
	// Java is the runtime executable, looked up on PATH when not absolute.
	Java        string
	ResourceDir string
	Port        uint16

	// HealthTimeout bounds each readiness probe.
	HealthTimeout time.Duration
	Logger        *slog.Logger
	Metrics       *Metrics
}

// Backend is the supervisor state for one running backend.
type Backend struct {
	port    uint16
	sup     *proc.Supervisor
	child   *proc.Child
	client  *http.Client
	log     *slog.Logger
	metrics *Metrics
}

// Start launches the backend on opts.Port. No Backend exists unless the
// process was actually spawned.
func Start(opts Options) (*Backend, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	java := opts.Java
	if java == "" {
		java = "java"
	}

	sup := proc.NewSupervisor(log)
	child, err := launch(sup, java, opts.Port, opts.ResourceDir)
	opts.Metrics.recordLaunch(err)
	if err != nil {
		log.Error("backend launch failed", "err", err)
		return nil, err
	}

	b := newBackend(opts.Port, sup, httpx.NewClient(opts.HealthTimeout), log, opts.Metrics)
	b.child = child
	log.Info("backend started", "port", opts.Port, "pid", sup.ChildPID())
	return b, nil
}

func launch(sup *proc.Supervisor, java string, port uint16, resourceDir string) (*proc.Child, error) {
	jar := filepath.Join(resourceDir, JarName)
	if _, err := os.Stat(jar); err != nil {
		return nil, &LaunchError{Path: jar, Err: err}
	}
	cmd := Command(java, port, resourceDir)
	child, err := sup.Start(childName, cmd)
	if err != nil {
		return nil, &LaunchError{Path: java, Err: err}
	}
	return child, nil
}

func newBackend(port uint16, sup *proc.Supervisor, client *http.Client, log *slog.Logger, m *Metrics) *Backend {
	if log == nil {
		log = slog.Default()
	}
	return &Backend{port: port, sup: sup, client: client, log: log, metrics: m}
}

func (b *Backend) Port() uint16 { return b.port }

// PID is the child's pid, or 0 once it has been shut down.
func (b *Backend) PID() int { return b.sup.ChildPID() }

// Exited is closed when the backend process exits for any reason.
// It is nil for a Backend that never owned a process.
func (b *Backend) Exited() <-chan struct{} {
	if b.child == nil {
		return nil
	}
	return b.child.Done()
}

// ExitErr is the process exit status. It blocks until Exited is closed.
func (b *Backend) ExitErr() error {
	if b.child == nil {
		return nil
	}
	return b.child.Err()
}

// APIURL is the base URL the front-end talks to.
func (b *Backend) APIURL() string {
	return fmt.Sprintf("http://localhost:%d%s", b.port, APIPath)
}

func (b *Backend) HealthURL() string {
	return fmt.Sprintf("http://localhost:%d%s", b.port, HealthPath)
}

// Ready probes the health endpoint once. Only the status line counts: the body
// is not read. Transport failures and non-2xx statuses read as not ready.
func (b *Backend) Ready(ctx context.Context) bool {
	code, err := httpx.Status(ctx, b.client, b.HealthURL())
	ready := err == nil && httpx.IsSuccess(code)
	if err != nil {
		b.log.Debug("health check failed", "url", b.HealthURL(), "err", err)
	} else {
		b.log.Debug("health check", "url", b.HealthURL(), "status", code)
	}
	b.metrics.recordProbe(ready)
	return ready
}

// Health is what the actuator endpoint reported.
type Health struct {
	Code   int
	Status string // actuator "status" field, e.g. UP or DOWN; empty if absent
}

// Health fetches the health endpoint and extracts the actuator status.
// Unlike Ready it reports transport errors.
func (b *Backend) Health(ctx context.Context) (Health, error) {
	code, body, err := httpx.Get(ctx, b.client, b.HealthURL())
	if err != nil {
		return Health{}, err
	}
	h := Health{Code: code}
	if gjson.ValidBytes(body) {
		h.Status = gjson.GetBytes(body, "status").String()
	}
	return h, nil
}

// Shutdown kills the backend. Only the first call does anything; later calls
// return proc.ErrNoChild. It does not wait for the process to exit.
func (b *Backend) Shutdown() error {
	err := b.sup.Kill()
	b.metrics.recordKill(err)
	return err
}

func (b *Backend) Metrics() *Metrics { return b.metrics }
