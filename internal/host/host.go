// Package host is the small application framework the launcher runs inside.
//
// An App runs setup hooks once, keeps one managed value per type for command
// handlers to look up, dispatches front-end commands by name, and fans run
// events (ready, exit requested, exit) out to event hooks.
package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"automates-desktop/internal/logging"
)

var (
	// ErrStateNotFound is returned when a command needs state that was never managed.
	ErrStateNotFound = errors.New("state not managed")
	// ErrUnknownCommand is returned by Invoke for unregistered command names.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("app already started")
)

// RunEvent is a framework-level lifecycle event.
type RunEvent int

const (
	EventReady RunEvent = iota
	EventExitRequested
	EventExit
)

func (e RunEvent) String() string {
	switch e {
	case EventReady:
		return "ready"
	case EventExitRequested:
		return "exit-requested"
	case EventExit:
		return "exit"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// SetupFunc runs once during Start. Returning an error aborts startup.
type SetupFunc func(ctx context.Context, app *App) error

// EventFunc observes run events.
type EventFunc func(app *App, ev RunEvent)

// CommandFunc handles one front-end command.
type CommandFunc func(ctx context.Context, app *App) (any, error)

type App struct {
	log *slog.Logger

	mu       sync.RWMutex
	states   map[reflect.Type]any
	commands map[string]CommandFunc
	setup    []SetupFunc
	events   []EventFunc
	started  bool

	exitOnce sync.Once
	exitCh   chan struct{}
}

func NewApp(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		log:      logger,
		states:   map[reflect.Type]any{},
		commands: map[string]CommandFunc{},
		exitCh:   make(chan struct{}),
	}
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger { return a.log }

// OnSetup registers a setup hook. Hooks run in registration order.
func (a *App) OnSetup(fn SetupFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setup = append(a.setup, fn)
}

// OnEvent registers a run-event hook.
func (a *App) OnEvent(fn EventFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, fn)
}

// Command registers a handler under name, replacing any previous one.
func (a *App) Command(name string, fn CommandFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.commands[name] = fn
}

// Commands lists the registered command names, sorted.
func (a *App) Commands() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.commands))
	for k := range a.commands {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Start runs the setup hooks and, when they all succeed, emits EventReady.
// The first hook error aborts startup and is returned unchanged.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return ErrAlreadyStarted
	}
	a.started = true
	hooks := append([]SetupFunc(nil), a.setup...)
	a.mu.Unlock()

	for _, fn := range hooks {
		if err := fn(ctx, a); err != nil {
			a.log.Error("setup failed", "err", err)
			return err
		}
	}
	a.emit(EventReady)
	return nil
}

// Invoke dispatches a command by name on the caller's goroutine.
func (a *App) Invoke(ctx context.Context, name string) (any, error) {
	a.mu.RLock()
	fn, ok := a.commands[name]
	a.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return fn(ctx, a)
}

// RequestExit emits EventExitRequested and then EventExit. Only the first
// call does anything; it is safe to call from any goroutine.
func (a *App) RequestExit() {
	a.exitOnce.Do(func() {
		a.emit(EventExitRequested)
		a.emit(EventExit)
		close(a.exitCh)
	})
}

// Done is closed after the exit events have been delivered.
func (a *App) Done() <-chan struct{} { return a.exitCh }

func (a *App) emit(ev RunEvent) {
	a.mu.RLock()
	hooks := append([]EventFunc(nil), a.events...)
	a.mu.RUnlock()

	a.log.Debug("run event", "event", ev.String())
	for _, fn := range hooks {
		a.deliver(fn, ev)
	}
}

// deliver isolates hooks from each other: a panicking hook is logged and the
// remaining hooks still run.
func (a *App) deliver(fn EventFunc, ev RunEvent) {
	defer logging.LogPanic("event-hook:"+ev.String(), nil)
	fn(a, ev)
}
