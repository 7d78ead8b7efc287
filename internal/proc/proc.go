package proc

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
)

var (
	// ErrAlreadyStarted is returned by Start once the supervisor has owned a child.
	ErrAlreadyStarted = errors.New("child already started")
	// ErrNoChild is returned by Kill when the slot is empty.
	ErrNoChild = errors.New("no child process")
)

type Child struct {
	Cmd  *exec.Cmd
	Name string

	done chan struct{}
	err  error // exit status, valid after done is closed
}

// Done is closed once the process has exited and been reaped.
func (c *Child) Done() <-chan struct{} { return c.done }

// Err returns the exit error. Only meaningful after Done is closed.
func (c *Child) Err() error {
	<-c.done
	return c.err
}

// Supervisor owns at most one child process for its whole lifetime.
// Once the child is taken it is never replaced.
type Supervisor struct {
	mu      sync.Mutex
	child   *Child
	started bool
	log     *slog.Logger
}

func NewSupervisor(logger *slog.Logger) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Supervisor{log: logger}
}

// Start spawns cmd and records it as the supervised child. Output not already
// redirected by the caller is forwarded line by line to the logger.
func (s *Supervisor) Start(name string, cmd *exec.Cmd) (*Child, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil, fmt.Errorf("%s: %w", name, ErrAlreadyStarted)
	}

	var stdout, stderr *lineWriter
	if cmd.Stdout == nil {
		stdout = newLineWriter(s.log, name, "stdout")
		cmd.Stdout = stdout
	}
	if cmd.Stderr == nil {
		stderr = newLineWriter(s.log, name, "stderr")
		cmd.Stderr = stderr
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	ch := &Child{Cmd: cmd, Name: name, done: make(chan struct{})}
	s.child = ch
	s.started = true
	s.log.Info("child started", "child", name, "pid", cmd.Process.Pid)

	go func() {
		ch.err = cmd.Wait()
		stdout.Flush()
		stderr.Flush()
		s.log.Info("child exited", "child", name, "err", ch.err)
		close(ch.done)
	}()
	return ch, nil
}

// Take removes the child from the supervisor and hands ownership to the caller.
// It returns nil when there is nothing to take.
func (s *Supervisor) Take() *Child {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := s.child
	s.child = nil
	return ch
}

// Kill takes the child and sends it a kill signal. It never waits for the
// process to exit. A second call returns ErrNoChild.
func (s *Supervisor) Kill() error {
	ch := s.Take()
	if ch == nil {
		return ErrNoChild
	}
	s.log.Info("killing child", "child", ch.Name, "pid", ch.Cmd.Process.Pid)
	if err := ch.Cmd.Process.Kill(); err != nil {
		return fmt.Errorf("kill %s: %w", ch.Name, err)
	}
	return nil
}
