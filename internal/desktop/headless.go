package desktop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"automates-desktop/internal/backend"
	"automates-desktop/internal/host"
	"automates-desktop/internal/httpx"
)

// ErrBackendExited is returned by RunHeadless when the backend dies on its own.
var ErrBackendExited = errors.New("backend exited unexpectedly")

// HeadlessOptions tunes RunHeadless.
type HeadlessOptions struct {
	Out          io.Writer
	PollInterval time.Duration
	// WaitTimeout bounds the readiness wait. Zero waits until ctx ends.
	WaitTimeout time.Duration
}

// RunHeadless is the front-end without a UI: it prints the API URL, polls
// readiness, then keeps the backend up until ctx ends or the backend exits.
// Exit is always requested before returning.
func RunHeadless(ctx context.Context, app *host.App, opts HeadlessOptions) error {
	defer app.RequestExit()

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	client := NewClient(app)

	url, err := client.APIURL(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "API: %s\n", url)

	var exited <-chan struct{}
	b, ok := host.TryState[backend.Backend](app)
	if ok {
		exited = b.Exited()
	}
	exitErr := func() error {
		return fmt.Errorf("%w: %v", ErrBackendExited, b.ExitErr())
	}

	var (
		waitCtx context.Context
		cancel  context.CancelFunc
	)
	if opts.WaitTimeout > 0 {
		waitCtx, cancel = context.WithTimeout(ctx, opts.WaitTimeout)
	} else {
		waitCtx, cancel = context.WithCancel(ctx)
	}
	go func() {
		select {
		case <-exited:
			cancel()
		case <-waitCtx.Done():
		}
	}()
	err = httpx.WaitUntil(waitCtx, opts.PollInterval, func(ctx context.Context) bool {
		ready, _ := client.Ready(ctx)
		return ready
	})
	cancel()
	switch {
	case err == nil:
		fmt.Fprintln(out, "Backend ready.")
	case ctx.Err() != nil:
		return nil
	case isClosed(exited):
		return exitErr()
	default:
		fmt.Fprintf(out, "Backend not ready after %s; leaving it running.\n", opts.WaitTimeout)
	}

	fmt.Fprintln(out, "Press Ctrl+C to stop.")
	select {
	case <-ctx.Done():
		fmt.Fprintln(out, "\nReceived signal, shutting down…")
		return nil
	case <-app.Done():
		return nil
	case <-exited:
		return exitErr()
	}
}

func isClosed(ch <-chan struct{}) bool {
	if ch == nil {
		return false
	}
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
