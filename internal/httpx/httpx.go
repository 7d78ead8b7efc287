package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var DefaultTimeout = 5 * time.Second

const maxBody = 1 << 20

// NewClient returns a client whose every request is bounded by timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Get issues one GET and returns the status code and (size-limited) body.
// Non-2xx statuses are not errors; err is only set when no response arrived.
func Get(ctx context.Context, client *http.Client, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("GET %s: read body: %w", url, err)
	}
	return resp.StatusCode, body, nil
}

// Status issues one GET and returns only the status code. The body is never
// read, so a slow or truncated body cannot change the result.
func Status(ctx context.Context, client *http.Client, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// IsSuccess reports whether code is in the 2xx range.
func IsSuccess(code int) bool { return code >= 200 && code < 300 }

// WaitUntil calls check every interval until it returns true or ctx ends.
// The first check runs immediately.
func WaitUntil(ctx context.Context, interval time.Duration, check func(context.Context) bool) error {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		if check(ctx) {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait: %w", ctx.Err())
		case <-t.C:
		}
	}
}
