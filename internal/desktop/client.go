package desktop

import (
	"context"
	"fmt"

	"automates-desktop/internal/backend"
)

// Invoker dispatches a named command, as host.App does.
type Invoker interface {
	Invoke(ctx context.Context, name string) (any, error)
}

// Client is the front-end's typed view of the command bridge.
type Client struct {
	inv Invoker
}

func NewClient(inv Invoker) *Client { return &Client{inv: inv} }

// APIURL invokes get_api_url.
func (c *Client) APIURL(ctx context.Context) (string, error) {
	return call[string](ctx, c.inv, CmdGetAPIURL)
}

// Ready invokes is_backend_ready.
func (c *Client) Ready(ctx context.Context) (bool, error) {
	return call[bool](ctx, c.inv, CmdIsBackendReady)
}

// Status invokes get_backend_health and returns the actuator status.
func (c *Client) Status(ctx context.Context) (string, error) {
	h, err := call[backend.Health](ctx, c.inv, CmdGetBackendHealth)
	if err != nil {
		return "", err
	}
	return h.Status, nil
}

func call[T any](ctx context.Context, inv Invoker, name string) (T, error) {
	var zero T
	v, err := inv.Invoke(ctx, name)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected result type %T", name, v)
	}
	return out, nil
}
