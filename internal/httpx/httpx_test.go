package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"DOWN"}`))
	}))
	defer srv.Close()

	code, body, err := Get(context.Background(), NewClient(time.Second), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.JSONEq(t, `{"status":"DOWN"}`, string(body))
}

func TestStatusSkipsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.WriteHeader(http.StatusPartialContent)
		_, _ = w.Write([]byte("partial"))
	}))
	defer srv.Close()

	code, err := Status(context.Background(), NewClient(time.Second), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusPartialContent, code)
	assert.True(t, IsSuccess(code))
}

func TestGetConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, _, err := Get(context.Background(), NewClient(time.Second), url)
	assert.Error(t, err)
}

func TestGetTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, _, err := Get(context.Background(), NewClient(100*time.Millisecond), srv.URL)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.True(t, IsSuccess(299))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(301))
	assert.False(t, IsSuccess(500))
}

func TestNewClientDefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewClient(0).Timeout)
	assert.Equal(t, time.Second, NewClient(time.Second).Timeout)
}

func TestWaitUntil(t *testing.T) {
	var calls atomic.Int32
	err := WaitUntil(context.Background(), 10*time.Millisecond, func(context.Context) bool {
		return calls.Add(1) >= 3
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWaitUntilContextDone(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := WaitUntil(ctx, 10*time.Millisecond, func(context.Context) bool { return false })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
