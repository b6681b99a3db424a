package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/categorizr/pkg/httpserver"
)

func startServer(t *testing.T, ctx context.Context, srv *httpserver.Server, started <-chan struct{}, h http.Handler) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()
	select {
	case <-started:
	case err := <-done:
		require.FailNow(t, "run returned early", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	return done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not finish")
	}
}

func startedHook(ch chan struct{}) httpserver.Option {
	return httpserver.WithStartHook(func(*slog.Logger) { close(ch) })
}

// Sends SIGTERM to the test process, so it runs before parallel tests start.
func TestSignalShutdown(t *testing.T) {
	started := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		startedHook(started),
	)
	done := startServer(t, context.Background(), srv, started, http.NewServeMux())

	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(syscall.SIGTERM))
	waitDone(t, done)
}

func TestRunServesAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	var stopped atomic.Bool
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		startedHook(started),
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Store(true) }),
	)
	assert.Empty(t, srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := startServer(t, ctx, srv, started, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	waitDone(t, done)
	assert.True(t, stopped.Load())
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestManualShutdownIsIdempotent(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"), startedHook(started))
	done := startServer(t, context.Background(), srv, started, nil)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()
	assert.NoError(t, httpserver.New().Shutdown(context.Background()))
}

func TestStartError(t *testing.T) {
	t.Parallel()

	err := httpserver.New(httpserver.WithAddr(":invalid")).Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestAlreadyRunning(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"), startedHook(started))
	ctx, cancel := context.WithCancel(context.Background())
	done := startServer(t, ctx, srv, started, nil)

	err := srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	waitDone(t, done)
}

func TestServerOptionsApplied(t *testing.T) {
	t.Parallel()

	hs := &http.Server{IdleTimeout: 7 * time.Second}
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	gotLogger := make(chan *slog.Logger, 1)
	started := make(chan struct{})
	srv := httpserver.NewFromConfig(
		httpserver.Config{
			Addr:         "127.0.0.1:0",
			ReadTimeout:  time.Second,
			WriteTimeout: 2 * time.Second,
			IdleTimeout:  3 * time.Second,
		},
		httpserver.WithServer(hs),
		httpserver.WithLogger(l),
		httpserver.WithStartHook(func(lg *slog.Logger) {
			gotLogger <- lg
			close(started)
		}),
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := startServer(t, ctx, srv, started, nil)

	assert.Equal(t, "127.0.0.1:0", hs.Addr)
	assert.Equal(t, time.Second, hs.ReadTimeout)
	assert.Equal(t, 2*time.Second, hs.WriteTimeout)
	assert.Equal(t, 7*time.Second, hs.IdleTimeout, "preset server field wins")
	assert.NotNil(t, hs.Handler)
	assert.Same(t, l, <-gotLogger)

	cancel()
	waitDone(t, done)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := map[string]func(){
		"addr":       func() { httpserver.WithAddr("") },
		"read":       func() { httpserver.WithReadTimeout(0) },
		"write":      func() { httpserver.WithWriteTimeout(-time.Second) },
		"idle":       func() { httpserver.WithIdleTimeout(-time.Second) },
		"shutdown":   func() { httpserver.WithShutdownTimeout(0) },
		"server":     func() { httpserver.WithServer(nil) },
		"start hook": func() { httpserver.WithStartHook(nil) },
		"stop hook":  func() { httpserver.WithStopHook(nil) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, fn)
		})
	}
	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("redis down") }

	tests := []struct {
		name   string
		checks []httpserver.Check
		code   int
		body   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []httpserver.Check{ok, ok}, http.StatusOK, "READY"},
		{"not ready", []httpserver.Check{ok, failing}, http.StatusServiceUnavailable, "NOT_READY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
