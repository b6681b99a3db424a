package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	startHooks      []func(*slog.Logger)
	stopHooks       []func(*slog.Logger)
}

// Server runs an http.Server until its context is cancelled or the process
// receives SIGINT/SIGTERM, then drains in-flight requests.
type Server struct {
	cfg  *config
	once sync.Once

	mu  sync.Mutex
	srv *http.Server
	ln  net.Listener
}

// New returns a Server listening on :8080 unless WithAddr says otherwise.
func New(opts ...Option) *Server {
	cfg := &config{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg}
}

// Addr returns the bound address once Run is listening, or "".
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Run serves handler and blocks until shutdown. Listen failures are joined
// with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	srv, err := s.prepare(handler)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	log := s.cfg.logger
	log.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))
	for _, h := range s.cfg.startHooks {
		h(log)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var runErr error
	select {
	case <-sigCtx.Done():
		_ = s.Shutdown(context.WithoutCancel(ctx))
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) prepare(handler http.Handler) (*http.Server, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return nil, errors.Join(ErrStart, ErrAlreadyRunning)
	}

	cfg := s.cfg
	srv := cfg.server
	if srv == nil {
		srv = &http.Server{ReadHeaderTimeout: 10 * time.Second}
	}
	if srv.Addr == "" {
		srv.Addr = cfg.addr
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = cfg.readTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = cfg.writeTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = cfg.idleTimeout
	}
	srv.Handler = handler
	s.srv = srv
	return srv, nil
}

// Shutdown drains the server within the shutdown timeout. Only the first call
// has effect; errors are joined with ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)

		s.cfg.logger.InfoContext(ctx, "http server stopped")
		for _, h := range s.cfg.stopHooks {
			h(s.cfg.logger)
		}
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
