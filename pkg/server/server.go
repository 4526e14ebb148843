package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/version-buddy/pkg/logging"
)

// Option customizes the server configuration.
type Option func(*Config)

// WithName sets the server name reported on the root route.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithVersion sets the server version reported on the root route.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.Version = version
	}
}

// WithHandler registers additional routes on the server. All registered
// handlers run behind the full middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) {
		if c.Handlers == nil {
			c.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for path, handler := range handlers {
			c.Handlers[path] = handler
		}
	}
}

// WithConfig replaces the entire configuration. Apply it before other
// options or they will be overwritten.
func WithConfig(config *Config) Option {
	return func(c *Config) {
		*c = *config
	}
}

// Server represents the HTTP server
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	mu          sync.RWMutex
	ready       bool
}

// New creates a new server instance with the given options applied on top
// of the default configuration.
func New(options ...Option) *Server {
	config := NewConfig()
	for _, opt := range options {
		opt(config)
	}

	s := &Server{
		config:      config,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
	}

	s.ensureRootHandler()

	// Setup HTTP server
	mux := s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Address, config.Port),
		Handler:      mux,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
		ErrorLog:     logging.NewLogLogger(slog.LevelError, false),
	}

	return s
}

// setReady marks the server as ready to serve traffic
func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Start starts the HTTP server and blocks until the context is canceled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.setReady(true)

	slog.Info("server listening", "addr", s.httpServer.Addr)

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server with signal handling and graceful shutdown. It
// blocks until the context is canceled, a termination signal arrives, or
// the server fails.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("starting server",
		slog.String("name", s.config.Name),
		slog.String("version", s.config.Version))

	slog.Info("server config",
		slog.String("address", s.httpServer.Addr),
		slog.Int("port", s.config.Port),
		slog.Any("rateLimit", s.config.RateLimit),
		slog.Int("rateLimitBurst", s.config.RateLimitBurst),
		slog.Int("maxBatchRequests", s.config.MaxBatchRequests),
		slog.Duration("readTimeout", s.config.ReadTimeout),
		slog.Duration("writeTimeout", s.config.WriteTimeout),
		slog.Duration("idleTimeout", s.config.IdleTimeout),
		slog.Duration("shutdownTimeout", s.config.ShutdownTimeout))

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
