package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/version-buddy/pkg/logging"
	"github.com/NVIDIA/version-buddy/pkg/server"
)

const (
	name           = "vbd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/version-buddy/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve(ctx context.Context) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = version

	// Setup parse handler
	h := NewHandler(WithMaxBatchVersions(cfg.MaxBatchRequests))

	r := map[string]http.HandlerFunc{
		"/v1/parse": h.HandleParse,
		"/v1/check": h.HandleCheck,
	}

	// Create and run server
	s := server.New(
		server.WithConfig(cfg),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
