package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/NVIDIA/version-buddy/pkg/errors"
	"github.com/NVIDIA/version-buddy/pkg/serializer"
)

// ensureRootHandler installs the default root handler unless the caller
// already registered one.
func (s *Server) ensureRootHandler() {
	if s.config.Handlers == nil {
		s.config.Handlers = make(map[string]http.HandlerFunc)
	}
	if _, ok := s.config.Handlers["/"]; !ok {
		s.config.Handlers["/"] = s.handleRoot
	}
}

// setupRoutes builds the request mux. Health and metrics endpoints bypass
// the middleware chain, everything else runs behind it.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for path, handler := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	return mux
}

// handleRoot describes the service and lists its registered routes.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	routes := []string{"/health", "/metrics", "/ready"}
	for path := range s.config.Handlers {
		routes = append(routes, path)
	}
	sort.Strings(routes)

	response := map[string]any{
		"name":      s.config.Name,
		"version":   s.config.Version,
		"ready":     s.isReady(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"routes":    routes,
	}

	serializer.RespondJSON(w, http.StatusOK, response)
}
