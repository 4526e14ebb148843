// Package api provides the HTTP API layer for the version parsing service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// strict Semantic Versioning parsing and batch validation via REST API.
// Note: the API server does not inspect container image references; use the
// CLI for that operation.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/NVIDIA/version-buddy/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(context.Background()); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Setting up route handlers (/v1/parse, /v1/check)
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/parse  - Parse the version query parameter
//   - POST /v1/parse - Parse the version field of a JSON/YAML body
//   - POST /v1/check - Validate a batch of version strings
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Parsing (GET /v1/parse)
//
// The version query parameter holds the string to parse:
//
//	curl "http://localhost:8080/v1/parse?version=1.2.3-rc.1%2Bbuild.7"
//
// A valid version returns its decomposition:
//
//	{
//	  "version": {
//	    "major": 1,
//	    "minor": 2,
//	    "patch": 3,
//	    "prerelease_identifiers": [{"value": "rc"}, {"value": "1"}],
//	    "build_identifiers": [{"value": "build"}, {"value": "7"}]
//	  }
//	}
//
// An invalid version returns 422 with the parser diagnostic and the
// offset of the first problematic character:
//
//	{
//	  "code": "INVALID_VERSION",
//	  "message": "Expected delimiter at offset 3",
//	  "details": {"input": "1.0", "offset": 3},
//	  ...
//	}
//
// # Request Body (POST /v1/parse)
//
// POST requests accept a version field in the request body. Supports both
// JSON (application/json) and YAML (application/x-yaml) formats. A version
// field holding anything other than a string returns 400 INVALID_REQUEST.
//
//	curl -X POST http://localhost:8080/v1/parse \
//	  -H "Content-Type: application/json" \
//	  -d '{"version": "2.0.0-rc.1"}'
//
// # Batch Validation (POST /v1/check)
//
// POST /v1/check accepts a versions array and returns a verdict for every
// entry without failing the request on invalid versions:
//
//	curl -X POST http://localhost:8080/v1/check \
//	  -H "Content-Type: application/json" \
//	  -d '{"versions": ["1.2.3", "1.0", "oops"]}'
//
// Response:
//
//	{
//	  "results": [
//	    {"input": "1.2.3", "valid": true, "version": {...}},
//	    {"input": "1.0", "valid": false, "error": "Expected delimiter at offset 3", "offset": 3},
//	    {"input": "oops", "valid": false, "error": "Expected major version number at offset 0", "offset": 0}
//	  ],
//	  "summary": {"total": 3, "valid": 1, "invalid": 2}
//	}
//
// The batch size is capped by the MAX_BATCH_REQUESTS environment variable
// (default: 100); larger requests return 400.
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - RATE_LIMIT: Requests per second (default: 100)
//   - RATE_LIMIT_BURST: Burst capacity (default: 200)
//   - MAX_BATCH_REQUESTS: Batch size cap for /v1/check (default: 100)
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown window (default: 30)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/version-buddy/pkg/api.version=1.0.0'"
package api
