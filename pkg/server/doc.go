// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements a reusable HTTP server chassis with the
// middleware, observability, and lifecycle handling shared by all
// version-buddy services.
//
// # Architecture
//
// The server hosts stateless HTTP handlers behind a common middleware
// chain with the following components:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - API version negotiation via vendor MIME types
//   - Prometheus metrics for requests, latency, and rejections
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
// Basic server startup:
//
//	package main
//
//	import (
//	    "context"
//	    "net/http"
//
//	    "github.com/NVIDIA/version-buddy/pkg/server"
//	)
//
//	func main() {
//	    s := server.New(
//	        server.WithName("my-api"),
//	        server.WithVersion("1.0.0"),
//	        server.WithHandler(map[string]http.HandlerFunc{
//	            "/v1/thing": handleThing,
//	        }),
//	    )
//	    if err := s.Run(context.Background()); err != nil {
//	        panic(err)
//	    }
//	}
//
// Custom configuration:
//
//	config := server.NewConfig()
//	config.Port = 9090
//	config.RateLimit = 200 // 200 requests/sec
//	config.RateLimitBurst = 400
//	config.MaxBatchRequests = 50
//
//	s := server.New(server.WithConfig(config))
//
// # System Endpoints
//
// Every server exposes these routes in addition to the registered handlers:
//
// GET / - Service description listing the registered routes
//
// GET /health - Health check (for liveness probe)
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /ready - Readiness check (for readiness probe)
//
//	Returns 200 OK when ready, 503 when not ready
//
// GET /metrics - Prometheus exposition endpoint
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After header.
//
// API Version Negotiation:
//
//	Clients may request a specific API version through the Accept header:
//	  Accept: application/vnd.nvidia.vb.v1+json
//	The negotiated version is echoed in the X-API-Version response header.
//
// Metrics:
//
//	The middleware chain records request totals, latency histograms,
//	in-flight gauges, rate limit rejections, and recovered panics under
//	the vb_ metric prefix.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_VERSION",
//	  "message": "Expected delimiter at offset 3",
//	  "details": {"offset": 3},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes:
//   - INVALID_REQUEST: Invalid request parameter or payload (400)
//   - INVALID_VERSION: Version string rejected by the parser (422)
//   - NOT_FOUND: Resource not found (404)
//   - METHOD_NOT_ALLOWED: HTTP method not supported (405)
//   - RATE_LIMIT_EXCEEDED: Too many requests (429)
//   - SERVICE_UNAVAILABLE: Server not ready (503)
//   - INTERNAL: Server error (500)
//
// # Deployment
//
// Kubernetes deployment example:
//
//	apiVersion: apps/v1
//	kind: Deployment
//	metadata:
//	  name: version-buddy-api
//	spec:
//	  replicas: 3
//	  selector:
//	    matchLabels:
//	      app: version-buddy-api
//	  template:
//	    metadata:
//	      labels:
//	        app: version-buddy-api
//	    spec:
//	      containers:
//	      - name: api
//	        image: version-buddy-api:latest
//	        ports:
//	        - containerPort: 8080
//	        env:
//	        - name: PORT
//	          value: "8080"
//	        livenessProbe:
//	          httpGet:
//	            path: /health
//	            port: 8080
//	          initialDelaySeconds: 5
//	          periodSeconds: 10
//	        readinessProbe:
//	          httpGet:
//	            path: /ready
//	            port: 8080
//	          initialDelaySeconds: 5
//	          periodSeconds: 5
//	        resources:
//	          requests:
//	            cpu: 100m
//	            memory: 128Mi
//	          limits:
//	            cpu: 1000m
//	            memory: 512Mi
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - Prometheus instrumentation: https://pkg.go.dev/github.com/prometheus/client_golang/prometheus
//   - HTTP best practices: https://datatracker.ietf.org/doc/html/rfc7807
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package server
