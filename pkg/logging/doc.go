// Package logging provides structured logging utilities for version-buddy
// components.
//
// # Overview
//
// This package wraps the standard library slog package with shared defaults
// and conventions so the CLI and the API server log the same way. It supports
// environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("vbctl", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("parsing version", "input", "1.2.3")
//	    slog.Error("parse failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("vbd", "v2.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("vbctl", "v1.0.0", "warn")
//
// Converting to a standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug vbctl parse 1.2.3
//	LOG_LEVEL=error vbd
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "vbd",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
//
// Logs go to stderr so command output on stdout stays machine-parseable.
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/api - API server setup
//   - pkg/server - HTTP request lifecycle logging
//
// The core parsing package (pkg/semver) performs no logging.
package logging
