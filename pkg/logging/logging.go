package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// logLevelEnvVar controls default verbosity when no explicit level is given.
const logLevelEnvVar = "LOG_LEVEL"

// SetDefaultStructuredLogger installs a structured JSON logger as the slog
// default, reading verbosity from the LOG_LEVEL environment variable.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(logLevelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel installs a structured JSON logger as
// the slog default with an explicit level, overriding LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewStructuredLogger returns a logger that writes JSON records to stderr
// with the module and version attached to every record. Debug level enables
// source location tracking.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newStructuredLogger(os.Stderr, module, version, level)
}

func newStructuredLogger(w io.Writer, module, version, level string) *slog.Logger {
	l := ParseLevel(level)
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     l,
		AddSource: l == slog.LevelDebug,
	})
	return slog.New(h).With("module", module, "version", version)
}

// NewLogLogger adapts the structured handler for code that expects a
// standard library logger, such as http.Server.ErrorLog.
func NewLogLogger(level slog.Leveler, addSource bool) *log.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(h, level.Level())
}

// ParseLevel maps a level name to a slog level, case-insensitively.
// Unknown or empty names fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
