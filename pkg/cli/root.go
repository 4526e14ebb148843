/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-buddy/pkg/logging"
	"github.com/NVIDIA/version-buddy/pkg/serializer"
)

const (
	name           = "vbctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars("VB_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage: fmt.Sprintf("Output format (supported values: %v)",
			serializer.SupportedFormats()),
		Sources: cli.EnvVars("VB_FORMAT"),
		Value:   string(serializer.FormatJSON),
	}

	indentFlag = &cli.IntFlag{
		Name:    "json_indent",
		Usage:   "Number of spaces per JSON indentation level (0 or less for compact output)",
		Sources: cli.EnvVars("VB_JSON_INDENT"),
		Value:   serializer.DefaultJSONIndent,
	}

	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Enable debug logging",
		Sources: cli.EnvVars("VB_DEBUG"),
	}
)

// rootCmd assembles the base command with all subcommands attached.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Strict Semantic Versioning parser and inspector",
		Description: fmt.Sprintf(`vbctl - Version Buddy CLI

Version: %s
Commit:  %s
Built:   %s

Tooling to parse and validate Semantic Versioning 2.0.0 strings with
precise, offset-annotated diagnostics:

parse - parses a single version string into its components.
check - validates a batch of version strings.
image - extracts and parses the version tag of a container image reference.`, version, commit, date),
		Flags: []cli.Flag{
			indentFlag,
			debugFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.Bool("debug"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(),
			checkCmd(),
			imageCmd(),
			serverCmd(),
		},
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures slog before any command action executes.
func initLogger(debug bool) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
}

// parseOutputFormat resolves the format flag into a serializer format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// outputWriter builds the serializer writer for a command from its output
// and format flags plus the global JSON indent setting.
func outputWriter(cmd *cli.Command, format serializer.Format) *serializer.Writer {
	return serializer.NewFileWriterOrStdout(format, cmd.String("output"),
		serializer.WithJSONIndent(int(cmd.Int("json_indent"))))
}

// closeWriter closes the serializer writer, logging instead of failing the
// command when the close itself errors.
func closeWriter(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close serializer", "error", err)
	}
}

// stdoutWriter returns the destination for plain line output, honoring a
// writer injected on the root command by tests.
func stdoutWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
