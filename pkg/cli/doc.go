// Package cli implements the command-line interface for the version-buddy vbctl tool.
//
// # Overview
//
// The vbctl CLI parses and validates Semantic Versioning 2.0.0 strings with
// precise, offset-annotated diagnostics. It is designed for release
// tooling and CI pipelines that need strict version handling rather than
// lenient coercion.
//
// # Commands
//
// parse - Parse a single version string:
//
//	vbctl parse [--output FILE] [--format json|yaml|table] 1.2.3
//
// Parses the argument against the strict SemVer grammar and emits the
// components (major, minor, patch, pre-release and build identifier lists)
// wrapped in a {"version": ...} envelope. Output defaults to stdout in
// JSON format.
//
// check - Validate a batch of version strings:
//
//	vbctl check [--input versions.yaml] [--concurrency N] 1.2.3 2.0.0-rc.1
//
// Parses every input concurrently and prints one line per input, "ok" or
// the parser diagnostic. Exits non-zero if any input fails, which makes it
// usable as a CI gate. --input loads an additional JSON or YAML array of
// version strings ("-" reads JSON from stdin).
//
// image - Parse the version tag of a container image reference:
//
//	vbctl image [--require-tag=false] nvcr.io/nvidia/cuda:12.4.1
//
// Resolves the reference with Docker normalization rules and parses its tag
// as a semantic version, stripping a single leading "v".
//
// server - Run the HTTP API daemon in-process:
//
//	vbctl server [--port 8080]
//
// Same entry point as the vbd binary.
//
// # Common Flags
//
//	--json_indent N  Spaces per JSON indentation level, 0 for compact (global, default: 1)
//	--debug          Enable debug logging (global)
//	--output, -o     Output file path for parse and image (default: stdout)
//	--format, -t     Output format for parse and image: json, yaml, table (default: json)
//	--help, -h       Show command help
//	--version, -v    Show version information
//
// # Output Formats
//
// JSON (default):
//   - Machine-parseable, indentation controlled by --json_indent
//   - Suitable for programmatic consumption
//
// YAML:
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// Table:
//   - Hierarchical text representation
//   - Suitable for terminal viewing
//
// # Usage Examples
//
// Parse a pre-release version to a file:
//
//	vbctl parse --output version.json 2.0.0-rc.1+build.7
//
// Gate a release pipeline on a version list:
//
//	vbctl check --input versions.yaml
//
// Read the version baked into an image tag:
//
//	vbctl image --format table ghcr.io/org/app:v1.4.0
//
// # Environment Variables
//
//	VB_JSON_INDENT  Default JSON indentation width
//	VB_OUTPUT       Default output file path
//	VB_FORMAT       Default output format
//	VB_DEBUG        Enable debug logging
//	PORT            HTTP port for the server command
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, parse failure, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/semver - Strict version parsing
//   - pkg/oci - Image reference handling
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//   - pkg/api - HTTP API server
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/version-buddy/pkg/cli.version=1.0.0'"
package cli
