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

// Package serializer provides encoding and decoding of result data in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between data structures and
// various output formats including JSON, YAML, and human-readable tables.
// It supports both encoding (writing data) and decoding (reading data)
// operations with automatic format detection.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable representation with configurable indentation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE rows with dotted key paths
//   - Suitable for terminal/console viewing
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout (YAML):
//
//	writer := serializer.NewStdoutWriter(serializer.FormatYAML)
//	defer writer.Close()
//
//	data := map[string]any{"version": "1.0.0", "status": "ok"}
//	if err := writer.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when the path is empty:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path,
//	    serializer.WithJSONIndent(2))
//	defer writer.Close()
//
//	if err := writer.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Read from file with automatic format detection:
//
//	versions, err := serializer.FromFile[[]string]("versions.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Read with custom io.Reader:
//
//	reader, err := serializer.NewReader(serializer.FormatJSON, os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var data []string
//	if err := reader.Deserialize(&data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// Format detection is automatic when using:
//   - NewFileReaderAuto(path)
//   - FromFile[T](path)
//
// # HTTP Responses
//
// RespondJSON buffers the encoded payload before writing headers so that
// encoding failures surface as a clean 500 instead of a partial response:
//
//	serializer.RespondJSON(w, http.StatusOK, result)
//
// # Resource Management
//
// Always close writers and readers that manage files:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "out.json")
//	defer writer.Close()  // Required for file resources
//
// Stdout writers don't require closing but Close() is safe to call.
//
// # Error Handling
//
// Errors are returned when:
//   - Format is unknown or unsupported
//   - File cannot be opened or created
//   - Data cannot be marshaled/unmarshaled
//   - Table format used for deserialization
//
// All errors include context for debugging.
//
// # Integration
//
// Used throughout the project for data I/O:
//   - pkg/cli - Command output formatting
//   - pkg/server - HTTP response encoding
package serializer
