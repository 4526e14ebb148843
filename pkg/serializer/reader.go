package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader handles deserialization of structured data from various formats (JSON, YAML).
// It supports reading from any io.Reader source including files, strings, and buffers.
//
// Resource Management:
//   - Close must be called to release resources when using NewFileReader or NewFileReaderAuto
//   - Safe to call Close multiple times (idempotent)
//   - Close is a no-op for readers created with NewReader from non-closeable sources
//
// Supported formats: JSON, YAML (Table format is write-only)
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
//
// Returns error if:
//   - format is unknown or unsupported
//   - format is FormatTable (table format does not support deserialization)
//
// If input implements io.Closer, it will be stored and closed by Reader.Close();
// otherwise Close() is a no-op.
//
// Example:
//
//	reader, err := NewReader(FormatJSON, strings.NewReader(`{"key":"value"}`))
//	if err != nil { panic(err) }
//	var data map[string]string
//	err = reader.Deserialize(&data)
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	// Store closer if input implements it
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// NewFileReader creates a new Reader that reads from a local file path.
//
// Returns error if:
//   - format is unknown or unsupported
//   - format is FormatTable (table format does not support deserialization)
//   - file cannot be opened
//
// Close must be called to release the file handle.
//
// Example:
//
//	reader, err := NewFileReader(FormatJSON, "/path/to/versions.json")
//	if err != nil { panic(err) }
//	defer reader.Close()
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

// NewFileReaderAuto creates a new Reader with automatic format detection.
// The format is determined from the file extension using FormatFromPath.
//
// Example:
//
//	reader, err := NewFileReaderAuto("versions.yaml") // Auto-detects YAML format
//	if err != nil { panic(err) }
//	defer reader.Close()
func NewFileReaderAuto(filePath string) (*Reader, error) {
	format := FormatFromPath(filePath)
	return NewFileReader(format, filePath)
}

// Deserialize reads data from the input source and unmarshals it into v.
// v must be a pointer (e.g., &myStruct, &mySlice, &myMap).
//
// Returns error if:
//   - Reader is nil
//   - Input source is nil
//   - Data cannot be decoded (invalid format, type mismatch)
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	case FormatTable:
		return fmt.Errorf("table format is not supported for deserialization")

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader.
// Safe to call multiple times and on nil Readers; subsequent calls are no-ops.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil // Prevent double-close
		return err
	}
	return nil
}

// FromFile is a generic convenience function that loads and deserializes a file in one call.
// The file format is automatically detected from the file extension.
//
// Resource management is handled internally; there is no reader to close.
//
// Example:
//
//	versions, err := serializer.FromFile[[]string]("versions.yaml")
//	if err != nil { panic(err) }
//
// Note: This is a higher-level API. Use NewFileReader directly if you need
// more control over the Reader lifecycle or want to reuse it.
func FromFile[T any](path string) (*T, error) {
	fileFormat := FormatFromPath(path)
	slog.Debug("determined file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := NewFileReader(fileFormat, path)
	if err != nil {
		slog.Error("failed to create file reader", "error", err, "path", path, "format", fileFormat)
		return nil, fmt.Errorf("failed to create serializer for %q: %w", path, err)
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close serializer", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	return &r, nil
}
