package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format
	FormatTable Format = "table"
)

// DefaultJSONIndent is the indentation width (in spaces) used for JSON
// output when no explicit width is configured.
const DefaultJSONIndent = 1

const defaultValueKey = "value"

func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats
// for serialization.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// ParseFormat converts a format name to a Format value.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown format %q, supported formats: %s", s, strings.Join(SupportedFormats(), ", "))
	}
	return f, nil
}

// WriterOption defines a configuration option for Writer.
type WriterOption func(*Writer)

// WithJSONIndent sets the JSON indentation width in spaces.
// Values less than or equal to zero produce compact single-line output.
// The option has no effect on YAML or table output.
func WithJSONIndent(spaces int) WriterOption {
	return func(w *Writer) {
		w.jsonIndent = spaces
	}
}

// Writer handles serialization of result data to various formats.
// Close must be called to release file handles when using NewFileWriterOrStdout.
type Writer struct {
	format     Format
	output     io.Writer
	closer     io.Closer
	jsonIndent int
}

// NewWriter creates a new Writer with the specified format and output destination.
// If output is nil, os.Stdout will be used.
// If format is unknown, defaults to JSON format.
func NewWriter(format Format, output io.Writer, options ...WriterOption) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	w := &Writer{
		format:     format,
		output:     output,
		jsonIndent: DefaultJSONIndent,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// NewFileWriterOrStdout creates a new Writer that outputs to the specified file path in the given format.
// If the file cannot be created or path is empty, it falls back to stdout.
// Remember to call Close() on the returned Writer to ensure the file is properly closed.
func NewFileWriterOrStdout(format Format, path string, options ...WriterOption) *Writer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewStdoutWriter(format, options...)
	}

	file, err := os.Create(trimmed)
	if err != nil {
		slog.Error("failed to create output file", "error", err, "path", trimmed)
		return NewStdoutWriter(format, options...)
	}

	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}

	w := &Writer{
		format:     format,
		output:     file,
		closer:     file,
		jsonIndent: DefaultJSONIndent,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// NewStdoutWriter creates a new Writer that outputs to stdout in the specified format.
func NewStdoutWriter(format Format, options ...WriterOption) *Writer {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	w := &Writer{
		format:     format,
		output:     os.Stdout,
		jsonIndent: DefaultJSONIndent,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// Close releases any resources associated with the Writer.
// It should be called when done writing, especially for file-based writers.
// It's safe to call Close multiple times or on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Serialize writes the given data in the configured format.
// Context is provided for consistency with the Serializer interface,
// but is not actively used for file/stdout writes (which are fast and blocking).
func (w *Writer) Serialize(ctx context.Context, v any) error {
	switch w.format {
	case FormatJSON:
		return w.serializeJSON(v)
	case FormatYAML:
		return w.serializeYAML(v)
	case FormatTable:
		return w.serializeTable(v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) serializeJSON(v any) error {
	encoder := json.NewEncoder(w.output)
	if w.jsonIndent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", w.jsonIndent))
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(v any) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return nil
}

func (w *Writer) serializeTable(v any) error {
	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(v), "")
	if len(flat) == 0 {
		fmt.Fprintln(w.output, "<empty>")
		return nil
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", key, flat[key])
	}
	return tw.Flush()
}

func flattenValue(out map[string]any, val reflect.Value, prefix string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if prefix != "" {
				out[prefix] = nil
			}
			return
		}
		val = val.Elem()
	}

	//nolint:exhaustive // We handle the common cases explicitly; all others go to default
	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		exported := false
		for i := 0; i < typ.NumField(); i++ {
			if typ.Field(i).IsExported() {
				exported = true
				break
			}
		}
		if !exported {
			// Opaque value types (e.g. identifiers) render via their Stringer.
			if val.CanInterface() {
				if s, ok := val.Interface().(fmt.Stringer); ok {
					if prefix == "" {
						prefix = defaultValueKey
					}
					out[prefix] = s.String()
				}
			}
			return
		}
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			key := joinKey(prefix, field.Name)
			flattenValue(out, val.Field(i), key)
		}
	case reflect.Map:
		for _, mapKey := range val.MapKeys() {
			key := joinKey(prefix, fmt.Sprintf("%v", mapKey.Interface()))
			flattenValue(out, val.MapIndex(mapKey), key)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			key := joinKey(prefix, fmt.Sprintf("[%d]", i))
			flattenValue(out, val.Index(i), key)
		}
	default:
		if prefix == "" {
			prefix = defaultValueKey
		}
		out[prefix] = val.Interface()
	}
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	return prefix + "." + suffix
}
