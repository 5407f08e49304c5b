package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fleetops/sysinv/pkg/errors"
	"github.com/fleetops/sysinv/pkg/inventory"
)

// Format represents the output format type
type Format string

const (
	// FormatJSON outputs the full record in JSON format
	FormatJSON Format = "json"
	// FormatCSV outputs the flattened record projection in CSV format
	FormatCSV Format = "csv"
)

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatCSV:
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
		string(FormatCSV),
	}
}

// Writer handles serialization of inventory records to a destination.
// Close must be called to release file handles when using NewFileWriter.
type Writer struct {
	format Format
	pretty bool
	output io.Writer
	closer io.Closer
}

// Option customizes a Writer.
type Option func(*Writer)

// WithPretty enables indented JSON output. It has no effect on CSV.
func WithPretty(pretty bool) Option {
	return func(w *Writer) { w.pretty = pretty }
}

// NewWriter creates a Writer with the specified format and output
// destination. If output is nil, os.Stdout is used.
func NewWriter(format Format, output io.Writer, opts ...Option) *Writer {
	if output == nil {
		output = os.Stdout
	}
	w := &Writer{
		format: format,
		output: output,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewStdoutWriter creates a Writer that outputs to stdout.
func NewStdoutWriter(format Format, opts ...Option) *Writer {
	return NewWriter(format, os.Stdout, opts...)
}

// NewFileWriter creates a Writer whose destination is the named file,
// created or truncated. An unwritable destination is an error: there is
// no stdout fallback, the failure propagates to the caller.
func NewFileWriter(format Format, path string, opts ...Option) (*Writer, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "output path is empty")
	}

	file, err := os.Create(trimmed)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to create output file %s", trimmed), err)
	}

	w := NewWriter(format, file, opts...)
	w.closer = file
	return w, nil
}

// Close releases any resources associated with the Writer.
// It's safe to call Close multiple times or on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		err := w.closer.Close()
		w.closer = nil
		return err
	}
	return nil
}

// Serialize writes the record in the configured format. The JSON form
// always ends with a single trailing newline; the CSV form ends with
// the row terminator.
func (w *Writer) Serialize(ctx context.Context, record any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch w.format {
	case FormatJSON:
		return w.serializeJSON(record)
	case FormatCSV:
		rec, err := asRecord(record)
		if err != nil {
			return err
		}
		return writeCSV(w.output, rec)
	default:
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported format: %s", w.format))
	}
}

func (w *Writer) serializeJSON(record any) error {
	encoder := json.NewEncoder(w.output)
	if w.pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func asRecord(v any) (*inventory.Record, error) {
	switch rec := v.(type) {
	case *inventory.Record:
		return rec, nil
	case inventory.Record:
		return &rec, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("csv serialization requires an inventory record, got %T", v))
	}
}
