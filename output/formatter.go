package output

import (
	"fmt"
	"io"
)

// Formatter defines the interface for streaming output formatters.
//
// The header is written once, rows follow one at a time, and Flush
// completes the output. Formatters that need the full result set to
// lay out their output (such as the table formatter) buffer rows
// internally and write everything on Flush.
type Formatter interface {
	// WriteHeader writes the column names
	WriteHeader(columns []string) error

	// WriteRow writes one data row
	WriteRow(fields []string) error

	// Flush completes the output and writes anything still buffered
	Flush() error
}

// NewFormatter creates a formatter for the named format writing to w.
//
// Supported formats are "csv", "json", "jsonl", and "table". The
// "json" and "jsonl" names both select JSON Lines output.
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported formats: csv, json, jsonl, table)", format)
	}
}
