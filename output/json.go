package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter outputs rows as JSON Lines (one JSON object per line)
type JSONFormatter struct {
	encoder *json.Encoder
	columns []string
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{encoder: json.NewEncoder(w)}
}

// WriteHeader records the column names used as object keys
func (j *JSONFormatter) WriteHeader(columns []string) error {
	j.columns = columns
	return nil
}

// WriteRow writes one row as a JSON object. Object keys are emitted in
// sorted order, and a column that appears more than once collapses to
// a single key.
func (j *JSONFormatter) WriteRow(fields []string) error {
	if len(fields) != len(j.columns) {
		return fmt.Errorf("row has %d fields, header has %d", len(fields), len(j.columns))
	}

	row := make(map[string]string, len(j.columns))
	for i, name := range j.columns {
		row[name] = fields[i]
	}
	return j.encoder.Encode(row)
}

// Flush is a no-op; each row is written as it arrives
func (j *JSONFormatter) Flush() error {
	return nil
}
