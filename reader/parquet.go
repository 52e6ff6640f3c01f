package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"
)

// ParquetSource streams rows from a parquet file. The header is the
// file schema's field names in schema order, and every value is rendered
// as a field string, so integer parquet columns round-trip as
// integer-shaped text. Only flat schemas are supported.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetSource struct {
	file   *os.File
	pqFile *parquet.File
	rows   *parquet.Reader
	header []string
}

// NewParquetSource creates a row source for the specified parquet file.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
func NewParquetSource(path string) (*ParquetSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	header := make([]string, len(fields))
	for i, field := range fields {
		header[i] = field.Name()
	}

	return &ParquetSource{
		file:   file,
		pqFile: pqFile,
		rows:   parquet.NewReader(pqFile),
		header: header,
	}, nil
}

// Header returns the schema's field names
func (s *ParquetSource) Header() []string {
	return s.header
}

// Next returns the next row with every value rendered as a field string
func (s *ParquetSource) Next() ([]string, error) {
	row := make(map[string]interface{})
	if err := s.rows.Read(&row); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	fields := make([]string, len(s.header))
	for i, name := range s.header {
		fields[i] = formatValue(row[name])
	}
	return fields, nil
}

// Reset opens a fresh row reader over the already-parsed file footer
func (s *ParquetSource) Reset() error {
	if err := s.rows.Close(); err != nil {
		return fmt.Errorf("failed to close row reader: %w", err)
	}
	s.rows = parquet.NewReader(s.pqFile)
	return nil
}

// Close closes the row reader and the underlying file. It is safe to
// call Close multiple times.
func (s *ParquetSource) Close() error {
	if s.file == nil {
		return nil
	}
	s.rows.Close()
	err := s.file.Close()
	s.file = nil
	return err
}

// formatValue renders a parquet value as a CSV field string. Null values
// become the empty string.
func formatValue(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
