package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVSource streams rows from a CSV file. Quoted fields follow standard
// CSV quoting; field values are never trimmed. Ragged rows are passed
// through as read, since row width is validated downstream.
type CSVSource struct {
	file   *os.File
	rows   *csv.Reader
	header []string
}

// NewCSVSource opens a CSV file and reads its header row. A file without
// a header row is an error.
func NewCSVSource(path string) (*CSVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	src := &CSVSource{file: file}
	if err := src.rewind(); err != nil {
		file.Close()
		return nil, err
	}
	return src, nil
}

// rewind seeks to the top of the file and re-reads the header row
func (s *CSVSource) rewind() error {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	rows := csv.NewReader(s.file)
	rows.FieldsPerRecord = -1

	header, err := rows.Read()
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	s.rows = rows
	s.header = header
	return nil
}

// Header returns the column names from the header row
func (s *CSVSource) Header() []string {
	return s.header
}

// Next returns the next data row
func (s *CSVSource) Next() ([]string, error) {
	row, err := s.rows.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read row: %w", err)
	}
	return row, nil
}

// Reset rewinds to the first data row
func (s *CSVSource) Reset() error {
	return s.rewind()
}

// Close closes the underlying file. It is safe to call Close multiple
// times.
func (s *CSVSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
