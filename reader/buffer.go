package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Buffered is an in-memory source. It backs inputs that cannot be
// rewound, like stdin, and interactive sessions that replay the dataset
// for every query.
type Buffered struct {
	header []string
	rows   [][]string
	pos    int
}

// NewBuffered wraps already-loaded rows
func NewBuffered(header []string, rows [][]string) *Buffered {
	return &Buffered{header: header, rows: rows}
}

// Buffer drains src into memory. The source is read to its end but not
// closed.
func Buffer(src Source) (*Buffered, error) {
	var rows [][]string
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return &Buffered{header: src.Header(), rows: rows}, nil
}

// ReadCSV parses an entire CSV stream into memory, header row first.
func ReadCSV(r io.Reader) (*Buffered, error) {
	rows := csv.NewReader(r)
	rows.FieldsPerRecord = -1

	header, err := rows.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var data [][]string
	for {
		row, err := rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		data = append(data, row)
	}

	return &Buffered{header: header, rows: data}, nil
}

// Header returns the column names
func (b *Buffered) Header() []string {
	return b.header
}

// Next returns the next buffered row
func (b *Buffered) Next() ([]string, error) {
	if b.pos >= len(b.rows) {
		return nil, io.EOF
	}
	row := b.rows[b.pos]
	b.pos++
	return row, nil
}

// Reset rewinds to the first row
func (b *Buffered) Reset() error {
	b.pos = 0
	return nil
}

// Close is a no-op; buffered data has nothing to release
func (b *Buffered) Close() error {
	return nil
}
