package reader

import (
	"os"
	"path/filepath"
	"strings"
)

// Source yields the rows of one tabular dataset. The header row is not
// part of the row stream.
type Source interface {
	// Header returns the column names in dataset order.
	Header() []string

	// Next returns the next data row. It returns io.EOF after the last
	// row.
	Next() ([]string, error)

	// Reset rewinds the source to the first data row so the dataset can
	// be scanned again.
	Reset() error

	// Close releases the source's resources.
	Close() error
}

// Open opens path as a row source, picking the format by file extension:
// ".parquet" opens as parquet, everything else as CSV. The path "-"
// reads CSV from stdin into memory, since stdin cannot be rewound.
func Open(path string) (Source, error) {
	if path == "-" {
		return ReadCSV(os.Stdin)
	}
	if strings.ToLower(filepath.Ext(path)) == ".parquet" {
		return NewParquetSource(path)
	}
	return NewCSVSource(path)
}
