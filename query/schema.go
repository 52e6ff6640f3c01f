package query

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Type is the inferred type of a column. There are exactly two cases.
type Type int

const (
	// TypeInteger means every value in the column is integer-shaped
	TypeInteger Type = iota

	// TypeString is every other column
	TypeString
)

// String returns "integer" or "string"
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// RowSource yields data rows one at a time. Next returns io.EOF after the
// last row. The header row is not part of the stream.
type RowSource interface {
	Next() ([]string, error)
}

// Schema is the inferred shape of a dataset: the header names and one
// type per column.
type Schema struct {
	header []string
	types  []Type
	index  map[string]int
}

// InferSchema scans every data row and types each column. A column is
// TypeInteger only when all of its values are integer-shaped; a single
// counterexample makes it TypeString. A dataset with no data rows types
// every column TypeInteger, since the condition holds vacuously.
//
// A row whose field count differs from the header aborts inference with
// ErrMalformedRow.
func InferSchema(header []string, src RowSource) (*Schema, error) {
	types := make([]Type, len(header))

	for rowNum := 1; ; rowNum++ {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum, err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrMalformedRow, rowNum, len(row), len(header))
		}

		for i, field := range row {
			if types[i] == TypeInteger && !isIntegerShaped(field) {
				types[i] = TypeString
			}
		}
	}

	// Duplicate header names resolve to their first occurrence.
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	return &Schema{header: header, types: types, index: index}, nil
}

// Header returns the column names in dataset order
func (s *Schema) Header() []string {
	return s.header
}

// Types returns the inferred column types, parallel to Header
func (s *Schema) Types() []Type {
	return s.types
}

// Width returns the number of columns
func (s *Schema) Width() int {
	return len(s.header)
}

// Column resolves a column name to its index. Lookup is exact and
// case-sensitive.
func (s *Schema) Column(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// parseInteger parses an integer-shaped value. A value is integer-shaped
// when it is a nonempty run of ASCII digits with at most a single leading
// '-', and it fits a signed 64-bit integer. No surrounding whitespace, no
// '+', no decimal point. Leading zeros are fine.
func parseInteger(s string) (int64, bool) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isIntegerShaped reports whether parseInteger accepts s
func isIntegerShaped(s string) bool {
	_, ok := parseInteger(s)
	return ok
}
