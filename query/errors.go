package query

import (
	"errors"
	"fmt"
)

// Compilation errors. Compile wraps these with the offending names and
// values; callers match them with errors.Is.
var (
	// ErrUnknownColumn is returned when a query names a column that is
	// not in the schema
	ErrUnknownColumn = errors.New("unknown column")

	// ErrConstantComparison is returned when both operands of a
	// predicate are literals
	ErrConstantComparison = errors.New("constant comparison is not supported")

	// ErrTypeMismatch is returned when a predicate compares two columns
	// of different types
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrLiteralTypeMismatch is returned when a literal compared against
	// an integer column is not integer-shaped
	ErrLiteralTypeMismatch = errors.New("literal type mismatch")
)

// ErrMalformedRow is returned when a data row's field count differs from
// the header's. The run aborts; rows are never skipped or padded.
var ErrMalformedRow = errors.New("malformed row")

// ParseError describes a syntax error and where in the query it happened.
type ParseError struct {
	Offset   int    // byte offset of the offending token
	Got      string // what was found, rendered for humans
	Expected string // what the parser wanted, empty for lexical errors
}

// Error formats the failure with its offset
func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Got)
	}
	return fmt.Sprintf("parse error at offset %d: expected %s, got %s", e.Offset, e.Expected, e.Got)
}
