package query

import (
	"errors"
	"fmt"
	"io"
)

// Evaluate scans the data rows in order and calls emit with the projected
// fields of every row all predicates accept. Predicates evaluate left to
// right in FILTER order; the first false one stops the row. Rows are
// independent and the input order is preserved on output.
//
// A row whose field count differs from the header aborts the run with
// ErrMalformedRow. An emit error aborts the run with that error. Nothing
// past the first failure is processed.
func (q *CompiledQuery) Evaluate(src RowSource, emit func(fields []string) error) error {
	for rowNum := 1; ; rowNum++ {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read row %d: %w", rowNum, err)
		}
		if len(row) != q.schema.Width() {
			return fmt.Errorf("%w: row %d has %d fields, header has %d", ErrMalformedRow, rowNum, len(row), q.schema.Width())
		}

		match := true
		for _, pred := range q.predicates {
			ok, err := q.matchPredicate(pred, row)
			if err != nil {
				return fmt.Errorf("row %d: %w", rowNum, err)
			}
			if !ok {
				match = false
				break
			}
		}
		if !match {
			continue
		}

		out := make([]string, len(q.projection))
		for i, col := range q.projection {
			out[i] = row[col]
		}
		if err := emit(out); err != nil {
			return err
		}
	}
}

// matchPredicate evaluates one predicate against one row
func (q *CompiledQuery) matchPredicate(pred compiledPredicate, row []string) (bool, error) {
	switch pred.ty {
	case TypeInteger:
		left, err := q.intValue(pred.left, row)
		if err != nil {
			return false, err
		}
		right, err := q.intValue(pred.right, row)
		if err != nil {
			return false, err
		}
		return compareIntegers(left, pred.op, right)
	case TypeString:
		return compareStrings(stringValue(pred.left, row), pred.op, stringValue(pred.right, row))
	default:
		return false, fmt.Errorf("unsupported comparison type: %v", pred.ty)
	}
}

// intValue fetches an integer operand from the row. A parse failure here
// means the data changed between the inference pass and this one.
func (q *CompiledQuery) intValue(op compiledOperand, row []string) (int64, error) {
	if op.column == constOperand {
		return op.num, nil
	}
	n, ok := parseInteger(row[op.column])
	if !ok {
		return 0, fmt.Errorf("column %q: value %q is not an integer", q.schema.header[op.column], row[op.column])
	}
	return n, nil
}

// stringValue fetches a string operand from the row
func stringValue(op compiledOperand, row []string) string {
	if op.column == constOperand {
		return op.str
	}
	return row[op.column]
}

// compareIntegers applies op as a signed 64-bit numeric comparison
func compareIntegers(left int64, op TokenType, right int64) (bool, error) {
	switch op {
	case TokenEqual:
		return left == right, nil
	case TokenNotEqual:
		return left != right, nil
	case TokenLess:
		return left < right, nil
	case TokenLessEqual:
		return left <= right, nil
	case TokenGreater:
		return left > right, nil
	case TokenGreaterEqual:
		return left >= right, nil
	default:
		return false, fmt.Errorf("unsupported operator for integer comparison: %v", op)
	}
}

// compareStrings applies op as a bytewise lexicographic comparison
func compareStrings(left string, op TokenType, right string) (bool, error) {
	switch op {
	case TokenEqual:
		return left == right, nil
	case TokenNotEqual:
		return left != right, nil
	case TokenLess:
		return left < right, nil
	case TokenLessEqual:
		return left <= right, nil
	case TokenGreater:
		return left > right, nil
	case TokenGreaterEqual:
		return left >= right, nil
	default:
		return false, fmt.Errorf("unsupported operator for string comparison: %v", op)
	}
}
