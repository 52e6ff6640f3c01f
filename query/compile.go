package query

import "fmt"

// CompiledQuery is a query bound to a schema: projected names resolved to
// column positions and every predicate resolved to exactly one comparison
// type, with constants pre-converted. It holds no row data and is
// immutable after Compile, so it is safe for concurrent use.
type CompiledQuery struct {
	schema     *Schema
	projection []int
	header     []string
	predicates []compiledPredicate
}

// compiledPredicate is one FILTER comparison bound to the schema
type compiledPredicate struct {
	ty    Type
	op    TokenType
	left  compiledOperand
	right compiledOperand
}

// compiledOperand is a column position or a constant already converted to
// the predicate's comparison type
type compiledOperand struct {
	column int // column index, or constOperand
	str    string
	num    int64
}

const constOperand = -1

// Compile binds a parsed query to an inferred schema. It reads no data.
//
// Rejections, first failure wins, projections checked before predicates,
// both left to right:
//   - a name not in the schema: ErrUnknownColumn
//   - both operands literal: ErrConstantComparison
//   - two columns of different types: ErrTypeMismatch
//   - a literal that is not integer-shaped compared against an integer
//     column: ErrLiteralTypeMismatch
func Compile(q *Query, schema *Schema) (*CompiledQuery, error) {
	projection := make([]int, len(q.Projections))
	header := make([]string, len(q.Projections))
	for i, name := range q.Projections {
		col, ok := schema.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		projection[i] = col
		header[i] = name
	}

	predicates := make([]compiledPredicate, 0, len(q.Filters))
	for _, pred := range q.Filters {
		compiled, err := compilePredicate(pred, schema)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, compiled)
	}

	return &CompiledQuery{
		schema:     schema,
		projection: projection,
		header:     header,
		predicates: predicates,
	}, nil
}

// OutputHeader returns the projected column names in query order,
// duplicates preserved
func (q *CompiledQuery) OutputHeader() []string {
	return q.header
}

// compilePredicate resolves one predicate against the schema
func compilePredicate(pred Predicate, schema *Schema) (compiledPredicate, error) {
	if pred.Left.Kind == OperandLiteral && pred.Right.Kind == OperandLiteral {
		return compiledPredicate{}, fmt.Errorf("%w: %s %s %s", ErrConstantComparison, pred.Left, pred.Op, pred.Right)
	}

	left, err := resolveColumn(pred.Left, schema)
	if err != nil {
		return compiledPredicate{}, err
	}
	right, err := resolveColumn(pred.Right, schema)
	if err != nil {
		return compiledPredicate{}, err
	}

	// At least one side is a column; the predicate compares at that
	// column's type. Two columns must agree.
	var ty Type
	switch {
	case left.column != constOperand && right.column != constOperand:
		leftType, rightType := schema.types[left.column], schema.types[right.column]
		if leftType != rightType {
			return compiledPredicate{}, fmt.Errorf("%w: column %q is %s, column %q is %s",
				ErrTypeMismatch, pred.Left.Name, leftType, pred.Right.Name, rightType)
		}
		ty = leftType
	case left.column != constOperand:
		ty = schema.types[left.column]
	default:
		ty = schema.types[right.column]
	}

	if err := bindConstant(&left, pred.Left, ty, pred.Right.Name); err != nil {
		return compiledPredicate{}, err
	}
	if err := bindConstant(&right, pred.Right, ty, pred.Left.Name); err != nil {
		return compiledPredicate{}, err
	}

	return compiledPredicate{ty: ty, op: pred.Op, left: left, right: right}, nil
}

// resolveColumn resolves a column operand to its position. Literal
// operands pass through for bindConstant.
func resolveColumn(op Operand, schema *Schema) (compiledOperand, error) {
	if op.Kind != OperandColumn {
		return compiledOperand{column: constOperand}, nil
	}
	col, ok := schema.Column(op.Name)
	if !ok {
		return compiledOperand{}, fmt.Errorf("%w: %q", ErrUnknownColumn, op.Name)
	}
	return compiledOperand{column: col}, nil
}

// bindConstant converts a literal operand to the comparison type.
// columnName is the column on the other side of the predicate, named in
// the error.
func bindConstant(dst *compiledOperand, op Operand, ty Type, columnName string) error {
	if op.Kind != OperandLiteral {
		return nil
	}

	switch ty {
	case TypeInteger:
		n, ok := parseInteger(op.Literal)
		if !ok {
			return fmt.Errorf("%w: %q is not comparable to integer column %q",
				ErrLiteralTypeMismatch, op.Literal, columnName)
		}
		dst.num = n
	case TypeString:
		dst.str = op.Literal
	}
	return nil
}
