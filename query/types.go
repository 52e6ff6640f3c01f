package query

import "strconv"

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenProject TokenType = iota
	TokenFilter

	// Operators
	TokenEqual        // =
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Literals
	TokenString
	TokenIdent

	// Delimiters
	TokenComma // ,

	// Special
	TokenEOF
	TokenError
)

// String returns the source spelling for keywords and operators and a
// readable name for the rest. Error messages rely on it.
func (t TokenType) String() string {
	switch t {
	case TokenProject:
		return "PROJECT"
	case TokenFilter:
		return "FILTER"
	case TokenEqual:
		return "="
	case TokenNotEqual:
		return "!="
	case TokenLess:
		return "<"
	case TokenGreater:
		return ">"
	case TokenLessEqual:
		return "<="
	case TokenGreaterEqual:
		return ">="
	case TokenString:
		return "string literal"
	case TokenIdent:
		return "identifier"
	case TokenComma:
		return ","
	case TokenEOF:
		return "end of query"
	case TokenError:
		return "error"
	default:
		return "unknown"
	}
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
	Pos   int // byte offset of the token in the query string
}

// Query represents a parsed query
type Query struct {
	Projections []string    // Columns to emit, order and duplicates preserved
	Filters     []Predicate // Conjunction, evaluated left to right; empty matches every row
}

// Predicate represents a single comparison in the FILTER list
type Predicate struct {
	Left  Operand
	Op    TokenType // One of the six comparison operators
	Right Operand
}

// OperandKind discriminates the two operand forms
type OperandKind int

const (
	OperandColumn  OperandKind = iota // column reference
	OperandLiteral                    // double-quoted string literal
)

// Operand is a column reference or a string literal in a predicate
type Operand struct {
	Kind    OperandKind
	Name    string // column name when Kind is OperandColumn
	Literal string // raw literal bytes when Kind is OperandLiteral
	Pos     int    // byte offset of the operand in the query string
}

// String returns the operand as it appeared in the query
func (o Operand) String() string {
	if o.Kind == OperandLiteral {
		return strconv.Quote(o.Literal)
	}
	return o.Name
}
