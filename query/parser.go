package query

import "strconv"

// Parser parses token streams into a Query AST
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// expect checks that the current token matches and advances past it
func (p *Parser) expect(tokType TokenType, expected string) error {
	if p.current().Type != tokType {
		return p.errHere(expected)
	}
	p.advance()
	return nil
}

// errHere builds a ParseError at the current token. Lexical error tokens
// carry their own description and win over the parser's expectation.
func (p *Parser) errHere(expected string) *ParseError {
	tok := p.current()
	if tok.Type == TokenError {
		return &ParseError{Offset: tok.Pos, Got: tok.Value}
	}
	return &ParseError{Offset: tok.Pos, Got: describeToken(tok), Expected: expected}
}

// describeToken renders a token for error messages
func describeToken(tok Token) string {
	if tok.Type == TokenEOF {
		return "end of query"
	}
	return strconv.Quote(tok.Value)
}

// Parse parses a query string:
//
//	PROJECT col, col, ... FILTER pred, pred, ...
//
// The FILTER clause is optional; omitting it yields a query with no
// predicates, which matches every row. The FILTER keyword followed by no
// predicates is a syntax error. Trailing input after the query is a
// syntax error.
func Parse(query string) (*Query, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	tokens := Tokenize(query)

	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	parser := NewParser(tokens)
	q, err := parser.parseQuery()
	if err != nil {
		return nil, err
	}

	// Everything must be consumed; leftovers mean the query continued
	// past a well-formed prefix.
	if parser.current().Type != TokenEOF {
		return nil, parser.errHere("end of query")
	}

	return q, nil
}

// parseQuery parses: PROJECT col_list [FILTER pred_list]
func (p *Parser) parseQuery() (*Query, error) {
	if err := p.expect(TokenProject, `"PROJECT"`); err != nil {
		return nil, err
	}

	projections, err := p.parseColumnList()
	if err != nil {
		return nil, err
	}

	q := &Query{Projections: projections}

	if p.current().Type == TokenFilter {
		p.advance()
		q.Filters, err = p.parsePredicateList()
		if err != nil {
			return nil, err
		}
	}

	return q, nil
}

// parseColumnList parses: ident ("," ident)*
func (p *Parser) parseColumnList() ([]string, error) {
	var cols []string

	for {
		tok := p.current()
		if tok.Type != TokenIdent {
			return nil, p.errHere("column name")
		}
		if err := ValidateColumnName(tok.Value); err != nil {
			return nil, err
		}
		cols = append(cols, tok.Value)
		p.advance()

		if p.current().Type != TokenComma {
			break
		}
		p.advance()
	}

	return cols, nil
}

// parsePredicateList parses: predicate ("," predicate)*
func (p *Parser) parsePredicateList() ([]Predicate, error) {
	var preds []Predicate

	for {
		pred, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)

		if p.current().Type != TokenComma {
			break
		}
		p.advance()
	}

	return preds, nil
}

// parsePredicate parses: operand op operand
func (p *Parser) parsePredicate() (Predicate, error) {
	left, err := p.parseOperand()
	if err != nil {
		return Predicate{}, err
	}

	op := p.current()
	if !isComparisonOperator(op.Type) {
		return Predicate{}, p.errHere("comparison operator")
	}
	p.advance()

	right, err := p.parseOperand()
	if err != nil {
		return Predicate{}, err
	}

	return Predicate{Left: left, Op: op.Type, Right: right}, nil
}

// parseOperand parses: ident | string_literal
func (p *Parser) parseOperand() (Operand, error) {
	tok := p.current()

	switch tok.Type {
	case TokenIdent:
		if err := ValidateColumnName(tok.Value); err != nil {
			return Operand{}, err
		}
		p.advance()
		return Operand{Kind: OperandColumn, Name: tok.Value, Pos: tok.Pos}, nil
	case TokenString:
		p.advance()
		return Operand{Kind: OperandLiteral, Literal: tok.Value, Pos: tok.Pos}, nil
	default:
		return Operand{}, p.errHere("column name or string literal")
	}
}

// isComparisonOperator reports whether t is one of the six operators
func isComparisonOperator(t TokenType) bool {
	switch t {
	case TokenEqual, TokenNotEqual, TokenLess, TokenLessEqual, TokenGreater, TokenGreaterEqual:
		return true
	}
	return false
}
