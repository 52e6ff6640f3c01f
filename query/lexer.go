package query

import "fmt"

// Lexer tokenizes query strings
type Lexer struct {
	input string
	pos   int
	ch    byte
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next byte
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

// peekChar looks at the next byte without advancing
func (l *Lexer) peekChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a double-quoted string literal. There is no escape
// processing: the literal value is the raw bytes between the quotes, so
// a literal cannot contain a double quote. Reports false when the
// closing quote is missing.
func (l *Lexer) readString() (string, bool) {
	l.readChar() // skip opening quote
	start := l.pos - 1

	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}

	if l.ch == 0 {
		return "", false
	}

	value := l.input[start : l.pos-1]
	l.readChar() // skip closing quote
	return value, true
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.pos - 1
	for isIdentChar(l.ch) {
		l.readChar()
	}
	return l.input[start : l.pos-1]
}

// isIdentChar reports whether ch can appear in an identifier. Identifiers
// are ASCII letters, digits, and underscores; they may start with a digit
// since the grammar has no numeric tokens.
func isIdentChar(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' || ch == '_'
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.pos - 1
	if pos > len(l.input) {
		pos = len(l.input)
	}

	var tok Token

	switch l.ch {
	case 0:
		tok = Token{Type: TokenEOF, Value: "", Pos: pos}
	case '=':
		tok = Token{Type: TokenEqual, Value: "=", Pos: pos}
		l.readChar()
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenNotEqual, Value: "!=", Pos: pos}
			l.readChar()
		} else {
			tok = Token{Type: TokenError, Value: `invalid character "!"`, Pos: pos}
			l.readChar()
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenLessEqual, Value: "<=", Pos: pos}
			l.readChar()
		} else {
			tok = Token{Type: TokenLess, Value: "<", Pos: pos}
			l.readChar()
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenGreaterEqual, Value: ">=", Pos: pos}
			l.readChar()
		} else {
			tok = Token{Type: TokenGreater, Value: ">", Pos: pos}
			l.readChar()
		}
	case '"':
		value, ok := l.readString()
		if !ok {
			tok = Token{Type: TokenError, Value: "unterminated string literal", Pos: pos}
		} else {
			tok = Token{Type: TokenString, Value: value, Pos: pos}
		}
	case ',':
		tok = Token{Type: TokenComma, Value: ",", Pos: pos}
		l.readChar()
	default:
		if isIdentChar(l.ch) {
			value := l.readIdentifier()
			tok = Token{Type: identifierType(value), Value: value, Pos: pos}
		} else {
			tok = Token{Type: TokenError, Value: fmt.Sprintf("invalid character %q", string(l.ch)), Pos: pos}
			l.readChar()
		}
	}

	return tok
}

// identifierType determines if an identifier is a keyword. Keywords are
// case-sensitive: "project" is an ordinary identifier.
func identifierType(ident string) TokenType {
	switch ident {
	case "PROJECT":
		return TokenProject
	case "FILTER":
		return TokenFilter
	}
	return TokenIdent
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}

	return tokens
}
