package query

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_ProjectOnly(t *testing.T) {
	q, err := Parse("PROJECT aaaa")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(q.Projections) != 1 || q.Projections[0] != "aaaa" {
		t.Errorf("Projections = %v, want [aaaa]", q.Projections)
	}
	if len(q.Filters) != 0 {
		t.Errorf("Filters = %v, want none (match-all)", q.Filters)
	}
}

func TestParse_ProjectionOrderAndDuplicates(t *testing.T) {
	q, err := Parse("PROJECT bbbb, aaaa, bbbb")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"bbbb", "aaaa", "bbbb"}
	if len(q.Projections) != len(want) {
		t.Fatalf("got %d projections, want %d", len(q.Projections), len(want))
	}
	for i, name := range want {
		if q.Projections[i] != name {
			t.Errorf("projection %d = %q, want %q", i, q.Projections[i], name)
		}
	}
}

func TestParse_Filters(t *testing.T) {
	q, err := Parse(`PROJECT aaaa, aaaa FILTER aaaa > "0", cccc >= aaaa`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(q.Filters) != 2 {
		t.Fatalf("got %d predicates, want 2", len(q.Filters))
	}

	first := q.Filters[0]
	if first.Left.Kind != OperandColumn || first.Left.Name != "aaaa" {
		t.Errorf("first left operand = %v, want column aaaa", first.Left)
	}
	if first.Op != TokenGreater {
		t.Errorf("first operator = %v, want >", first.Op)
	}
	if first.Right.Kind != OperandLiteral || first.Right.Literal != "0" {
		t.Errorf("first right operand = %v, want literal \"0\"", first.Right)
	}

	second := q.Filters[1]
	if second.Left.Kind != OperandColumn || second.Left.Name != "cccc" {
		t.Errorf("second left operand = %v, want column cccc", second.Left)
	}
	if second.Op != TokenGreaterEqual {
		t.Errorf("second operator = %v, want >=", second.Op)
	}
	if second.Right.Kind != OperandColumn || second.Right.Name != "aaaa" {
		t.Errorf("second right operand = %v, want column aaaa", second.Right)
	}
}

func TestParse_Operators(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  TokenType
	}{
		{name: "equal", query: `PROJECT a FILTER a = "1"`, want: TokenEqual},
		{name: "not equal", query: `PROJECT a FILTER a != "1"`, want: TokenNotEqual},
		{name: "less", query: `PROJECT a FILTER a < "1"`, want: TokenLess},
		{name: "less or equal", query: `PROJECT a FILTER a <= "1"`, want: TokenLessEqual},
		{name: "greater", query: `PROJECT a FILTER a > "1"`, want: TokenGreater},
		{name: "greater or equal", query: `PROJECT a FILTER a >= "1"`, want: TokenGreaterEqual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.query)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(q.Filters) != 1 {
				t.Fatalf("got %d predicates, want 1", len(q.Filters))
			}
			if q.Filters[0].Op != tt.want {
				t.Errorf("operator = %v, want %v", q.Filters[0].Op, tt.want)
			}
		})
	}
}

func TestParse_LiteralOperands(t *testing.T) {
	// Two literals parse fine; rejecting them is the compiler's job.
	q, err := Parse(`PROJECT a FILTER "x" = "y"`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	pred := q.Filters[0]
	if pred.Left.Kind != OperandLiteral || pred.Right.Kind != OperandLiteral {
		t.Errorf("operand kinds = %v/%v, want literal/literal", pred.Left.Kind, pred.Right.Kind)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "empty query", query: ""},
		{name: "missing PROJECT", query: `FILTER a = "1"`},
		{name: "lowercase project", query: "project aaaa"},
		{name: "no columns", query: "PROJECT"},
		{name: "leading comma", query: "PROJECT , aaaa"},
		{name: "trailing comma", query: "PROJECT aaaa,"},
		{name: "literal in projection", query: `PROJECT "aaaa"`},
		{name: "keyword as column", query: "PROJECT FILTER"},
		{name: "FILTER with no predicates", query: "PROJECT aaaa FILTER"},
		{name: "missing operator", query: `PROJECT aaaa FILTER aaaa "1"`},
		{name: "missing right operand", query: "PROJECT aaaa FILTER aaaa >"},
		{name: "doubled operator", query: `PROJECT aaaa FILTER aaaa > > "1"`},
		{name: "trailing predicate comma", query: `PROJECT aaaa FILTER aaaa = "1",`},
		{name: "trailing tokens", query: "PROJECT aaaa bbbb"},
		{name: "trailing tokens after filter", query: `PROJECT aaaa FILTER aaaa = "1" bbbb`},
		{name: "unterminated literal", query: `PROJECT aaaa FILTER aaaa = "1`},
		{name: "invalid character", query: "PROJECT a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.query)
			if err == nil {
				t.Fatalf("Parse(%q) = %+v, want error", tt.query, q)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error type = %T, want *ParseError", err)
			}
		})
	}
}

func TestParse_ErrorDetails(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantOffset   int
		wantContains string
	}{
		{
			name:         "missing PROJECT reports offset zero",
			query:        "aaaa",
			wantOffset:   0,
			wantContains: `expected "PROJECT"`,
		},
		{
			name:         "truncated query points past the end",
			query:        "PROJECT aaaa FILTER aaaa >",
			wantOffset:   26,
			wantContains: "end of query",
		},
		{
			name:         "unterminated literal keeps the lexer message",
			query:        `PROJECT a FILTER a = "x`,
			wantOffset:   21,
			wantContains: "unterminated string literal",
		},
		{
			name:         "trailing token names the leftover",
			query:        "PROJECT aaaa bbbb",
			wantOffset:   13,
			wantContains: `got "bbbb"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.query)
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if parseErr.Offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", parseErr.Offset, tt.wantOffset)
			}
			if !strings.Contains(err.Error(), tt.wantContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantContains)
			}
		})
	}
}

func TestParse_QueryTooLong(t *testing.T) {
	long := "PROJECT " + strings.Repeat("a", MaxQueryLength)
	_, err := Parse(long)
	if !errors.Is(err, ErrQueryTooLong) {
		t.Errorf("error = %v, want ErrQueryTooLong", err)
	}
}

func TestParse_ColumnNameTooLong(t *testing.T) {
	_, err := Parse("PROJECT " + strings.Repeat("a", MaxColumnNameLength+1))
	if !errors.Is(err, ErrColumnNameTooLong) {
		t.Errorf("error = %v, want ErrColumnNameTooLong", err)
	}
}
