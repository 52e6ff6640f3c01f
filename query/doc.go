// Package query provides parsing, type inference, compilation, and
// evaluation for PROJECT/FILTER queries over tabular string data.
//
// The query language selects columns and filters rows:
//
//	PROJECT name, city FILTER age >= "21", city != "unknown"
//
// Keywords are case-sensitive. Identifiers are ASCII letters, digits, and
// underscores. The only literal form is a double-quoted string with no
// escape processing; whether a literal acts as text or as a number is
// decided by the type of the column it is compared against. The FILTER
// clause is optional: a query without one matches every row.
//
// # Two Passes
//
// Evaluation makes exactly two passes over the dataset. The first pass
// infers a type for every column:
//
//	schema, err := query.InferSchema(header, src)
//
// A column is an integer column only when every one of its values is
// integer-shaped (optional leading '-', ASCII digits, fits in a signed
// 64-bit integer); anything else makes it a string column. Inference
// always sees the complete dataset, so a single stray value anywhere
// flips the column to string.
//
// Between the passes the parsed query is bound to the schema:
//
//	q, err := query.Parse(`PROJECT name FILTER age > "30"`)
//	compiled, err := query.Compile(q, schema)
//
// Compile resolves names to column positions, assigns each predicate its
// comparison type, and rejects queries that reference unknown columns,
// compare two literals, compare columns of different types, or compare a
// non-numeric literal against an integer column. A compiled query never
// fails on well-typed data.
//
// The second pass streams rows through the compiled query:
//
//	err := compiled.Evaluate(src, func(fields []string) error {
//	    return formatter.WriteRow(fields)
//	})
//
// # Comparison Semantics
//
// Integer predicates compare signed 64-bit values, so "9" < "10". String
// predicates compare bytes lexicographically, so "10" < "9". The same six
// operators (=, !=, <, <=, >, >=) apply to both.
//
// # Error Handling
//
// Syntax errors are *ParseError values carrying the byte offset of the
// offending token. Compile failures wrap the sentinel errors
// ErrUnknownColumn, ErrConstantComparison, ErrTypeMismatch, and
// ErrLiteralTypeMismatch. A data row whose width differs from the header
// aborts either pass with ErrMalformedRow; rows are never skipped or
// padded.
package query
