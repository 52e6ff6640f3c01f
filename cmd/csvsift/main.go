package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/vegasq/csvsift/output"
	"github.com/vegasq/csvsift/query"
	"github.com/vegasq/csvsift/reader"
)

var (
	queryFlag       = flag.String("q", "", "Query to run (see Examples below)")
	formatFlag      = flag.String("f", "csv", "Output format: csv, json, jsonl, table")
	limitFlag       = flag.Int("limit", 0, "Limit number of rows (0 = unlimited)")
	interactiveFlag = flag.Bool("i", false, "Start an interactive query shell")
)

// errLimitReached stops evaluation once -limit rows have been written.
var errLimitReached = errors.New("limit reached")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.csv|file.parquet|->\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to project and filter columns of CSV and Parquet files.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the file argument.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"PROJECT name, age\" data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q 'PROJECT name FILTER age >= \"30\"' data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f table -q \"PROJECT name\" data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat data.csv | %s -q \"PROJECT name\" -\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i data.csv\n", os.Args[0])
	}

	flag.Parse()

	// Validate flag values
	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}

	// Validate flag combinations
	if *interactiveFlag && *queryFlag != "" {
		fmt.Fprintf(os.Stderr, "Error: -i and -q cannot be used together\n")
		os.Exit(1)
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing input file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	if *interactiveFlag {
		if filename == "-" {
			fmt.Fprintf(os.Stderr, "Error: interactive mode cannot read data from stdin\n")
			os.Exit(1)
		}
		if err := runInteractive(filename, *formatFlag, *limitFlag, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Parse the query up front; a bad query never touches the input.
	var q *query.Query
	if *queryFlag != "" {
		var err error
		q, err = query.Parse(*queryFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	src, err := reader.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	// Without -q every column is projected and every row matches.
	if q == nil {
		q = projectAll(src.Header())
	}

	schema, err := query.InferSchema(src.Header(), src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runQuery(q, src, schema, *formatFlag, *limitFlag, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// projectAll builds the implicit query used when -q is omitted
func projectAll(header []string) *query.Query {
	return &query.Query{Projections: append([]string(nil), header...)}
}

// runQuery compiles q against schema, rewinds src, and streams matching
// rows to w. Nothing is written until compilation has succeeded.
func runQuery(q *query.Query, src reader.Source, schema *query.Schema, format string, limit int, w io.Writer) error {
	compiled, err := query.Compile(q, schema)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(format, w)
	if err != nil {
		return err
	}

	if err := src.Reset(); err != nil {
		return fmt.Errorf("failed to rewind input: %w", err)
	}

	if err := formatter.WriteHeader(compiled.OutputHeader()); err != nil {
		return err
	}

	written := 0
	err = compiled.Evaluate(src, func(fields []string) error {
		if err := formatter.WriteRow(fields); err != nil {
			return err
		}
		written++
		if limit > 0 && written >= limit {
			return errLimitReached
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return err
	}

	return formatter.Flush()
}

// runInteractive loads the dataset once and evaluates queries against it
// in a read-eval-print loop until EOF or an exit command.
func runInteractive(filename, format string, limit int, w io.Writer) error {
	file, err := reader.Open(filename)
	if err != nil {
		return err
	}

	// Pull the dataset into memory so every query rewinds instantly.
	src, err := reader.Buffer(file)
	file.Close()
	if err != nil {
		return err
	}

	schema, err := query.InferSchema(src.Header(), src)
	if err != nil {
		return err
	}

	// Shell chrome goes to stderr so piped results stay clean.
	fmt.Fprintf(os.Stderr, "Loaded %s: %d columns\n", filename, schema.Width())
	for i, name := range schema.Header() {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", name, schema.Types()[i])
	}
	fmt.Fprintf(os.Stderr, "Type a query, or %q to leave.\n", "exit")

	rl, err := readline.New("csvsift> ")
	if err != nil {
		return fmt.Errorf("failed to start interactive shell: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		q, err := query.Parse(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := runQuery(q, src, schema, format, limit, w); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
