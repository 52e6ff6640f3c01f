// Package output provides streaming formatters for query results.
//
// This package defines the Formatter interface and provides
// implementations for common output formats. All formatters consume a
// header followed by rows of string fields, so they can be driven
// directly by a streaming result producer without buffering the full
// result set (the table formatter is the exception and buffers
// internally, since column widths depend on every row).
//
// # Supported Formats
//
//   - CSV: Comma-separated values with header row
//   - JSON Lines: One JSON object per line (suitable for streaming)
//   - Table: Human-readable ASCII table
//
// # Basic Usage
//
// Using the CSV formatter:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.WriteHeader(columns); err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range rows {
//	    if err := formatter.WriteRow(row); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	if err := formatter.Flush(); err != nil {
//	    log.Fatal(err)
//	}
//
// Selecting a formatter by name:
//
//	formatter, err := output.NewFormatter("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Formatters write to any io.Writer. Write to a bytes buffer to get
// string output:
//
//	var buf bytes.Buffer
//	formatter := output.NewCSVFormatter(&buf)
//
// # Field Values
//
// Formatters receive fields as strings and write them without
// modification. The CSV formatter quotes fields only where the format
// requires it; the JSON formatter applies standard JSON string
// escaping.
package output
