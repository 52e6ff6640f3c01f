package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders rows as an ASCII table. Rows are buffered by
// the table writer and rendered when Flush is called.
type TableFormatter struct {
	table *tablewriter.Table
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{table: tablewriter.NewWriter(w)}
}

// WriteHeader sets the table's column headings
func (t *TableFormatter) WriteHeader(columns []string) error {
	t.table.SetHeader(columns)
	return nil
}

// WriteRow appends one row to the table
func (t *TableFormatter) WriteRow(fields []string) error {
	t.table.Append(fields)
	return nil
}

// Flush renders the complete table
func (t *TableFormatter) Flush() error {
	t.table.Render()
	return nil
}
