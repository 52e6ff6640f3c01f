package reader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/parquet-go"
)

// metricRow is the fixture schema for parquet tests. Field names are in
// alphabetical order so header assertions hold regardless of how the
// writer orders columns.
type metricRow struct {
	Count int64   `parquet:"count"`
	Label string  `parquet:"label"`
	Ratio float64 `parquet:"ratio"`
	Valid bool    `parquet:"valid"`
}

// createParquetFile writes rows to a temporary parquet file and returns its path
func createParquetFile(t *testing.T, rows []metricRow) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()

	writer := parquet.NewGenericWriter[metricRow](f)
	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			t.Fatalf("failed to write test data: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	return path
}

func TestParquetSource(t *testing.T) {
	path := createParquetFile(t, []metricRow{
		{Count: 7, Label: "x", Ratio: 2.5, Valid: true},
		{Count: -3, Label: "y", Ratio: 0.5, Valid: false},
	})

	src, err := NewParquetSource(path)
	if err != nil {
		t.Fatalf("NewParquetSource() error = %v", err)
	}
	defer src.Close()

	wantHeader := []string{"count", "label", "ratio", "valid"}
	header := src.Header()
	if len(header) != len(wantHeader) {
		t.Fatalf("Header() = %v, want %v", header, wantHeader)
	}
	for i, name := range wantHeader {
		if header[i] != name {
			t.Errorf("Header()[%d] = %q, want %q", i, header[i], name)
		}
	}

	rows := readAll(t, src)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	want := [][]string{
		{"7", "x", "2.5", "true"},
		{"-3", "y", "0.5", "false"},
	}
	for i, row := range rows {
		if len(row) != len(want[i]) {
			t.Fatalf("row %d = %v, want %v", i, row, want[i])
		}
		for j := range row {
			if row[j] != want[i][j] {
				t.Errorf("row %d field %d = %q, want %q", i, j, row[j], want[i][j])
			}
		}
	}
}

func TestParquetSource_Reset(t *testing.T) {
	path := createParquetFile(t, []metricRow{
		{Count: 1, Label: "a", Ratio: 1, Valid: true},
		{Count: 2, Label: "b", Ratio: 2, Valid: false},
	})

	src, err := NewParquetSource(path)
	if err != nil {
		t.Fatalf("NewParquetSource() error = %v", err)
	}
	defer src.Close()

	first := readAll(t, src)

	if err := src.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	second := readAll(t, src)
	if len(first) != len(second) {
		t.Fatalf("got %d then %d rows across Reset", len(first), len(second))
	}
	for i := range first {
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Errorf("row %d field %d changed across Reset: %q vs %q", i, j, first[i][j], second[i][j])
			}
		}
	}
}

func TestParquetSource_Empty(t *testing.T) {
	path := createParquetFile(t, nil)

	src, err := NewParquetSource(path)
	if err != nil {
		t.Fatalf("NewParquetSource() error = %v", err)
	}
	defer src.Close()

	if len(src.Header()) != 4 {
		t.Errorf("Header() = %v, want 4 columns", src.Header())
	}
	if _, err := src.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() on empty file = %v, want io.EOF", err)
	}
}

func TestNewParquetSource_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := NewParquetSource(filepath.Join(t.TempDir(), "nope.parquet")); err == nil {
			t.Error("NewParquetSource() succeeded, want error")
		}
	})

	t.Run("not a parquet file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.parquet")
		if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
		if _, err := NewParquetSource(path); err == nil {
			t.Error("NewParquetSource() succeeded on CSV content, want error")
		}
	})
}

func TestParquetSource_Close(t *testing.T) {
	path := createParquetFile(t, []metricRow{{Count: 1, Label: "a", Ratio: 1, Valid: true}})

	src, err := NewParquetSource(path)
	if err != nil {
		t.Fatalf("NewParquetSource() error = %v", err)
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
