// Package reader provides row sources for CSV and parquet datasets.
//
// Every source implements the same small contract: a header of column
// names and a stream of data rows as field-string slices, rewindable with
// Reset so the dataset can be scanned twice.
//
// # Basic Usage
//
// Opening a file by extension:
//
//	src, err := reader.Open("data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	for {
//	    row, err := src.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(row)
//	}
//
// # Rewinding
//
// File-backed sources rewind in place: the CSV source seeks back to the
// top of the file, the parquet source opens a fresh row reader over the
// already-parsed footer. Streams that cannot seek are buffered up front:
//
//	src, err := reader.ReadCSV(os.Stdin)
//
// buffers the whole stream and rewinds in O(1).
//
// # Field Values
//
// Rows are plain []string. CSV fields arrive exactly as written, with
// quoting resolved and nothing trimmed. Parquet values are rendered to
// strings, so integer columns stay integer-shaped while floats, booleans,
// and byte arrays become their usual text forms.
//
// The package uses github.com/segmentio/parquet-go for the underlying
// parquet file operations.
package reader
