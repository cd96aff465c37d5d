// Package export renders tabular report data as downloadable CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat covers formats the exporter recognizes but does
// not render (pdf, excel) as well as unknown values.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat validates a requested format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("format %q: %w", s, ErrUnsupportedFormat)
	}
}

// Table is an ordered tabular payload. Rows are positional and must match
// the header order; JSON export re-keys each row by header name.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Filename stamps an export filename with the generation time.
func Filename(reportType string, format Format, generatedAt time.Time) string {
	return fmt.Sprintf("%s_%s.%s", reportType, generatedAt.Format("20060102_150405"), format)
}

// ContentType returns the MIME type for a format.
func ContentType(format Format) string {
	if format == FormatJSON {
		return "application/json"
	}
	return "text/csv"
}

// Write streams the table to w in the requested format.
func Write(w io.Writer, table Table, format Format) error {
	switch format {
	case FormatJSON:
		records := make([]map[string]string, 0, len(table.Rows))
		for _, row := range table.Rows {
			record := make(map[string]string, len(table.Headers))
			for i, header := range table.Headers {
				if i < len(row) {
					record[header] = row[i]
				}
			}
			records = append(records, record)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		cw := csv.NewWriter(w)
		if err := cw.Write(table.Headers); err != nil {
			return err
		}
		for _, row := range table.Rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}
}
