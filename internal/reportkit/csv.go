package reportkit

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// Column describes a single CSV column for rows of type T.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// WriteCSV serialises rows to CSV using the given column layout. The header
// row is always emitted, even when rows is empty.
func WriteCSV[T any](w io.Writer, columns []Column[T], rows []T) error {
	writer := csv.NewWriter(w)
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := writer.Write(headers); err != nil {
		return err
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = col.Value(row)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ServeCSV streams rows as a CSV download with the given filename.
func ServeCSV[T any](w http.ResponseWriter, filename string, columns []Column[T], rows []T) error {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return WriteCSV(w, columns, rows)
}

// FormatAmount renders a monetary value with two decimal places for CSV cells.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatCount renders an integer cell value.
func FormatCount(v int) string {
	return strconv.Itoa(v)
}
