package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"exametl/internal/schema"
	"exametl/pkg/records"
)

// WriteDataset writes recs to a CSV file at path with a header row in the
// given column order. The file is written to a temporary sibling and renamed
// into place, so a failed stage never leaves a partial output file.
//
// Value formatting: nil -> empty cell, time.Time -> DateLayout, float64 ->
// shortest round-trip form, everything else via strconv/fmt.
func WriteDataset(path string, columns []string, recs []records.Record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("write header %s: %w", path, err)
	}
	row := make([]string, len(columns))
	for _, rec := range recs {
		for i, col := range columns {
			row[i] = FormatValue(rec[col])
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// FormatValue renders a record value as a CSV cell.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(schema.DateLayout)
	default:
		return fmt.Sprint(t)
	}
}
