// Package csvio reads and writes the CSV files that connect pipeline stages
// (UTF-8, header row, comma-separated). Reading is schema-aware: string
// cells are coerced to the contract's logical types on the way in, so every
// stage sees typed records regardless of which file it starts from.
package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"exametl/internal/schema"
	"exametl/internal/transformer/builtin"
	"exametl/pkg/records"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// skipLogLimit caps per-row skip logging so a pathological file cannot flood
// the log; skips beyond the limit are still counted.
const skipLogLimit = 20

// ReadDataset reads the CSV file at path and returns typed records plus the
// number of rows skipped for width mismatches or read errors.
//
// The header is normalized (lowercased, spaces to underscores, BOM
// stripped). Every column of the contract must be present; otherwise a
// *StructuralError is returned and no rows are read. Empty cells become nil,
// and remaining string cells are coerced to the contract's logical types.
// Cells that fail coercion keep their string form for the validator to
// reject.
func ReadDataset(ctx context.Context, path string, c schema.Contract) ([]records.Record, int, error) {
	f, err := open(ctx, path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	cr := csv.NewReader(f)

	head, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header %s: %w", path, err)
	}
	headers := normalizeHeaders(head)

	if missing := missingColumns(headers, c); len(missing) > 0 {
		return nil, 0, &StructuralError{Path: path, Missing: missing}
	}

	var out []records.Record
	var skipped int
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if skipped < skipLogLimit {
				log.Printf("csvio: %s: skipping row %d: %v", path, line, err)
			}
			skipped++
			continue
		}
		if len(row) != len(headers) {
			if skipped < skipLogLimit {
				log.Printf("csvio: %s: skipping row %d: %d fields, expected %d", path, line, len(row), len(headers))
			}
			skipped++
			continue
		}

		rec := make(records.Record, len(row))
		for i, val := range row {
			rec[headers[i]] = emptyToNil(strings.TrimSpace(val))
		}
		out = append(out, rec)
	}

	layout := dateLayout(c)
	builtin.Coerce{Types: c.Types(), Layout: layout}.Apply(out)

	return out, skipped, nil
}

// open returns the file at path, honoring an already-canceled context
// without touching the filesystem.
func open(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// normalizeHeaders lowercases headers, converts spaces to underscores, and
// strips a UTF-8 BOM from the first cell.
func normalizeHeaders(h []string) []string {
	res := make([]string, len(h))
	for i, col := range h {
		c := strings.TrimSpace(col)
		if i == 0 {
			c = strings.TrimPrefix(c, utf8BOM)
		}
		res[i] = strings.ReplaceAll(strings.ToLower(c), " ", "_")
	}
	return res
}

func missingColumns(headers []string, c schema.Contract) []string {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}
	var missing []string
	for _, f := range c.Fields {
		if _, ok := present[f.Name]; !ok {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// emptyToNil converts an empty string to nil; all other values pass through.
func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func dateLayout(c schema.Contract) string {
	for _, f := range c.Fields {
		if f.Type == "date" && f.Layout != "" {
			return f.Layout
		}
	}
	return schema.DateLayout
}
