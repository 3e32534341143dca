package validator

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Report summarizes one validation run over one dataset.
type Report struct {
	Dataset           string            `json:"dataset"`
	RowsIn            int               `json:"rows_in"`
	RowsOut           int               `json:"rows_out"`
	TypeMismatches    int               `json:"type_mismatches"`
	DuplicatesRemoved int               `json:"duplicates_removed"`
	NullCounts        map[string]int    `json:"null_counts"`
	Dtypes            map[string]string `json:"dtypes"`
}

// Write stores the report as indented JSON at path, using the same
// temp-and-rename discipline as dataset files.
func (r Report) Write(path string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// Log emits a one-line summary in the pipeline's progress-log style.
func (r Report) Log() {
	flagged := 0
	for _, n := range r.NullCounts {
		if n > 0 {
			flagged++
		}
	}
	log.Printf(
		"validate %s: rows_in=%d rows_out=%d type_mismatches=%d duplicates_removed=%d null_columns=%d",
		r.Dataset, r.RowsIn, r.RowsOut, r.TypeMismatches, r.DuplicatesRemoved, flagged,
	)
}
