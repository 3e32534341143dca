// This file adds a lightweight linter/validator for Pipeline values. It
// performs static checks over a decoded Pipeline and returns a list of
// issues (errors and warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be surfaced
	// to users but may not necessarily block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation/lint finding for a Pipeline.
//
// Path is a dotted path into the config (e.g. "storage.db.dsn").
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error in contexts that expect one.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// HasErrors reports whether issues contains at least one SeverityError.
func HasErrors(issues []Issue) bool {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ValidatePipeline performs static validation / linting of a Pipeline. It
// does not mutate the pipeline; callers decide whether warnings are fatal.
func ValidatePipeline(p Pipeline) []Issue {
	var issues []Issue

	if strings.TrimSpace(p.Job) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "job",
			Message:  "job must not be empty; it is used for metrics labeling and identifying runs",
		})
	}

	issues = append(issues, validateGenerator(p.Generator)...)

	if strings.TrimSpace(p.Data.Dir) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "data.dir",
			Message:  "data.dir must not be empty",
		})
	}

	issues = append(issues, validateStorage(p.Storage)...)
	return issues
}

func validateGenerator(g Generator) []Issue {
	var issues []Issue

	if g.FullRows <= 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "generator.full_rows",
			Message:  fmt.Sprintf("row count must be positive, got %d", g.FullRows),
		})
	}
	if g.IncrementalRows <= 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "generator.incremental_rows",
			Message:  fmt.Sprintf("row count must be positive, got %d", g.IncrementalRows),
		})
	}
	if g.FullRows > 0 && g.IncrementalRows > 0 && g.FullRows < g.IncrementalRows {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "generator.full_rows",
			Message:  "full dataset is smaller than the incremental dataset; the row counts are probably swapped",
		})
	}

	rates := []struct {
		path string
		v    float64
	}{
		{"generator.null_region_rate", g.NullRegionRate},
		{"generator.null_school_rate", g.NullSchoolRate},
		{"generator.duplicate_rate", g.DuplicateRate},
	}
	for _, r := range rates {
		if r.v < 0 || r.v > 1 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     r.path,
				Message:  fmt.Sprintf("rate must be within [0, 1], got %g", r.v),
			})
		}
	}
	return issues
}

func validateStorage(s Storage) []Issue {
	var issues []Issue

	if strings.TrimSpace(s.Kind) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.kind",
			Message:  "storage.kind must not be empty",
		})
		return issues
	}

	// Unknown kinds are warnings for forward compatibility; the storage
	// factory still rejects them at open time if nothing registered.
	known := map[string]struct{}{
		"sqlite":   {},
		"postgres": {},
	}
	if _, ok := known[s.Kind]; !ok {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "storage.kind",
			Message:  fmt.Sprintf("unknown storage kind %q; ensure a matching backend is registered", s.Kind),
		})
	}

	if strings.TrimSpace(s.DB.DSN) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.db.dsn",
			Message:  "storage requires a non-empty dsn",
		})
	}

	full := strings.TrimSpace(s.DB.FullTable)
	incr := strings.TrimSpace(s.DB.IncrementalTable)
	if full == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.db.full_table",
			Message:  "table name must not be empty",
		})
	}
	if incr == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.db.incremental_table",
			Message:  "table name must not be empty",
		})
	}
	if full != "" && full == incr {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.db.incremental_table",
			Message:  "full and incremental datasets must load into distinct tables",
		})
	}

	if !s.DB.AutoReplace {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "storage.db.auto_replace",
			Message:  "auto_replace is disabled; a re-run against existing tables will fail with a conflict",
		})
	}
	return issues
}
