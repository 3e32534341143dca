package config

import (
	"strings"
	"testing"
)

// hasIssue reports whether issues contains an Issue with the given severity,
// path, and a Message containing msgSubstr.
func hasIssue(t *testing.T, issues []Issue, sev IssueSeverity, path, msgSubstr string) bool {
	t.Helper()
	for _, iss := range issues {
		if iss.Severity == sev && iss.Path == path && strings.Contains(iss.Message, msgSubstr) {
			return true
		}
	}
	return false
}

func validPipeline() Pipeline {
	return Pipeline{
		Job: "exams",
		Generator: Generator{
			Seed:            42,
			FullRows:        8000,
			IncrementalRows: 1000,
			NullRegionRate:  0.08,
			NullSchoolRate:  0.05,
			DuplicateRate:   0.02,
		},
		Data: Data{Dir: "data"},
		Storage: Storage{
			Kind: "sqlite",
			DB: DBConfig{
				DSN:              "data/exam_results.db",
				FullTable:        "full_data",
				IncrementalTable: "incremental_data",
				AutoReplace:      true,
			},
		},
	}
}

func TestValidatePipelineClean(t *testing.T) {
	if issues := ValidatePipeline(validPipeline()); len(issues) != 0 {
		t.Fatalf("valid pipeline produced issues: %+v", issues)
	}
}

func TestValidatePipelineMissingJob(t *testing.T) {
	p := validPipeline()
	p.Job = "  "
	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityError, "job", "must not be empty") {
		t.Fatalf("expected job error, got %+v", issues)
	}
}

func TestValidateGeneratorRows(t *testing.T) {
	p := validPipeline()
	p.Generator.FullRows = 0
	p.Generator.IncrementalRows = -5
	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityError, "generator.full_rows", "must be positive") {
		t.Fatalf("expected full_rows error, got %+v", issues)
	}
	if !hasIssue(t, issues, SeverityError, "generator.incremental_rows", "must be positive") {
		t.Fatalf("expected incremental_rows error, got %+v", issues)
	}
}

func TestValidateGeneratorSwappedRowCounts(t *testing.T) {
	p := validPipeline()
	p.Generator.FullRows = 100
	p.Generator.IncrementalRows = 1000
	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityWarning, "generator.full_rows", "probably swapped") {
		t.Fatalf("expected swap warning, got %+v", issues)
	}
}

func TestValidateGeneratorRates(t *testing.T) {
	p := validPipeline()
	p.Generator.DuplicateRate = 1.5
	p.Generator.NullRegionRate = -0.1
	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityError, "generator.duplicate_rate", "within [0, 1]") {
		t.Fatalf("expected duplicate_rate error, got %+v", issues)
	}
	if !hasIssue(t, issues, SeverityError, "generator.null_region_rate", "within [0, 1]") {
		t.Fatalf("expected null_region_rate error, got %+v", issues)
	}
}

func TestValidateStorage(t *testing.T) {
	p := validPipeline()
	p.Storage.Kind = "oracle"
	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityWarning, "storage.kind", "unknown storage kind") {
		t.Fatalf("expected kind warning, got %+v", issues)
	}

	p = validPipeline()
	p.Storage.DB.DSN = ""
	p.Storage.DB.IncrementalTable = "full_data"
	issues = ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityError, "storage.db.dsn", "non-empty dsn") {
		t.Fatalf("expected dsn error, got %+v", issues)
	}
	if !hasIssue(t, issues, SeverityError, "storage.db.incremental_table", "distinct tables") {
		t.Fatalf("expected distinct-table error, got %+v", issues)
	}
}

func TestValidateStorageAutoReplaceWarning(t *testing.T) {
	p := validPipeline()
	p.Storage.DB.AutoReplace = false
	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityWarning, "storage.db.auto_replace", "conflict") {
		t.Fatalf("expected auto_replace warning, got %+v", issues)
	}
	if HasErrors(issues) {
		t.Fatalf("warning-only config reported errors: %+v", issues)
	}
}

func TestIssueError(t *testing.T) {
	iss := Issue{Severity: SeverityError, Path: "job", Message: "boom"}
	if got := iss.Error(); got != "error at job: boom" {
		t.Fatalf("Issue.Error() = %q", got)
	}
}
