// Package config defines the canonical, JSON-serializable configuration
// model for the exam pipeline. It is intentionally small and explicit so
// that pipeline files under configs/pipelines/*.json decode straight into
// typed structs without glue code; decoding uses the standard library only.
//
// Example:
//
//	{
//	  "job": "exams",
//	  "generator": { "seed": 42, "full_rows": 8000, "incremental_rows": 1000 },
//	  "data":      { "dir": "data" },
//	  "storage":   {
//	    "kind": "sqlite",
//	    "db": {
//	      "dsn": "data/exam_results.db",
//	      "full_table": "full_data",
//	      "incremental_table": "incremental_data",
//	      "auto_replace": true
//	    }
//	  }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline is the top-level object decoded from a pipeline file.
type Pipeline struct {
	// Job names the pipeline run; it is used for logging and metrics labels.
	Job string `json:"job"`

	// Generator configures the synthetic dataset generation stage.
	Generator Generator `json:"generator"`

	// Data configures where intermediate CSV stage files are written.
	Data Data `json:"data"`

	// Storage describes where transformed records are loaded.
	Storage Storage `json:"storage"`
}

// Generator configures the synthetic data generation stage.
type Generator struct {
	// Seed seeds the deterministic random source. The incremental dataset
	// uses Seed+1 so the two datasets differ while both stay reproducible.
	Seed int64 `json:"seed"`

	// FullRows is the row count of the full dataset.
	FullRows int `json:"full_rows"`

	// IncrementalRows is the row count of the incremental dataset.
	IncrementalRows int `json:"incremental_rows"`

	// NullRegionRate is the fraction of rows generated with a missing region.
	NullRegionRate float64 `json:"null_region_rate"`

	// NullSchoolRate is the fraction of rows generated with a missing school.
	NullSchoolRate float64 `json:"null_school_rate"`

	// DuplicateRate is the fraction of rows generated with a reused student id.
	DuplicateRate float64 `json:"duplicate_rate"`
}

// Data configures the intermediate file area.
type Data struct {
	// Dir is the directory that receives the raw, validated, and transformed
	// CSV files plus the validation reports.
	Dir string `json:"dir"`
}

// Storage selects the sink used to persist transformed records.
type Storage struct {
	// Kind selects the storage implementation: "sqlite" or "postgres".
	Kind string `json:"kind"`

	// DB configures the selected backend.
	DB DBConfig `json:"db"`
}

// DBConfig configures the relational sink.
type DBConfig struct {
	// DSN is the connection string: a file path or file: URI for SQLite, a
	// postgresql:// URL for Postgres.
	DSN string `json:"dsn"`

	// FullTable is the destination table for the full dataset.
	FullTable string `json:"full_table"`

	// IncrementalTable is the destination table for the incremental dataset.
	IncrementalTable string `json:"incremental_table"`

	// AutoReplace drops an existing destination table before loading. When
	// false, a load into an existing table fails with a conflict.
	AutoReplace bool `json:"auto_replace"`
}

// Load reads and decodes a pipeline file. Unknown JSON fields are rejected
// so typos in config files surface instead of silently doing nothing.
func Load(path string) (Pipeline, error) {
	var p Pipeline

	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("config: decode %s: %w", path, err)
	}
	p.ApplyDefaults()
	return p, nil
}

// ApplyDefaults fills zero-valued fields with the standard pipeline shape.
// Rates are left alone: zero is a meaningful rate.
func (p *Pipeline) ApplyDefaults() {
	if p.Generator.FullRows == 0 {
		p.Generator.FullRows = 8000
	}
	if p.Generator.IncrementalRows == 0 {
		p.Generator.IncrementalRows = 1000
	}
	if p.Data.Dir == "" {
		p.Data.Dir = "data"
	}
	if p.Storage.Kind == "" {
		p.Storage.Kind = "sqlite"
	}
	if p.Storage.DB.FullTable == "" {
		p.Storage.DB.FullTable = "full_data"
	}
	if p.Storage.DB.IncrementalTable == "" {
		p.Storage.DB.IncrementalTable = "incremental_data"
	}
}
