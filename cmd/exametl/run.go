package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"exametl/internal/config"
	"exametl/internal/csvio"
	"exametl/internal/generator"
	"exametl/internal/loader"
	"exametl/internal/metrics"
	"exametl/internal/schema"
	"exametl/internal/storage"
	"exametl/internal/transformer"
	"exametl/internal/validator"
)

// datasetRun names one dataset's stage files and destination table.
type datasetRun struct {
	name  string
	rows  int
	seed  int64
	table string

	rawFile         string
	validatedFile   string
	transformedFile string
	reportFile      string
}

// datasetStats is the per-dataset row accounting carried into the summary.
type datasetStats struct {
	generated         int
	readSkipped       int
	validated         int
	rejected          int
	duplicatesRemoved int
	transformed       int
	loaded            int64
}

// datasetRuns derives the two dataset runs (full, incremental) from the
// pipeline config. The incremental dataset is seeded with seed+1 so both
// datasets are reproducible but distinct.
func datasetRuns(p config.Pipeline) []datasetRun {
	dir := p.Data.Dir
	return []datasetRun{
		{
			name:            "full",
			rows:            p.Generator.FullRows,
			seed:            p.Generator.Seed,
			table:           p.Storage.DB.FullTable,
			rawFile:         filepath.Join(dir, "raw_data.csv"),
			validatedFile:   filepath.Join(dir, "validated_full.csv"),
			transformedFile: filepath.Join(dir, "transformed_full.csv"),
			reportFile:      filepath.Join(dir, "validated_full.report.json"),
		},
		{
			name:            "incremental",
			rows:            p.Generator.IncrementalRows,
			seed:            p.Generator.Seed + 1,
			table:           p.Storage.DB.IncrementalTable,
			rawFile:         filepath.Join(dir, "incremental_data.csv"),
			validatedFile:   filepath.Join(dir, "validated_incremental.csv"),
			transformedFile: filepath.Join(dir, "transformed_incremental.csv"),
			reportFile:      filepath.Join(dir, "validated_incremental.report.json"),
		},
	}
}

// run executes the pipeline sequentially: for each dataset, generate →
// validate → transform → load. A failing dataset is abandoned at the failed
// stage; the other dataset still runs, and the joined error is returned.
func run(ctx context.Context, p config.Pipeline) error {
	if err := os.MkdirAll(p.Data.Dir, 0o755); err != nil {
		return fmt.Errorf("data dir: %w", err)
	}

	repo, err := storage.New(ctx, storage.Config{Kind: p.Storage.Kind, DSN: p.Storage.DB.DSN})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer repo.Close()

	gen, err := storage.DDLFor(p.Storage.Kind)
	if err != nil {
		return err
	}

	var errs []error
	for _, ds := range datasetRuns(p) {
		stats, err := runDataset(ctx, p, repo, gen, ds)
		logDatasetSummary(ds, stats, err)
		if err != nil {
			errs = append(errs, fmt.Errorf("dataset %s: %w", ds.name, err))
		}
	}
	return errors.Join(errs...)
}

// runDataset executes the four stages for one dataset. Each stage is timed
// and recorded; the first stage error stops the dataset.
func runDataset(ctx context.Context, p config.Pipeline, repo storage.Repository, gen storage.DDL, ds datasetRun) (datasetStats, error) {
	var stats datasetStats

	err := stage(p.Job, ds.name, "generate", func() error {
		g := generator.New(ds.seed, generator.Options{
			NullRegionRate: p.Generator.NullRegionRate,
			NullSchoolRate: p.Generator.NullSchoolRate,
			DuplicateRate:  p.Generator.DuplicateRate,
		})
		recs, err := g.Dataset(ds.rows)
		if err != nil {
			return err
		}
		stats.generated = len(recs)
		metrics.RecordRows(p.Job, ds.name, "generated", int64(len(recs)))
		return csvio.WriteDataset(ds.rawFile, schema.Raw().Columns(), recs)
	})
	if err != nil {
		return stats, err
	}

	err = stage(p.Job, ds.name, "validate", func() error {
		recs, skipped, err := csvio.ReadDataset(ctx, ds.rawFile, schema.Raw())
		if err != nil {
			return err
		}
		stats.readSkipped = skipped
		metrics.RecordRows(p.Job, ds.name, "read_skipped", int64(skipped))

		out, report := validator.Validate(ds.name, recs, schema.Raw())
		stats.validated = len(out)
		stats.rejected = report.TypeMismatches
		stats.duplicatesRemoved = report.DuplicatesRemoved
		metrics.RecordRows(p.Job, ds.name, "validated", int64(len(out)))
		metrics.RecordRows(p.Job, ds.name, "rejected", int64(report.TypeMismatches))
		metrics.RecordRows(p.Job, ds.name, "duplicates_removed", int64(report.DuplicatesRemoved))

		report.Log()
		if err := report.Write(ds.reportFile); err != nil {
			return err
		}
		return csvio.WriteDataset(ds.validatedFile, schema.Raw().Columns(), out)
	})
	if err != nil {
		return stats, err
	}

	err = stage(p.Job, ds.name, "transform", func() error {
		recs, _, err := csvio.ReadDataset(ctx, ds.validatedFile, schema.Raw())
		if err != nil {
			return err
		}
		out := transformer.ExamChain().Apply(recs)
		stats.transformed = len(out)
		metrics.RecordRows(p.Job, ds.name, "transformed", int64(len(out)))
		return csvio.WriteDataset(ds.transformedFile, schema.Transformed().Columns(), out)
	})
	if err != nil {
		return stats, err
	}

	err = stage(p.Job, ds.name, "load", func() error {
		recs, _, err := csvio.ReadDataset(ctx, ds.transformedFile, schema.Transformed())
		if err != nil {
			return err
		}
		res, err := loader.Load(ctx, repo, gen, ds.table, schema.Transformed(), recs, loader.Options{
			AutoReplace: p.Storage.DB.AutoReplace,
		})
		if err != nil {
			return err
		}
		stats.loaded = res.RowsInserted
		metrics.RecordRows(p.Job, ds.name, "loaded", res.RowsInserted)
		return nil
	})
	return stats, err
}

// stage runs fn, timing it and recording the stage metric either way.
func stage(job, dataset, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	d := time.Since(start)
	metrics.RecordStage(job, dataset, name, err, d)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Printf("%s/%s: done in %s", dataset, name, d.Truncate(time.Millisecond))
	return nil
}

// logDatasetSummary prints the end-of-dataset accounting line.
func logDatasetSummary(ds datasetRun, s datasetStats, err error) {
	status := "ok"
	if err != nil {
		status = "failed"
	}
	log.Printf(
		"dataset %s [%s]: generated=%d read_skipped=%d validated=%d rejected=%d duplicates_removed=%d transformed=%d loaded=%d table=%s",
		ds.name, status, s.generated, s.readSkipped, s.validated, s.rejected, s.duplicatesRemoved, s.transformed, s.loaded, ds.table,
	)
}
