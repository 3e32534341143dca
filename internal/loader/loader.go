// Package loader persists a transformed dataset into its table in the
// relational store. The load path is deliberately explicit: check whether
// the table exists, refuse or drop it, create it fresh, bulk-insert every
// row, then verify the result by re-reading row count and column layout.
package loader

import (
	"context"
	"fmt"
	"log"

	"exametl/internal/schema"
	"exametl/internal/storage"
	"exametl/pkg/records"
)

// ConflictError reports that the target table already exists and replacing
// it was not enabled.
type ConflictError struct {
	Table string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("table %q already exists and replace is disabled", e.Table)
}

// Options controls the load behavior for one table.
type Options struct {
	// AutoReplace drops an existing table instead of failing with a
	// ConflictError.
	AutoReplace bool
}

// Result summarizes one completed load.
type Result struct {
	Table        string
	RowsInserted int64
}

// Load writes recs into table, creating the table from the dataset
// contract. An existing table is dropped when opt.AutoReplace is set and is
// a *ConflictError otherwise. After the insert the table is re-read and the
// row count and column layout are checked against what was written.
func Load(ctx context.Context, repo storage.Repository, gen storage.DDL, table string, c schema.Contract, recs []records.Record, opt Options) (Result, error) {
	res := Result{Table: table}

	exists, err := repo.TableExists(ctx, table)
	if err != nil {
		return res, fmt.Errorf("load %s: %w", table, err)
	}
	if exists {
		if !opt.AutoReplace {
			return res, &ConflictError{Table: table}
		}
		log.Printf("load %s: table exists, dropping for replace", table)
		if err := repo.Exec(ctx, gen.DropTableSQL(table)); err != nil {
			return res, fmt.Errorf("load %s: drop: %w", table, err)
		}
	}

	createSQL, err := gen.CreateTableSQL(storage.TableDefFor(table, c, gen.MapType))
	if err != nil {
		return res, fmt.Errorf("load %s: %w", table, err)
	}
	if err := repo.Exec(ctx, createSQL); err != nil {
		return res, fmt.Errorf("load %s: create: %w", table, err)
	}

	columns := c.Columns()
	n, err := repo.CopyFrom(ctx, table, columns, rowsFor(columns, recs))
	if err != nil {
		return res, fmt.Errorf("load %s: insert: %w", table, err)
	}
	res.RowsInserted = n

	if err := verify(ctx, repo, table, columns, n); err != nil {
		return res, err
	}
	log.Printf("load %s: %d rows", table, n)
	return res, nil
}

// rowsFor projects recs onto columns order. Absent fields become NULL.
func rowsFor(columns []string, recs []records.Record) [][]any {
	rows := make([][]any, len(recs))
	for i, rec := range recs {
		row := make([]any, len(columns))
		for j, col := range columns {
			row[j] = rec[col]
		}
		rows[i] = row
	}
	return rows
}

// verify re-reads the loaded table and checks it matches what was written.
func verify(ctx context.Context, repo storage.Repository, table string, columns []string, inserted int64) error {
	count, err := repo.CountRows(ctx, table)
	if err != nil {
		return fmt.Errorf("verify %s: %w", table, err)
	}
	if count != inserted {
		return fmt.Errorf("verify %s: table holds %d rows, inserted %d", table, count, inserted)
	}

	got, err := repo.TableColumns(ctx, table)
	if err != nil {
		return fmt.Errorf("verify %s: %w", table, err)
	}
	if len(got) != len(columns) {
		return fmt.Errorf("verify %s: table has %d columns, want %d", table, len(got), len(columns))
	}
	for i, want := range columns {
		if got[i] != want {
			return fmt.Errorf("verify %s: column %d is %q, want %q", table, i, got[i], want)
		}
	}
	return nil
}
