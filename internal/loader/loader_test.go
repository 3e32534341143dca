package loader

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"exametl/internal/schema"
	"exametl/internal/storage"
	"exametl/pkg/records"
)

// fakeRepo is an in-memory storage.Repository that records the operations
// performed on it.
type fakeRepo struct {
	tables map[string]*fakeTable
	ops    []string

	countOverride int64
	useOverride   bool
}

type fakeTable struct {
	columns []string
	rows    [][]any
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tables: map[string]*fakeTable{}}
}

func (f *fakeRepo) TableExists(ctx context.Context, table string) (bool, error) {
	f.ops = append(f.ops, "exists "+table)
	_, ok := f.tables[table]
	return ok, nil
}

func (f *fakeRepo) Exec(ctx context.Context, sql string) error {
	switch {
	case strings.HasPrefix(sql, "DROP "):
		table := strings.TrimSuffix(strings.TrimPrefix(sql, "DROP "), ";")
		f.ops = append(f.ops, "drop "+table)
		delete(f.tables, table)
	case strings.HasPrefix(sql, "CREATE "):
		parts := strings.SplitN(strings.TrimSuffix(strings.TrimPrefix(sql, "CREATE "), ";"), "|", 2)
		table := parts[0]
		f.ops = append(f.ops, "create "+table)
		f.tables[table] = &fakeTable{columns: strings.Split(parts[1], ",")}
	default:
		return fmt.Errorf("fake repo: unexpected statement %q", sql)
	}
	return nil
}

func (f *fakeRepo) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	f.ops = append(f.ops, fmt.Sprintf("copy %s %d", table, len(rows)))
	t, ok := f.tables[table]
	if !ok {
		return 0, fmt.Errorf("fake repo: no table %q", table)
	}
	t.rows = append(t.rows, rows...)
	return int64(len(rows)), nil
}

func (f *fakeRepo) CountRows(ctx context.Context, table string) (int64, error) {
	if f.useOverride {
		return f.countOverride, nil
	}
	t, ok := f.tables[table]
	if !ok {
		return 0, fmt.Errorf("fake repo: no table %q", table)
	}
	return int64(len(t.rows)), nil
}

func (f *fakeRepo) TableColumns(ctx context.Context, table string) ([]string, error) {
	t, ok := f.tables[table]
	if !ok {
		return nil, fmt.Errorf("fake repo: no table %q", table)
	}
	return t.columns, nil
}

func (f *fakeRepo) Close() {}

// fakeDDL emits statements the fake repo can parse back.
type fakeDDL struct{}

func (fakeDDL) MapType(kind string) string { return "T" }

func (fakeDDL) CreateTableSQL(t storage.TableDef) (string, error) {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return "CREATE " + t.Name + "|" + strings.Join(names, ",") + ";", nil
}

func (fakeDDL) DropTableSQL(table string) string { return "DROP " + table + ";" }

func sampleRecords(n int) []records.Record {
	recs := make([]records.Record, n)
	for i := range recs {
		recs[i] = records.Record{
			"student_id":       1001 + i,
			"gender":           "Female",
			"age":              18,
			"subject":          "Math",
			"exam_score":       72.5,
			"exam_date":        "2025-03-10",
			"region":           "North",
			"grade_level":      "12th",
			"school":           "Hilltop High",
			"score_status":     "Pass",
			"performance_band": "Good",
		}
	}
	return recs
}

func TestLoadFreshTable(t *testing.T) {
	repo := newFakeRepo()
	res, err := Load(context.Background(), repo, fakeDDL{}, "full_data", schema.Transformed(), sampleRecords(3), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.RowsInserted != 3 {
		t.Fatalf("RowsInserted = %d, want 3", res.RowsInserted)
	}

	want := []string{"exists full_data", "create full_data", "copy full_data 3"}
	if !reflect.DeepEqual(repo.ops, want) {
		t.Fatalf("ops = %v, want %v", repo.ops, want)
	}
	if !reflect.DeepEqual(repo.tables["full_data"].columns, schema.Transformed().Columns()) {
		t.Fatalf("table columns = %v", repo.tables["full_data"].columns)
	}
}

func TestLoadConflictWithoutReplace(t *testing.T) {
	repo := newFakeRepo()
	repo.tables["full_data"] = &fakeTable{columns: schema.Transformed().Columns()}

	_, err := Load(context.Background(), repo, fakeDDL{}, "full_data", schema.Transformed(), sampleRecords(1), Options{})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want *ConflictError", err)
	}
	if conflict.Table != "full_data" {
		t.Fatalf("conflict table = %q", conflict.Table)
	}
	// The existing table must be untouched.
	if len(repo.ops) != 1 || repo.ops[0] != "exists full_data" {
		t.Fatalf("ops after conflict = %v", repo.ops)
	}
}

func TestLoadReplaceDropsFirst(t *testing.T) {
	repo := newFakeRepo()
	repo.tables["full_data"] = &fakeTable{
		columns: schema.Transformed().Columns(),
		rows:    make([][]any, 5),
	}

	res, err := Load(context.Background(), repo, fakeDDL{}, "full_data", schema.Transformed(), sampleRecords(2), Options{AutoReplace: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.RowsInserted != 2 {
		t.Fatalf("RowsInserted = %d, want 2", res.RowsInserted)
	}

	want := []string{"exists full_data", "drop full_data", "create full_data", "copy full_data 2"}
	if !reflect.DeepEqual(repo.ops, want) {
		t.Fatalf("ops = %v, want %v", repo.ops, want)
	}
	// Replace must not accumulate: 2 rows, not 7.
	if got := len(repo.tables["full_data"].rows); got != 2 {
		t.Fatalf("rows after replace = %d, want 2", got)
	}
}

func TestLoadRerunDoesNotDouble(t *testing.T) {
	repo := newFakeRepo()
	recs := sampleRecords(4)
	opt := Options{AutoReplace: true}

	for i := 0; i < 2; i++ {
		if _, err := Load(context.Background(), repo, fakeDDL{}, "incremental_data", schema.Transformed(), recs, opt); err != nil {
			t.Fatalf("load #%d: %v", i+1, err)
		}
	}
	if got := len(repo.tables["incremental_data"].rows); got != 4 {
		t.Fatalf("rows after rerun = %d, want 4", got)
	}
}

func TestLoadVerifyCountMismatch(t *testing.T) {
	repo := newFakeRepo()
	repo.useOverride = true
	repo.countOverride = 99

	_, err := Load(context.Background(), repo, fakeDDL{}, "full_data", schema.Transformed(), sampleRecords(3), Options{})
	if err == nil || !strings.Contains(err.Error(), "holds 99 rows") {
		t.Fatalf("err = %v, want count mismatch", err)
	}
}

func TestRowsForColumnOrder(t *testing.T) {
	rec := records.Record{"a": 1, "b": "x"}
	rows := rowsFor([]string{"b", "a", "missing"}, []records.Record{rec})
	want := [][]any{{"x", 1, nil}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rowsFor = %v, want %v", rows, want)
	}
}
