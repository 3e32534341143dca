package ddl

import (
	"strings"
	"testing"

	"exametl/internal/schema"
	"exametl/internal/storage"
)

func TestCreateTableSQL(t *testing.T) {
	def := storage.TableDefFor("incremental_data", schema.Transformed(), MapType)
	sql, err := Generator{}.CreateTableSQL(def)
	if err != nil {
		t.Fatalf("CreateTableSQL: %v", err)
	}

	for _, want := range []string{
		`CREATE TABLE "incremental_data"`,
		`"student_id" BIGINT NOT NULL`,
		`"exam_score" DOUBLE PRECISION NOT NULL`,
		`"exam_date" DATE NOT NULL`,
		`"score_status" TEXT NOT NULL`,
		`PRIMARY KEY ("student_id")`,
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("statement missing %q:\n%s", want, sql)
		}
	}
	if strings.Contains(sql, "IF NOT EXISTS") {
		t.Errorf("create must not be IF NOT EXISTS:\n%s", sql)
	}
}

func TestCreateTableSQLSchemaQualified(t *testing.T) {
	def := storage.TableDef{
		Name:    "exams.full_data",
		Columns: []storage.ColumnDef{{Name: "student_id", SQLType: "BIGINT"}},
	}
	sql, err := Generator{}.CreateTableSQL(def)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sql, `CREATE TABLE "exams"."full_data"`) {
		t.Fatalf("schema-qualified name mangled:\n%s", sql)
	}
}

func TestDropTableSQL(t *testing.T) {
	if got := (Generator{}).DropTableSQL("full_data"); got != `DROP TABLE "full_data";` {
		t.Fatalf("DropTableSQL = %q", got)
	}
}

func TestMapType(t *testing.T) {
	cases := map[string]string{
		"int":     "BIGINT",
		"float":   "DOUBLE PRECISION",
		"date":    "DATE",
		"text":    "TEXT",
		"unknown": "TEXT",
	}
	for in, want := range cases {
		if got := MapType(in); got != want {
			t.Errorf("MapType(%q) = %q, want %q", in, got, want)
		}
	}
}
