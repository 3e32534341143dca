package ddl

import (
	"fmt"
	"strings"

	"exametl/internal/storage"
)

// Generator implements storage.DDL for SQLite.
type Generator struct{}

// MapType implements storage.DDL.
func (Generator) MapType(kind string) string { return MapType(kind) }

// CreateTableSQL returns a SQLite CREATE TABLE statement of the form:
//
//	CREATE TABLE "table" (
//	  "col1" TYPE [NOT NULL],
//	  "col2" TYPE,
//	  PRIMARY KEY ("pk")
//	);
//
// Deliberately not IF NOT EXISTS: the loader drops any existing table first,
// and a create that still conflicts should fail loudly.
func (Generator) CreateTableSQL(t storage.TableDef) (string, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return "", fmt.Errorf("sqlite ddl: table name must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("sqlite ddl: at least one column is required")
	}

	cols := make([]string, 0, len(t.Columns)+1)
	pks := make([]string, 0, 1)
	for _, c := range t.Columns {
		if strings.TrimSpace(c.Name) == "" {
			return "", fmt.Errorf("sqlite ddl: column with empty name in table %s", name)
		}
		var sb strings.Builder
		sb.WriteString(quoteIdent(c.Name))
		sb.WriteByte(' ')
		sb.WriteString(c.SQLType)
		if !c.Nullable {
			sb.WriteString(" NOT NULL")
		}
		cols = append(cols, sb.String())
		if c.PrimaryKey {
			pks = append(pks, quoteIdent(c.Name))
		}
	}
	if len(pks) > 0 {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
	}

	return fmt.Sprintf(
		"CREATE TABLE %s (\n  %s\n);",
		quoteIdent(name),
		strings.Join(cols, ",\n  "),
	), nil
}

// DropTableSQL returns a plain DROP TABLE statement.
func (Generator) DropTableSQL(table string) string {
	return "DROP TABLE " + quoteIdent(table) + ";"
}

func quoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}
