package ddl

import (
	"fmt"
	"strings"

	"exametl/internal/storage"
)

// Generator implements storage.DDL for Postgres.
type Generator struct{}

// MapType implements storage.DDL.
func (Generator) MapType(kind string) string { return MapType(kind) }

// CreateTableSQL renders t as a plain CREATE TABLE statement. Like the
// SQLite generator it skips IF NOT EXISTS so an unexpected existing table
// fails the load instead of being masked.
func (Generator) CreateTableSQL(t storage.TableDef) (string, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return "", fmt.Errorf("postgres ddl: table name must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("postgres ddl: at least one column is required")
	}

	cols := make([]string, 0, len(t.Columns)+1)
	pks := make([]string, 0, 1)
	for _, c := range t.Columns {
		if strings.TrimSpace(c.Name) == "" {
			return "", fmt.Errorf("postgres ddl: column with empty name in table %s", name)
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
		quoteTable(name),
		strings.Join(cols, ",\n  "),
	), nil
}

// DropTableSQL returns a plain DROP TABLE statement.
func (Generator) DropTableSQL(table string) string {
	return "DROP TABLE " + quoteTable(table) + ";"
}

// quoteTable quotes each dot-separated segment so schema-qualified names
// survive quoting.
func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = quoteIdent(p)
	}
	return strings.Join(parts, ".")
}

func quoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}
