package storage

import (
	"fmt"
	"sync"

	"exametl/internal/schema"
)

// ColumnDef is one column of a table definition.
type ColumnDef struct {
	Name       string
	SQLType    string
	Nullable   bool
	PrimaryKey bool
}

// TableDef is a backend-neutral table definition; SQLType values come from
// the owning backend's MapType.
type TableDef struct {
	Name    string
	Columns []ColumnDef
}

// DDL generates backend-specific DDL statements. The create statement is a
// plain CREATE TABLE (no IF NOT EXISTS): the load stage checks existence
// explicitly and drops first, so an unexpected existing table must surface
// as an error rather than be silently tolerated.
type DDL interface {
	// MapType maps a logical type ("int", "float", "date", "text") to the
	// backend column type.
	MapType(kind string) string

	// CreateTableSQL renders t as a CREATE TABLE statement.
	CreateTableSQL(t TableDef) (string, error)

	// DropTableSQL renders a plain DROP TABLE statement for table.
	DropTableSQL(table string) string
}

var (
	ddlMu     sync.RWMutex
	ddlByKind = map[string]DDL{}
)

// RegisterDDL registers (or replaces) the DDL generator for kind.
func RegisterDDL(kind string, d DDL) {
	ddlMu.Lock()
	defer ddlMu.Unlock()
	ddlByKind[kind] = d
}

// DDLFor returns the DDL generator registered for kind.
func DDLFor(kind string) (DDL, error) {
	ddlMu.RLock()
	d, ok := ddlByKind[kind]
	ddlMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no DDL generator registered for kind=%q", kind)
	}
	return d, nil
}

// TableDefFor derives a table definition from a dataset contract: column
// order follows the contract, types go through mapType, required fields are
// NOT NULL, and the dataset key column becomes the primary key.
func TableDefFor(table string, c schema.Contract, mapType func(string) string) TableDef {
	cols := make([]ColumnDef, 0, len(c.Fields))
	for _, f := range c.Fields {
		cols = append(cols, ColumnDef{
			Name:       f.Name,
			SQLType:    mapType(f.Type),
			Nullable:   !f.Required,
			PrimaryKey: f.Name == schema.KeyColumn,
		})
	}
	return TableDef{Name: table, Columns: cols}
}
