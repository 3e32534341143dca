// Package ddl generates SQLite DDL for dataset tables.
//
// SQLite uses type affinities, so the mapping prefers canonical, portable
// choices; dates are stored as ISO-8601 TEXT.
package ddl

import "strings"

// MapType maps a logical type into a SQLite column type.
func MapType(kind string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "int", "integer", "bigint":
		return "INTEGER"
	case "float", "double", "real":
		return "REAL"
	case "bool", "boolean":
		return "INTEGER" // 0/1
	case "date", "timestamp", "datetime":
		return "TEXT" // ISO-8601
	default:
		return "TEXT"
	}
}
