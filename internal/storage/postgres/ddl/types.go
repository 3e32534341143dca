// Package ddl renders Postgres DDL for dataset table definitions.
package ddl

// MapType maps a logical column type to its Postgres column type.
func MapType(kind string) string {
	switch kind {
	case "int":
		return "BIGINT"
	case "float":
		return "DOUBLE PRECISION"
	case "bool":
		return "BOOLEAN"
	case "date":
		return "DATE"
	default:
		return "TEXT"
	}
}
