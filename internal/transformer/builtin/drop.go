package builtin

import "exametl/pkg/records"

// DropFields removes the configured columns from every record. Dropping an
// absent column is a no-op, which keeps the whole chain idempotent.
type DropFields struct {
	Fields []string
}

// Apply deletes the configured fields in place and returns the input slice.
func (d DropFields) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		for _, field := range d.Fields {
			delete(r, field)
		}
	}
	return in
}
