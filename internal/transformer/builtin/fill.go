// Package builtin contains the reusable whole-dataset transforms that make
// up the exam transformation chain.
package builtin

import "exametl/pkg/records"

// UnknownSentinel replaces missing categorical values so that no downstream
// consumer ever sees a null categorical.
const UnknownSentinel = "Unknown"

// FillMissing replaces missing or empty values in the configured fields with
// a sentinel string. Re-applying it is a no-op: a field already holding the
// sentinel is non-empty and left alone.
type FillMissing struct {
	Fields   []string
	Sentinel string
}

// Apply fills the configured fields in place and returns the input slice.
func (f FillMissing) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		for _, field := range f.Fields {
			if r.IsEmpty(field) {
				r[field] = f.Sentinel
			}
		}
	}
	return in
}
