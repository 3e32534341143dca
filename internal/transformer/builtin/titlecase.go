package builtin

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"exametl/pkg/records"
)

// TitleCase normalizes string values in the configured fields to English
// title case ("female" -> "Female", "MATH" -> "Math"). Non-string values are
// left untouched. Title casing is idempotent.
type TitleCase struct {
	Fields []string
}

// Apply rewrites the configured fields in place and returns the input slice.
func (t TitleCase) Apply(in []records.Record) []records.Record {
	// cases.Caser is not safe for concurrent use; build one per Apply.
	caser := cases.Title(language.English)
	for _, r := range in {
		for _, field := range t.Fields {
			if s, ok := r.String(field); ok && s != "" {
				r[field] = caser.String(s)
			}
		}
	}
	return in
}
