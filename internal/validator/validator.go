// Package validator checks the structural health of a raw exam dataset:
// type conformance per field, per-column null rates, and duplicate student
// ids. Bad rows are filtered, never fatal; everything filtered or flagged is
// accounted for in the Report.
package validator

import (
	"fmt"
	"time"

	"exametl/internal/schema"
	"exametl/internal/transformer/builtin"
	"exametl/pkg/records"
)

// Validate filters in against the contract and returns the surviving
// records plus a report. Rules, applied in order:
//
//   - rows with a missing required field or a value that failed type
//     coercion are dropped and counted (they are rejections, not errors);
//   - null cells in optional columns are tallied per column but kept;
//   - rows repeating an earlier student_id are collapsed keep-first.
//
// The input slice is not mutated; the result is a new slice.
func Validate(dataset string, in []records.Record, c schema.Contract) ([]records.Record, Report) {
	rep := Report{
		Dataset:    dataset,
		RowsIn:     len(in),
		NullCounts: make(map[string]int, len(c.Fields)),
		Dtypes:     dtypeSummary(c),
	}

	typed := make([]records.Record, 0, len(in))
	for _, r := range in {
		if reason := checkTypes(r, c); reason != "" {
			rep.TypeMismatches++
			continue
		}
		for _, f := range c.Fields {
			if r.IsEmpty(f.Name) {
				rep.NullCounts[f.Name]++
			}
		}
		typed = append(typed, r)
	}

	deduped := builtin.DeDup{
		Keys:   []string{schema.KeyColumn},
		Policy: "keep-first",
	}.Apply(typed)
	rep.DuplicatesRemoved = len(typed) - len(deduped)
	rep.RowsOut = len(deduped)

	return deduped, rep
}

// checkTypes returns a non-empty reason when any contract field of r fails
// type conformance. Values arrive pre-coerced by csvio, so a remaining
// string in a numeric or date column means the cell did not parse.
func checkTypes(r records.Record, c schema.Contract) string {
	for _, f := range c.Fields {
		if r.IsEmpty(f.Name) {
			if f.Required {
				return fmt.Sprintf("required field %q missing", f.Name)
			}
			continue
		}
		v := r[f.Name]
		switch f.Type {
		case "int":
			if _, ok := v.(int); !ok {
				return fmt.Sprintf("field %q: %v not an int", f.Name, v)
			}
		case "float":
			switch v.(type) {
			case float64, int:
			default:
				return fmt.Sprintf("field %q: %v not numeric", f.Name, v)
			}
			if f.Name == "exam_score" {
				if s := asFloat(v); s < 0 || s > 100 {
					return fmt.Sprintf("field %q: %v outside [0,100]", f.Name, v)
				}
			}
		case "date":
			if _, ok := v.(time.Time); !ok {
				return fmt.Sprintf("field %q: %v not a date", f.Name, v)
			}
		case "text":
			if _, ok := v.(string); !ok {
				return fmt.Sprintf("field %q: %T not text", f.Name, v)
			}
		}
	}
	return ""
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	default:
		return 0
	}
}

func dtypeSummary(c schema.Contract) map[string]string {
	out := make(map[string]string, len(c.Fields))
	for _, f := range c.Fields {
		out[f.Name] = f.Type
	}
	return out
}
