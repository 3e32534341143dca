package builtin

import (
	"strconv"
	"strings"
	"time"

	"exametl/pkg/records"
)

// Coerce converts string field values into their logical types. Values that
// already carry the target type, and strings that fail to parse, pass
// through unchanged; the validator is responsible for dropping the latter.
type Coerce struct {
	Types  map[string]string // field -> one of: int, float, date, text
	Layout string            // date layout, e.g. "2006-01-02"
}

// Apply coerces fields in place and returns the input slice.
func (c Coerce) Apply(in []records.Record) []records.Record {
	if len(c.Types) == 0 {
		return in
	}
	for _, r := range in {
		for field, typ := range c.Types {
			v, ok := r[field]
			if !ok || v == nil {
				continue
			}
			s, isStr := v.(string)
			if !isStr {
				continue
			}
			s = strings.TrimSpace(s)
			switch typ {
			case "int":
				if i, err := strconv.Atoi(s); err == nil {
					r[field] = i
				}
			case "float":
				if f, err := strconv.ParseFloat(s, 64); err == nil {
					r[field] = f
				}
			case "date":
				if t, err := time.Parse(c.Layout, s); err == nil {
					r[field] = t
				}
			case "text":
				// already string
			}
		}
	}
	return in
}
