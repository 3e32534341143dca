// Package records defines the dynamic record model shared by every pipeline
// stage. A Record is a column-name -> value map; values are nil, string,
// int, float64, or time.Time depending on how far through the pipeline the
// record has traveled.
package records

// Record is a single row of a dataset.
type Record map[string]any

// Clone returns a shallow copy of the record. Values are not deep-copied;
// the pipeline treats scalar values as immutable.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String returns the value for key as a string. The second return is false
// when the key is absent, nil, or not a string.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IsEmpty reports whether the value for key is missing, nil, or an empty
// string. Stage logic uses this as the single definition of "no value".
func (r Record) IsEmpty(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	return false
}
