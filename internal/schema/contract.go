// Package schema holds the fixed contract for the student-exam dataset:
// field names, logical types, and the canonical column orders used by the
// CSV files and the database tables.
package schema

// Field describes one column of a dataset contract.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // "int" | "float" | "text" | "date"
	Required bool   `json:"required,omitempty"`
	Layout   string `json:"layout,omitempty"` // date layout
}

// Contract is an ordered set of fields describing one dataset schema.
type Contract struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Columns returns the contract's column names in declaration order.
func (c Contract) Columns() []string {
	out := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		out[i] = f.Name
	}
	return out
}

// Field returns the field definition for name. The second return is false
// when the contract has no such field.
func (c Contract) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Types returns a field-name -> logical-type map, the shape consumed by the
// coercion transform.
func (c Contract) Types() map[string]string {
	out := make(map[string]string, len(c.Fields))
	for _, f := range c.Fields {
		out[f.Name] = f.Type
	}
	return out
}
