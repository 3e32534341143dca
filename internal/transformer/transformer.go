// Package transformer defines the transformation chain applied to validated
// exam datasets. Each rule is a whole-dataset operation; the chain applies
// them in a fixed, documented order and is idempotent end to end.
package transformer

import "exametl/pkg/records"

// Transformer is a single whole-dataset transformation rule.
type Transformer interface {
	Apply(in []records.Record) []records.Record
}

// Chain is an ordered list of transformers applied front to back.
type Chain []Transformer

// Apply runs every transformer in order and returns the final dataset.
func (c Chain) Apply(in []records.Record) []records.Record {
	out := in
	for _, t := range c {
		out = t.Apply(out)
	}
	return out
}
