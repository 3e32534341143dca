package transformer

import (
	"exametl/internal/schema"
	"exametl/internal/transformer/builtin"
)

// ExamChain returns the cleaning/enrichment chain for exam datasets.
//
// Order matters and is part of the contract:
//
//  1. fill nullable categoricals with the "Unknown" sentinel, so later rules
//     can assume non-nil values;
//  2. title-case the text categoricals;
//  3. coerce exam_date into time.Time (no-op when already parsed);
//  4. derive score_status from exam_score;
//  5. derive performance_band from exam_score;
//  6. drop the name column.
//
// Applying the chain to its own output yields an identical dataset.
func ExamChain() Chain {
	return Chain{
		builtin.FillMissing{
			Fields:   []string{"region", "school"},
			Sentinel: builtin.UnknownSentinel,
		},
		builtin.TitleCase{Fields: []string{"gender", "subject", "region"}},
		builtin.Coerce{
			Types:  map[string]string{"exam_date": "date"},
			Layout: schema.DateLayout,
		},
		builtin.DeriveStatus{},
		builtin.DeriveBand{},
		builtin.DropFields{Fields: []string{"name"}},
	}
}
