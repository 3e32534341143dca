package builtin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"

	"exametl/pkg/records"
)

// DeDup collapses duplicate records by a configured key and chooses a winner
// according to a policy:
//
//   - "keep-first": keep the earliest occurrence in the dataset
//   - "keep-last":  keep the latest occurrence (default)
//
// It runs in-memory on a single dataset. Records missing any key field
// cannot be keyed; they pass through untouched after the winners.
//
// Keys are hashed with xxh3 over the concatenated string forms of the key
// fields (nil -> NUL), separated by an unlikely byte, so the winner map stays
// compact regardless of key width.
type DeDup struct {
	// Keys are the field names that form the business key, e.g. ["student_id"].
	Keys []string

	// Policy selects the winner among duplicates: "keep-first" or "keep-last".
	Policy string
}

// Apply returns a new slice containing only the winning record for each key,
// in ascending position of the winning occurrence.
func (d DeDup) Apply(in []records.Record) []records.Record {
	if len(in) == 0 || len(d.Keys) == 0 {
		return in
	}

	policy := strings.ToLower(strings.TrimSpace(d.Policy))
	if policy == "" {
		policy = "keep-last"
	}

	type slot struct {
		rec   records.Record
		index int // original position in input
	}
	winners := make(map[uint64]slot, len(in))

	keyOf := func(r records.Record) (uint64, bool) {
		var b strings.Builder
		for _, k := range d.Keys {
			v, ok := r[k]
			if !ok {
				return 0, false
			}
			if b.Len() > 0 {
				b.WriteByte('\x1f')
			}
			switch t := v.(type) {
			case nil:
				b.WriteByte('\x00')
			case string:
				b.WriteString(t)
			default:
				b.WriteString(fmt.Sprint(t))
			}
		}
		return xxh3.HashString(b.String()), true
	}

	for i, r := range in {
		key, ok := keyOf(r)
		if !ok {
			continue
		}
		switch policy {
		case "keep-first":
			if _, exists := winners[key]; !exists {
				winners[key] = slot{rec: r, index: i}
			}
		default: // "keep-last"
			winners[key] = slot{rec: r, index: i}
		}
	}

	// Winners in stable position order, then pass-through records.
	indexes := make([]int, 0, len(winners))
	byIndex := make(map[int]records.Record, len(winners))
	for _, s := range winners {
		indexes = append(indexes, s.index)
		byIndex[s.index] = s.rec
	}
	sort.Ints(indexes)

	out := make([]records.Record, 0, len(winners))
	for _, idx := range indexes {
		out = append(out, byIndex[idx])
	}
	for _, r := range in {
		if _, ok := keyOf(r); !ok {
			out = append(out, r)
		}
	}
	return out
}
