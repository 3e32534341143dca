package generator

import (
	"fmt"
	"math"
	"time"

	"exametl/pkg/records"
)

// Dataset produces rows synthetic exam records. Student ids are issued
// sequentially from a per-dataset base; with probability DuplicateRate a row
// reuses an earlier id instead, modelling the duplicate submissions the
// validator later collapses. Returns ErrInvalidRowCount for rows <= 0.
func (g *Generator) Dataset(rows int) ([]records.Record, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidRowCount, rows)
	}

	out := make([]records.Record, 0, rows)
	issued := make([]int, 0, rows)
	nextID := baseStudentID + 1

	for i := 0; i < rows; i++ {
		var id int
		if len(issued) > 0 && g.rng.Float64() < g.opt.DuplicateRate {
			id = issued[g.rng.Intn(len(issued))]
		} else {
			id = nextID
			nextID++
			issued = append(issued, id)
		}

		rec := records.Record{
			"student_id":  id,
			"name":        g.pick(firstNames) + " " + g.pick(lastNames),
			"gender":      g.pick(genders),
			"age":         17 + g.rng.Intn(8), // 17..24
			"subject":     g.pick(subjects),
			"exam_score":  g.score(),
			"exam_date":   g.date(),
			"region":      g.maybe(g.pick(regions), g.opt.NullRegionRate),
			"grade_level": g.pick(grades),
			"school":      g.maybe(g.pick(schools), g.opt.NullSchoolRate),
		}
		out = append(out, rec)
	}
	return out, nil
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// score samples a score in [0, 100] rounded to one decimal.
func (g *Generator) score() float64 {
	return math.Round(g.rng.Float64()*1000) / 10
}

// date samples a calendar day in the exam window.
func (g *Generator) date() time.Time {
	days := int(dateTo.Sub(dateFrom).Hours() / 24)
	return dateFrom.AddDate(0, 0, g.rng.Intn(days))
}

// maybe returns nil with probability rate, otherwise v.
func (g *Generator) maybe(v string, rate float64) any {
	if g.rng.Float64() < rate {
		return nil
	}
	return v
}
