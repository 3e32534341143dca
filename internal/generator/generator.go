// Package generator produces synthetic exam datasets. Every field is sampled
// independently from fixed pools or bounded numeric ranges, so generated
// data always conforms to the raw schema; the only deliberate imperfections
// are empty region/school cells and occasional repeated student ids, which
// exist to give the validation stage real work.
package generator

import (
	"errors"
	"math/rand"
	"time"
)

// ErrInvalidRowCount is returned for non-positive row-count requests. It is
// fatal: no output is produced.
var ErrInvalidRowCount = errors.New("generator: row count must be positive")

// Categorical pools. Values are intentionally lowercased or mixed-case so
// the transform stage's title-casing has observable effect.
var (
	genders  = []string{"female", "male"}
	subjects = []string{"math", "science", "history", "english", "geography"}
	regions  = []string{"north", "south", "east", "west", "central"}
	grades   = []string{"Year 1", "Year 2", "Year 3", "Year 4"}
	schools  = []string{
		"Hillcrest HS", "Riverside Academy", "Oakwood College",
		"Maple Grove HS", "Dover Academy", "Lakeside HS",
	}
	firstNames = []string{
		"Alice", "Bob", "Carol", "David", "Elena", "Farid", "Grace",
		"Hiro", "Ines", "Jamal", "Kira", "Liam", "Mina", "Noah",
		"Olga", "Priya", "Quinn", "Rosa", "Sam", "Tara",
	}
	lastNames = []string{
		"Kim", "Lee", "Novak", "Okafor", "Patel", "Quinn", "Rossi",
		"Sato", "Tan", "Ueda", "Varga", "Weber", "Xu", "Young", "Zhao",
	}
)

// Exam-date sampling window (inclusive start, exclusive end).
var (
	dateFrom = time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	dateTo   = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
)

const baseStudentID = 1000

// Options tune the imperfections injected into generated data. Rates are
// probabilities in [0, 1].
type Options struct {
	NullRegionRate float64 // chance a row has no region
	NullSchoolRate float64 // chance a row has no school
	DuplicateRate  float64 // chance a row reuses an already-issued student_id
}

// DefaultOptions returns the rates used when the pipeline config leaves them
// unset.
func DefaultOptions() Options {
	return Options{
		NullRegionRate: 0.08,
		NullSchoolRate: 0.05,
		DuplicateRate:  0.02,
	}
}

// Generator samples synthetic exam records from a seeded random source.
// A given seed always produces the same sequence of datasets.
type Generator struct {
	rng *rand.Rand
	opt Options
}

// New returns a Generator seeded with seed.
func New(seed int64, opt Options) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), opt: opt}
}
