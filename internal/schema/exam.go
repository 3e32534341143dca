package schema

// DateLayout is the calendar-date layout used everywhere in the pipeline:
// CSV files, coercion, and the TEXT representation stored in SQLite.
const DateLayout = "2006-01-02"

// KeyColumn is the unique business key of an exam record.
const KeyColumn = "student_id"

// Derived column names added by the transform stage.
const (
	ColScoreStatus     = "score_status"
	ColPerformanceBand = "performance_band"
)

// Raw returns the contract for generated (pre-transform) exam records.
func Raw() Contract {
	return Contract{
		Name: "exam_raw",
		Fields: []Field{
			{Name: "student_id", Type: "int", Required: true},
			{Name: "name", Type: "text"},
			{Name: "gender", Type: "text", Required: true},
			{Name: "age", Type: "int", Required: true},
			{Name: "subject", Type: "text", Required: true},
			{Name: "exam_score", Type: "float", Required: true},
			{Name: "exam_date", Type: "date", Required: true, Layout: DateLayout},
			{Name: "region", Type: "text"},
			{Name: "grade_level", Type: "text", Required: true},
			{Name: "school", Type: "text"},
		},
	}
}

// Transformed returns the contract for post-transform exam records: the raw
// contract without the name column, plus the two derived columns. The
// previously nullable categoricals are required here because the transform
// stage fills them with a sentinel.
func Transformed() Contract {
	return Contract{
		Name: "exam_transformed",
		Fields: []Field{
			{Name: "student_id", Type: "int", Required: true},
			{Name: "gender", Type: "text", Required: true},
			{Name: "age", Type: "int", Required: true},
			{Name: "subject", Type: "text", Required: true},
			{Name: "exam_score", Type: "float", Required: true},
			{Name: "exam_date", Type: "date", Required: true, Layout: DateLayout},
			{Name: "region", Type: "text", Required: true},
			{Name: "grade_level", Type: "text", Required: true},
			{Name: "school", Type: "text", Required: true},
			{Name: ColScoreStatus, Type: "text", Required: true},
			{Name: ColPerformanceBand, Type: "text", Required: true},
		},
	}
}
