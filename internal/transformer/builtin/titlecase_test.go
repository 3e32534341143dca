package builtin

import (
	"testing"

	"exametl/pkg/records"
)

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"female", "Female"},
		{"MATH", "Math"},
		{"north east", "North East"},
		{"Science", "Science"},
	}
	tc := TitleCase{Fields: []string{"subject"}}
	for _, c := range cases {
		got := tc.Apply([]records.Record{{"subject": c.in}})
		if got[0]["subject"] != c.want {
			t.Errorf("TitleCase(%q) = %v, want %q", c.in, got[0]["subject"], c.want)
		}
	}
}

func TestTitleCaseSkipsNonStrings(t *testing.T) {
	tc := TitleCase{Fields: []string{"age"}}
	got := tc.Apply([]records.Record{{"age": 19}})
	if got[0]["age"] != 19 {
		t.Fatalf("non-string value modified: %v", got[0]["age"])
	}
}

func TestTitleCaseIdempotent(t *testing.T) {
	tc := TitleCase{Fields: []string{"gender"}}
	r := []records.Record{{"gender": "female"}}
	once := tc.Apply(r)[0]["gender"]
	twice := tc.Apply(r)[0]["gender"]
	if once != twice {
		t.Fatalf("not idempotent: %v vs %v", once, twice)
	}
}
