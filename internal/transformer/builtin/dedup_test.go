package builtin

import (
	"reflect"
	"testing"

	"exametl/pkg/records"
)

func mk(id int, fields map[string]any) records.Record {
	r := records.Record{"student_id": id}
	for k, v := range fields {
		r[k] = v
	}
	return r
}

func TestDeDupKeepFirst(t *testing.T) {
	in := []records.Record{
		mk(1001, map[string]any{"subject": "Math"}),
		mk(1001, map[string]any{"subject": "Science"}),
		mk(1002, map[string]any{"subject": "History"}),
	}
	d := DeDup{Keys: []string{"student_id"}, Policy: "keep-first"}
	got := d.Apply(in)
	want := []records.Record{
		mk(1001, map[string]any{"subject": "Math"}),
		mk(1002, map[string]any{"subject": "History"}),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keep-first: got %#v want %#v", got, want)
	}
}

func TestDeDupKeepLast(t *testing.T) {
	in := []records.Record{
		mk(1001, map[string]any{"subject": "Math"}),
		mk(1001, map[string]any{"subject": "Science"}),
		mk(1002, map[string]any{"subject": "History"}),
	}
	d := DeDup{Keys: []string{"student_id"}}
	got := d.Apply(in)
	want := []records.Record{
		mk(1001, map[string]any{"subject": "Science"}),
		mk(1002, map[string]any{"subject": "History"}),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keep-last: got %#v want %#v", got, want)
	}
}

func TestDeDupMissingKeyPassthrough(t *testing.T) {
	in := []records.Record{
		{"subject": "Math"}, // no student_id
		mk(1001, nil),
	}
	d := DeDup{Keys: []string{"student_id"}, Policy: "keep-first"}
	got := d.Apply(in)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if _, ok := got[1]["student_id"]; ok {
		t.Fatalf("pass-through record not appended last: %#v", got)
	}
}

func TestDeDupNoKeysNoop(t *testing.T) {
	in := []records.Record{mk(1, nil), mk(1, nil)}
	got := DeDup{}.Apply(in)
	if len(got) != 2 {
		t.Fatalf("no-key DeDup dropped records")
	}
}
