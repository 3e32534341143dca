package records

import "testing"

func TestClone(t *testing.T) {
	orig := Record{"student_id": 1001, "region": "North"}
	cp := orig.Clone()
	cp["region"] = "South"

	if orig["region"] != "North" {
		t.Fatalf("Clone shares storage: orig region = %v", orig["region"])
	}
	if len(cp) != 2 || cp["student_id"] != 1001 {
		t.Fatalf("clone = %v", cp)
	}
}

func TestString(t *testing.T) {
	r := Record{"subject": "math", "age": 18, "region": nil}

	if s, ok := r.String("subject"); !ok || s != "math" {
		t.Fatalf("String(subject) = %q, %v", s, ok)
	}
	if _, ok := r.String("age"); ok {
		t.Fatal("String(age) accepted an int")
	}
	if _, ok := r.String("region"); ok {
		t.Fatal("String(region) accepted nil")
	}
	if _, ok := r.String("missing"); ok {
		t.Fatal("String(missing) accepted an absent key")
	}
}

func TestIsEmpty(t *testing.T) {
	r := Record{"a": "", "b": nil, "c": "x", "d": 0}

	for key, want := range map[string]bool{
		"a":      true,
		"b":      true,
		"c":      false,
		"d":      false, // zero is a value
		"absent": true,
	} {
		if got := r.IsEmpty(key); got != want {
			t.Errorf("IsEmpty(%q) = %v, want %v", key, got, want)
		}
	}
}
