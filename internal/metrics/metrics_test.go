package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeBackend is a simple in-memory Backend implementation for tests.
type fakeBackend struct {
	mu sync.Mutex

	counters   []counterCall
	durations  []durationCall
	flushCount int
}

type counterCall struct {
	name   string
	delta  float64
	labels Labels
}

type durationCall struct {
	name   string
	value  float64
	labels Labels
}

func (f *fakeBackend) IncCounter(name string, delta float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = append(f.counters, counterCall{name, delta, labels})
}

func (f *fakeBackend) ObserveDuration(name string, value float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.durations = append(f.durations, durationCall{name, value, labels})
}

func (f *fakeBackend) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushCount++
	return nil
}

func TestRecordStageSuccessAndFailure(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	backend = fb

	RecordStage("exams", "full", "validate", nil, 2*time.Second)
	RecordStage("exams", "incremental", "load", errors.New("boom"), 1500*time.Millisecond)

	if len(fb.counters) != 2 || len(fb.durations) != 2 {
		t.Fatalf("calls = %d counters / %d durations, want 2/2", len(fb.counters), len(fb.durations))
	}

	c0 := fb.counters[0]
	if c0.name != "exam_pipeline_stage_total" || c0.delta != 1 {
		t.Fatalf("counter[0] = %#v", c0)
	}
	if c0.labels["dataset"] != "full" || c0.labels["stage"] != "validate" || c0.labels["status"] != "success" {
		t.Fatalf("counter[0] labels = %v", c0.labels)
	}

	d0 := fb.durations[0]
	if d0.name != "exam_pipeline_stage_duration_seconds" {
		t.Fatalf("duration[0].name = %q", d0.name)
	}
	if d0.value < 1.999 || d0.value > 2.001 {
		t.Fatalf("duration[0].value = %v, want ~2.0", d0.value)
	}

	c1 := fb.counters[1]
	if c1.labels["status"] != "failure" || c1.labels["stage"] != "load" {
		t.Fatalf("counter[1] labels = %v", c1.labels)
	}
	d1 := fb.durations[1]
	if d1.value < 1.499 || d1.value > 1.501 {
		t.Fatalf("duration[1].value = %v, want ~1.5", d1.value)
	}
}

func TestRecordRows(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	backend = fb

	RecordRows("exams", "full", "validated", 7832)
	RecordRows("exams", "full", "rejected", 0) // ignored
	RecordRows("exams", "incremental", "loaded", 981)

	if len(fb.counters) != 2 {
		t.Fatalf("expected 2 counter calls, got %d", len(fb.counters))
	}

	c0 := fb.counters[0]
	if c0.name != "exam_pipeline_rows_total" || c0.delta != 7832 {
		t.Fatalf("counter[0] = %#v", c0)
	}
	if c0.labels["dataset"] != "full" || c0.labels["kind"] != "validated" {
		t.Fatalf("counter[0] labels = %v", c0.labels)
	}

	c1 := fb.counters[1]
	if c1.delta != 981 || c1.labels["kind"] != "loaded" {
		t.Fatalf("counter[1] = %#v", c1)
	}
}

func TestSetBackendAndFlush(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	SetBackend(fb)

	if backend != fb {
		t.Fatal("SetBackend did not replace global backend")
	}
	if err := Flush(); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	if fb.flushCount != 1 {
		t.Fatalf("flushCount = %d, want 1", fb.flushCount)
	}

	// SetBackend(nil) keeps the current backend.
	SetBackend(nil)
	if backend != fb {
		t.Fatal("SetBackend(nil) should not change backend")
	}
}
