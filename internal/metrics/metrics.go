// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from the pipeline.
//
// It exposes a narrow Backend interface (counters plus duration
// observations) behind a global, pluggable backend that defaults to a
// no-op, so stage code can always record metrics regardless of whether a
// real backend is configured. Concrete systems (Prometheus Pushgateway,
// Datadog) live in subpackages and are installed via SetBackend, mirroring
// the registration pattern of the storage backends.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveDuration records a value in a latency/duration style metric.
	ObserveDuration(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics if the backend needs it (e.g. Pushgateway).
	Flush() error
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)      {}
func (nopBackend) ObserveDuration(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                              { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing backend.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordStage measures one pipeline stage execution for one dataset:
// a success/failure counter plus the stage duration.
func RecordStage(job, dataset, stage string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}

	lbls := Labels{
		"job":     job,
		"dataset": dataset,
		"stage":   stage,
		"status":  status,
	}

	backend.IncCounter("exam_pipeline_stage_total", 1, lbls)
	backend.ObserveDuration("exam_pipeline_stage_duration_seconds", d.Seconds(), lbls)
}

// RecordRows increments a row-level counter for the given dataset and kind.
//
// Typical kinds mirror the per-stage row accounting:
//   - "generated"
//   - "read_skipped"
//   - "validated"
//   - "rejected"
//   - "duplicates_removed"
//   - "transformed"
//   - "loaded"
func RecordRows(job, dataset, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("exam_pipeline_rows_total", float64(delta), Labels{
		"job":     job,
		"dataset": dataset,
		"kind":    kind,
	})
}
