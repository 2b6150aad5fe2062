package pipeline

import (
	"testing"
	"time"
)

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(1 * time.Hour)

	job := &Job{
		ID:        "abc123",
		Status:    StatusQueued,
		Filename:  "report.md",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	store.Put(job)

	got := store.Get("abc123")
	if got == nil {
		t.Fatal("expected job, got nil")
	}
	if got.ID != "abc123" || got.Filename != "report.md" {
		t.Errorf("unexpected job fields: %+v", got)
	}

	if store.Get("missing") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)

	old := &Job{ID: "old", UpdatedAt: time.Now().Add(-1 * time.Minute)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(old)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job retained")
	}
}

func TestJob_SetStatus(t *testing.T) {
	job := &Job{ID: "x", Status: StatusQueued}
	before := job.UpdatedAt

	job.SetStatus(StatusCompiling, "compiling")

	if job.Status != StatusCompiling {
		t.Errorf("expected status %s, got %s", StatusCompiling, job.Status)
	}
	if job.Phase != "compiling" {
		t.Errorf("expected phase compiling, got %s", job.Phase)
	}
	if !job.UpdatedAt.After(before) {
		t.Error("expected UpdatedAt advanced")
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "x", Status: StatusCompleted}

	snap := job.Snapshot()
	if snap.Progress.Errors == nil {
		t.Fatal("snapshot errors must be non-nil for JSON")
	}
	if len(snap.Progress.Errors) != 0 {
		t.Errorf("expected no errors, got %v", snap.Progress.Errors)
	}

	job.AddError("supplement failed")
	snap = job.Snapshot()
	if len(snap.Progress.Errors) != 1 || snap.Progress.Errors[0] != "supplement failed" {
		t.Errorf("expected recorded error, got %v", snap.Progress.Errors)
	}
}

func TestJob_OutcomeLifecycle(t *testing.T) {
	job := &Job{ID: "x"}
	if job.Outcome() != nil {
		t.Fatal("expected nil outcome before completion")
	}

	job.SetOutcome(&Outcome{Title: "Report", Figures: 2})

	out := job.Outcome()
	if out == nil || out.Title != "Report" || out.Figures != 2 {
		t.Errorf("unexpected outcome: %+v", out)
	}
}

func TestJobID_Stable(t *testing.T) {
	data := []byte("content")
	a := JobID("doc.md", data, "nonce1")
	b := JobID("doc.md", data, "nonce1")
	c := JobID("doc.md", data, "nonce2")

	if a != b {
		t.Error("expected identical inputs to yield identical ids")
	}
	if a == c {
		t.Error("expected distinct nonce to yield distinct id")
	}
	if len(a) != 20 {
		t.Errorf("expected 20-char id, got %d", len(a))
	}
}
