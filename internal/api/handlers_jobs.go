package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"docnum/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

// handleSubmitDocument queues a document for asynchronous compilation.
func (s *Server) handleSubmitDocument(w http.ResponseWriter, r *http.Request) {
	data, filename, opts, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	// Reject bad options at submit time rather than inside the worker.
	if _, err := pipeline.ScopeFor(s.cfg, opts); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        pipeline.JobID(filename, data, fmt.Sprintf("%d", now.UnixNano())),
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		Title:     opts.Title,
		Options:   opts,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":     job.ID,
		"status":     job.Status,
		"poll_url":   fmt.Sprintf("/api/documents/%s/status", job.ID),
		"result_url": fmt.Sprintf("/api/documents/%s/result", job.ID),
	})
}

// handleDocumentStatus reports job progress.
func (s *Server) handleDocumentStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   snap.ID,
		"status":   snap.Status,
		"phase":    snap.Phase,
		"title":    snap.Title,
		"progress": snap.Progress,
	})
}

// handleDocumentResult returns the rendered output of a finished job.
func (s *Server) handleDocumentResult(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	outcome := job.Outcome()
	if outcome == nil {
		jsonError(w, "job not finished", http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(outcome)
}
