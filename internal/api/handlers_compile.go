package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"docnum/internal/numbering"
	"docnum/internal/parser"
	"docnum/internal/pipeline"
)

// handleCompile compiles an uploaded document synchronously and returns the
// rendered output.
func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	data, filename, opts, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	outcome, err := pipeline.CompileFile(s.cfg, data, filename, opts)
	if err != nil {
		var patternErr *numbering.InvalidPatternError
		if errors.As(err, &patternErr) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(outcome)
}

// readUpload extracts the multipart file and compile options shared by the
// sync and async endpoints.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, pipeline.CompileOptions, bool) {
	var opts pipeline.CompileOptions

	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, "", opts, false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return nil, "", opts, false
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return nil, "", opts, false
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return nil, "", opts, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return nil, "", opts, false
	}

	opts = pipeline.CompileOptions{
		Title:            r.FormValue("title"),
		Lang:             r.FormValue("lang"),
		Numbering:        r.FormValue("numbering"),
		Supplement:       r.FormValue("supplement"),
		HeadingNumbering: r.FormValue("heading_numbering"),
	}

	return data, filename, opts, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
