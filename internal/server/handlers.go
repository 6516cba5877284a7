package server

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/ranking"
)

// maxUploadBytes bounds multipart request bodies (resumes are small).
const maxUploadBytes = 32 << 20

// AnalyzeResponse wraps a single analysis with its storage ID.
type AnalyzeResponse struct {
	ID     string `json:"id,omitempty"` // empty when persistence failed
	Report any    `json:"report"`
}

// handleAnalyze accepts a multipart form with a "resume" file and an
// optional "jd" text field, runs the full pipeline, and persists the
// result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume file")
		return
	}
	defer file.Close()

	path, cleanup, err := saveUpload(file, header)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer cleanup()

	analyzer, err := pipeline.NewAnalyzer(r.Context(), pipeline.Options{
		JDText: r.FormValue("jd"),
		APIKey: s.apiKey,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to initialize analyzer: "+err.Error())
		return
	}

	report, err := analyzer.AnalyzeFile(r.Context(), path)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	report.Source = header.Filename

	resp := AnalyzeResponse{Report: report}
	if id, err := s.db.SaveAnalysis(r.Context(), report); err != nil {
		log.Printf("failed to persist analysis for %s: %v", header.Filename, err)
	} else {
		resp.ID = id.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRank accepts a multipart form with repeated "resumes" files plus
// an optional "jd" field, analyzes them concurrently, and returns the
// ranked report. A "top_k" field truncates the output.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	files := r.MultipartForm.File["resumes"]
	if len(files) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No resume files provided")
		return
	}

	tmpDir, err := os.MkdirTemp("", "rank-upload-*")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to stage uploads")
		return
	}
	defer os.RemoveAll(tmpDir)

	var paths []string
	for _, header := range files {
		name := filepath.Base(header.Filename)
		if !ingestion.IsSupported(name) {
			s.errorResponse(w, http.StatusUnsupportedMediaType,
				fmt.Sprintf("unsupported file format: %s", name))
			return
		}
		f, err := header.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read upload "+name)
			return
		}
		path := filepath.Join(tmpDir, name)
		if err := writeUpload(path, f); err != nil {
			f.Close()
			s.errorResponse(w, http.StatusInternalServerError, "Failed to stage "+name)
			return
		}
		f.Close()
		paths = append(paths, path)
	}

	analyzer, err := pipeline.NewAnalyzer(r.Context(), pipeline.Options{
		JDText: r.FormValue("jd"),
		APIKey: s.apiKey,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to initialize analyzer: "+err.Error())
		return
	}

	report, err := analyzer.AnalyzeBatch(r.Context(), paths)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if topK := r.FormValue("top_k"); topK != "" {
		k, err := strconv.Atoi(topK)
		if err != nil || k < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid top_k value")
			return
		}
		report.Candidates = ranking.TopK(report.Candidates, k)
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleListCandidates lists stored analyses, filtered by the name,
// min_score, and limit query parameters.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	filters := db.CandidateFilters{
		Name: r.URL.Query().Get("name"),
	}

	if minScore := r.URL.Query().Get("min_score"); minScore != "" {
		v, err := strconv.ParseFloat(minScore, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid min_score value")
			return
		}
		filters.MinScore = v
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil || v < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit value")
			return
		}
		filters.Limit = v
	}

	candidates, err := s.db.ListCandidates(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if candidates == nil {
		candidates = []db.CandidateSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// handleGetCandidate returns one stored analysis by ID.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	stored, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if stored == nil {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleDeleteCandidate deletes one stored analysis by ID.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// saveUpload stages one multipart file in a temp directory, keeping the
// original extension so the loader can dispatch on it.
func saveUpload(file multipart.File, header *multipart.FileHeader) (string, func(), error) {
	name := filepath.Base(header.Filename)
	if !ingestion.IsSupported(name) {
		return "", nil, fmt.Errorf("%w: %s", ingestion.ErrUnsupportedFormat, name)
	}

	tmpDir, err := os.MkdirTemp("", "resume-upload-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to stage upload: %w", err)
	}

	path := filepath.Join(tmpDir, name)
	if err := writeUpload(path, file); err != nil {
		os.RemoveAll(tmpDir)
		return "", nil, err
	}

	return path, func() { os.RemoveAll(tmpDir) }, nil
}

func writeUpload(path string, file multipart.File) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
