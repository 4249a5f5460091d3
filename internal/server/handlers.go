package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/ats-scorer/internal/fetch"
	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/prompts"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

const maxBodyBytes = 2 << 20 // 2 MiB

// handleScore scores a resume document and returns the full report.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req types.ScoreRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rawDoc, err := json.Marshal(req.Resume)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume document")
		return
	}
	if err := schemas.ValidateResumeDocument(rawDoc); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var report *types.ATSScoreReport
	if req.Parallel {
		report, err = scoring.ScoreParallel(r.Context(), req.Resume)
		if err != nil {
			log.Printf("Parallel scoring failed: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Scoring failed")
			return
		}
	} else {
		report = scoring.Score(req.Resume)
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleKeywords runs keyword-overlap analysis against a job description.
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req types.KeywordsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	description := req.JobDescription
	if description == "" && req.JobURL != "" {
		description, err = fetch.JobDescription(r.Context(), req.JobURL)
		if err != nil {
			log.Printf("Job fetch failed: %v", err)
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting")
			return
		}
	}

	matches := keywords.Match(req.Resume, description)
	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleRemediation builds a remediation prompt for a scored section.
func (s *Server) handleRemediation(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req types.RemediationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	prompt, err := prompts.BuildRemediationPrompt(req.Section, req.Resume, req.Issues)
	if err != nil {
		log.Printf("Prompt build failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build prompt")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"prompt": prompt})
}
