package server

import (
	"encoding/json"
	"net/http"

	"github.com/careerforge/resume-tailor/internal/analysis"
	"github.com/careerforge/resume-tailor/internal/compose"
	"github.com/careerforge/resume-tailor/internal/fetch"
	"github.com/careerforge/resume-tailor/internal/types"
)

// jobText resolves the analyzer input from the request, fetching the URL
// when no inline text is given.
func (s *Server) jobText(w http.ResponseWriter, r *http.Request, req *types.AnalyzeRequest) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return "", false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return "", false
	}

	if req.JobText != "" {
		return req.JobText, true
	}
	if req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_text or job_url is required")
		return "", false
	}

	text, err := fetch.JobText(r.Context(), req.JobURL, fetch.DefaultOptions())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
		return "", false
	}
	return text, true
}

// handleAnalyze scores a job description against the owner's profile.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	var req types.AnalyzeRequest
	text, ok := s.jobText(w, r, &req)
	if !ok {
		return
	}

	prof, err := s.db.GetSkillProfile(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	exps, err := s.db.ListExperiences(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	result := analysis.Analyze(text, prof, exps)
	respondJSON(w, http.StatusOK, result)
}

// handleCompose analyzes a job description and returns the tailored
// resume blob alongside the analysis.
func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	var req types.AnalyzeRequest
	text, ok := s.jobText(w, r, &req)
	if !ok {
		return
	}

	user, err := s.userService.Get(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	prof, err := s.db.GetSkillProfile(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	exps, err := s.db.ListExperiences(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	result := analysis.Analyze(text, prof, exps)
	resume := compose.Compose(compose.Header{
		Name:    user.Name,
		Contact: user.Email,
	}, result, exps, prof)

	respondJSON(w, http.StatusOK, map[string]any{
		"analysis": result,
		"resume":   resume,
	})
}
