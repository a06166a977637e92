package server

import (
	"encoding/json"
	"net/http"

	"github.com/careerforge/resume-tailor/internal/types"
)

// handleListApplications returns the owner's tracked applications.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	apps, err := s.db.ListApplications(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// handleCreateApplication records a new tracked application.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	var req types.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	app := types.Application{
		OwnerID:     ownerID,
		Company:     req.Company,
		Role:        req.Role,
		Status:      req.Status,
		KeyEmphasis: req.KeyEmphasis,
		MatchScore:  req.MatchScore,
	}
	if err := s.db.CreateApplication(r.Context(), &app); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, app)
}

// updateApplicationRequest is the PATCH payload.
type updateApplicationRequest struct {
	Status   string `json:"status" validate:"required,oneof=draft applied interviewing offer rejected"`
	Feedback string `json:"feedback,omitempty"`
}

// handleUpdateApplication changes the status and optional feedback.
func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	updated, err := s.db.UpdateApplicationStatus(r.Context(), ownerID, id, req.Status, req.Feedback)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !updated {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	app, err := s.db.GetApplication(r.Context(), ownerID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, app)
}

// handleDeleteApplication removes a tracked application.
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteApplication(r.Context(), ownerID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
