package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/careerforge/resume-tailor/internal/profile"
	"github.com/careerforge/resume-tailor/internal/types"
)

// handleListExperiences returns the owner's experiences in display order.
func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	exps, err := s.db.ListExperiences(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"experiences": exps})
}

// handleCreateExperience adds a manually entered experience at the end of
// the display ordering.
func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	var req types.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	expType := req.Type
	if expType == "" {
		expType = types.ExperienceTypeJob
	}

	now := time.Now().UTC()
	exp := types.Experience{
		OwnerID:      ownerID,
		Organization: req.Organization,
		Role:         req.Role,
		Period:       req.Period,
		Type:         expType,
	}
	for _, skill := range req.Skills {
		exp.Skills = append(exp.Skills, types.SkillEvidence{Skill: skill, AddedAt: now})
	}
	for _, achievement := range req.Achievements {
		exp.Accomplishments = append(exp.Accomplishments, types.Accomplishment{
			Description: achievement,
			Category:    "general",
			Tags:        []string{},
		})
	}

	if err := s.db.CreateExperience(r.Context(), &exp); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Manually added skills also land in the owner's profile.
	if len(req.Skills) > 0 {
		if err := s.mergeProfileSkills(r, ownerID, req.Skills); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	respondJSON(w, http.StatusCreated, exp)
}

// handleDeleteExperience removes an experience and renumbers the rest.
func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteExperience(r.Context(), ownerID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleReorderExperiences moves one experience to a new position and
// persists the resulting dense ordering.
func (s *Server) handleReorderExperiences(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	var req types.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	exps, err := s.db.ListExperiences(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	reordered, err := profile.Reorder(exps, req.ExperienceID, req.ToIndex)
	if err != nil {
		var reorderErr *profile.ReorderError
		if errors.As(err, &reorderErr) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := s.db.UpdateDisplayOrder(r.Context(), ownerID, reordered); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Read back rather than trusting the in-memory copy.
	exps, err = s.db.ListExperiences(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"experiences": exps})
}

// skillRequest is the payload for adding skill evidence to an experience.
type skillRequest struct {
	Skill    string `json:"skill"`
	Evidence string `json:"evidence,omitempty"`
	Impact   string `json:"impact,omitempty"`
}

// handleAddExperienceSkill appends one skill evidence entry.
func (s *Server) handleAddExperienceSkill(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Skill == "" {
		s.errorResponse(w, http.StatusBadRequest, "skill is required")
		return
	}

	exp, err := s.db.GetExperience(r.Context(), ownerID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if exp == nil {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}
	if exp.HasSkill(req.Skill) {
		respondJSON(w, http.StatusOK, exp)
		return
	}

	exp.Skills = append(exp.Skills, types.SkillEvidence{
		Skill:    req.Skill,
		Evidence: req.Evidence,
		Impact:   req.Impact,
		AddedAt:  time.Now().UTC(),
	})
	if err := s.db.UpdateExperienceSkills(r.Context(), ownerID, id, exp.Skills); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if err := s.mergeProfileSkills(r, ownerID, []string{req.Skill}); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, exp)
}

// handleDeleteExperienceSkill removes one skill evidence entry by index.
func (s *Server) handleDeleteExperienceSkill(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill index")
		return
	}

	exp, err := s.db.GetExperience(r.Context(), ownerID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if exp == nil {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}
	if index >= len(exp.Skills) {
		s.errorResponse(w, http.StatusNotFound, "Skill index out of range")
		return
	}

	exp.Skills = append(exp.Skills[:index], exp.Skills[index+1:]...)
	if err := s.db.UpdateExperienceSkills(r.Context(), ownerID, id, exp.Skills); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, exp)
}

// mergeProfileSkills folds skill names into the owner's profile.
func (s *Server) mergeProfileSkills(r *http.Request, ownerID uuid.UUID, names []string) error {
	prof, err := s.db.GetSkillProfile(r.Context(), ownerID)
	if err != nil {
		return err
	}
	if prof == nil {
		prof = &types.SkillProfile{OwnerID: ownerID}
	}
	if profile.MergeSkills(prof, names) > 0 {
		return s.db.UpsertSkillProfile(r.Context(), prof)
	}
	return nil
}

func (s *Server) handleDeleteAccomplishment(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	if _, ok := s.pathID(w, r, "id"); !ok {
		return
	}
	accomplishmentID, ok := s.pathID(w, r, "accomplishmentID")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteAccomplishment(r.Context(), ownerID, accomplishmentID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Accomplishment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
