package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalysisResult is derived entirely from a job description plus the
// owner's current profile and experiences. It is recomputed on every
// request and never persisted.
type AnalysisResult struct {
	Role             string                     `json:"role"`
	Industry         string                     `json:"industry"`
	RequiredSkills   map[SkillCategory][]string `json:"required_skills"`
	SkillGaps        map[SkillCategory][]string `json:"skill_gaps"`
	KeyRequirements  []string                   `json:"key_requirements"`
	MatchScore       int                        `json:"match_score"`
	RankedExperience []RankedExperience         `json:"ranked_experience"`
	RecommendedFocus []string                   `json:"recommended_focus"`
}

// TotalRequired counts required skills across all categories.
func (r *AnalysisResult) TotalRequired() int {
	n := 0
	for _, skills := range r.RequiredSkills {
		n += len(skills)
	}
	return n
}

// TotalGaps counts missing skills across all categories.
func (r *AnalysisResult) TotalGaps() int {
	n := 0
	for _, skills := range r.SkillGaps {
		n += len(skills)
	}
	return n
}

// RankedExperience pairs an experience with its relevance score against a
// job description. Ordering is descending by score, stable on ties.
type RankedExperience struct {
	Experience Experience `json:"experience"`
	Score      int        `json:"score"`
}

// Application tracks a submitted job application and the analysis snapshot
// it was sent with.
type Application struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Company       string    `json:"company"`
	Role          string    `json:"role"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	ResumeVersion string    `json:"resume_version,omitempty"`
	KeyEmphasis   string    `json:"key_emphasis,omitempty"`
	MatchScore    int       `json:"match_score"`
	Feedback      string    `json:"feedback,omitempty"`
}

// AnalyzeRequest is the payload for analysis and composition endpoints.
// Exactly one of JobText or JobURL must be set.
type AnalyzeRequest struct {
	JobText string `json:"job_text,omitempty"`
	JobURL  string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CreateExperienceRequest is the payload for manual experience entry.
type CreateExperienceRequest struct {
	Organization string         `json:"organization" validate:"required,min=1"`
	Role         string         `json:"role" validate:"required,min=1"`
	Period       string         `json:"period" validate:"required,min=1"`
	Type         ExperienceType `json:"type" validate:"omitempty,oneof=job project volunteer education"`
	Achievements []string       `json:"achievements,omitempty"`
	Skills       []string       `json:"skills,omitempty"`
}

// Validate validates the CreateExperienceRequest using the validator.
func (r *CreateExperienceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ReorderRequest moves one experience to a new position in the owner's
// display ordering.
type ReorderRequest struct {
	ExperienceID uuid.UUID `json:"experience_id" validate:"required"`
	ToIndex      int       `json:"to_index" validate:"gte=0"`
}

// Validate validates the ReorderRequest using the validator.
func (r *ReorderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CreateApplicationRequest is the payload for tracking a new application.
type CreateApplicationRequest struct {
	Company     string `json:"company" validate:"required,min=1"`
	Role        string `json:"role" validate:"required,min=1"`
	Status      string `json:"status" validate:"omitempty,oneof=draft applied interviewing offer rejected"`
	KeyEmphasis string `json:"key_emphasis,omitempty"`
	MatchScore  int    `json:"match_score" validate:"gte=0,lte=100"`
}

// Validate validates the CreateApplicationRequest using the validator.
func (r *CreateApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
