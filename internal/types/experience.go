package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExperienceType distinguishes the kinds of records the profile tracks.
type ExperienceType string

const (
	ExperienceTypeJob       ExperienceType = "job"
	ExperienceTypeProject   ExperienceType = "project"
	ExperienceTypeVolunteer ExperienceType = "volunteer"
	ExperienceTypeEducation ExperienceType = "education"
)

// SkillEvidence ties a skill name to the text that demonstrated it.
// Skill names here are free-form; extraction only ever proposes
// vocabulary-known names, but manual entry may add anything.
type SkillEvidence struct {
	Skill    string    `json:"skill"`
	Evidence string    `json:"evidence,omitempty"`
	Impact   string    `json:"impact,omitempty"`
	AddedAt  time.Time `json:"added_at"`
}

// Experience is one organization/role/period grouping, created by
// extraction or manual entry. DisplayOrder is a dense 0..N-1 permutation
// per owner.
type Experience struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"owner_id"`
	Organization  string          `json:"organization"`
	Role          string          `json:"role"`
	Period        string          `json:"period"`
	Type          ExperienceType  `json:"type"`
	Skills        []SkillEvidence `json:"skills_with_evidence"`
	DisplayOrder  int             `json:"display_order"`
	ExtractedFrom []uuid.UUID     `json:"extracted_from,omitempty"`

	// Loaded alongside the record; owned rows, not shared references.
	Accomplishments []Accomplishment `json:"accomplishments,omitempty"`
}

// HasSkill reports whether the experience already carries the named skill.
func (e *Experience) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if strings.EqualFold(s.Skill, skill) {
			return true
		}
	}
	return false
}

// AchievementTexts returns the accomplishment descriptions in stored order.
func (e *Experience) AchievementTexts() []string {
	out := make([]string, 0, len(e.Accomplishments))
	for _, a := range e.Accomplishments {
		out = append(out, a.Description)
	}
	return out
}

// SearchText joins organization, role and achievements into one lowercase
// blob for keyword scanning.
func (e *Experience) SearchText() string {
	parts := append([]string{e.Organization, e.Role}, e.AchievementTexts()...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Accomplishment is owned by exactly one experience. No two under the same
// experience may have case-insensitive-trimmed-equal descriptions.
type Accomplishment struct {
	ID           uuid.UUID `json:"id"`
	ExperienceID uuid.UUID `json:"experience_id"`
	Description  string    `json:"description"`
	Category     string    `json:"category,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
}

// NormalizeDescription is the canonical form used for the per-experience
// uniqueness check.
func NormalizeDescription(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
