package types

import (
	"strings"

	"github.com/google/uuid"
)

// SkillCategory buckets vocabulary entries and profile skills.
type SkillCategory string

const (
	SkillCategoryTechnical  SkillCategory = "technical"
	SkillCategoryProduct    SkillCategory = "product"
	SkillCategoryLeadership SkillCategory = "leadership"
	SkillCategoryDomain     SkillCategory = "domain"
	SkillCategorySoft       SkillCategory = "soft"
)

// ValidSkillCategory reports whether c is one of the known categories.
func ValidSkillCategory(c SkillCategory) bool {
	switch c {
	case SkillCategoryTechnical, SkillCategoryProduct, SkillCategoryLeadership,
		SkillCategoryDomain, SkillCategorySoft:
		return true
	}
	return false
}

// VocabularyEntry is a named skill plus the lowercase substrings that
// trigger it during matching. Reference data, loaded once at startup.
type VocabularyEntry struct {
	Name          string        `json:"name"`
	Category      SkillCategory `json:"category"`
	MatchPatterns []string      `json:"match_patterns"`
}

// SkillProfile is the per-owner accumulation of matched skills, keyed by
// category. Upserted on every extraction or manual toggle.
type SkillProfile struct {
	OwnerID uuid.UUID                  `json:"owner_id"`
	Skills  map[SkillCategory][]string `json:"skills"`
}

// Has reports whether the profile contains the named skill in any category,
// compared case-insensitively.
func (p *SkillProfile) Has(skill string) bool {
	if p == nil {
		return false
	}
	for _, names := range p.Skills {
		for _, n := range names {
			if strings.EqualFold(n, skill) {
				return true
			}
		}
	}
	return false
}

// Add inserts a skill into the given category if not already present.
// Returns true if the profile changed.
func (p *SkillProfile) Add(category SkillCategory, skill string) bool {
	if p.Skills == nil {
		p.Skills = make(map[SkillCategory][]string)
	}
	for _, n := range p.Skills[category] {
		if strings.EqualFold(n, skill) {
			return false
		}
	}
	p.Skills[category] = append(p.Skills[category], skill)
	return true
}

// AllSkills flattens the profile into a single slice, category order
// unspecified.
func (p *SkillProfile) AllSkills() []string {
	if p == nil {
		return nil
	}
	var out []string
	for _, names := range p.Skills {
		out = append(out, names...)
	}
	return out
}
