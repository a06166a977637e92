package profile

import (
	"strings"

	"github.com/careerforge/resume-tailor/internal/skills"
	"github.com/careerforge/resume-tailor/internal/types"
)

// MergeSkills folds newly extracted skill names into the profile,
// classifying each by name. Names already present in any category are
// left alone. Returns how many skills were added.
func MergeSkills(p *types.SkillProfile, names []string) int {
	added := 0
	for _, name := range names {
		if p.Has(name) {
			continue
		}
		p.Add(skills.DetectCategory(name), name)
		added++
	}
	return added
}

// RemoveSkills drops the named skills from every category, compared
// case-insensitively. Used when a source document is deleted. Returns how
// many skills were removed.
func RemoveSkills(p *types.SkillProfile, names []string) int {
	if p == nil || len(names) == 0 {
		return 0
	}
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[strings.ToLower(name)] = true
	}

	removed := 0
	for category, existing := range p.Skills {
		kept := existing[:0]
		for _, name := range existing {
			if drop[strings.ToLower(name)] {
				removed++
				continue
			}
			kept = append(kept, name)
		}
		if len(kept) == 0 {
			delete(p.Skills, category)
		} else {
			p.Skills[category] = kept
		}
	}
	return removed
}
