package merge

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careerforge/resume-tailor/internal/types"
)

// MatchSkills attributes extracted skill names to the experiences whose
// document section mentions them. Skills an experience already carries are
// skipped. Returns the new evidence entries keyed by experience ID; only
// experiences that gained at least one skill appear in the map.
func MatchSkills(rawText string, experiences []types.Experience, skillNames []string) map[uuid.UUID][]types.SkillEvidence {
	orgNames := make([]string, 0, len(experiences))
	for _, e := range experiences {
		if e.Organization != "" {
			orgNames = append(orgNames, strings.ToLower(e.Organization))
		}
	}

	now := time.Now().UTC()
	out := make(map[uuid.UUID][]types.SkillEvidence)
	for _, exp := range experiences {
		if exp.Organization == "" {
			continue
		}
		section := strings.ToLower(sectionFor(rawText, strings.ToLower(exp.Organization), orgNames))
		if section == "" {
			continue
		}

		for _, name := range skillNames {
			if exp.HasSkill(name) {
				continue
			}
			if !strings.Contains(section, strings.ToLower(name)) {
				continue
			}
			if containsSkill(out[exp.ID], name) {
				continue
			}
			out[exp.ID] = append(out[exp.ID], types.SkillEvidence{
				Skill:    name,
				Evidence: "Extracted from " + exp.Organization + " section in resume",
				AddedAt:  now,
			})
		}
	}
	return out
}

func containsSkill(evidence []types.SkillEvidence, name string) bool {
	for _, e := range evidence {
		if strings.EqualFold(e.Skill, name) {
			return true
		}
	}
	return false
}
