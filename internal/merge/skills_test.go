package merge

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-tailor/internal/types"
)

const skillsResume = `PROFESSIONAL EXPERIENCE

TruConnect
Senior Product Manager | 2021 - Present
• Ran A/B Testing on activation flows for prepaid subscribers

Acme
Product Analyst | 2018 - 2021
• Built SQL dashboards for the growth team
`

func TestMatchSkillsAttributesBySection(t *testing.T) {
	tru := types.Experience{ID: uuid.New(), Organization: "TruConnect"}
	acme := types.Experience{ID: uuid.New(), Organization: "Acme"}

	matched := MatchSkills(skillsResume, []types.Experience{tru, acme}, []string{"A/B Testing", "SQL"})

	require.Len(t, matched[tru.ID], 1)
	assert.Equal(t, "A/B Testing", matched[tru.ID][0].Skill)
	assert.Equal(t, "Extracted from TruConnect section in resume", matched[tru.ID][0].Evidence)

	require.Len(t, matched[acme.ID], 1)
	assert.Equal(t, "SQL", matched[acme.ID][0].Skill)
}

func TestMatchSkillsSkipsAlreadyCarried(t *testing.T) {
	tru := types.Experience{
		ID:           uuid.New(),
		Organization: "TruConnect",
		Skills:       []types.SkillEvidence{{Skill: "a/b testing"}},
	}

	matched := MatchSkills(skillsResume, []types.Experience{tru}, []string{"A/B Testing"})
	assert.Empty(t, matched)
}

func TestMatchSkillsUnknownOrganization(t *testing.T) {
	ghost := types.Experience{ID: uuid.New(), Organization: "Globex"}
	matched := MatchSkills(skillsResume, []types.Experience{ghost}, []string{"SQL"})
	assert.Empty(t, matched)
}
