package profile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-tailor/internal/types"
)

func orderedExperiences(n int) []types.Experience {
	out := make([]types.Experience, n)
	for i := range out {
		out[i] = types.Experience{ID: uuid.New(), DisplayOrder: i}
	}
	return out
}

func TestReorderProducesDenseSequence(t *testing.T) {
	experiences := orderedExperiences(5)
	moved := experiences[4]

	got, err := Reorder(experiences, moved.ID, 1)
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, moved.ID, got[1].ID)
	for i, exp := range got {
		assert.Equal(t, i, exp.DisplayOrder)
	}
}

func TestReorderToFront(t *testing.T) {
	experiences := orderedExperiences(3)

	got, err := Reorder(experiences, experiences[2].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, experiences[2].ID, got[0].ID)
	assert.Equal(t, experiences[0].ID, got[1].ID)
	assert.Equal(t, experiences[1].ID, got[2].ID)
}

func TestReorderLeavesInputUntouched(t *testing.T) {
	experiences := orderedExperiences(4)

	_, err := Reorder(experiences, experiences[0].ID, 3)
	require.NoError(t, err)
	for i, exp := range experiences {
		assert.Equal(t, i, exp.DisplayOrder)
	}
}

func TestReorderRejectsUnknownID(t *testing.T) {
	experiences := orderedExperiences(3)

	_, err := Reorder(experiences, uuid.New(), 1)
	var reorderErr *ReorderError
	require.ErrorAs(t, err, &reorderErr)
}

func TestReorderRejectsOutOfRangeIndex(t *testing.T) {
	experiences := orderedExperiences(3)

	_, err := Reorder(experiences, experiences[0].ID, 3)
	var reorderErr *ReorderError
	require.ErrorAs(t, err, &reorderErr)
	assert.Equal(t, 3, reorderErr.Count)
}

func TestMergeSkillsClassifiesAndDeduplicates(t *testing.T) {
	p := &types.SkillProfile{}

	added := MergeSkills(p, []string{"React", "Team Leadership", "Healthcare", "react"})
	assert.Equal(t, 3, added)
	assert.Contains(t, p.Skills[types.SkillCategoryTechnical], "React")
	assert.Contains(t, p.Skills[types.SkillCategoryLeadership], "Team Leadership")
	assert.Contains(t, p.Skills[types.SkillCategoryDomain], "Healthcare")

	// Second merge of the same names changes nothing.
	assert.Equal(t, 0, MergeSkills(p, []string{"REACT", "healthcare"}))
}

func TestRemoveSkillsDropsAcrossCategories(t *testing.T) {
	p := &types.SkillProfile{Skills: map[types.SkillCategory][]string{
		types.SkillCategoryTechnical: {"React Development", "SQL"},
		types.SkillCategoryDomain:    {"Healthcare"},
	}}

	removed := RemoveSkills(p, []string{"react development", "Healthcare"})
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"SQL"}, p.Skills[types.SkillCategoryTechnical])

	_, hasDomain := p.Skills[types.SkillCategoryDomain]
	assert.False(t, hasDomain, "emptied categories should be dropped")
}

func TestRemoveSkillsNilProfile(t *testing.T) {
	assert.Equal(t, 0, RemoveSkills(nil, []string{"SQL"}))
}
