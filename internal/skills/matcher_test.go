package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-tailor/internal/types"
	"github.com/careerforge/resume-tailor/internal/vocab"
)

func TestMatchByName(t *testing.T) {
	m := NewMatcher([]types.VocabularyEntry{
		{Name: "Product Management", Category: types.SkillCategoryProduct},
	})

	names := m.MatchNames("Seasoned in product management and delivery")
	assert.Contains(t, names, "Product Management")
}

func TestMatchNameVariants(t *testing.T) {
	m := NewMatcher([]types.VocabularyEntry{
		{Name: "User Research", Category: types.SkillCategoryProduct},
	})

	// Squashed and hyphenated forms of the name also match.
	assert.Contains(t, m.MatchNames("did userresearch weekly"), "User Research")
	assert.Contains(t, m.MatchNames("user-research sessions"), "User Research")
	assert.NotContains(t, m.MatchNames("usability spreadsheets"), "User Research")
}

func TestMatchSynonymPatterns(t *testing.T) {
	m := NewMatcher(vocab.Default())

	names := m.MatchNames("Ran ux research and shipped HIPAA-compliant features")
	assert.Contains(t, names, "User Research")
	assert.Contains(t, names, "Healthcare")
}

func TestMatchIsIdempotent(t *testing.T) {
	m := NewMatcher(vocab.Default())
	text := "Led agile teams building mobile apps with React and SQL"

	first := m.MatchNames(text)
	second := m.MatchNames(text)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestMatchEmptyText(t *testing.T) {
	m := NewMatcher(vocab.Default())
	assert.Empty(t, m.Match(""))
}

func TestVocabularyEntryOverridesSynonym(t *testing.T) {
	// An explicit vocabulary entry for a name also present in the synonym
	// table wins; the synonym entry is not duplicated.
	m := NewMatcher([]types.VocabularyEntry{
		{Name: "React", Category: types.SkillCategoryTechnical, MatchPatterns: []string{"reactjs"}},
	})

	names := m.MatchNames("built with reactjs")
	count := 0
	for _, n := range names {
		if n == "React" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		skill string
		want  types.SkillCategory
	}{
		{"React Development", types.SkillCategoryTechnical},
		{"Healthcare Compliance", types.SkillCategoryDomain},
		{"Team Leadership", types.SkillCategoryLeadership},
		{"Product Strategy", types.SkillCategoryProduct},
		{"Empathy", types.SkillCategorySoft},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCategory(tt.skill))
		})
	}
}
