package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-tailor/internal/skills"
	"github.com/careerforge/resume-tailor/internal/types"
	"github.com/careerforge/resume-tailor/internal/vocab"
)

const sampleResume = `CJ Britz
Los Angeles, CA | cj@example.com

PROFESSIONAL EXPERIENCE

TruConnect
Senior Product Manager
2021 - Present
• Launched mobile onboarding with the React team

Acme Systems
2018 - 2021
Product Analyst
• Shipped API integration roadmap for SaaS clients

EDUCATION
Bachelor of Arts in Political Science | Loyola Marymount University | 2017
`

func newTestSegmenter() *Segmenter {
	return NewSegmenter(skills.NewMatcher(vocab.Default()))
}

func TestSegmentSampleResume(t *testing.T) {
	got := newTestSegmenter().Segment(sampleResume)
	require.Len(t, got, 3)

	edu := got[0]
	assert.Equal(t, types.ExperienceTypeEducation, edu.Type)
	assert.Equal(t, "Loyola Marymount University", edu.Organization)
	assert.Equal(t, "Bachelor of Arts in Political Science", edu.Role)
	assert.Equal(t, "2017", edu.Period)

	first := got[1]
	assert.Equal(t, "TruConnect", first.Organization)
	assert.Equal(t, "Senior Product Manager", first.Role)
	assert.Equal(t, "2021 - Present", first.Period)
	assert.Equal(t, types.ExperienceTypeJob, first.Type)
	require.Len(t, first.Accomplishments, 1)
	assert.True(t, first.HasSkill("React"))

	second := got[2]
	assert.Equal(t, "Acme Systems", second.Organization)
	assert.Equal(t, "Product Analyst", second.Role)
	assert.Equal(t, "2018 - 2021", second.Period)
	assert.True(t, second.HasSkill("API Integration"))
	assert.True(t, second.HasSkill("SaaS"))
}

func TestSegmentPersonalNameNeverBecomesOrganization(t *testing.T) {
	got := newTestSegmenter().Segment(sampleResume)
	for _, exp := range got {
		assert.NotContains(t, exp.Organization, "Britz")
		assert.NotEqual(t, "CJ Britz", exp.Organization)
	}
}

func TestSegmentFallbackWhenUnstructured(t *testing.T) {
	text := "Seasoned builder comfortable with React, SQL and agile delivery."

	got := newTestSegmenter().Segment(text)
	require.Len(t, got, 1)
	assert.Equal(t, FallbackOrganization, got[0].Organization)
	assert.Equal(t, FallbackRole, got[0].Role)
	assert.Equal(t, FallbackPeriod, got[0].Period)
	assert.NotEmpty(t, got[0].Skills)
}

func TestSegmentNoSkillsNoFallback(t *testing.T) {
	got := newTestSegmenter().Segment("Lorem ipsum dolor sit amet.")
	assert.Empty(t, got)
}

func TestSegmentEmptyText(t *testing.T) {
	assert.Empty(t, newTestSegmenter().Segment(""))
}

func TestOrgRuleLiteralAllowList(t *testing.T) {
	m, ok := applyRules("TransMD", "")
	require.True(t, ok)
	assert.Equal(t, "TransMD", m.Org)
}

func TestOrgRuleDateFollowLine(t *testing.T) {
	m, ok := applyRules("Scorpion Internet Marketing", "2019 to 2021")
	require.True(t, ok)
	assert.Equal(t, "Scorpion Internet Marketing", m.Org)
	assert.Equal(t, "2019 to 2021", m.Period)
}

func TestOrgRuleRoleFollowLine(t *testing.T) {
	m, ok := applyRules("Bright Health", "Director of Product")
	require.True(t, ok)
	assert.Equal(t, "Bright Health", m.Org)
	assert.Equal(t, "Director of Product", m.Role)
}

func TestOrgRuleInlineRange(t *testing.T) {
	m, ok := applyRules("Globex Corp 2016 - 2018", "")
	require.True(t, ok)
	assert.Equal(t, "Globex Corp", m.Org)
	assert.Equal(t, "2016 - 2018", m.Period)
}

func TestOrgRuleDelimitedRole(t *testing.T) {
	m, ok := applyRules("Initech | Senior Product Manager", "")
	require.True(t, ok)
	assert.Equal(t, "Initech", m.Org)
	assert.Equal(t, "Senior Product Manager", m.Role)
}

func TestOrgRulesRejectBlockedLines(t *testing.T) {
	blocked := []string{
		"John Smith",
		"Professional Summary",
		"Key Achievements",
		"Curriculum Vitae",
	}
	for _, line := range blocked {
		t.Run(line, func(t *testing.T) {
			_, ok := applyRules(line, "2020 - Present")
			assert.False(t, ok)
		})
	}
}

func applyRules(line, next string) (orgMatch, bool) {
	for _, rule := range orgRules {
		if m, ok := rule.apply(line, next); ok {
			return m, ok
		}
	}
	return orgMatch{}, false
}

func TestParseDegreeLineKeywordAnchored(t *testing.T) {
	entry, ok := parseDegreeLine("Master of Science, University of Somewhere 2019")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(entry.Degree, "Master of Science"))
	assert.Equal(t, "University of Somewhere 2019", entry.School)
	assert.Equal(t, "2019", entry.Year)
}

func TestParseDegreeLineRejectsPlainText(t *testing.T) {
	_, ok := parseDegreeLine("Completed several professional certificates")
	assert.False(t, ok)
}

func TestFindEducationStopsAtFirstHeader(t *testing.T) {
	lines := []string{"EDUCATION"}
	for i := 0; i < educationLookahead; i++ {
		lines = append(lines, "no degree here")
	}
	lines = append(lines, "EDUCATION", "Bachelor of Arts | Some College | 2010")

	// Only the first EDUCATION section is scanned; a degree past its
	// lookahead window, under a later header, is not picked up.
	_, ok := findEducation(lines)
	assert.False(t, ok)
}
