// Package analysis scores a job description against a candidate's skill
// profile and experience history. It never fails on malformed input: empty
// job text produces the default role and industry with a neutral match
// score.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/careerforge/resume-tailor/internal/types"
)

const (
	RoleSenior         = "Senior"
	RoleDirector       = "Director"
	RoleProductManager = "Product Manager"

	IndustryHealthcare = "Healthcare"
	IndustryFinTech    = "FinTech"
	IndustryECommerce  = "eCommerce"
	IndustrySaaS       = "SaaS"
	IndustryTechnology = "Technology"
)

// DefaultMatchScore is reported when the job text demanded nothing
// recognizable.
const DefaultMatchScore = 70

const maxMatchScore = 95

// Analyze derives an AnalysisResult from the job text, the owner's skill
// profile, and their experiences.
func Analyze(jobText string, profile *types.SkillProfile, experiences []types.Experience) types.AnalysisResult {
	keywords := strings.ToLower(jobText)

	result := types.AnalysisResult{
		Role:             classifyRole(keywords),
		Industry:         classifyIndustry(keywords),
		RequiredSkills:   make(map[types.SkillCategory][]string),
		SkillGaps:        make(map[types.SkillCategory][]string),
		KeyRequirements:  keyRequirements(keywords),
		RecommendedFocus: []string{},
	}

	candidate := candidateSkillSet(profile, experiences)
	for _, category := range requirementCategories {
		for _, entry := range requirementTable[category] {
			if !anyKeyword(keywords, entry.Keywords) {
				continue
			}
			result.RequiredSkills[category] = append(result.RequiredSkills[category], entry.Skill)
			if !candidate[strings.ToLower(entry.Skill)] {
				result.SkillGaps[category] = append(result.SkillGaps[category], entry.Skill)
			}
		}
	}

	result.MatchScore = matchScore(result.TotalRequired(), result.TotalGaps())
	result.RankedExperience = rankExperiences(keywords, result, experiences)
	result.RecommendedFocus = recommendations(keywords, result)
	return result
}

func classifyRole(keywords string) string {
	switch {
	case strings.Contains(keywords, "senior"):
		return RoleSenior
	case strings.Contains(keywords, "director"):
		return RoleDirector
	default:
		return RoleProductManager
	}
}

func classifyIndustry(keywords string) string {
	switch {
	case strings.Contains(keywords, "healthcare"):
		return IndustryHealthcare
	case strings.Contains(keywords, "fintech"):
		return IndustryFinTech
	case strings.Contains(keywords, "e-commerce"):
		return IndustryECommerce
	case strings.Contains(keywords, "saas"):
		return IndustrySaaS
	default:
		return IndustryTechnology
	}
}

func keyRequirements(keywords string) []string {
	out := []string{}
	for _, entry := range keyRequirementTable {
		if strings.Contains(keywords, entry.Keyword) {
			out = append(out, entry.Label)
		}
	}
	return out
}

// candidateSkillSet unions profile skills with every skill attached to an
// experience, keyed by lowercase name.
func candidateSkillSet(profile *types.SkillProfile, experiences []types.Experience) map[string]bool {
	set := make(map[string]bool)
	if profile != nil {
		for _, name := range profile.AllSkills() {
			set[strings.ToLower(name)] = true
		}
	}
	for _, exp := range experiences {
		for _, s := range exp.Skills {
			set[strings.ToLower(s.Skill)] = true
		}
	}
	return set
}

func anyKeyword(keywords string, list []string) bool {
	for _, k := range list {
		if strings.Contains(keywords, k) {
			return true
		}
	}
	return false
}

// matchScore is round(100 * matched / total) clamped to [0, 95], or the
// neutral default when nothing was required.
func matchScore(total, gaps int) int {
	if total == 0 {
		return DefaultMatchScore
	}
	matched := total - gaps
	score := int(math.Round(100 * float64(matched) / float64(total)))
	if score < 0 {
		score = 0
	}
	if score > maxMatchScore {
		score = maxMatchScore
	}
	return score
}

// rankExperiences scores each experience for relevance and returns the
// ones scoring above zero, highest first. Sorting is stable so equal
// scores keep their stored order.
func rankExperiences(keywords string, result types.AnalysisResult, experiences []types.Experience) []types.RankedExperience {
	var ranked []types.RankedExperience
	for _, exp := range experiences {
		text := exp.SearchText()

		score := 0
		if strings.Contains(text, industryKeyword[result.Industry]) {
			score += 3
		}
		for _, category := range requirementCategories {
			for _, skill := range result.RequiredSkills[category] {
				if strings.Contains(text, strings.ToLower(skill)) {
					score += 2
				}
			}
		}
		for _, k := range relevanceKeywords {
			if strings.Contains(text, k) {
				score++
			}
		}

		if score > 0 {
			ranked = append(ranked, types.RankedExperience{Experience: exp, Score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

func recommendations(keywords string, result types.AnalysisResult) []string {
	focus := []string{}
	if len(result.RankedExperience) > 0 {
		top := result.RankedExperience[0].Experience
		focus = append(focus, fmt.Sprintf("Lead with your %s experience", top.Organization))
	}
	if result.Industry != IndustryTechnology {
		focus = append(focus, fmt.Sprintf("Highlight %s domain work", result.Industry))
	}
	if strings.Contains(keywords, "mobile") {
		focus = append(focus, "Emphasize mobile product leadership")
	}
	if strings.Contains(keywords, "revenue") || strings.Contains(keywords, "growth") {
		focus = append(focus, "Lead with revenue growth achievements")
	}
	if strings.Contains(keywords, "team") {
		focus = append(focus, "Showcase team leadership and mentoring")
	}
	return focus
}
