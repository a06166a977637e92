package skills

import (
	"strings"

	"github.com/careerforge/resume-tailor/internal/types"
)

// categoryRule maps a category to the substrings that select it. Rules are
// evaluated in order; the first category with a triggering substring wins.
type categoryRule struct {
	category types.SkillCategory
	triggers []string
}

var categoryRules = []categoryRule{
	{types.SkillCategoryTechnical, []string{
		"react", "javascript", "typescript", "python", "sql", "api",
		"mobile", "html", "css", "oracle", "development", "engineering",
	}},
	{types.SkillCategoryDomain, []string{
		"healthcare", "saas", "ecommerce", "e-commerce", "fintech",
		"compliance", "telecom", "retail",
	}},
	{types.SkillCategoryLeadership, []string{
		"leadership", "stakeholder", "vendor", "cross-functional",
		"team", "management", "p&l",
	}},
	{types.SkillCategoryProduct, []string{
		"product", "roadmap", "research", "testing", "agile", "scrum",
		"strategy", "discovery",
	}},
}

// DetectCategory classifies a free-form skill name. Anything no rule claims
// falls through to the soft bucket.
func DetectCategory(skillName string) types.SkillCategory {
	lower := strings.ToLower(skillName)
	for _, rule := range categoryRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.category
			}
		}
	}
	return types.SkillCategorySoft
}
