package analysis

import "github.com/careerforge/resume-tailor/internal/types"

// requirementEntry names a skill and the job-text keywords that demand it.
type requirementEntry struct {
	Skill    string
	Keywords []string
}

// requirementCategories fixes the iteration order so results are
// deterministic.
var requirementCategories = []types.SkillCategory{
	types.SkillCategoryTechnical,
	types.SkillCategoryProduct,
	types.SkillCategoryLeadership,
	types.SkillCategoryDomain,
}

// requirementTable maps each category to its named-skill keyword entries.
// Skill names line up with the vocabulary so gap detection compares like
// with like.
var requirementTable = map[types.SkillCategory][]requirementEntry{
	types.SkillCategoryTechnical: {
		{"React", []string{"react"}},
		{"JavaScript", []string{"javascript"}},
		{"SQL", []string{"sql", "database"}},
		{"API Integration", []string{"api"}},
		{"Mobile Development", []string{"mobile", "ios", "android"}},
	},
	types.SkillCategoryProduct: {
		{"Product Strategy", []string{"strategy", "roadmap", "vision"}},
		{"User Research", []string{"user research", "ux research", "customer research"}},
		{"A/B Testing", []string{"a/b", "ab testing", "experiment"}},
		{"Agile/Scrum", []string{"agile", "scrum", "sprint"}},
	},
	types.SkillCategoryLeadership: {
		{"Team Leadership", []string{"leadership", "direct reports", "mentor"}},
		{"Stakeholder Management", []string{"stakeholder"}},
		{"Cross-functional", []string{"cross-functional", "cross functional"}},
	},
	types.SkillCategoryDomain: {
		{"Healthcare", []string{"healthcare", "hipaa", "clinical", "patient"}},
		{"FinTech", []string{"fintech", "payments", "banking"}},
		{"eCommerce", []string{"e-commerce", "ecommerce", "checkout"}},
		{"SaaS", []string{"saas", "subscription"}},
		{"Regulatory Compliance", []string{"compliance", "regulatory"}},
	},
}

// keyRequirementEntry maps a coarse job-text keyword to its requirement
// label, checked in fixed order.
type keyRequirementEntry struct {
	Keyword string
	Label   string
}

var keyRequirementTable = []keyRequirementEntry{
	{"mobile", "Mobile Product Management"},
	{"api", "API Integration"},
	{"growth", "Growth/Revenue"},
	{"compliance", "Regulatory Compliance"},
	{"data", "Data-Driven Decision Making"},
}

// relevanceKeywords earn an experience one point each when present in its
// text.
var relevanceKeywords = []string{
	"mobile", "api", "growth", "compliance", "data", "team", "stakeholder", "strategy",
}

// industryKeyword is the job-text keyword that detected each industry,
// reused when scoring experience relevance.
var industryKeyword = map[string]string{
	IndustryHealthcare: "healthcare",
	IndustryFinTech:    "fintech",
	IndustryECommerce:  "e-commerce",
	IndustrySaaS:       "saas",
	IndustryTechnology: "technology",
}
