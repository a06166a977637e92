package vocab

import "github.com/careerforge/resume-tailor/internal/types"

// Default returns the built-in vocabulary used when no file is configured.
// Entries without explicit patterns match on their lowercase name.
func Default() []types.VocabularyEntry {
	return []types.VocabularyEntry{
		{Name: "Product Management", Category: types.SkillCategoryProduct},
		{Name: "React", Category: types.SkillCategoryTechnical},
		{Name: "Team Leadership", Category: types.SkillCategoryLeadership},
		{Name: "Healthcare", Category: types.SkillCategoryDomain},
		{Name: "Problem-Solving & Analytical Thinking", Category: types.SkillCategorySoft},
		{Name: "Communication", Category: types.SkillCategorySoft},
		{Name: "Adaptability", Category: types.SkillCategorySoft},
		{Name: "Collaboration/Teamwork", Category: types.SkillCategorySoft},
	}
}

// SynonymPatterns is the fixed supplementary pattern table merged into the
// vocabulary at matcher construction. It catches common phrasings that the
// named entries alone would miss (e.g. "ux research" → User Research).
func SynonymPatterns() []types.VocabularyEntry {
	return []types.VocabularyEntry{
		{Name: "React", Category: types.SkillCategoryTechnical,
			MatchPatterns: []string{"react", "jsx", "component"}},
		{Name: "JavaScript", Category: types.SkillCategoryTechnical,
			MatchPatterns: []string{"javascript", "js", "es6", "es2015"}},
		{Name: "TypeScript", Category: types.SkillCategoryTechnical,
			MatchPatterns: []string{"typescript", "ts"}},
		{Name: "Python", Category: types.SkillCategoryTechnical,
			MatchPatterns: []string{"python", "django", "flask"}},
		{Name: "SQL", Category: types.SkillCategoryTechnical,
			MatchPatterns: []string{"sql", "mysql", "postgresql", "database"}},
		{Name: "API Integration", Category: types.SkillCategoryTechnical,
			MatchPatterns: []string{"api", "rest", "graphql", "endpoint"}},
		{Name: "Mobile Development", Category: types.SkillCategoryTechnical,
			MatchPatterns: []string{"mobile", "ios", "android", "react native"}},
		{Name: "Product Strategy", Category: types.SkillCategoryProduct,
			MatchPatterns: []string{"strategy", "roadmap", "product vision"}},
		{Name: "Team Leadership", Category: types.SkillCategoryLeadership,
			MatchPatterns: []string{"lead", "manage", "team", "mentor"}},
		{Name: "Cross-functional", Category: types.SkillCategoryLeadership,
			MatchPatterns: []string{"cross-functional", "collaboration", "partnership"}},
		{Name: "Stakeholder Management", Category: types.SkillCategoryLeadership,
			MatchPatterns: []string{"stakeholder", "executive", "c-level"}},
		{Name: "User Research", Category: types.SkillCategoryProduct,
			MatchPatterns: []string{"user research", "ux research", "user testing"}},
		{Name: "A/B Testing", Category: types.SkillCategoryProduct,
			MatchPatterns: []string{"a/b testing", "ab testing", "experiment"}},
		{Name: "Agile/Scrum", Category: types.SkillCategoryProduct,
			MatchPatterns: []string{"agile", "scrum", "sprint", "kanban"}},
		{Name: "Healthcare", Category: types.SkillCategoryDomain,
			MatchPatterns: []string{"healthcare", "medical", "clinical", "patient", "hipaa"}},
		{Name: "SaaS", Category: types.SkillCategoryDomain,
			MatchPatterns: []string{"saas", "software as a service", "subscription"}},
		{Name: "eCommerce", Category: types.SkillCategoryDomain,
			MatchPatterns: []string{"ecommerce", "retail", "shopping", "marketplace"}},
		{Name: "Problem-Solving & Analytical Thinking", Category: types.SkillCategorySoft,
			MatchPatterns: []string{"problem solving", "analytical thinking", "critical thinking", "logical thinking", "analysis", "problem-solve"}},
		{Name: "Communication", Category: types.SkillCategorySoft,
			MatchPatterns: []string{"communication", "verbal", "written", "presentation", "interpersonal", "feedback"}},
		{Name: "Adaptability", Category: types.SkillCategorySoft,
			MatchPatterns: []string{"adaptability", "flexible", "adaptable", "learning", "change management", "resilience"}},
		{Name: "Collaboration/Teamwork", Category: types.SkillCategorySoft,
			MatchPatterns: []string{"collaboration", "teamwork", "team player", "cross-functional", "partnership", "collaborate"}},
		{Name: "Curiosity", Category: types.SkillCategorySoft,
			MatchPatterns: []string{"curiosity", "inquisitive", "exploration", "learning mindset", "investigation", "research"}},
		{Name: "Business Acumen", Category: types.SkillCategorySoft,
			MatchPatterns: []string{"business acumen", "business understanding", "commercial awareness", "business sense", "market knowledge"}},
		{Name: "Time Management", Category: types.SkillCategorySoft,
			MatchPatterns: []string{"time management", "prioritization", "deadlines", "organization", "efficiency", "productivity"}},
		{Name: "Creativity", Category: types.SkillCategorySoft,
			MatchPatterns: []string{"creativity", "innovation", "creative thinking", "ideation", "out-of-the-box thinking"}},
		{Name: "Attention to Detail", Category: types.SkillCategorySoft,
			MatchPatterns: []string{"attention to detail", "detail-oriented", "accuracy", "quality control", "precision", "thoroughness"}},
	}
}
