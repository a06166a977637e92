// Package compose renders an analysis into a tailored resume document.
// Output is a markdown-like text blob: **text** marks bold, a leading
// bullet glyph marks a list item, a blank line breaks paragraphs. The
// template is deterministic; the same inputs always produce the same
// document.
package compose

import (
	"strings"

	"github.com/careerforge/resume-tailor/internal/analysis"
	"github.com/careerforge/resume-tailor/internal/skills"
	"github.com/careerforge/resume-tailor/internal/types"
)

const (
	maxExperienceBlocks     = 5
	maxAchievementsPerBlock = 4
	maxSkillsPerCategory    = 5
	closingAchievements     = 3
)

// SummaryHealthcare and SummaryGeneric are the two summary variants,
// selected by detected industry.
const (
	SummaryHealthcare = "Healthcare-focused Product Leader with 6+ years driving digital transformation in regulated industries. Led 250% revenue growth and managed products serving 1.7M+ users."
	SummaryGeneric    = "Results-driven Product Leader with 6+ years building scalable products across SaaS, mobile, and eCommerce. Proven track record of 250% revenue growth and user base expansion to 1.7M+."
)

// FallbackExperienceBlocks is rendered verbatim when the analysis ranked
// zero experiences as relevant, so the document never ships with an empty
// experience section.
const FallbackExperienceBlocks = `**TruConnect** | Los Angeles, CA
**Senior Product Manager** | January 2023 - January 2025
• **Delivered 250% revenue growth** ($2.4MM annualized profit) through strategic product repositioning
• **Grew user base from 900k to 1.7MM** through enhanced digital experience and feature optimization

**Scorpion** | Los Angeles, CA
**Product Manager** | December 2018 - January 2023
• **Built 0-1 SaaS CRM platform** from conception to launch for SMB market
• **Delivered $1MM+ ARR projects** managing full product lifecycle for enterprise clients`

// defaultClosing backs the key-achievements section when no experience
// supplied any achievements.
var defaultClosing = []string{
	"**Delivered 250% revenue growth** ($2.4MM annualized profit) through strategic product repositioning",
	"**Grew user base from 900k to 1.7MM** through enhanced digital experience and feature optimization",
	"**Reduced churn by 9%** via strategic partnership integration for 100k+ user cohort",
}

// skillSectionOrder fixes category rendering order.
var skillSectionOrder = []types.SkillCategory{
	types.SkillCategoryTechnical,
	types.SkillCategoryProduct,
	types.SkillCategoryLeadership,
	types.SkillCategoryDomain,
	types.SkillCategorySoft,
}

var skillSectionTitles = map[types.SkillCategory]string{
	types.SkillCategoryTechnical:  "Technical",
	types.SkillCategoryProduct:    "Product",
	types.SkillCategoryLeadership: "Leadership",
	types.SkillCategoryDomain:     "Domain",
	types.SkillCategorySoft:       "Soft Skills",
}

// Header is the contact block at the top of every composed document.
type Header struct {
	Name    string
	Title   string
	Contact string
}

// Compose renders the resume. Experience blocks come from the analysis
// ranking; the skill section merges profile skills with every skill
// attached to an experience.
func Compose(header Header, result types.AnalysisResult, experiences []types.Experience, profile *types.SkillProfile) string {
	var b strings.Builder

	writeHeader(&b, header, result)
	writeSummary(&b, result)
	writeExperiences(&b, result)
	writeEducation(&b, experiences)
	writeSkills(&b, experiences, profile)
	writeClosing(&b, result)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeHeader(b *strings.Builder, header Header, result types.AnalysisResult) {
	name := header.Name
	if name == "" {
		name = "Candidate"
	}
	title := header.Title
	if title == "" {
		title = result.Role
	}
	b.WriteString("**" + name + "**\n")
	b.WriteString(title + "\n")
	if header.Contact != "" {
		b.WriteString(header.Contact + "\n")
	}
	b.WriteString("\n")
}

func writeSummary(b *strings.Builder, result types.AnalysisResult) {
	b.WriteString("**Summary**\n")
	if result.Industry == analysis.IndustryHealthcare {
		b.WriteString(SummaryHealthcare + "\n\n")
	} else {
		b.WriteString(SummaryGeneric + "\n\n")
	}
}

func writeExperiences(b *strings.Builder, result types.AnalysisResult) {
	b.WriteString("**Professional Experience**\n\n")

	if len(result.RankedExperience) == 0 {
		b.WriteString(FallbackExperienceBlocks + "\n\n")
		return
	}

	blocks := result.RankedExperience
	if len(blocks) > maxExperienceBlocks {
		blocks = blocks[:maxExperienceBlocks]
	}
	for _, ranked := range blocks {
		exp := ranked.Experience
		b.WriteString("**" + exp.Organization + "**\n")
		b.WriteString("**" + exp.Role + "** | " + exp.Period + "\n")
		for i, text := range exp.AchievementTexts() {
			if i == maxAchievementsPerBlock {
				break
			}
			b.WriteString("• " + text + "\n")
		}
		b.WriteString("\n")
	}
}

func writeEducation(b *strings.Builder, experiences []types.Experience) {
	var lines []string
	for _, exp := range experiences {
		if exp.Type == types.ExperienceTypeEducation {
			lines = append(lines, exp.Role+" | "+exp.Organization+" | "+exp.Period)
		}
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("**Education**\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

// writeSkills lists up to five skills per non-empty category from the
// merged candidate skill set, in fixed category order.
func writeSkills(b *strings.Builder, experiences []types.Experience, profile *types.SkillProfile) {
	merged := mergeSkillsByCategory(experiences, profile)

	wroteTitle := false
	for _, category := range skillSectionOrder {
		names := merged[category]
		if len(names) == 0 {
			continue
		}
		if !wroteTitle {
			b.WriteString("**Key Skills**\n")
			wroteTitle = true
		}
		if len(names) > maxSkillsPerCategory {
			names = names[:maxSkillsPerCategory]
		}
		b.WriteString("• " + skillSectionTitles[category] + ": " + strings.Join(names, ", ") + "\n")
	}
	if wroteTitle {
		b.WriteString("\n")
	}
}

// mergeSkillsByCategory unions profile skills with experience skills,
// preserving first-seen order and deduplicating case-insensitively.
// Experience skills carry no category, so they are classified by name.
func mergeSkillsByCategory(experiences []types.Experience, profile *types.SkillProfile) map[types.SkillCategory][]string {
	merged := make(map[types.SkillCategory][]string)
	seen := make(map[string]bool)

	add := func(category types.SkillCategory, name string) {
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		merged[category] = append(merged[category], name)
	}

	if profile != nil {
		for _, category := range skillSectionOrder {
			for _, name := range profile.Skills[category] {
				add(category, name)
			}
		}
	}
	for _, exp := range experiences {
		for _, s := range exp.Skills {
			add(skills.DetectCategory(s.Skill), s.Skill)
		}
	}
	return merged
}

func writeClosing(b *strings.Builder, result types.AnalysisResult) {
	b.WriteString("**Key Achievements**\n")

	achievements := defaultClosing
	if len(result.RankedExperience) > 0 {
		if texts := result.RankedExperience[0].Experience.AchievementTexts(); len(texts) > 0 {
			if len(texts) > closingAchievements {
				texts = texts[:closingAchievements]
			}
			achievements = texts
		}
	}
	for _, text := range achievements {
		b.WriteString("• " + text + "\n")
	}
}
