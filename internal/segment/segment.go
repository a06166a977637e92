// Package segment turns cleaned resume text into candidate experience
// records. It runs an ordered cascade of line heuristics: an education
// scan, then organization detection with role/period/bullet accumulation.
// The rules are tuned heuristics, not a parser; callers treat the output
// as candidates to confirm, not ground truth.
package segment

import (
	"strings"
	"time"

	"github.com/careerforge/resume-tailor/internal/extraction"
	"github.com/careerforge/resume-tailor/internal/skills"
	"github.com/careerforge/resume-tailor/internal/types"
)

// Fallback experience emitted when nothing could be segmented but the
// text still carried recognizable skills.
const (
	FallbackOrganization = "Various Companies"
	FallbackRole         = "Product Manager"
	FallbackPeriod       = "Current Experience"
)

const educationAchievement = "Academic achievement and degree completion"
const fallbackAchievement = "Skills demonstrated across multiple roles and projects"

// Segmenter extracts experiences from raw text, using the matcher to
// attach skill evidence to each achievement bullet.
type Segmenter struct {
	matcher *skills.Matcher
	now     func() time.Time
}

func NewSegmenter(matcher *skills.Matcher) *Segmenter {
	return &Segmenter{matcher: matcher, now: time.Now}
}

// builder accumulates one in-progress experience. An experience is emitted
// once all three header slots are bound and at least one achievement has
// been collected.
type builder struct {
	org          string
	role         string
	period       string
	achievements []string
	skillNames   []string
	skillSeen    map[string]bool
}

func (b *builder) addSkills(names []string) {
	if b.skillSeen == nil {
		b.skillSeen = make(map[string]bool)
	}
	for _, n := range names {
		key := strings.ToLower(n)
		if !b.skillSeen[key] {
			b.skillSeen[key] = true
			b.skillNames = append(b.skillNames, n)
		}
	}
}

func (b *builder) complete() bool {
	return b.org != "" && b.role != "" && b.period != "" && len(b.achievements) > 0
}

// Segment runs the cascade over the text. The returned experiences carry
// no IDs or owner; the caller assigns those at persistence time.
func (s *Segmenter) Segment(text string) []types.Experience {
	lines := strings.Split(text, "\n")

	var out []types.Experience
	if edu, ok := findEducation(lines); ok {
		out = append(out, types.Experience{
			Organization:    edu.School,
			Role:            edu.Degree,
			Period:          orDefault(edu.Year, "Graduated"),
			Type:            types.ExperienceTypeEducation,
			Accomplishments: accomplishments([]string{educationAchievement}),
		})
	}

	var cur builder
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		next := ""
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}

		// Organization slot binds once per block; ambiguous lines seen
		// while achievements are pending never reopen it.
		if cur.org == "" {
			for _, rule := range orgRules {
				if m, ok := rule.apply(line, next); ok {
					cur.org, cur.role, cur.period = m.Org, m.Role, m.Period
					break
				}
			}
		}

		if cur.org != "" && cur.role == "" && roleKeywordRe.MatchString(line) {
			cur.role = line
		}
		if cur.org != "" && cur.period == "" && yearRe.MatchString(line) &&
			(hasRangeIndicator(line) || strings.Contains(line, "Current")) {
			cur.period = line
		}

		if extraction.IsBulletLine(line) {
			achievement := extraction.StripBullet(line)
			cur.achievements = append(cur.achievements, achievement)
			cur.addSkills(s.matcher.MatchNames(achievement))
		}

		if cur.complete() {
			out = append(out, s.emit(cur))
			cur = builder{}
		}
	}

	if len(out) == 0 {
		if names := s.matcher.MatchNames(text); len(names) > 0 {
			out = append(out, types.Experience{
				Organization:    FallbackOrganization,
				Role:            FallbackRole,
				Period:          FallbackPeriod,
				Type:            types.ExperienceTypeJob,
				Skills:          s.evidence(names, ""),
				Accomplishments: accomplishments([]string{fallbackAchievement}),
			})
		}
	}
	return out
}

func (s *Segmenter) emit(b builder) types.Experience {
	return types.Experience{
		Organization:    b.org,
		Role:            b.role,
		Period:          b.period,
		Type:            types.ExperienceTypeJob,
		Skills:          s.evidence(b.skillNames, ""),
		Accomplishments: accomplishments(b.achievements),
	}
}

func (s *Segmenter) evidence(names []string, evidence string) []types.SkillEvidence {
	now := s.now()
	out := make([]types.SkillEvidence, 0, len(names))
	for _, n := range names {
		out = append(out, types.SkillEvidence{Skill: n, Evidence: evidence, AddedAt: now})
	}
	return out
}

func accomplishments(descriptions []string) []types.Accomplishment {
	out := make([]types.Accomplishment, 0, len(descriptions))
	for _, d := range descriptions {
		out = append(out, types.Accomplishment{Description: d})
	}
	return out
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
