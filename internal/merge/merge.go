// Package merge harvests accomplishment candidates for already-known
// experiences from a freshly uploaded resume. It finds the text spans
// belonging to each organization and filters sentence and bullet fragments
// down to strings worth persisting.
package merge

import (
	"regexp"
	"strings"

	"github.com/careerforge/resume-tailor/internal/types"
)

// DefaultCategory is assigned to every harvested accomplishment.
const DefaultCategory = "general"

const (
	minCandidateLen = 20
	maxCandidateLen = 300
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	// Same glyph set as extraction.BulletGlyphs, with the hyphen last so
	// the class has no ranges.
	bulletSplitRe = regexp.MustCompile(`[•*–—·●▪‣◦-]`)

	startsWithYearRe      = regexp.MustCompile(`^\d{4}`)
	startsWithMonthYearRe = regexp.MustCompile(`^[A-Z][a-z]+ \d{4}`)
	hasLowercaseRe        = regexp.MustCompile(`[a-z]`)

	// Fragments that are really headers or contact lines, not achievements.
	headerStartRe  = regexp.MustCompile(`(?i)^(Los Angeles|Founder|Product Manager|Director|SKILLS|CONTACT|AWARDS)`)
	contactStartRe = regexp.MustCompile(`(?i)^(Present|BA|GPA|linkedin|www)`)
)

// Merge scans rawText for accomplishment candidates belonging to each of
// the given experiences and returns only the ones not already present on
// that experience, keyed by experience ID order of the input slice. The
// returned accomplishments carry the owning ExperienceID and DefaultCategory
// but no row ID.
func Merge(rawText string, experiences []types.Experience) []types.Accomplishment {
	orgNames := make([]string, 0, len(experiences))
	for _, e := range experiences {
		if e.Organization != "" {
			orgNames = append(orgNames, strings.ToLower(e.Organization))
		}
	}

	var out []types.Accomplishment
	for _, exp := range experiences {
		if exp.Organization == "" {
			continue
		}
		section := sectionFor(rawText, strings.ToLower(exp.Organization), orgNames)
		if section == "" {
			continue
		}

		candidates := append(sentenceCandidates(section, orgNames), bulletCandidates(section, orgNames)...)

		seen := make(map[string]bool, len(exp.Accomplishments))
		for _, a := range exp.Accomplishments {
			seen[types.NormalizeDescription(a.Description)] = true
		}
		for _, c := range candidates {
			key := types.NormalizeDescription(c)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, types.Accomplishment{
				ExperienceID: exp.ID,
				Description:  strings.TrimSpace(c),
				Category:     DefaultCategory,
				Tags:         []string{},
			})
		}
	}
	return out
}

// sectionFor joins every contiguous span of lines that starts at a line
// naming org and runs until the line before one naming a different known
// organization or a section header. When organization names overlap
// ("Acme" inside "Acme Labs"), the longest name contained in a line wins,
// so a shorter name never claims the longer name's section.
func sectionFor(rawText, org string, allOrgs []string) string {
	lines := strings.Split(rawText, "\n")

	var span strings.Builder
	open := false
	for i, raw := range lines {
		lower := strings.ToLower(raw)

		if bestOrgFor(lower, allOrgs) == org {
			open = true
		}
		if !open {
			continue
		}
		span.WriteString(" ")
		span.WriteString(raw)

		if i+1 < len(lines) && closesSection(strings.ToLower(lines[i+1]), org, allOrgs) {
			open = false
		}
	}
	return strings.TrimSpace(span.String())
}

// bestOrgFor returns the longest known organization name contained in the
// line, or "" when none is.
func bestOrgFor(lower string, allOrgs []string) string {
	best := ""
	for _, org := range allOrgs {
		if strings.Contains(lower, org) && len(org) > len(best) {
			best = org
		}
	}
	return best
}

func closesSection(nextLower, org string, allOrgs []string) bool {
	if named := bestOrgFor(nextLower, allOrgs); named != "" && named != org {
		return true
	}
	return strings.Contains(nextLower, "education") ||
		strings.Contains(nextLower, "professional experience")
}

func sentenceCandidates(section string, orgs []string) []string {
	var out []string
	for _, s := range sentenceSplitRe.Split(section, -1) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if keepSentence(s, orgs) {
			out = append(out, s)
		}
	}
	return out
}

func bulletCandidates(section string, orgs []string) []string {
	var out []string
	for _, frag := range bulletSplitRe.Split(section, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if keepBullet(frag, orgs) {
			out = append(out, frag)
		}
	}
	return out
}

// keepBullet is the base filter: plausible achievement length, no contact
// info, not a header or organization-name fragment.
func keepBullet(s string, orgs []string) bool {
	if len(s) < minCandidateLen || len(s) >= maxCandidateLen {
		return false
	}
	if strings.Contains(s, "@") || strings.Contains(s, "www.") ||
		strings.Contains(s, "phone") || strings.Contains(s, "email") {
		return false
	}
	if headerStartRe.MatchString(s) {
		return false
	}
	return !startsWithOrg(s, orgs)
}

// keepSentence adds the stricter sentence-only checks: no field delimiters,
// no date-led lines, and at least one lowercase letter so all-caps headers
// are dropped.
func keepSentence(s string, orgs []string) bool {
	if !keepBullet(s, orgs) {
		return false
	}
	if strings.Contains(s, "|") {
		return false
	}
	if startsWithYearRe.MatchString(s) || startsWithMonthYearRe.MatchString(s) {
		return false
	}
	if !hasLowercaseRe.MatchString(s) {
		return false
	}
	return !contactStartRe.MatchString(s)
}

func startsWithOrg(s string, orgs []string) bool {
	lower := strings.ToLower(s)
	for _, org := range orgs {
		if strings.HasPrefix(lower, org) {
			return true
		}
	}
	return false
}
