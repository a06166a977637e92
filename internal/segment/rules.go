package segment

import (
	"regexp"
	"strings"
)

// orgMatch is what a rule binds when it claims a line as the start of a
// work-experience block. Role and period may stay empty; the driver fills
// them from later lines.
type orgMatch struct {
	Org    string
	Role   string
	Period string
}

// orgRule is one heuristic in the cascade. Rules see the trimmed current
// line and the trimmed line after it, and are tried in order while no
// organization is bound; the first rule that fires wins.
type orgRule struct {
	name  string
	apply func(line, next string) (orgMatch, bool)
}

var (
	// Title-case short line: plausible shape for an organization name.
	orgShapeRe = regexp.MustCompile(`^[A-Z][a-zA-Z\s&.,]{3,40}$`)

	yearRe        = regexp.MustCompile(`\d{4}`)
	inlineRangeRe = regexp.MustCompile(`(\d{4}\s*[-–—]\s*\d{4}|\d{4}\s*[-–—]\s*Present)`)
	inlineOrgRe   = regexp.MustCompile(`^([A-Z][a-zA-Z\s&.,]{3,40})`)

	roleKeywordRe = regexp.MustCompile(`(?i)(Manager|Director|Lead|Senior|Product|Engineer|Analyst|Coordinator|Specialist|Consultant|Advisor|Executive|Officer|President|CEO|CTO|CFO|VP|Vice President|Head of|Chief|Founder)`)

	// Lines that look like a person's name rather than an organization.
	// Tuned against common US surnames; a known false-negative risk on
	// arbitrary resumes.
	personalNameRe = regexp.MustCompile(`(?i)(Christina|Britz|CJ|John|Jane|Smith|Johnson|Williams|Brown|Jones|Garcia|Miller|Davis|Rodriguez|Martinez|Hernandez|Lopez|Gonzalez|Wilson|Anderson|Thomas|Taylor|Moore|Jackson|Martin|Lee|Perez|Thompson|White|Harris|Sanchez|Clark|Ramirez|Lewis|Robinson|Walker|Young|Allen|King|Wright|Scott|Torres|Nguyen|Hill|Flores|Green|Adams|Nelson|Baker|Hall|Rivera|Campbell|Mitchell|Carter|Roberts)`)

	// Document-structure headers that share the title-case shape.
	sectionHeaderRe = regexp.MustCompile(`(?i)(Resume|CV|Curriculum Vitae|Professional Summary|Experience|Education|Skills|Contact|Phone|Email|Address|LinkedIn|Portfolio|Website|Early Wins|Key Achievements|Summary|Objective)`)
)

// knownOrgs are literal organization names recognized without any shape
// test. Extend via vocabulary files is deliberately not supported; these
// exist for names the shape rules misjudge.
var knownOrgs = map[string]bool{
	"TruConnect": true,
	"Scorpion":   true,
	"TransMD":    true,
}

// blockedOrg rejects candidate organization lines that are really personal
// names or section headers.
func blockedOrg(candidate string) bool {
	return personalNameRe.MatchString(candidate) || sectionHeaderRe.MatchString(candidate)
}

func hasRangeIndicator(line string) bool {
	return strings.Contains(line, "-") ||
		strings.Contains(line, "to") ||
		strings.Contains(line, "Present")
}

// orgRules is the cascade, in priority order.
var orgRules = []orgRule{
	{
		name: "literal allow-list",
		apply: func(line, next string) (orgMatch, bool) {
			if knownOrgs[line] {
				return orgMatch{Org: line}, true
			}
			return orgMatch{}, false
		},
	},
	{
		name: "org line followed by date range",
		apply: func(line, next string) (orgMatch, bool) {
			if orgShapeRe.MatchString(line) && !blockedOrg(line) &&
				yearRe.MatchString(next) && hasRangeIndicator(next) {
				return orgMatch{Org: line, Period: next}, true
			}
			return orgMatch{}, false
		},
	},
	{
		name: "org line followed by role line",
		apply: func(line, next string) (orgMatch, bool) {
			if orgShapeRe.MatchString(line) && !blockedOrg(line) &&
				roleKeywordRe.MatchString(next) {
				return orgMatch{Org: line, Role: next}, true
			}
			return orgMatch{}, false
		},
	},
	{
		name: "inline year range",
		apply: func(line, next string) (orgMatch, bool) {
			period := inlineRangeRe.FindString(line)
			if period == "" {
				return orgMatch{}, false
			}
			org := inlineOrgRe.FindString(line)
			org = strings.TrimSpace(org)
			if org == "" || blockedOrg(org) {
				return orgMatch{}, false
			}
			return orgMatch{Org: org, Period: strings.TrimSpace(period)}, true
		},
	},
	{
		name: "pipe-delimited location",
		apply: func(line, next string) (orgMatch, bool) {
			if !strings.Contains(line, "|") {
				return orgMatch{}, false
			}
			parts := splitTrim(line, "|")
			if len(parts) < 2 {
				return orgMatch{}, false
			}
			first, second := parts[0], parts[1]
			if orgShapeRe.MatchString(first) && !blockedOrg(first) &&
				looksLikeLocation(second) {
				return orgMatch{Org: first}, true
			}
			return orgMatch{}, false
		},
	},
	{
		name: "delimited org and role",
		apply: func(line, next string) (orgMatch, bool) {
			sep := ""
			switch {
			case strings.Contains(line, "|"):
				sep = "|"
			case strings.Contains(line, " - "):
				sep = " - "
			default:
				return orgMatch{}, false
			}
			parts := splitTrim(line, sep)
			if len(parts) < 2 {
				return orgMatch{}, false
			}
			first, second := parts[0], parts[1]
			if orgShapeRe.MatchString(first) && !blockedOrg(first) &&
				roleKeywordRe.MatchString(second) {
				return orgMatch{Org: first, Role: second}, true
			}
			return orgMatch{}, false
		},
	},
}

func looksLikeLocation(s string) bool {
	return strings.Contains(s, "Los Angeles") ||
		strings.Contains(s, "CA") ||
		strings.Contains(s, "Personal Project") ||
		strings.Contains(s, "Project")
}

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
