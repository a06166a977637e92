package segment

import (
	"regexp"
	"strings"
)

const educationLookahead = 10

var (
	educationHeaderRe = regexp.MustCompile(`(?i)^EDUCATION$`)
	degreeKeywordRe   = regexp.MustCompile(`(?i)(Bachelor|Master|PhD|B\.A\.|M\.A\.|Ph\.D\.)`)
	degreePrefixRe    = regexp.MustCompile(`(?i)(Bachelor|Master|PhD|B\.A\.|M\.A\.|Ph\.D\.)[^|]*`)
	schoolKeywordRe   = regexp.MustCompile(`(?i)(University|College|Institute|School)`)
	gradYearRe        = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// educationEntry is a decomposed degree line.
type educationEntry struct {
	Degree string
	School string
	Year   string
}

// findEducation scans for a standalone EDUCATION header and searches the
// following lines for a degree line, decomposing the first one found.
// Only the first education section and first degree within it are used.
func findEducation(lines []string) (educationEntry, bool) {
	for i, raw := range lines {
		if !educationHeaderRe.MatchString(strings.TrimSpace(raw)) {
			continue
		}
		end := i + educationLookahead
		if end > len(lines) {
			end = len(lines)
		}
		for j := i + 1; j < end; j++ {
			entry, ok := parseDegreeLine(strings.TrimSpace(lines[j]))
			if ok {
				return entry, true
			}
		}
		return educationEntry{}, false
	}
	return educationEntry{}, false
}

// parseDegreeLine accepts lines like
// "Bachelor of Arts in Political Science | Loyola Marymount University | 2017"
// or the same fields without delimiters, anchored on keywords.
func parseDegreeLine(line string) (educationEntry, bool) {
	if !degreeKeywordRe.MatchString(line) {
		return educationEntry{}, false
	}
	if !strings.Contains(line, "|") &&
		!strings.Contains(line, "University") && !strings.Contains(line, "College") {
		return educationEntry{}, false
	}

	var entry educationEntry
	if strings.Contains(line, "|") {
		parts := splitTrim(line, "|")
		entry.Degree = parts[0]
		if len(parts) > 1 {
			entry.School = parts[1]
		}
		if len(parts) > 2 {
			entry.Year = parts[2]
		}
	} else {
		entry.Degree = strings.TrimSpace(degreePrefixRe.FindString(line))
		if loc := schoolKeywordRe.FindStringIndex(line); loc != nil {
			entry.School = strings.TrimSpace(line[loc[0]:])
		}
		entry.Year = gradYearRe.FindString(line)
	}

	if entry.Degree == "" || entry.School == "" {
		return educationEntry{}, false
	}
	return entry, true
}
