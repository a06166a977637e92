package extraction

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	blankRunRe   = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes raw extracted text while preserving line structure,
// which the segmenter depends on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims trailing whitespace and collapses runs of spaces without
// disturbing bullet glyphs or leading indentation.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	if IsBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	leading := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if leading > 0 {
		return strings.Repeat(" ", leading) + content
	}
	return content
}

// BulletGlyphs are the characters recognized as list-item prefixes in
// résumé text.
const BulletGlyphs = "•-*–—·●▪‣◦"

// IsBulletLine reports whether a trimmed line starts with a bullet glyph.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return strings.ContainsRune(BulletGlyphs, []rune(trimmed)[0])
}

// StripBullet removes a leading bullet glyph and surrounding whitespace.
func StripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	runes := []rune(trimmed)
	if strings.ContainsRune(BulletGlyphs, runes[0]) {
		return strings.TrimSpace(string(runes[1:]))
	}
	return trimmed
}
