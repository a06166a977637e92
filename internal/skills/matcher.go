// Package skills scans raw text against the skill vocabulary. Matching is
// presence/absence only: case-insensitive substring containment, no
// stemming, no scoring.
package skills

import (
	"strings"

	"github.com/careerforge/resume-tailor/internal/types"
	"github.com/careerforge/resume-tailor/internal/vocab"
)

// Matcher holds the merged vocabulary in a fixed order so matching is
// deterministic and idempotent.
type Matcher struct {
	entries []compiledEntry
}

type compiledEntry struct {
	entry    types.VocabularyEntry
	patterns []string
}

// NewMatcher compiles the vocabulary, merging in the fixed synonym pattern
// table. Entries without explicit patterns match on their lowercase name and
// its squashed and hyphenated variants.
func NewMatcher(vocabulary []types.VocabularyEntry) *Matcher {
	merged := make([]types.VocabularyEntry, 0, len(vocabulary)+32)
	merged = append(merged, vocabulary...)

	seen := make(map[string]bool, len(vocabulary))
	for _, e := range vocabulary {
		seen[strings.ToLower(e.Name)] = true
	}
	for _, e := range vocab.SynonymPatterns() {
		if !seen[strings.ToLower(e.Name)] {
			merged = append(merged, e)
			seen[strings.ToLower(e.Name)] = true
		}
	}

	m := &Matcher{entries: make([]compiledEntry, 0, len(merged))}
	for _, e := range merged {
		m.entries = append(m.entries, compiledEntry{entry: e, patterns: patternsFor(e)})
	}
	return m
}

func patternsFor(e types.VocabularyEntry) []string {
	if len(e.MatchPatterns) > 0 {
		lowered := make([]string, len(e.MatchPatterns))
		for i, p := range e.MatchPatterns {
			lowered[i] = strings.ToLower(p)
		}
		return lowered
	}
	name := strings.ToLower(e.Name)
	return []string{
		name,
		strings.ReplaceAll(name, " ", ""),
		strings.ReplaceAll(name, " ", "-"),
	}
}

// Match returns every vocabulary entry with at least one pattern present in
// the text, in vocabulary order. Matching the same text twice yields the
// same result.
func (m *Matcher) Match(text string) []types.VocabularyEntry {
	lower := strings.ToLower(text)

	var matched []types.VocabularyEntry
	for _, ce := range m.entries {
		for _, p := range ce.patterns {
			if strings.Contains(lower, p) {
				matched = append(matched, ce.entry)
				break
			}
		}
	}
	return matched
}

// MatchNames returns just the matched skill names.
func (m *Matcher) MatchNames(text string) []string {
	entries := m.Match(text)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
