package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-tailor/internal/types"
)

func writeTempVocab(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefault(t *testing.T) {
	entries, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	names := make(map[string]types.SkillCategory)
	for _, e := range entries {
		names[e.Name] = e.Category
	}
	assert.Equal(t, types.SkillCategoryDomain, names["Healthcare"])
	assert.Equal(t, types.SkillCategoryTechnical, names["React"])
}

func TestLoadValidFile(t *testing.T) {
	path := writeTempVocab(t, `[
		{"name": "Kubernetes", "category": "technical", "match_patterns": ["kubernetes", "k8s"]},
		{"name": "FinTech", "category": "domain"}
	]`)

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Kubernetes", entries[0].Name)
	assert.Equal(t, []string{"kubernetes", "k8s"}, entries[0].MatchPatterns)
}

func TestLoadRejectsBadCategory(t *testing.T) {
	path := writeTempVocab(t, `[{"name": "X", "category": "wizardry"}]`)

	_, err := Load(path)
	require.Error(t, err)

	var verr *VocabularyError
	assert.True(t, errors.As(err, &verr))
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeTempVocab(t, `{not json`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestSynonymPatternsAreLowercase(t *testing.T) {
	for _, entry := range SynonymPatterns() {
		require.True(t, types.ValidSkillCategory(entry.Category), entry.Name)
		for _, p := range entry.MatchPatterns {
			assert.Equal(t, strings.ToLower(p), p, "pattern must be lowercase: %q", p)
		}
	}
}
