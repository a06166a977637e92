package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-tailor/internal/extraction"
	"github.com/careerforge/resume-tailor/internal/skills"
	"github.com/careerforge/resume-tailor/internal/types"
	"github.com/careerforge/resume-tailor/internal/vocab"
)

func newTestPipeline() *Pipeline {
	return New(nil, nil, skills.NewMatcher(vocab.Default()), extraction.DefaultUploadLimits())
}

func TestExtractOnePlainText(t *testing.T) {
	p := newTestPipeline()

	st := p.extractOne(UploadFile{
		Filename: "resume.txt",
		Data:     []byte("Led user research sessions and React development work\n"),
	})

	require.NoError(t, st.err)
	assert.Contains(t, st.text, "user research")
	assert.Contains(t, st.skillNames, "User Research")
	assert.Contains(t, st.skillNames, "React Development")
}

func TestExtractOneRefusesPDF(t *testing.T) {
	p := newTestPipeline()

	st := p.extractOne(UploadFile{Filename: "resume.pdf", Data: []byte("%PDF-1.4")})

	require.Error(t, st.err)
	var unsupported *extraction.UnsupportedFormatError
	assert.ErrorAs(t, st.err, &unsupported)
}

func TestExtractOneRejectsOversizedFile(t *testing.T) {
	p := New(nil, nil, skills.NewMatcher(vocab.Default()), extraction.UploadLimits{
		MaxBytes:          8,
		AllowedExtensions: []string{".txt"},
	})

	st := p.extractOne(UploadFile{Filename: "resume.txt", Data: []byte("far too many bytes")})

	require.Error(t, st.err)
	var validation *extraction.ValidationError
	assert.ErrorAs(t, st.err, &validation)
}

func TestExtractOneSanitizesFilename(t *testing.T) {
	p := newTestPipeline()

	st := p.extractOne(UploadFile{Filename: "weird/name: resume.txt", Data: []byte("text")})
	assert.NotContains(t, st.file.Filename, "/")
	assert.NotContains(t, st.file.Filename, ":")
}

func TestHasOrganizationCaseInsensitive(t *testing.T) {
	exps := []types.Experience{{Organization: "TruConnect"}}
	assert.True(t, hasOrganization(exps, "truconnect"))
	assert.False(t, hasOrganization(exps, "Scorpion"))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		contentTypeFor(types.MimeClassDocx))
	assert.Equal(t, "text/plain; charset=utf-8", contentTypeFor(types.MimeClassText))
}
