package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     MimeClass
	}{
		{"Plain text", "resume.txt", MimeClassText},
		{"Markdown", "notes.md", MimeClassText},
		{"Word package", "CJ_Resume.docx", MimeClassDocx},
		{"Uppercase extension", "RESUME.DOCX", MimeClassDocx},
		{"PDF is refused", "resume.pdf", MimeClassUnsupported},
		{"Legacy doc", "old.doc", MimeClassUnsupported},
		{"No extension", "resume", MimeClassUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFilename(tt.filename))
		})
	}
}

func TestSkillProfileAdd(t *testing.T) {
	p := &SkillProfile{}

	assert.True(t, p.Add(SkillCategoryTechnical, "React"))
	assert.False(t, p.Add(SkillCategoryTechnical, "react"), "case-insensitive duplicate")
	assert.True(t, p.Add(SkillCategoryDomain, "Healthcare"))

	assert.True(t, p.Has("REACT"))
	assert.True(t, p.Has("Healthcare"))
	assert.False(t, p.Has("SQL"))
	assert.Len(t, p.AllSkills(), 2)
}

func TestExperienceSearchText(t *testing.T) {
	e := &Experience{
		Organization: "TruConnect",
		Role:         "Director of Product Management",
		Accomplishments: []Accomplishment{
			{Description: "Led 250% revenue growth"},
		},
	}

	text := e.SearchText()
	assert.Contains(t, text, "truconnect")
	assert.Contains(t, text, "revenue growth")
}

func TestCreateExperienceRequestValidate(t *testing.T) {
	valid := &CreateExperienceRequest{
		Organization: "Acme",
		Role:         "Product Manager",
		Period:       "2020 - Present",
		Type:         ExperienceTypeJob,
	}
	require.NoError(t, valid.Validate())

	missing := &CreateExperienceRequest{Role: "PM", Period: "2020"}
	assert.Error(t, missing.Validate())

	badType := &CreateExperienceRequest{
		Organization: "Acme", Role: "PM", Period: "2020", Type: "internship",
	}
	assert.Error(t, badType.Validate())
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "led growth", NormalizeDescription("  Led Growth  "))
	assert.Equal(t, NormalizeDescription("Shipped v2"), NormalizeDescription("shipped v2"))
}
