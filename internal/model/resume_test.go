package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeDataHasEmptySections(t *testing.T) {
	d := NewResumeData()

	assert.NotNil(t, d.Experience)
	assert.NotNil(t, d.Education)
	assert.NotNil(t, d.Skills)
	assert.NotNil(t, d.Certifications)
	assert.NotNil(t, d.Projects)
	assert.Empty(t, d.Experience)
	assert.Empty(t, d.Certifications)
}

func TestNormalizeMissingCertifications(t *testing.T) {
	// A document saved before the certifications section existed has no
	// such key at all.
	raw := `{
		"personalInfo": {"firstName": "Ada"},
		"summary": "",
		"experience": [{"id": "e1", "company": "Acme"}],
		"education": [],
		"skills": []
	}`

	var d ResumeData
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	require.Nil(t, d.Certifications)

	d.Normalize()

	assert.NotNil(t, d.Certifications)
	assert.Empty(t, d.Certifications)
	assert.NotNil(t, d.Projects)
	// present sections are untouched
	require.Len(t, d.Experience, 1)
	assert.Equal(t, "Acme", d.Experience[0].Company)
}

func TestNormalizeNilTechnologies(t *testing.T) {
	raw := `{"projects": [{"id": "p1", "name": "thing"}]}`

	var d ResumeData
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	d.Normalize()

	require.Len(t, d.Projects, 1)
	assert.NotNil(t, d.Projects[0].Technologies)
	assert.Empty(t, d.Projects[0].Technologies)
}

func TestValidTemplate(t *testing.T) {
	for _, tpl := range []string{"minimal", "modern", "professional", "creative"} {
		assert.True(t, ValidTemplate(tpl), tpl)
	}
	assert.False(t, ValidTemplate(""))
	assert.False(t, ValidTemplate("fancy"))
}

func TestValidSkillLevel(t *testing.T) {
	for _, lvl := range []string{"beginner", "intermediate", "advanced", "expert"} {
		assert.True(t, ValidSkillLevel(lvl), lvl)
	}
	assert.False(t, ValidSkillLevel("ninja"))
}
