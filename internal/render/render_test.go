package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

func emptyDoc() domain.ResumeDocument {
	return domain.ResumeDocument{
		Title:    "My Resume",
		Template: model.TemplateModern,
		Data:     model.NewResumeData(),
	}
}

func TestRenderDeterministic(t *testing.T) {
	doc := emptyDoc()
	doc.Data.PersonalInfo = model.PersonalInfo{FirstName: "Ada", Email: "ada@example.com"}
	doc.Data.Experience = []model.Experience{{ID: "e1", Company: "Acme", Position: "Engineer"}}

	a, err := HTML(doc)
	require.NoError(t, err)
	b, err := HTML(doc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderNeverFailsOnEmptyDocument(t *testing.T) {
	html, err := HTML(domain.ResumeDocument{})
	require.NoError(t, err)

	// header always renders, with full-name placeholders
	assert.Contains(t, html, "First Name Last Name")
	// empty sections are omitted entirely
	assert.NotContains(t, html, "Work Experience")
	assert.NotContains(t, html, "Education")
	assert.NotContains(t, html, "Skills")
	assert.NotContains(t, html, "Certifications")
	assert.NotContains(t, html, "Projects")
	assert.NotContains(t, html, "Professional Summary")
}

func TestRenderEmptyExperienceOmitsHeading(t *testing.T) {
	doc := emptyDoc()
	doc.Data.Skills = []model.Skill{{ID: "s1", Name: "Go", Level: model.SkillExpert}}

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.NotContains(t, html, "Work Experience")
	assert.Contains(t, html, "Skills")
	assert.Contains(t, html, "Go")
}

func TestRenderPartialPersonalInfo(t *testing.T) {
	doc := emptyDoc()
	doc.Data.PersonalInfo = model.PersonalInfo{FirstName: "Ada"}

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Ada Last Name")
	// no contact items beyond what is present
	assert.NotContains(t, html, `class="contact"`)
}

func TestRenderContactLineJoinsPresentFields(t *testing.T) {
	doc := emptyDoc()
	doc.Data.PersonalInfo = model.PersonalInfo{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Location:  "London",
	}

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, "ada@example.com | London")
}

func TestRenderExperiencePlaceholders(t *testing.T) {
	doc := emptyDoc()
	doc.Data.Experience = []model.Experience{{ID: "e1"}}

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Job Title")
	assert.Contains(t, html, "Company Name")
	assert.Contains(t, html, "Start Date - End Date")
	assert.Contains(t, html, "Job description...")
}

func TestRenderCurrentPositionShowsPresent(t *testing.T) {
	doc := emptyDoc()
	doc.Data.Experience = []model.Experience{{
		ID: "e1", Company: "Acme", Position: "Engineer",
		StartDate: "2021", EndDate: "2022", Current: true,
	}}

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "2021 - Present")
	assert.NotContains(t, html, "2021 - 2022")
}

func TestRenderCertificationDates(t *testing.T) {
	doc := emptyDoc()
	doc.Data.Certifications = []model.Certification{{
		ID: "c1", Name: "CKA", Issuer: "CNCF", IssueDate: "2023-05-01",
	}}

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Issued: 5/1/2023")
	assert.NotContains(t, html, "Expires:")
}

func TestRenderCertificationExpiryAndCredential(t *testing.T) {
	doc := emptyDoc()
	doc.Data.Certifications = []model.Certification{{
		ID: "c1", Name: "CKA", IssueDate: "2023-05-01",
		ExpiryDate: "2026-05-01", CredentialID: "ABC-123",
	}}

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Expires: 5/1/2026")
	assert.Contains(t, html, "Credential ID: ABC-123")
}

func TestRenderUnparseableDatePassesThrough(t *testing.T) {
	doc := emptyDoc()
	doc.Data.Certifications = []model.Certification{{
		ID: "c1", Name: "CKA", IssueDate: "Spring 2023",
	}}

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Issued: Spring 2023")
}

func TestRenderProjectsSection(t *testing.T) {
	doc := emptyDoc()
	doc.Data.Projects = []model.Project{{
		ID: "p1", Name: "resume-builder",
		Description:  "A resume builder.",
		Technologies: []string{"Go", "Postgres"},
		GitHub:       "https://github.com/example/resume-builder",
	}}

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Projects")
	assert.Contains(t, html, "resume-builder")
	assert.Contains(t, html, "Go, Postgres")
	assert.Contains(t, html, "https://github.com/example/resume-builder")
}

func TestRenderNormalizesNilSections(t *testing.T) {
	// a document loaded from an old row may carry nil sections
	doc := domain.ResumeDocument{Title: "Old", Template: model.TemplateMinimal}

	html, err := HTML(doc)
	require.NoError(t, err)
	assert.Contains(t, html, "template-minimal")
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	doc := emptyDoc()
	doc.Template = "fancy"

	html, err := HTML(doc)
	require.NoError(t, err)
	assert.Contains(t, html, "template-modern")
}

func TestRenderEscapesContent(t *testing.T) {
	doc := emptyDoc()
	doc.Data.Summary = `<script>alert("x")</script>`

	html, err := HTML(doc)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderSectionOrder(t *testing.T) {
	doc := emptyDoc()
	doc.Data.Summary = "A summary."
	doc.Data.Experience = []model.Experience{{ID: "e1", Company: "Acme"}}
	doc.Data.Skills = []model.Skill{{ID: "s1", Name: "Go"}}
	doc.Data.Certifications = []model.Certification{{ID: "c1", Name: "CKA"}}
	doc.Data.Education = []model.Education{{ID: "d1", Institution: "MIT"}}
	doc.Data.Projects = []model.Project{{ID: "p1", Name: "thing"}}

	html, err := HTML(doc)
	require.NoError(t, err)

	order := []string{
		"Professional Summary", "Work Experience", "Skills",
		"Certifications", "Education", "Projects",
	}
	last := -1
	for _, title := range order {
		idx := strings.Index(html, title)
		require.GreaterOrEqual(t, idx, 0, title)
		assert.Greater(t, idx, last, "%s out of order", title)
		last = idx
	}
}
