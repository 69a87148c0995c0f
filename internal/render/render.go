// Package render projects a resume document to presentational HTML.
//
// HTML is the single projection used by the on-screen preview, the print
// view and the PDF export, so the three outputs are structurally identical.
// It is a pure function: no I/O, deterministic for a given document.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Placeholder labels substituted for empty optional fields so a half-filled
// document still renders as a complete layout instead of looking broken.
const (
	phFirstName   = "First Name"
	phLastName    = "Last Name"
	phPosition    = "Job Title"
	phCompany     = "Company Name"
	phStartDate   = "Start Date"
	phEndDate     = "End Date"
	phJobDesc     = "Job description..."
	phDegree      = "Degree"
	phField       = "Field of Study"
	phInstitution = "Institution Name"
	phSkillName   = "Skill Name"
	phSkillLevel  = "Level"
	phCertName    = "Certification Name"
	phCertIssuer  = "Issuing Organization"
	phIssueDate   = "Issue Date"
	phProjectName = "Project Name"
	phProjectDesc = "Project description..."
)

var certDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
}

// shortDate reformats a certification date to a short M/D/YYYY form. An
// unparseable value is passed through verbatim; date handling must never
// fail a render.
func shortDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	for _, layout := range certDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
		}
	}
	return s
}

func orDefault(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// dateRange renders "start - end"; current entries always show "Present"
// regardless of any stored end date.
func dateRange(start, end string, current bool) string {
	s := orDefault(start, phStartDate)
	if current {
		return s + " - Present"
	}
	return s + " - " + orDefault(end, phEndDate)
}

func joinPresent(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " | ")
}

type view struct {
	Title    string
	Template string
	Data     model.ResumeData
	Name     string
	Contact  string
	Links    string
}

var funcs = template.FuncMap{
	"orDefault": orDefault,
	"dateRange": dateRange,
	"shortDate": shortDate,
	"join":      strings.Join,
}

var resumeTpl = template.Must(template.New("resume").Funcs(funcs).Parse(resumeTemplate))

// HTML renders the document to a standalone HTML page with inlined styles.
// Empty repeatable sections are omitted entirely; the personal-info header
// always renders, with placeholders for missing name parts. The template
// variant only selects an accent palette, never structure.
func HTML(doc domain.ResumeDocument) (string, error) {
	data := doc.Data
	data.Normalize()

	pi := data.PersonalInfo
	tplName := doc.Template
	if !model.ValidTemplate(tplName) {
		tplName = model.TemplateModern
	}
	v := view{
		Title:    orDefault(doc.Title, model.DefaultTitle),
		Template: tplName,
		Data:     data,
		Name:     orDefault(pi.FirstName, phFirstName) + " " + orDefault(pi.LastName, phLastName),
		Contact:  joinPresent(pi.Email, pi.Phone, pi.Location),
		Links:    joinPresent(pi.LinkedIn, pi.Website, pi.GitHub, pi.Portfolio),
	}

	var buf bytes.Buffer
	if err := resumeTpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render resume: %w", err)
	}
	return buf.String(), nil
}
