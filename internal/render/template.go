package render

const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>` + baseCSS + `</style>
</head>
<body class="template-{{.Template}}">
  <div class="header">
    <div class="name">{{.Name}}</div>
{{- if .Contact}}
    <div class="contact">{{.Contact}}</div>
{{- end}}
{{- if .Links}}
    <div class="contact">{{.Links}}</div>
{{- end}}
  </div>
{{- if .Data.Summary}}
  <div class="section">
    <div class="section-title">Professional Summary</div>
    <p>{{.Data.Summary}}</p>
  </div>
{{- end}}
{{- if .Data.Experience}}
  <div class="section">
    <div class="section-title">Work Experience</div>
{{- range .Data.Experience}}
    <div class="entry">
      <div class="entry-title">{{orDefault .Position "Job Title"}}</div>
      <div class="entry-org">{{orDefault .Company "Company Name"}}</div>
      <div class="date">{{dateRange .StartDate .EndDate .Current}}</div>
      <div class="description">{{orDefault .Description "Job description..."}}</div>
    </div>
{{- end}}
  </div>
{{- end}}
{{- if .Data.Skills}}
  <div class="section">
    <div class="section-title">Skills</div>
    <div class="skills-grid">
{{- range .Data.Skills}}
      <div class="skill-item">
        <div class="skill-name">{{orDefault .Name "Skill Name"}}</div>
        <div class="skill-level">{{orDefault .Level "Level"}}</div>
      </div>
{{- end}}
    </div>
  </div>
{{- end}}
{{- if .Data.Certifications}}
  <div class="section">
    <div class="section-title">Certifications</div>
{{- range .Data.Certifications}}
    <div class="entry">
      <div class="entry-title">{{orDefault .Name "Certification Name"}}</div>
      <div class="entry-org">{{orDefault .Issuer "Issuing Organization"}}</div>
      <div class="date">Issued: {{if .IssueDate}}{{shortDate .IssueDate}}{{else}}Issue Date{{end}}</div>
{{- if .ExpiryDate}}
      <div class="date">Expires: {{shortDate .ExpiryDate}}</div>
{{- end}}
{{- if .CredentialID}}
      <div class="date">Credential ID: {{.CredentialID}}</div>
{{- end}}
{{- if .URL}}
      <div class="date"><a href="{{.URL}}">{{.URL}}</a></div>
{{- end}}
    </div>
{{- end}}
  </div>
{{- end}}
{{- if .Data.Education}}
  <div class="section">
    <div class="section-title">Education</div>
{{- range .Data.Education}}
    <div class="entry">
      <div class="entry-title">{{orDefault .Degree "Degree"}} in {{orDefault .Field "Field of Study"}}</div>
      <div class="entry-org">{{orDefault .Institution "Institution Name"}}</div>
      <div class="date">{{dateRange .StartDate .EndDate .Current}}</div>
{{- if .GPA}}
      <div>GPA: {{.GPA}}</div>
{{- end}}
    </div>
{{- end}}
  </div>
{{- end}}
{{- if .Data.Projects}}
  <div class="section">
    <div class="section-title">Projects</div>
{{- range .Data.Projects}}
    <div class="entry">
      <div class="entry-title">{{orDefault .Name "Project Name"}}</div>
{{- if .Technologies}}
      <div class="entry-org">{{join .Technologies ", "}}</div>
{{- end}}
{{- if or .StartDate .EndDate}}
      <div class="date">{{dateRange .StartDate .EndDate false}}</div>
{{- end}}
      <div class="description">{{orDefault .Description "Project description..."}}</div>
{{- if .URL}}
      <div class="date"><a href="{{.URL}}">{{.URL}}</a></div>
{{- end}}
{{- if .GitHub}}
      <div class="date"><a href="{{.GitHub}}">{{.GitHub}}</a></div>
{{- end}}
    </div>
{{- end}}
  </div>
{{- end}}
</body>
</html>
`

const baseCSS = `
body {
  font-family: 'Arial', sans-serif;
  line-height: 1.6;
  color: #333;
  max-width: 800px;
  margin: 0 auto;
  padding: 40px;
  background: white;
}
.header {
  text-align: center;
  border-bottom: 3px solid var(--accent);
  padding-bottom: 20px;
  margin-bottom: 30px;
}
.name {
  font-size: 32px;
  font-weight: bold;
  color: #1f2937;
  margin-bottom: 10px;
}
.contact {
  font-size: 14px;
  color: #6b7280;
  margin-bottom: 10px;
}
.section {
  margin-bottom: 30px;
}
.section-title {
  font-size: 20px;
  font-weight: bold;
  color: var(--accent);
  border-bottom: 2px solid #e5e7eb;
  padding-bottom: 5px;
  margin-bottom: 15px;
}
.entry {
  margin-bottom: 20px;
  padding-left: 20px;
  border-left: 4px solid var(--accent);
}
.entry-title {
  font-weight: bold;
  font-size: 16px;
  color: #1f2937;
}
.entry-org {
  color: var(--accent);
  font-weight: 600;
}
.date {
  color: #6b7280;
  font-size: 14px;
}
.description {
  margin-top: 8px;
  white-space: pre-line;
}
.skills-grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(150px, 1fr));
  gap: 10px;
}
.skill-item {
  background: #f3f4f6;
  padding: 8px 12px;
  border-radius: 6px;
  font-size: 14px;
  border-left: 3px solid #10b981;
}
.skill-name {
  font-weight: 600;
}
.skill-level {
  color: #6b7280;
  font-size: 12px;
  text-transform: capitalize;
}
.template-modern { --accent: #2563eb; }
.template-minimal { --accent: #374151; }
.template-professional { --accent: #0f766e; }
.template-creative { --accent: #9333ea; }
`
