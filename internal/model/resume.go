package model

// Go models for the resume document content. The JSON layout mirrors the
// persisted JSONB column exactly; there is no version field, so Normalize
// is the only forward-compatibility mechanism on load.

const (
	TemplateMinimal      = "minimal"
	TemplateModern       = "modern"
	TemplateProfessional = "professional"
	TemplateCreative     = "creative"

	DefaultTitle = "Untitled Resume"
)

type PersonalInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
}

const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
	SkillExpert       = "expert"
)

type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Level string `json:"level,omitempty"`
}

type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	IssueDate    string `json:"issueDate,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// ResumeData is the structured content of a resume document. Repeatable
// sections keep insertion order; list order is display order.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
}

// NewResumeData returns an empty draft with all repeatable sections
// initialized to empty slices.
func NewResumeData() ResumeData {
	return ResumeData{
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Certifications: []Certification{},
		Projects:       []Project{},
	}
}

// Normalize repairs a data blob loaded from storage. Documents saved before
// the certifications section existed carry no such key; every repeatable
// section that unmarshals to nil becomes an empty slice so readers never see
// null. Nil technologies lists on projects get the same treatment.
func (d *ResumeData) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	for i := range d.Projects {
		if d.Projects[i].Technologies == nil {
			d.Projects[i].Technologies = []string{}
		}
	}
}

// ValidTemplate reports whether s is one of the supported template variants.
func ValidTemplate(s string) bool {
	switch s {
	case TemplateMinimal, TemplateModern, TemplateProfessional, TemplateCreative:
		return true
	}
	return false
}

// ValidSkillLevel reports whether s is one of the supported skill levels.
func ValidSkillLevel(s string) bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}
