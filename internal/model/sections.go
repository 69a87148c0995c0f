package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/xid"
)

// Section editor operations. Every repeatable section supports the same
// three operations: Add appends a fresh entry with a generated id and
// per-section defaults and never fails; UpdateField replaces one named field
// on the entry with the given id, preserving order; Remove filters the entry
// out and leaves the slice unchanged when the id does not exist.
//
// Entry ids address entries for edit/remove only. They are unique within the
// section and never reused; ordering is always insertion order.

const (
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
)

// ValidSection reports whether name identifies a repeatable section.
func ValidSection(name string) bool {
	switch name {
	case SectionExperience, SectionEducation, SectionSkills,
		SectionCertifications, SectionProjects:
		return true
	}
	return false
}

// NewEntryID generates a section entry id. Clients may supply their own ids;
// server-side adds use these.
func NewEntryID() string {
	return xid.New().String()
}

func (d *ResumeData) AddExperience() *Experience {
	d.Experience = append(d.Experience, Experience{ID: NewEntryID()})
	return &d.Experience[len(d.Experience)-1]
}

func (d *ResumeData) AddEducation() *Education {
	d.Education = append(d.Education, Education{ID: NewEntryID()})
	return &d.Education[len(d.Education)-1]
}

func (d *ResumeData) AddSkill() *Skill {
	d.Skills = append(d.Skills, Skill{ID: NewEntryID(), Level: SkillBeginner})
	return &d.Skills[len(d.Skills)-1]
}

func (d *ResumeData) AddCertification() *Certification {
	d.Certifications = append(d.Certifications, Certification{ID: NewEntryID()})
	return &d.Certifications[len(d.Certifications)-1]
}

func (d *ResumeData) AddProject() *Project {
	d.Projects = append(d.Projects, Project{ID: NewEntryID(), Technologies: []string{}})
	return &d.Projects[len(d.Projects)-1]
}

// AddEntry appends a default entry to the named section and returns it.
// The returned value is the concrete entry (*Experience, *Skill, ...).
func (d *ResumeData) AddEntry(section string) (interface{}, error) {
	switch section {
	case SectionExperience:
		return d.AddExperience(), nil
	case SectionEducation:
		return d.AddEducation(), nil
	case SectionSkills:
		return d.AddSkill(), nil
	case SectionCertifications:
		return d.AddCertification(), nil
	case SectionProjects:
		return d.AddProject(), nil
	}
	return nil, fmt.Errorf("unknown section %q", section)
}

// UpdateEntryField sets one named field on the entry with the given id in
// the named section. Field values arrive as strings from the form editor;
// boolean fields accept strconv.ParseBool forms and technologies accepts a
// comma-separated list. The returned bool reports whether the id matched;
// a missing id is a no-op. An unknown section or field name is an error.
func (d *ResumeData) UpdateEntryField(section, id, field, value string) (bool, error) {
	switch section {
	case SectionExperience:
		return d.updateExperienceField(id, field, value)
	case SectionEducation:
		return d.updateEducationField(id, field, value)
	case SectionSkills:
		return d.updateSkillField(id, field, value)
	case SectionCertifications:
		return d.updateCertificationField(id, field, value)
	case SectionProjects:
		return d.updateProjectField(id, field, value)
	}
	return false, fmt.Errorf("unknown section %q", section)
}

// RemoveEntry filters out the entry with the given id from the named
// section. Removing a nonexistent id leaves the section unchanged.
func (d *ResumeData) RemoveEntry(section, id string) (bool, error) {
	switch section {
	case SectionExperience:
		for i := range d.Experience {
			if d.Experience[i].ID == id {
				d.Experience = append(d.Experience[:i], d.Experience[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	case SectionEducation:
		for i := range d.Education {
			if d.Education[i].ID == id {
				d.Education = append(d.Education[:i], d.Education[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	case SectionSkills:
		for i := range d.Skills {
			if d.Skills[i].ID == id {
				d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	case SectionCertifications:
		for i := range d.Certifications {
			if d.Certifications[i].ID == id {
				d.Certifications = append(d.Certifications[:i], d.Certifications[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	case SectionProjects:
		for i := range d.Projects {
			if d.Projects[i].ID == id {
				d.Projects = append(d.Projects[:i], d.Projects[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	}
	return false, fmt.Errorf("unknown section %q", section)
}

func (d *ResumeData) updateExperienceField(id, field, value string) (bool, error) {
	for i := range d.Experience {
		if d.Experience[i].ID != id {
			continue
		}
		e := &d.Experience[i]
		switch field {
		case "company":
			e.Company = value
		case "position":
			e.Position = value
		case "location":
			e.Location = value
		case "startDate":
			e.StartDate = value
		case "endDate":
			e.EndDate = value
		case "current":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return true, fmt.Errorf("field current: %w", err)
			}
			e.Current = b
		case "description":
			e.Description = value
		default:
			return true, fmt.Errorf("unknown experience field %q", field)
		}
		return true, nil
	}
	return false, nil
}

func (d *ResumeData) updateEducationField(id, field, value string) (bool, error) {
	for i := range d.Education {
		if d.Education[i].ID != id {
			continue
		}
		e := &d.Education[i]
		switch field {
		case "institution":
			e.Institution = value
		case "degree":
			e.Degree = value
		case "field":
			e.Field = value
		case "location":
			e.Location = value
		case "startDate":
			e.StartDate = value
		case "endDate":
			e.EndDate = value
		case "current":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return true, fmt.Errorf("field current: %w", err)
			}
			e.Current = b
		case "gpa":
			e.GPA = value
		default:
			return true, fmt.Errorf("unknown education field %q", field)
		}
		return true, nil
	}
	return false, nil
}

func (d *ResumeData) updateSkillField(id, field, value string) (bool, error) {
	for i := range d.Skills {
		if d.Skills[i].ID != id {
			continue
		}
		s := &d.Skills[i]
		switch field {
		case "name":
			s.Name = value
		case "level":
			s.Level = value
		default:
			return true, fmt.Errorf("unknown skill field %q", field)
		}
		return true, nil
	}
	return false, nil
}

func (d *ResumeData) updateCertificationField(id, field, value string) (bool, error) {
	for i := range d.Certifications {
		if d.Certifications[i].ID != id {
			continue
		}
		c := &d.Certifications[i]
		switch field {
		case "name":
			c.Name = value
		case "issuer":
			c.Issuer = value
		case "issueDate":
			c.IssueDate = value
		case "expiryDate":
			c.ExpiryDate = value
		case "credentialId":
			c.CredentialID = value
		case "url":
			c.URL = value
		default:
			return true, fmt.Errorf("unknown certification field %q", field)
		}
		return true, nil
	}
	return false, nil
}

func (d *ResumeData) updateProjectField(id, field, value string) (bool, error) {
	for i := range d.Projects {
		if d.Projects[i].ID != id {
			continue
		}
		p := &d.Projects[i]
		switch field {
		case "name":
			p.Name = value
		case "description":
			p.Description = value
		case "technologies":
			techs := []string{}
			for _, t := range strings.Split(value, ",") {
				if t = strings.TrimSpace(t); t != "" {
					techs = append(techs, t)
				}
			}
			p.Technologies = techs
		case "url":
			p.URL = value
		case "github":
			p.GitHub = value
		case "startDate":
			p.StartDate = value
		case "endDate":
			p.EndDate = value
		default:
			return true, fmt.Errorf("unknown project field %q", field)
		}
		return true, nil
	}
	return false, nil
}
