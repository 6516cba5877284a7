package types

import "strings"

// ContactInfo holds contact details pattern-matched from the resume text.
// Absent fields are empty strings.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Location string `json:"location,omitempty"`
}

// SkillSet holds deduplicated canonical skills found in the resume.
// Both slices are sorted lexicographically, and TotalCount always equals
// len(TechnicalSkills) + len(SoftSkills).
type SkillSet struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	TotalCount      int      `json:"total_count"`
}

// ExperienceEntry is a single work-experience block extracted from the
// resume. A current position carries EndDate "Present".
type ExperienceEntry struct {
	Role           string  `json:"role"`
	Company        string  `json:"company"`
	StartDate      string  `json:"start_date,omitempty"` // "YYYY-MM" or "YYYY"
	EndDate        string  `json:"end_date,omitempty"`   // "Present" when current
	DurationMonths int     `json:"duration_months"`      // never negative
	DurationYears  float64 `json:"duration_years"`
	Description    string  `json:"description,omitempty"`
	IsCurrent      bool    `json:"is_current"`
}

// EducationEntry is a single education block. At least one of Degree or
// Institution is always non-empty; entries without both are discarded
// during parsing.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// ProjectEntry is one item from the projects section.
type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Summary holds statistics derived from the extracted record.
type Summary struct {
	TotalExperienceYears float64 `json:"total_experience_years"`
	TotalSkills          int     `json:"total_skills"`
	EducationLevel       string  `json:"education_level"`
	HasProjects          bool    `json:"has_projects"`
	HasCertifications    bool    `json:"has_certifications"`
}

// ExtractedRecord aggregates everything the field extractor produced for
// one resume. It is built once per document and treated as immutable by
// the scorer, optimizer, and ranker.
type ExtractedRecord struct {
	Contact        ContactInfo       `json:"contact"`
	Skills         SkillSet          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
	Summary        Summary           `json:"summary"`
}

// FlattenedText joins skills, experience roles and descriptions, education
// degrees and fields, and project descriptions into a single space-joined
// string. The scorer and optimizer match JD keywords against this text.
func (r *ExtractedRecord) FlattenedText() string {
	var parts []string

	parts = append(parts, r.Skills.TechnicalSkills...)
	parts = append(parts, r.Skills.SoftSkills...)

	for _, exp := range r.Experience {
		if exp.Role != "" {
			parts = append(parts, exp.Role)
		}
		if exp.Description != "" {
			parts = append(parts, exp.Description)
		}
	}

	for _, edu := range r.Education {
		if edu.Degree != "" {
			parts = append(parts, edu.Degree)
		}
		if edu.Field != "" {
			parts = append(parts, edu.Field)
		}
	}

	for _, proj := range r.Projects {
		if proj.Description != "" {
			parts = append(parts, proj.Description)
		}
	}

	return strings.Join(parts, " ")
}
