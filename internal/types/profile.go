package types

// ExperienceItem is one work-history entry of a profile.
type ExperienceItem struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationItem is one education entry of a profile.
type EducationItem struct {
	ID          string `json:"id,omitempty"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution"`
	Duration    string `json:"duration,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// ProjectItem is one project entry of a profile.
type ProjectItem struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CertificationItem is one certification entry of a profile.
type CertificationItem struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Link string `json:"link,omitempty"`
}

// UserProfile is the complete profile owned by the state store. Mutated via
// whole replacement (SetProfile) or shallow top-level merge (UpdateProfile);
// nested arrays are never deep-merged.
type UserProfile struct {
	ContactInfo        ContactInfo         `json:"contactInfo"`
	Experience         []ExperienceItem    `json:"experience"`
	Education          []EducationItem     `json:"education"`
	Skills             []Skill             `json:"skills"`
	Projects           []ProjectItem       `json:"projects"`
	Certifications     []CertificationItem `json:"certifications"`
	ResumeFileName     string              `json:"resumeFileName,omitempty"`
	ResumeText         string              `json:"resumeText,omitempty"`
	ResumeBase64       string              `json:"resumeBase64,omitempty"`
	SuggestedJobTitles []string            `json:"suggestedJobTitles,omitempty"`
	PrimaryJobTitle    string              `json:"primaryJobTitle,omitempty"`
	ResumeUploadedAt   string              `json:"resumeUploadedAt,omitempty"`
}

// ProfileUpdate carries the fields of a shallow profile merge. Only non-nil
// fields are applied; a nil pointer means "leave the current value alone".
type ProfileUpdate struct {
	ContactInfo        *ContactInfo         `json:"contactInfo,omitempty"`
	Experience         *[]ExperienceItem    `json:"experience,omitempty"`
	Education          *[]EducationItem     `json:"education,omitempty"`
	Skills             *[]Skill             `json:"skills,omitempty"`
	Projects           *[]ProjectItem       `json:"projects,omitempty"`
	Certifications     *[]CertificationItem `json:"certifications,omitempty"`
	ResumeFileName     *string              `json:"resumeFileName,omitempty"`
	ResumeText         *string              `json:"resumeText,omitempty"`
	ResumeBase64       *string              `json:"resumeBase64,omitempty"`
	SuggestedJobTitles *[]string            `json:"suggestedJobTitles,omitempty"`
	PrimaryJobTitle    *string              `json:"primaryJobTitle,omitempty"`
	ResumeUploadedAt   *string              `json:"resumeUploadedAt,omitempty"`
}

// Apply merges the update into the profile, replacing only the top-level
// fields that are set. Nested arrays are replaced wholesale, not merged.
func (u *ProfileUpdate) Apply(p *UserProfile) {
	if u.ContactInfo != nil {
		p.ContactInfo = *u.ContactInfo
	}
	if u.Experience != nil {
		p.Experience = *u.Experience
	}
	if u.Education != nil {
		p.Education = *u.Education
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
	if u.Projects != nil {
		p.Projects = *u.Projects
	}
	if u.Certifications != nil {
		p.Certifications = *u.Certifications
	}
	if u.ResumeFileName != nil {
		p.ResumeFileName = *u.ResumeFileName
	}
	if u.ResumeText != nil {
		p.ResumeText = *u.ResumeText
	}
	if u.ResumeBase64 != nil {
		p.ResumeBase64 = *u.ResumeBase64
	}
	if u.SuggestedJobTitles != nil {
		p.SuggestedJobTitles = *u.SuggestedJobTitles
	}
	if u.PrimaryJobTitle != nil {
		p.PrimaryJobTitle = *u.PrimaryJobTitle
	}
	if u.ResumeUploadedAt != nil {
		p.ResumeUploadedAt = *u.ResumeUploadedAt
	}
}

// HasResume reports whether the profile carries CV data, either as an
// uploaded file reference or as extracted resume text.
func (p *UserProfile) HasResume() bool {
	if p == nil {
		return false
	}
	return p.ResumeFileName != "" || p.ResumeText != ""
}

// CVExtractedData is the structured result of the CV extraction service.
type CVExtractedData struct {
	ContactInfo    ContactInfo         `json:"contactInfo"`
	Experience     []ExperienceItem    `json:"experiences"`
	Education      []EducationItem     `json:"educations"`
	Skills         []Skill             `json:"skills"`
	Projects       []ProjectItem       `json:"projects"`
	Certifications []CertificationItem `json:"certifications"`
	RawText        string              `json:"rawText"`
}
