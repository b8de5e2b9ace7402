// Package document recovers editable section structure from AI-generated
// resume and cover letter text, and converts section markup back to plain
// lines for export.
package document

import "github.com/google/uuid"

// SectionType classifies what a section holds. The type drives export
// styling; Generic is the catch-all for headings outside the known set.
type SectionType string

const (
	TypeHeader     SectionType = "header"
	TypeSummary    SectionType = "summary"
	TypeExperience SectionType = "experience"
	TypeProjects   SectionType = "projects"
	TypeEducation  SectionType = "education"
	TypeSkills     SectionType = "skills"
	TypeGeneric    SectionType = "generic"
)

// Section is one reorderable, editable block of a document. Content is an
// HTML fragment with all source text escaped before markup was applied.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
}

func newSection(t SectionType, title string) Section {
	return Section{ID: uuid.New().String(), Type: t, Title: title}
}

// Sections is an ordered document. Reordering and content edits happen
// through it so exports always see the current list.
type Sections []Section

// Move relocates the section at index from to index to, shifting the
// sections between them. Out-of-range indices leave the list untouched.
func (s Sections) Move(from, to int) {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return
	}
	moved := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = moved
}

// UpdateContent replaces the content of the section with the given id and
// reports whether a section was found.
func (s Sections) UpdateContent(id, content string) bool {
	for i := range s {
		if s[i].ID == id {
			s[i].Content = content
			return true
		}
	}
	return false
}
