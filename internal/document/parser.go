package document

import (
	"html"
	"regexp"
	"strings"
)

// Kind selects the parsing mode.
type Kind string

const (
	KindCV          Kind = "cv"
	KindCoverLetter Kind = "cover-letter"
)

// headerWindow is how many physical lines at the top of a CV may hold the
// name and contact block before the first section heading.
const headerWindow = 8

// sectionHeadings is the full-line heading vocabulary, matched
// case-insensitively after trimming.
var sectionHeadings = map[string]bool{
	"SUMMARY":                 true,
	"PROFESSIONAL EXPERIENCE": true,
	"EXPERIENCE":              true,
	"PROJECTS":                true,
	"EDUCATION":               true,
	"SKILLS":                  true,
	"CERTIFICATIONS":          true,
	"LANGUAGES":               true,
	"AWARDS":                  true,
	"REFERENCES":              true,
	"PUBLICATIONS":            true,
	"VOLUNTEER":               true,
	"ACHIEVEMENTS":            true,
}

var (
	multiSpace = regexp.MustCompile(`\s{2,}`)

	// A month-name/year or bare-year date, optionally ranged, with the end
	// allowed to be open ("Jul 2025", "2020 - 2023", "Jan 2020 - Present").
	dateRange = regexp.MustCompile(`(?i)^(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\.?\s+)?\d{4}(?:\s*(?:-|–|to)\s*(?:(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\.?\s+)?\d{4}|Present|Current))?$`)

	categoryLine = regexp.MustCompile(`^([^:]+):\s+(.+)$`)
)

// Parse splits raw generated text into ordered sections. Cover letters are
// a single generic section; CVs go through a line classification pass that
// recognizes the heading vocabulary, collects a header block from the first
// lines, and formats every content line.
func Parse(rawText string, kind Kind) Sections {
	if kind == KindCoverLetter {
		s := newSection(TypeGeneric, "Cover Letter")
		s.Content = escapeLines(rawText)
		return Sections{s}
	}

	lines := strings.Split(rawText, "\n")
	var (
		sections    Sections
		current     *Section
		headerLines []string
	)
	flush := func() {
		if current != nil {
			sections = append(sections, *current)
			current = nil
		}
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if sectionHeadings[strings.ToUpper(trimmed)] {
			flush()
			heading := strings.ToUpper(trimmed)
			s := newSection(sectionTypeFor(heading), heading)
			current = &s
			continue
		}
		if current == nil {
			if trimmed != "" && i < headerWindow {
				headerLines = append(headerLines, trimmed)
			}
			continue
		}
		if trimmed == "" {
			current.Content += "<br/>"
			continue
		}
		current.Content += formatContentLine(trimmed)
	}
	flush()

	if len(sections) == 0 {
		s := newSection(TypeGeneric, "Curriculum Vitae")
		s.Content = escapeLines(rawText)
		return Sections{s}
	}
	if len(headerLines) > 0 {
		h := newSection(TypeHeader, "")
		h.Content = escapeLines(strings.Join(headerLines, "\n"))
		sections = append(Sections{h}, sections...)
	}
	return sections
}

func sectionTypeFor(heading string) SectionType {
	switch {
	case strings.Contains(heading, "SUMMARY"):
		return TypeSummary
	case strings.Contains(heading, "EXPERIENCE"):
		return TypeExperience
	case strings.Contains(heading, "PROJECT"):
		return TypeProjects
	case strings.Contains(heading, "EDUCATION"):
		return TypeEducation
	case strings.Contains(heading, "SKILL"):
		return TypeSkills
	default:
		return TypeGeneric
	}
}

// formatContentLine classifies one trimmed, non-empty line and wraps the
// escaped text in markup. Rules are tried in priority order and the first
// match wins.
func formatContentLine(line string) string {
	if rest, ok := splitBullet(line); ok {
		return "<li>" + html.EscapeString(rest) + "</li>"
	}
	if left, right, ok := splitTitleDates(line); ok {
		return `<div style="display:flex;justify-content:space-between;font-weight:bold"><span>` +
			html.EscapeString(left) + `</span> <span>` + html.EscapeString(right) + `</span></div>`
	}
	if isTechStack(line) {
		return `<div style="font-style:italic;font-size:0.85em;color:#555">` +
			html.EscapeString(line) + `</div>`
	}
	if m := categoryLine.FindStringSubmatch(line); m != nil {
		return `<div><b>` + html.EscapeString(m[1]) + `:</b> ` + html.EscapeString(m[2]) + `</div>`
	}
	return html.EscapeString(line) + "<br/>"
}

func splitBullet(line string) (rest string, ok bool) {
	for _, g := range []string{"•", "-", "*"} {
		if strings.HasPrefix(line, g) {
			return strings.TrimSpace(strings.TrimPrefix(line, g)), true
		}
	}
	return "", false
}

func splitTitleDates(line string) (left, right string, ok bool) {
	locs := multiSpace.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return "", "", false
	}
	last := locs[len(locs)-1]
	left = strings.TrimSpace(line[:last[0]])
	right = strings.TrimSpace(line[last[1]:])
	if left == "" || !dateRange.MatchString(right) {
		return "", "", false
	}
	return left, right, true
}

// isTechStack spots comma lists like "Go, Python, TypeScript, SQL" that
// read as a technology enumeration rather than prose.
func isTechStack(line string) bool {
	if len(line) < 5 || len(line) >= 120 {
		return false
	}
	tokens := strings.Split(line, ",")
	if len(tokens) < 3 {
		return false
	}
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			return false
		}
	}
	return !strings.ContainsAny(line[len(line)-1:], ".!?;:")
}

// escapeLines escapes the whole text and turns newlines into line breaks.
func escapeLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(line)
	}
	return strings.Join(lines, "<br/>")
}
