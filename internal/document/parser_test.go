package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCV(t *testing.T) {
	raw := "SUMMARY\nBuilt things.\n\nEXPERIENCE\nEngineer: Acme    Jan 2020 - Dec 2021\n• Did X"

	sections := Parse(raw, KindCV)
	require.Len(t, sections, 2)

	summary := sections[0]
	assert.Equal(t, TypeSummary, summary.Type)
	assert.Equal(t, "SUMMARY", summary.Title)
	assert.Contains(t, summary.Content, "Built things.")

	exp := sections[1]
	assert.Equal(t, TypeExperience, exp.Type)
	assert.Contains(t, exp.Content, "justify-content:space-between",
		"title plus aligned dates renders as a left/right row")
	assert.Contains(t, exp.Content, "<span>Engineer: Acme</span>")
	assert.Contains(t, exp.Content, "<span>Jan 2020 - Dec 2021</span>")
	assert.Contains(t, exp.Content, "<li>Did X</li>", "bullet glyph is stripped")
}

func TestParseHeaderBlock(t *testing.T) {
	raw := "Jane Doe\njane@example.com | +39 000 000\nMilan, Italy\n\nSUMMARY\nSeasoned engineer."

	sections := Parse(raw, KindCV)
	require.Len(t, sections, 2)

	header := sections[0]
	assert.Equal(t, TypeHeader, header.Type)
	assert.Empty(t, header.Title)
	assert.Contains(t, header.Content, "Jane Doe")
	assert.Contains(t, header.Content, "jane@example.com")

	assert.Equal(t, TypeSummary, sections[1].Type)
}

func TestParseHeaderWindowIsEightLines(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := 0; i < 10; i++ {
		lines = append(lines, "filler")
	}
	lines = append(lines, "SUMMARY", "text")

	sections := Parse(strings.Join(lines, "\n"), KindCV)
	require.Len(t, sections, 2)
	assert.Equal(t, TypeHeader, sections[0].Type)
	assert.Equal(t, 8, strings.Count(sections[0].Content, "filler"),
		"lines past the header window never join the header")
}

func TestParseSectionTypes(t *testing.T) {
	tests := []struct {
		heading string
		want    SectionType
	}{
		{"SUMMARY", TypeSummary},
		{"PROFESSIONAL EXPERIENCE", TypeExperience},
		{"EXPERIENCE", TypeExperience},
		{"PROJECTS", TypeProjects},
		{"EDUCATION", TypeEducation},
		{"SKILLS", TypeSkills},
		{"LANGUAGES", TypeGeneric},
		{"CERTIFICATIONS", TypeGeneric},
		{"AWARDS", TypeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			sections := Parse(tt.heading+"\ncontent", KindCV)
			require.Len(t, sections, 1)
			assert.Equal(t, tt.want, sections[0].Type)
			assert.Equal(t, tt.heading, sections[0].Title)
		})
	}
}

func TestParseHeadingCaseInsensitive(t *testing.T) {
	sections := Parse("education\nMIT", KindCV)
	require.Len(t, sections, 1)
	assert.Equal(t, TypeEducation, sections[0].Type)
	assert.Equal(t, "EDUCATION", sections[0].Title, "titles are uppercased")
}

func TestParseUnstructuredFallback(t *testing.T) {
	raw := "just some prose\nwithout any headings at all"

	sections := Parse(raw, KindCV)
	require.Len(t, sections, 1)
	assert.Equal(t, TypeGeneric, sections[0].Type)
	assert.Equal(t, "Curriculum Vitae", sections[0].Title)
	assert.Equal(t, "just some prose<br/>without any headings at all", sections[0].Content)
}

func TestParseCoverLetter(t *testing.T) {
	raw := "Dear Hiring Manager,\n\nI am <very> interested & qualified."

	sections := Parse(raw, KindCoverLetter)
	require.Len(t, sections, 1)
	assert.Equal(t, TypeGeneric, sections[0].Type)
	assert.Equal(t, "Cover Letter", sections[0].Title)
	assert.Contains(t, sections[0].Content, "&lt;very&gt; interested &amp; qualified")
	assert.Contains(t, sections[0].Content, "<br/>")
}

func TestParseEscapesBeforeWrapping(t *testing.T) {
	sections := Parse("SKILLS\n• C<C++>", KindCV)
	require.Len(t, sections, 1)
	assert.Equal(t, "<li>C&lt;C++&gt;</li>", sections[0].Content)
}

func TestFormatContentLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "bullet with dot glyph",
			line: "• Shipped the thing",
			want: "<li>Shipped the thing</li>",
		},
		{
			name: "bullet with dash glyph",
			line: "- Shipped the thing",
			want: "<li>Shipped the thing</li>",
		},
		{
			name: "bullet with star glyph",
			line: "* Shipped the thing",
			want: "<li>Shipped the thing</li>",
		},
		{
			name: "category grouping",
			line: "Programming Languages: Python, Java",
			want: "<div><b>Programming Languages:</b> Python, Java</div>",
		},
		{
			name: "plain prose",
			line: "Led a small team.",
			want: "Led a small team.<br/>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatContentLine(tt.line))
		})
	}
}

func TestTitleDateRows(t *testing.T) {
	matches := []string{
		"Software Engineer, Acme  Jul 2025",
		"Engineer: Acme    Jan 2020 - Dec 2021",
		"Founder  2020 - 2023",
		"Backend Lead  Jul 2025 - Present",
		"Researcher  Sep 2018 to Jun 2019",
		"Intern  2019 – 2020",
		"Analyst  March 2021 - Current",
	}
	for _, line := range matches {
		got := formatContentLine(line)
		assert.Contains(t, got, "justify-content:space-between", "line %q", line)
	}

	nonMatches := []string{
		"Engineer at Acme since 2020",            // no double space
		"Notes  see appendix",                    // right side is not a date
		"  Jul 2025",                             // empty left run
		"Worked on projects.  Then left in May.", // prose on the right
	}
	for _, line := range nonMatches {
		got := formatContentLine(line)
		assert.NotContains(t, got, "justify-content:space-between", "line %q", line)
	}
}

func TestTechStackLines(t *testing.T) {
	matches := []string{
		"Go, Python, TypeScript, SQL",
		"React, Node, Postgres",
	}
	for _, line := range matches {
		assert.True(t, isTechStack(line), "line %q", line)
	}

	nonMatches := []string{
		"a, b",                                // too short
		"Go, SQL",                             // only two tokens
		"Built APIs, ran ops, led.",           // terminal punctuation
		strings.Repeat("Go, ", 40) + "Python", // over length cap
	}
	for _, line := range nonMatches {
		assert.False(t, isTechStack(line), "line %q", line)
	}
}

func TestParseBlankLinesKeptAsBreaks(t *testing.T) {
	sections := Parse("SUMMARY\nfirst\n\nsecond", KindCV)
	require.Len(t, sections, 1)
	assert.Equal(t, "first<br/><br/>second<br/>", sections[0].Content)
}
