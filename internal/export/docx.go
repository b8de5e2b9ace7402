package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"text/template"

	"github.com/lee777maker/Job-Applier-sub000/internal/document"
)

// Static OOXML package parts. The document body is the only generated part.
const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/></Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/></Relationships>`

	// One bullet list definition, referenced by every list-item paragraph.
	numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:abstractNum w:abstractNumId="0"><w:lvl w:ilvl="0"><w:numFmt w:val="bullet"/><w:lvlText w:val="&#8226;"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum><w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num></w:numbering>`

	documentTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>{{range .}}<w:p>{{if .Bullet}}<w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>{{end}}<w:r><w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman"/>{{if .Bold}}<w:b/>{{end}}{{if .Underline}}<w:u w:val="single"/>{{end}}<w:sz w:val="{{.Size}}"/></w:rPr><w:t xml:space="preserve">{{escape .Text}}</w:t></w:r></w:p>{{end}}</w:body></w:document>`
)

var documentTmpl = template.Must(template.New("document").Funcs(template.FuncMap{
	"escape": escapeXML,
}).Parse(documentTemplate))

// paragraph is one rendered document paragraph. Size is in half-points.
type paragraph struct {
	Text      string
	Size      int
	Bold      bool
	Underline bool
	Bullet    bool
}

// ToDocx rebuilds the sections as a word-processor document: the header
// section becomes a bold name paragraph plus contact lines, every other
// section becomes an underlined heading followed by one paragraph per
// content line. Output is deterministic for a given section list.
func ToDocx(sections document.Sections) ([]byte, error) {
	var body strings.Builder
	if err := documentTmpl.Execute(&body, buildParagraphs(sections)); err != nil {
		return nil, &RenderError{Message: "failed to render document body", Cause: err}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name, content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/numbering.xml", numberingXML},
		{"word/document.xml", body.String()},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, &RenderError{Message: "failed to create package part " + part.name, Cause: err}
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, &RenderError{Message: "failed to write package part " + part.name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalize package", Cause: err}
	}
	return buf.Bytes(), nil
}

func buildParagraphs(sections document.Sections) []paragraph {
	var out []paragraph
	for _, sec := range sections {
		lines := document.ContentLines(sec.Content)
		if sec.Type == document.TypeHeader {
			for i, line := range lines {
				if i == 0 {
					out = append(out, paragraph{Text: line, Size: 32, Bold: true})
					continue
				}
				out = append(out, paragraph{Text: line, Size: 20})
			}
			continue
		}
		out = append(out, paragraph{
			Text:      strings.ToUpper(sec.Title),
			Size:      26,
			Bold:      true,
			Underline: true,
		})
		for _, line := range lines {
			if rest, ok := trimBullet(line); ok {
				out = append(out, paragraph{Text: rest, Size: 22, Bullet: true})
				continue
			}
			out = append(out, paragraph{Text: line, Size: 22})
		}
	}
	return out
}

func trimBullet(line string) (string, bool) {
	for _, g := range []string{"•", "-", "*"} {
		if strings.HasPrefix(line, g) {
			return strings.TrimSpace(strings.TrimPrefix(line, g)), true
		}
	}
	return "", false
}

// escapeXML escapes the five XML special characters in text.
func escapeXML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)
	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&apos;")
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
