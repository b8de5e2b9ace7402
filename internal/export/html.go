package export

import (
	"html"
	"strings"
	"text/template"

	"github.com/lee777maker/Job-Applier-sub000/internal/document"
)

// pageTemplate is the A4 print layout shared by the preview and the PDF
// export. Section content is already escaped HTML from the parser, so only
// titles go through the escape function here.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 0; }
  body {
    font-family: "Times New Roman", Times, serif;
    width: 210mm;
    min-height: 297mm;
    margin: 0 auto;
    padding: 12.7mm;
    box-sizing: border-box;
    background: #fff;
    color: #111;
  }
  .header { text-align: center; margin-bottom: 16px; }
  h2 {
    font-size: 14pt;
    text-transform: uppercase;
    letter-spacing: 2px;
    border-bottom: 1px solid #aaa;
    padding-bottom: 2px;
    margin: 14px 0 6px;
  }
  .content { font-size: 11pt; line-height: 1.5; }
  li { margin-left: 18px; }
</style>
</head>
<body>
{{- range . }}
{{- if eq (printf "%s" .Type) "header" }}
<div class="header">{{ .Content }}</div>
{{- else }}
<section>
<h2>{{ escape .Title }}</h2>
<div class="content">{{ .Content }}</div>
</section>
{{- end }}
{{- end }}
</body>
</html>`

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"escape": html.EscapeString,
}).Parse(pageTemplate))

// BuildHTML renders the sections, in list order, into the full A4 preview
// page. The same markup feeds ToPDF so the export matches the preview.
func BuildHTML(sections document.Sections) string {
	var b strings.Builder
	if err := pageTmpl.Execute(&b, sections); err != nil {
		// The template is static and the data is a plain slice, so this
		// only fires on a programming error.
		panic(err)
	}
	return b.String()
}
