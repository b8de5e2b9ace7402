package document

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockTags are elements whose closing boundary implies a line break when
// converting a fragment back to plain text.
var blockTags = map[string]bool{
	"div": true, "li": true, "p": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// ContentLines converts a section's HTML fragment back into plain text
// lines: markup is removed, <br> and block element boundaries become
// newlines, and empty lines are discarded. Inline edits may introduce
// arbitrary markup, so this never assumes the fragment came from Parse.
func ContentLines(fragment string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			b.WriteString("\n")
			return
		}
		if n.Type == html.ElementNode && n.Data == "li" {
			// Restore the glyph so exporters can tell list items apart.
			b.WriteString("• ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteString("\n")
		}
	}
	for _, node := range doc.Selection.Nodes {
		walk(node)
	}

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// StripHTML flattens a fragment to newline-joined plain text.
func StripHTML(fragment string) string {
	return strings.Join(ContentLines(fragment), "\n")
}
