package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderMarkdown produces the improved SRS document as markdown.
func RenderMarkdown(doc Document) string {
	var b strings.Builder

	b.WriteString("# Improved SRS Document\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", doc.GeneratedAt.Format("January 2, 2006 at 3:04 PM"))
	fmt.Fprintf(&b, "- Total requirements: %d\n", len(doc.Requirements))
	fmt.Fprintf(&b, "- Clarifications provided: %d\n\n", len(doc.Clarifications))

	if len(doc.Clarifications) > 0 {
		b.WriteString("## User-Provided Clarifications\n\n")
		b.WriteString("| Term | Clarification |\n|------|---------------|\n")
		for _, c := range doc.Clarifications {
			fmt.Fprintf(&b, "| %s | %s |\n", c.Term, c.Value)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Improved Requirements\n\n")
	for i, req := range doc.Requirements {
		fmt.Fprintf(&b, "### Requirement %d — %s\n\n", i+1, req.Category)
		fmt.Fprintf(&b, "**Before:** %s\n\n", req.Original)
		if req.Changed() {
			fmt.Fprintf(&b, "**After:** %s\n\n", req.Improved)
		} else {
			b.WriteString("**Status:** No ambiguities detected — requirement is clear\n\n")
		}
	}

	return b.String()
}

// RenderHTML converts the markdown rendering to a standalone HTML page.
func RenderHTML(doc Document) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(doc)), &body); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Improved SRS Document</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
