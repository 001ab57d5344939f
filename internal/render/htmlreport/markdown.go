package htmlreport

import (
	"bytes"
	"html"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	mdRenderer    = goldmark.New(goldmark.WithExtensions(extension.GFM))
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts a comment body to sanitized HTML. Raw HTML in the
// source is dropped by goldmark and anything else unsafe by bluemonday.
func renderMarkdown(src string) template.HTML {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + html.EscapeString(src) + "</p>") //nolint:gosec // escaped above
	}

	return template.HTML(htmlSanitizer.Sanitize(buf.String())) //nolint:gosec // sanitized above
}
