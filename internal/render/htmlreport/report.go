// Package htmlreport renders a review as a standalone HTML page: every file's
// diff with inline comment threads, followed by the comment list.
package htmlreport

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"image/color"
	"io"
	"time"

	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/app/viewmodel"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/review"
	"github.com/colonyops/hrevu/internal/core/styles"
	"github.com/colonyops/hrevu/internal/highlight"
)

//go:embed report.html.tmpl
var reportTemplate string

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Options configures the report.
type Options struct {
	Loc        i18n.Localizer
	Theme      string
	TimeFormat string
	// Generated is printed in the header when set.
	Generated time.Time
}

type colors struct {
	Background, Surface, Text, Muted, Border, Accent template.CSS
	Added, Modified, Removed, AddedBg, RemovedBg     template.CSS
}

type comment struct {
	ID       string
	Author   string
	Location string
	Time     string
	Body     template.HTML
}

type row struct {
	Kind    string
	Class   string
	Label   string
	Sign    string
	Code    template.HTML
	Text    string
	Badge   int
	Comment comment
}

type fileSection struct {
	Path      string
	Anchor    string
	Status    string
	Indicator string
	Rows      []row
}

type sidebar struct {
	Heading string
	Count   int
	Empty   string
	Entries []comment
}

type page struct {
	Lang         string
	Title        string
	CommentCount string
	Generated    string
	CSS          template.CSS
	Colors       colors
	Files        []fileSection
	Sidebar      sidebar
}

// Render writes the HTML report for rev to w.
func Render(w io.Writer, rev review.Review, opts Options) error {
	rev = review.Normalize(rev)

	palette, ok := styles.GetPalette(opts.Theme)
	if !ok {
		palette, _ = styles.GetPalette(styles.DefaultTheme)
	}

	hl := highlight.New(palette.ChromaStyle)
	var css bytes.Buffer
	if err := hl.WriteCSS(&css); err != nil {
		return fmt.Errorf("write highlight css: %w", err)
	}

	vm := viewmodel.Options{
		Loc:        opts.Loc,
		Highlight:  hl.HTML,
		TimeFormat: opts.TimeFormat,
	}
	state := &app.State{
		Title:     opts.Loc.Title(rev.InputType),
		InputType: rev.InputType,
		Files:     rev.Files,
		Comments:  review.NewComments(rev.Comments),
		Theme:     palette.Name,
	}

	p := page{
		Lang:         string(opts.Loc.Lang()),
		Title:        state.Title,
		CommentCount: opts.Loc.T(i18n.CommentCount, state.Comments.Len()),
		CSS:          template.CSS(css.String()), //nolint:gosec // generated by chroma
		Colors:       paletteColors(palette),
		Sidebar:      buildSidebar(viewmodel.BuildSidebar(state, vm)),
	}
	if !opts.Generated.IsZero() {
		p.Generated = opts.Generated.Format(time.RFC3339)
	}

	files := viewmodel.BuildFileList(state, vm)
	for i, f := range state.Files {
		entry := files.Entries[i]
		p.Files = append(p.Files, fileSection{
			Path:      f.Path,
			Anchor:    fmt.Sprintf("file-%d", i+1),
			Status:    entry.Status,
			Indicator: entry.Indicator,
			Rows:      buildRows(viewmodel.BuildFileDiff(f, state.Comments, vm)),
		})
	}

	if err := tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func buildRows(d viewmodel.Diff) []row {
	rows := make([]row, 0, len(d.Rows))
	for _, r := range d.Rows {
		switch r.Kind {
		case viewmodel.RowSeparator:
			rows = append(rows, row{Kind: "separator", Text: r.Content})
		case viewmodel.RowComment, viewmodel.RowFileComment:
			rows = append(rows, row{Kind: "comment", Comment: toComment(r.Comment)})
		default:
			class, sign := lineClass(r.Type)
			rows = append(rows, row{
				Kind:  "line",
				Class: class,
				Label: r.Label,
				Sign:  sign,
				Code:  template.HTML(r.Rendered), //nolint:gosec // highlighter output is sanitized
				Badge: r.Badge,
			})
		}
	}
	return rows
}

func buildSidebar(sb viewmodel.Sidebar) sidebar {
	out := sidebar{Heading: sb.Heading, Count: sb.Count, Empty: sb.Empty}
	for _, c := range sb.Entries {
		out.Entries = append(out.Entries, toComment(c))
	}
	return out
}

func toComment(c viewmodel.CommentItem) comment {
	return comment{
		ID:       c.ID,
		Author:   c.Author,
		Location: c.Location,
		Time:     c.Time,
		Body:     renderMarkdown(c.Text),
	}
}

func lineClass(t review.LineType) (class, sign string) {
	switch t {
	case review.LineAdded:
		return "added", "+"
	case review.LineRemoved:
		return "removed", "-"
	default:
		return "context", ""
	}
}

func paletteColors(p styles.Palette) colors {
	hex := func(c color.Color) template.CSS {
		return template.CSS(styles.Hex(c)) //nolint:gosec // "#rrggbb" only
	}
	return colors{
		Background: hex(p.Background),
		Surface:    hex(p.Surface),
		Text:       hex(p.Foreground),
		Muted:      hex(p.Muted),
		Border:     hex(p.Surface),
		Accent:     hex(p.Primary),
		Added:      hex(p.Success),
		Modified:   hex(p.Warning),
		Removed:    hex(p.Error),
		AddedBg:    hex(p.AddedBg),
		RemovedBg:  hex(p.RemovedBg),
	}
}
