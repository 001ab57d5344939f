// Package summary prints the review outcome once the reviewer completes it:
// comments grouped by file with a few lines of source context each.
package summary

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/review"
	"github.com/colonyops/hrevu/internal/core/styles"
	"github.com/colonyops/hrevu/internal/highlight"
)

// contextLines is how many lines before the commented line are shown.
const contextLines = 3

const defaultWidth = 80

// ContextLine is a source line shown with a comment.
type ContextLine struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
	// Target marks the commented line itself.
	Target bool `json:"target,omitempty"`
}

// Item is one comment of the summary.
type Item struct {
	ID        string        `json:"id"`
	File      string        `json:"file,omitempty"`
	Line      int           `json:"line,omitempty"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"created_at"`
	Context   []ContextLine `json:"context,omitempty"`
}

// Group collects the comments on one file. File is empty for global comments.
type Group struct {
	File     string `json:"file,omitempty"`
	Comments []Item `json:"comments"`
}

// Summary is the completed review.
type Summary struct {
	Title  string  `json:"title"`
	Count  int     `json:"comment_count"`
	Groups []Group `json:"groups"`
}

// Build groups the review's comments. Global comments come first, then files
// in the order their first comment was made.
func Build(rev review.Review, loc i18n.Localizer) Summary {
	rev = review.Normalize(rev)

	s := Summary{
		Title: loc.Title(rev.InputType),
		Count: len(rev.Comments),
	}

	index := map[string]int{}
	global := Group{}
	for _, c := range rev.Comments {
		item := Item{
			ID:        c.ID,
			File:      c.FilePath(),
			Line:      c.LineNumber(),
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}
		if item.File == "" {
			global.Comments = append(global.Comments, item)
			continue
		}
		if f, ok := rev.FindFile(item.File); ok && item.Line > 0 {
			item.Context = sourceContext(f, item.Line)
		}

		i, ok := index[item.File]
		if !ok {
			i = len(s.Groups)
			index[item.File] = i
			s.Groups = append(s.Groups, Group{File: item.File})
		}
		s.Groups[i].Comments = append(s.Groups[i].Comments, item)
	}

	if len(global.Comments) > 0 {
		s.Groups = append([]Group{global}, s.Groups...)
	}
	return s
}

// sourceContext returns up to contextLines lines before line plus the line
// itself. When a number appears twice (removed and added) the later row wins.
// Blank lines are skipped.
func sourceContext(f *review.File, line int) []ContextLine {
	byNumber := make(map[int]string, len(f.Lines))
	for _, l := range f.Lines {
		if !l.IsSeparator() {
			byNumber[l.Number] = l.Content
		}
	}

	var out []ContextLine
	for n := max(line-contextLines, 1); n <= line; n++ {
		content, ok := byNumber[n]
		if !ok {
			continue
		}
		content = strings.TrimSpace(highlight.TerminalLine(content))
		if content == "" {
			continue
		}
		out = append(out, ContextLine{Number: n, Content: content, Target: n == line})
	}
	return out
}

// Markdown renders the summary as a markdown document. Times are relative to now.
func Markdown(s Summary, loc i18n.Localizer, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 📋 %s\n\n", loc.T(i18n.ReviewSummary))
	fmt.Fprintf(&b, "**%s** · %s\n", escape(s.Title), loc.T(i18n.CommentCount, s.Count))

	if s.Count == 0 {
		fmt.Fprintf(&b, "\n_%s_\n", loc.T(i18n.NoCommentsYet))
		return b.String()
	}

	for _, g := range s.Groups {
		if g.File == "" {
			fmt.Fprintf(&b, "\n## 💬 %s\n\n", loc.T(i18n.GlobalComment))
		} else {
			fmt.Fprintf(&b, "\n## 📄 `%s`\n\n", strings.ReplaceAll(g.File, "`", "'"))
		}

		for _, item := range g.Comments {
			writeItem(&b, item, loc, now)
		}
	}
	return b.String()
}

func writeItem(b *strings.Builder, item Item, loc i18n.Localizer, now time.Time) {
	b.WriteString("- ")
	if item.Line > 0 {
		fmt.Fprintf(b, "**%s %d:** ", loc.T(i18n.Line), item.Line)
	}

	lines := strings.Split(highlight.Terminal(item.Text), "\n")
	b.WriteString(escape(lines[0]))
	for _, l := range lines[1:] {
		b.WriteString("  \n  ")
		b.WriteString(escape(l))
	}
	if !item.CreatedAt.IsZero() {
		fmt.Fprintf(b, " · _%s_", humanize.RelTime(item.CreatedAt, now, "ago", "from now"))
	}
	b.WriteString("\n")

	if len(item.Context) == 0 {
		return
	}

	width := 0
	for _, c := range item.Context {
		width = max(width, len(fmt.Sprint(c.Number)))
	}
	b.WriteString("\n  ```\n")
	for _, c := range item.Context {
		marker := "│"
		if c.Target {
			marker = "▸"
		}
		fmt.Fprintf(b, "  %*d %s %s\n", width, c.Number, marker, strings.ReplaceAll(c.Content, "```", "'''"))
	}
	b.WriteString("  ```\n\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "#", `\#`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// Options controls Write.
type Options struct {
	Loc i18n.Localizer
	Now time.Time
	// Plain disables glamour styling even on a terminal.
	Plain bool
	// Width is the wrap width for styled output. Zero asks the terminal.
	Width int
}

// Write prints the summary. Styled output is used only when w is a terminal.
func Write(w io.Writer, s Summary, opts Options) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	md := Markdown(s, opts.Loc, now)

	out := md
	if width, ok := terminalWidth(w); ok && !opts.Plain {
		if opts.Width > 0 {
			width = opts.Width
		}
		out = style(md, width)
	}

	_, err := io.WriteString(w, out)
	return err
}

func style(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, printing raw summary")
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render summary markdown, printing raw summary")
		return md
	}
	return rendered
}

func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth, true
	}
	return width, true
}
