package viewmodel

import (
	"strconv"

	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/review"
)

// RowKind distinguishes diff rows.
type RowKind int

const (
	RowLine RowKind = iota
	RowSeparator
	RowComment
	RowFileComment
)

// Row is one row of the diff panel: a source line, a hunk separator, or a
// comment rendered beneath its line. File-level comments are listed before
// the first line.
type Row struct {
	Kind RowKind

	// Line rows.
	Number     int
	Label      string
	Type       review.LineType
	Content    string
	Rendered   string
	Badge      int
	Selectable bool

	// Comment rows.
	Comment CommentItem
}

// Diff is the diff panel for the current file.
type Diff struct {
	Path  string
	Found bool
	Empty string
	Rows  []Row
}

// BuildDiff builds the diff panel. A missing current file yields an empty
// state instead of rows.
func BuildDiff(s *app.State, opts Options) Diff {
	if s.CurrentFile == "" {
		return Diff{Empty: opts.Loc.T(i18n.SelectFile)}
	}
	f, ok := s.File()
	if !ok {
		return Diff{Path: s.CurrentFile, Empty: opts.Loc.T(i18n.FileNotFound)}
	}
	return Diff{Path: f.Path, Found: true, Rows: buildRows(f, s.Comments, opts)}
}

// BuildFileDiff builds rows for any file of the review, independent of the
// current selection.
func BuildFileDiff(f review.File, comments *review.Comments, opts Options) Diff {
	return Diff{Path: f.Path, Found: true, Rows: buildRows(&f, comments, opts)}
}

func buildRows(f *review.File, comments *review.Comments, opts Options) []Row {
	byLine := comments.ByLine(f.Path)

	var rows []Row
	for _, c := range comments.All() {
		if c.FilePath() == f.Path && c.LineNumber() == 0 {
			rows = append(rows, Row{Kind: RowFileComment, Comment: commentItem(c, opts)})
		}
	}

	// Removed and added variants of a line share a number; the thread is
	// shown once, under the last row carrying that number.
	last := make(map[int]int, len(f.Lines))
	for i, l := range f.Lines {
		if !l.IsSeparator() {
			last[l.Number] = i
		}
	}

	for i, l := range f.Lines {
		if l.IsSeparator() {
			rows = append(rows, Row{
				Kind:     RowSeparator,
				Type:     l.Type,
				Content:  l.Content,
				Rendered: highlight(opts, l.Content, f.Path),
			})
			continue
		}

		thread := byLine[l.Number]
		rows = append(rows, Row{
			Kind:       RowLine,
			Number:     l.Number,
			Label:      strconv.Itoa(l.Number),
			Type:       l.Type,
			Content:    l.Content,
			Rendered:   highlight(opts, l.Content, f.Path),
			Badge:      len(thread),
			Selectable: true,
		})

		if last[l.Number] != i {
			continue
		}
		for _, c := range thread {
			rows = append(rows, Row{Kind: RowComment, Number: l.Number, Comment: commentItem(c, opts)})
		}
	}
	return rows
}

func highlight(opts Options, content, path string) string {
	if opts.Highlight == nil {
		return content
	}
	return opts.Highlight(content, path)
}
