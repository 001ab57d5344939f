// Package viewmodel maps controller state to declarative view structures.
// Every function is pure: the same state and options produce the same
// models. Text fields hold raw values; each renderer escapes for its output.
package viewmodel

import (
	"time"

	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/review"
	"github.com/colonyops/hrevu/internal/core/styles"
)

// DefaultTimeFormat is used when Options.TimeFormat is empty.
const DefaultTimeFormat = "2006-01-02 15:04"

// HighlightFunc renders one line of source for display. It must return
// output that is safe for the target renderer.
type HighlightFunc func(content, path string) string

// Options controls how view models are built.
type Options struct {
	Loc        i18n.Localizer
	Highlight  HighlightFunc
	TimeFormat string
	Location   *time.Location
}

func (o Options) formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	layout := o.TimeFormat
	if layout == "" {
		layout = DefaultTimeFormat
	}
	if o.Location != nil {
		t = t.In(o.Location)
	}
	return t.Format(layout)
}

// CommentItem is a comment as shown in threads and the sidebar.
type CommentItem struct {
	ID       string
	Author   string
	Location string
	File     string
	Line     int
	Time     string
	Text     string
}

func commentItem(c review.Comment, opts Options) CommentItem {
	location := c.Location()
	if location == "" {
		location = opts.Loc.T(i18n.GlobalCommentLabel)
	}
	return CommentItem{
		ID:       c.ID,
		Author:   opts.Loc.T(i18n.Author),
		Location: location,
		File:     c.FilePath(),
		Line:     c.LineNumber(),
		Time:     opts.formatTime(c.CreatedAt),
		Text:     c.Text,
	}
}

// Header is the title bar.
type Header struct {
	Title            string
	FileName         string
	ThemeIcon        string
	CompleteLabel    string
	CompleteDisabled bool
	Busy             bool
}

// BuildHeader builds the title bar model.
func BuildHeader(s *app.State, opts Options) Header {
	h := Header{
		Title:         s.Title,
		FileName:      s.CurrentFile,
		CompleteLabel: opts.Loc.T(i18n.CompleteReview),
	}
	if !s.Loaded && s.Loading {
		h.Title = opts.Loc.T(i18n.Loading)
	}
	if h.FileName == "" {
		h.FileName = opts.Loc.T(i18n.SelectFile)
	}
	if p, ok := styles.GetPalette(s.Theme); ok {
		h.ThemeIcon = p.Icon
	}
	switch {
	case s.Completed:
		h.CompleteLabel = opts.Loc.T(i18n.Completed)
		h.CompleteDisabled = true
	case s.Completing:
		h.Busy = true
	}
	return h
}

// Modal is the comment editor.
type Modal struct {
	Open        bool
	Mode        app.ModalMode
	Title       string
	Context     string
	Text        string
	SubmitLabel string
	CancelLabel string
	Saving      bool
}

// BuildModal builds the comment editor model.
func BuildModal(s *app.State, opts Options) Modal {
	m := s.Modal
	if !m.IsOpen() {
		return Modal{}
	}

	submit := opts.Loc.T(i18n.AddComment)
	if m.Mode == app.ModalEdit {
		submit = opts.Loc.T(i18n.UpdateComment)
	}

	return Modal{
		Open:        true,
		Mode:        m.Mode,
		Title:       m.Title(opts.Loc),
		Context:     m.Context(opts.Loc),
		Text:        m.Text,
		SubmitLabel: submit,
		CancelLabel: opts.Loc.T(i18n.Cancel),
		Saving:      s.Saving,
	}
}
