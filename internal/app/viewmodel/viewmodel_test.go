package viewmodel

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/client/clienttest"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/review"
	"github.com/colonyops/hrevu/internal/core/styles"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

var created = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newState(comments ...review.Comment) *app.State {
	r := clienttest.TwoFiles()
	return &app.State{
		Title:       "Commit: abc123",
		InputType:   r.InputType,
		Files:       r.Files,
		Comments:    review.NewComments(comments),
		CurrentFile: "a.go",
		Theme:       styles.ThemeDark,
		Loaded:      true,
		Deleting:    map[string]bool{},
	}
}

func opts() Options {
	return Options{
		Loc:       i18n.New(i18n.English),
		Highlight: func(content, _ string) string { return "<" + content + ">" },
		Location:  time.UTC,
	}
}

func TestBuildFileList_NoBadgesWithoutComments(t *testing.T) {
	fl := BuildFileList(newState(), opts())

	assert.Equal(t, "Files", fl.Heading)
	assert.Equal(t, 2, fl.Count)
	require.Len(t, fl.Entries, 2)
	assert.True(t, fl.Entries[0].Active)
	assert.False(t, fl.Entries[1].Active)
	for _, e := range fl.Entries {
		assert.Zero(t, e.Comments)
	}
	assert.Equal(t, "M", fl.Entries[0].Indicator)
	assert.Equal(t, "A", fl.Entries[1].Indicator)
}

func TestBuildFileList_CountsByFile(t *testing.T) {
	s := newState(
		review.Comment{ID: "1", File: strPtr("a.go"), Line: intPtr(5), Text: "x"},
		review.Comment{ID: "2", File: strPtr("a.go"), Text: "y"},
		review.Comment{ID: "3", Text: "global"},
	)

	fl := BuildFileList(s, opts())

	assert.Equal(t, 2, fl.Entries[0].Comments)
	assert.Equal(t, 0, fl.Entries[1].Comments)
}

func TestStatusIndicator(t *testing.T) {
	assert.Equal(t, "D", StatusIndicator(review.StatusDeleted))
	assert.Equal(t, "V", StatusIndicator(review.StatusView))
	assert.Equal(t, "?", StatusIndicator("renamed"))
}

func TestBuildDiff_BadgeAndThread(t *testing.T) {
	s := newState(review.Comment{ID: "1", File: strPtr("a.go"), Line: intPtr(5), Text: "fix this", CreatedAt: created})

	d := BuildDiff(s, opts())

	require.True(t, d.Found)
	var line5, thread []Row
	for _, r := range d.Rows {
		if r.Kind == RowLine && r.Number == 5 {
			line5 = append(line5, r)
		}
		if r.Kind == RowComment {
			thread = append(thread, r)
		}
	}
	require.Len(t, line5, 1)
	assert.Equal(t, 1, line5[0].Badge)
	assert.Equal(t, "<var x = <b>1</b>>", line5[0].Rendered)

	require.Len(t, thread, 1)
	assert.Equal(t, "You", thread[0].Comment.Author)
	assert.Equal(t, "2025-01-01 12:00", thread[0].Comment.Time)
	assert.Equal(t, "fix this", thread[0].Comment.Text)
	assert.Equal(t, "1", thread[0].Comment.ID)
}

func TestBuildDiff_Separator(t *testing.T) {
	d := BuildDiff(newState(), opts())

	var seps []Row
	for _, r := range d.Rows {
		if r.Kind == RowSeparator {
			seps = append(seps, r)
		}
	}
	require.Len(t, seps, 1)
	assert.Empty(t, seps[0].Label, "separator has a blank number label")
	assert.False(t, seps[0].Selectable)
}

func TestBuildDiff_SharedLineNumberThreadOnce(t *testing.T) {
	s := newState(review.Comment{ID: "1", File: strPtr("a.go"), Line: intPtr(3), Text: "which one?"})

	d := BuildDiff(s, opts())

	var kinds []RowKind
	for _, r := range d.Rows {
		if r.Number == 3 {
			kinds = append(kinds, r.Kind)
		}
	}
	assert.Equal(t, []RowKind{RowLine, RowLine, RowComment}, kinds)
}

func TestBuildDiff_FileLevelCommentsFirst(t *testing.T) {
	s := newState(review.Comment{ID: "f", File: strPtr("a.go"), Text: "file note"})

	d := BuildDiff(s, opts())

	require.NotEmpty(t, d.Rows)
	assert.Equal(t, RowFileComment, d.Rows[0].Kind)
	assert.Equal(t, "a.go", d.Rows[0].Comment.Location)
}

func TestBuildDiff_FileNotFound(t *testing.T) {
	s := newState()
	s.CurrentFile = "gone.go"

	d := BuildDiff(s, opts())

	assert.False(t, d.Found)
	assert.Equal(t, "File not found", d.Empty)
	assert.Empty(t, d.Rows)
}

func TestBuildDiff_NoSelection(t *testing.T) {
	s := newState()
	s.CurrentFile = ""

	assert.Equal(t, "Select a file", BuildDiff(s, opts()).Empty)
}

func TestBuildDiff_Idempotent(t *testing.T) {
	s := newState(
		review.Comment{ID: "1", File: strPtr("a.go"), Line: intPtr(5), Text: "x", CreatedAt: created},
		review.Comment{ID: "2", File: strPtr("a.go"), Text: "y", CreatedAt: created},
	)

	assert.Equal(t, BuildDiff(s, opts()), BuildDiff(s, opts()))
}

func TestBuildDiff_NoHighlighter(t *testing.T) {
	o := opts()
	o.Highlight = nil

	d := BuildDiff(newState(), o)

	for _, r := range d.Rows {
		assert.Equal(t, r.Content, r.Rendered)
	}
}

func TestBuildSidebar(t *testing.T) {
	s := newState(
		review.Comment{ID: "1", File: strPtr("a.go"), Line: intPtr(5), Text: "line", CreatedAt: created},
		review.Comment{ID: "2", File: strPtr("b.go"), Text: "file", CreatedAt: created},
		review.Comment{ID: "3", Text: "global", CreatedAt: created},
	)

	sb := BuildSidebar(s, opts())

	assert.Equal(t, 3, sb.Count)
	require.Len(t, sb.Entries, 3)
	assert.Equal(t, "a.go:5", sb.Entries[0].Location)
	assert.Equal(t, "b.go", sb.Entries[1].Location)
	assert.Equal(t, "Global comment", sb.Entries[2].Location)
	assert.Empty(t, sb.Empty)
}

func TestBuildSidebar_Empty(t *testing.T) {
	sb := BuildSidebar(newState(), opts())

	assert.Equal(t, 0, sb.Count)
	assert.Equal(t, "No comments yet", sb.Empty)
}

func TestDeleteRemovesExactlyOneEntry(t *testing.T) {
	s := newState(
		review.Comment{ID: "1", File: strPtr("a.go"), Line: intPtr(5), Text: "a"},
		review.Comment{ID: "2", File: strPtr("a.go"), Line: intPtr(5), Text: "b"},
	)
	countThread := func() int {
		n := 0
		for _, r := range BuildDiff(s, opts()).Rows {
			if r.Kind == RowComment && r.Number == 5 {
				n++
			}
		}
		return n
	}

	beforeSidebar, beforeThread := BuildSidebar(s, opts()).Count, countThread()
	require.NoError(t, s.Comments.Remove("1"))

	assert.Equal(t, beforeSidebar-1, BuildSidebar(s, opts()).Count)
	assert.Equal(t, beforeThread-1, countThread())
}

func TestBuildHeader(t *testing.T) {
	s := newState()

	h := BuildHeader(s, opts())
	assert.Equal(t, "Commit: abc123", h.Title)
	assert.Equal(t, "a.go", h.FileName)
	assert.Equal(t, "🌙", h.ThemeIcon)
	assert.Equal(t, "Complete Review", h.CompleteLabel)
	assert.False(t, h.CompleteDisabled)

	s.Theme = styles.ThemeLight
	s.Completed = true
	h = BuildHeader(s, opts())
	assert.Equal(t, "☀️", h.ThemeIcon)
	assert.Equal(t, "✓ Complete", h.CompleteLabel)
	assert.True(t, h.CompleteDisabled)
}

func TestBuildHeader_Loading(t *testing.T) {
	s := &app.State{Loading: true, Comments: review.NewComments(nil)}

	h := BuildHeader(s, opts())

	assert.Equal(t, "Loading...", h.Title)
	assert.Equal(t, "Select a file", h.FileName)
}

func TestBuildModal(t *testing.T) {
	s := newState()
	assert.False(t, BuildModal(s, opts()).Open)

	s.Modal = app.ModalState{Mode: app.ModalCreate, File: "a.go", Line: 5}
	m := BuildModal(s, opts())
	assert.True(t, m.Open)
	assert.Equal(t, "Add Comment", m.Title)
	assert.Equal(t, "a.go:5", m.Context)
	assert.Equal(t, "Add Comment", m.SubmitLabel)

	s.Modal = app.ModalState{Mode: app.ModalEdit, CommentID: "1", Text: "draft"}
	m = BuildModal(s, opts())
	assert.Equal(t, "Update Comment", m.SubmitLabel)
	assert.Equal(t, "Global comment", m.Context)
	assert.Equal(t, "draft", m.Text)
}

func TestChineseLabels(t *testing.T) {
	o := opts()
	o.Loc = i18n.New(i18n.Chinese)
	s := newState(review.Comment{ID: "g", Text: "全局"})

	sb := BuildSidebar(s, o)

	assert.Equal(t, "全局评论", sb.Entries[0].Location)
	assert.True(t, strings.HasPrefix(BuildFileList(s, o).Heading, "文件"))
}
