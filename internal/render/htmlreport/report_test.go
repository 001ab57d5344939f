package htmlreport

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/hrevu/internal/client/clienttest"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/review"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

var created = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func render(t *testing.T, rev review.Review, opts Options) string {
	t.Helper()
	if opts.Loc == (i18n.Localizer{}) {
		opts.Loc = i18n.New(i18n.English)
	}
	var b strings.Builder
	require.NoError(t, Render(&b, rev, opts))
	return b.String()
}

func TestRender_Structure(t *testing.T) {
	rev := clienttest.WithComments(
		review.Comment{ID: "c1", File: strPtr("a.go"), Line: intPtr(3), Text: "rename this", CreatedAt: created},
		review.Comment{ID: "c2", Text: "overall fine", CreatedAt: created},
	)

	out := render(t, rev, Options{Generated: created})

	assert.Contains(t, out, "<title>Commit: abc123</title>")
	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "2 comments")
	assert.Contains(t, out, "2026-03-01T09:30:00Z")
	assert.Contains(t, out, `id="file-1"`)
	assert.Contains(t, out, `id="file-2"`)
	assert.Contains(t, out, "status-modified")
	assert.Contains(t, out, `<tr class="removed">`)
	assert.Contains(t, out, `<tr class="added">`)
	assert.Contains(t, out, "@@ -10,3 +10,3 @@")
	assert.Contains(t, out, `<span class="badge">1</span>`)
	assert.Contains(t, out, `id="comment-c1"`)
	assert.Contains(t, out, "a.go:3")
	assert.Contains(t, out, "Global comment")
	assert.Contains(t, out, "2026-03-01 09:30")
	assert.Contains(t, out, "<p>rename this</p>")
	assert.Contains(t, out, ".chroma")

	// the thread appears inline and again in the sidebar
	assert.Equal(t, 2, strings.Count(out, `id="comment-c1"`))
}

func TestRender_EscapesUntrustedText(t *testing.T) {
	rev := clienttest.TwoFiles()
	rev.Files[0].Path = "<script>alert(1)</script>.go"
	rev.Comments = []review.Comment{
		{ID: "x", File: strPtr(rev.Files[0].Path), Line: intPtr(1), Text: "**bold** <script>alert(2)</script>"},
	}

	out := render(t, rev, Options{})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;.go")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<b>1</b>", "source lines are escaped")
}

func TestRender_EmptyReview(t *testing.T) {
	out := render(t, review.Review{InputType: review.InputType{Kind: review.KindWorkingTreeDiff}}, Options{})

	assert.Contains(t, out, "<title>Current Changes</title>")
	assert.Contains(t, out, "No comments yet")
	assert.Contains(t, out, "0 comments")
}

func TestRender_ThemeAndLocale(t *testing.T) {
	out := render(t, clienttest.TwoFiles(), Options{Loc: i18n.New(i18n.Chinese), Theme: "light"})

	assert.Contains(t, out, `<html lang="zh">`)
	assert.Contains(t, out, "提交: abc123")
	assert.Contains(t, out, "#ffffff")
}

func TestRenderMarkdown(t *testing.T) {
	assert.Empty(t, renderMarkdown(""))
	assert.Equal(t, "<p>a <em>b</em></p>\n", string(renderMarkdown("a *b*")))
	assert.NotContains(t, string(renderMarkdown(`[x](javascript:alert(1))`)), "javascript:")
}
