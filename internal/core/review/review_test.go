package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestDecode(t *testing.T) {
	payload := `{
		"input_type": {"type": "commit_diff", "commit": "abc123"},
		"files": [
			{"path": "a.go", "status": "modified", "lines": [
				{"number": 1, "content": "package a"},
				{"number": 2, "type": "added", "content": "var x = 1"},
				{"number": 0, "content": "..."}
			]},
			{"path": "b.go", "status": "added", "lines": []}
		],
		"comments": [
			{"id": "c1", "file": "a.go", "line": 2, "text": "why?", "created_at": "2025-01-01T12:00:00Z"},
			{"id": "c2", "text": "overall fine", "created_at": "2025-01-01T12:05:00Z"}
		]
	}`

	r, err := Decode([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, KindCommitDiff, r.InputType.Kind)
	assert.Equal(t, "abc123", r.InputType.Value())
	require.Len(t, r.Files, 2)
	assert.Equal(t, LineContext, r.Files[0].Lines[0].Type)
	assert.Equal(t, LineAdded, r.Files[0].Lines[1].Type)
	assert.True(t, r.Files[0].Lines[2].IsSeparator())

	require.Len(t, r.Comments, 2)
	assert.Equal(t, "a.go:2", r.Comments[0].Location())
	assert.True(t, r.Comments[1].IsGlobal())
	assert.Equal(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), r.Comments[0].CreatedAt)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{"files": [`))
	require.Error(t, err)
}

func TestDecode_WorkingTree(t *testing.T) {
	r, err := Decode([]byte(`{"input_type": {"type": "working_tree_diff"}, "files": [], "comments": []}`))
	require.NoError(t, err)
	assert.Equal(t, KindWorkingTreeDiff, r.InputType.Kind)
	assert.Empty(t, r.InputType.Value())
}

func TestNormalize(t *testing.T) {
	in := Review{
		Files: []File{
			{Path: "", Status: StatusAdded},
			{Path: "a.go", Status: StatusModified, Lines: []Line{{Number: 1, Type: "weird"}}},
			{Path: "a.go", Status: StatusDeleted},
		},
		Comments: []Comment{
			{ID: "", Text: "no id"},
			{ID: "1", Line: intPtr(4), Text: "line without file"},
			{ID: "2", File: strPtr(""), Line: intPtr(4), Text: "empty file"},
			{ID: "3", File: strPtr("a.go"), Line: intPtr(0), Text: "zero line"},
			{ID: "4", File: strPtr("a.go"), Line: intPtr(9), Text: "inline"},
		},
	}

	out := Normalize(in)

	require.Len(t, out.Files, 1)
	assert.Equal(t, StatusModified, out.Files[0].Status)
	assert.Equal(t, LineContext, out.Files[0].Lines[0].Type)

	require.Len(t, out.Comments, 4)
	assert.True(t, out.Comments[0].IsGlobal())
	assert.Nil(t, out.Comments[0].Line)
	assert.True(t, out.Comments[1].IsGlobal())
	assert.Nil(t, out.Comments[1].Line)
	assert.Equal(t, "a.go", out.Comments[2].Location())
	assert.Equal(t, "a.go:9", out.Comments[3].Location())
}

func TestNormalize_LineImpliesFile(t *testing.T) {
	comments := []Comment{
		{ID: "a", Line: intPtr(1)},
		{ID: "b", File: strPtr("x"), Line: intPtr(1)},
		{ID: "c", File: strPtr(""), Line: intPtr(3)},
		{ID: "d"},
	}

	for _, c := range comments {
		got := NormalizeComment(c)
		if got.Line != nil {
			assert.NotEmpty(t, got.FilePath(), "comment %s has a line without a file", c.ID)
		}
	}
}

func TestReview_FindFile(t *testing.T) {
	r := Review{Files: []File{{Path: "a.go"}, {Path: "b.go"}}}

	f, ok := r.FindFile("b.go")
	require.True(t, ok)
	assert.Equal(t, "b.go", f.Path)

	_, ok = r.FindFile("missing.go")
	assert.False(t, ok)
}
