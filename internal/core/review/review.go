// Package review defines the data model of a code review as served by the
// review backend: the input descriptor, files with their diff lines, and the
// reviewer's comments.
package review

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies what a review is about.
type Kind string

const (
	KindCommitDiff      Kind = "commit_diff"
	KindFileContent     Kind = "file_content"
	KindWorkingTreeDiff Kind = "working_tree_diff"
)

// InputType describes the subject of a review. Commit is set for commit
// diffs, Path for file content reviews; working tree diffs carry neither.
//
// The wire format is internally tagged: {"type":"commit_diff","commit":"abc"}.
type InputType struct {
	Kind   Kind   `json:"type"`
	Commit string `json:"commit,omitempty"`
	Path   string `json:"path,omitempty"`
}

// Value returns the identifying value for the input kind.
func (it InputType) Value() string {
	switch it.Kind {
	case KindCommitDiff:
		return it.Commit
	case KindFileContent:
		return it.Path
	default:
		return ""
	}
}

// File statuses reported by the backend.
const (
	StatusAdded    = "added"
	StatusModified = "modified"
	StatusDeleted  = "deleted"
	StatusView     = "view"
)

// LineType is the change classification of a diff line.
type LineType string

const (
	LineAdded   LineType = "added"
	LineRemoved LineType = "removed"
	LineContext LineType = "context"
)

// Line is a single row of a file's diff or content.
type Line struct {
	Number  int      `json:"number"`
	Type    LineType `json:"type,omitempty"`
	Content string   `json:"content"`
}

// IsSeparator reports whether the line is a hunk separator rather than a
// real, commentable line.
func (l Line) IsSeparator() bool {
	return l.Number <= 0
}

// File is one file of the review, keyed by Path.
type File struct {
	Path   string `json:"path"`
	Status string `json:"status"`
	Lines  []Line `json:"lines"`
}

// Comment is reviewer feedback. A comment without a file is global, a
// comment with a file but no line applies to the whole file.
type Comment struct {
	ID        string    `json:"id"`
	File      *string   `json:"file,omitempty"`
	Line      *int      `json:"line,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// FilePath returns the referenced file path or "" for global comments.
func (c Comment) FilePath() string {
	if c.File == nil {
		return ""
	}
	return *c.File
}

// LineNumber returns the referenced line or 0 when the comment is not line scoped.
func (c Comment) LineNumber() int {
	if c.Line == nil {
		return 0
	}
	return *c.Line
}

// IsGlobal reports whether the comment has no file reference.
func (c Comment) IsGlobal() bool {
	return c.FilePath() == ""
}

// Location formats the comment's anchor as "file:line", "file", or "" for
// global comments. Callers substitute a localized label for the empty case.
func (c Comment) Location() string {
	file := c.FilePath()
	if file == "" {
		return ""
	}
	if line := c.LineNumber(); line > 0 {
		return fmt.Sprintf("%s:%d", file, line)
	}
	return file
}

// Review is the full payload of GET /api/data.
type Review struct {
	InputType InputType `json:"input_type"`
	Files     []File    `json:"files"`
	Comments  []Comment `json:"comments"`
}

// FindFile returns the file with the given path.
func (r *Review) FindFile(path string) (*File, bool) {
	for i := range r.Files {
		if r.Files[i].Path == path {
			return &r.Files[i], true
		}
	}
	return nil, false
}

// Decode parses a review payload and normalizes it.
func Decode(data []byte) (Review, error) {
	var r Review
	if err := json.Unmarshal(data, &r); err != nil {
		return Review{}, fmt.Errorf("decode review: %w", err)
	}
	return Normalize(r), nil
}

// Normalize enforces the model invariants on data received from the backend.
//
//   - files with an empty path are dropped, duplicate paths keep the first entry
//   - missing or unknown line types become context
//   - comments without an ID are dropped
//   - see [NormalizeComment] for comment anchoring rules
func Normalize(r Review) Review {
	out := Review{InputType: r.InputType}

	seen := make(map[string]bool, len(r.Files))
	for _, f := range r.Files {
		if f.Path == "" || seen[f.Path] {
			continue
		}
		seen[f.Path] = true

		lines := make([]Line, len(f.Lines))
		for i, l := range f.Lines {
			switch l.Type {
			case LineAdded, LineRemoved, LineContext:
			default:
				l.Type = LineContext
			}
			lines[i] = l
		}
		f.Lines = lines
		out.Files = append(out.Files, f)
	}

	for _, c := range r.Comments {
		if c.ID == "" {
			continue
		}
		out.Comments = append(out.Comments, NormalizeComment(c))
	}

	return out
}

// NormalizeComment fixes a comment's anchor so that a line reference always
// comes with a file. A line without a file is demoted to a global comment,
// an empty file path is treated as global, and a non-positive line is dropped.
func NormalizeComment(c Comment) Comment {
	if c.File != nil && *c.File == "" {
		c.File = nil
	}
	if c.Line != nil && (*c.Line <= 0 || c.File == nil) {
		c.Line = nil
	}
	return c
}
