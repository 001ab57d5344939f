package clienttest

import "github.com/colonyops/hrevu/internal/core/review"

// TwoFiles returns a commit review of two files and no comments.
func TwoFiles() review.Review {
	return review.Review{
		InputType: review.InputType{Kind: review.KindCommitDiff, Commit: "abc123"},
		Files: []review.File{
			{
				Path:   "a.go",
				Status: review.StatusModified,
				Lines: []review.Line{
					{Number: 1, Type: review.LineContext, Content: "package a"},
					{Number: 2, Type: review.LineContext, Content: ""},
					{Number: 3, Type: review.LineRemoved, Content: "func old() {}"},
					{Number: 3, Type: review.LineAdded, Content: "func New() {}"},
					{Number: 0, Type: review.LineContext, Content: "@@ -10,3 +10,3 @@"},
					{Number: 5, Type: review.LineAdded, Content: "var x = <b>1</b>"},
				},
			},
			{
				Path:   "b.go",
				Status: review.StatusAdded,
				Lines: []review.Line{
					{Number: 1, Type: review.LineAdded, Content: "package b"},
				},
			},
		},
		Comments: []review.Comment{},
	}
}

// WithComments returns TwoFiles with the given comments attached.
func WithComments(comments ...review.Comment) review.Review {
	r := TwoFiles()
	r.Comments = append(r.Comments, comments...)
	return r
}
