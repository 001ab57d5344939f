package review

import "errors"

// ErrCommentNotFound is returned when a comment ID is not in the list.
var ErrCommentNotFound = errors.New("comment not found")

// Comments is the ordered, in-memory list of a review's comments. It mirrors
// the backend after each successful round trip and is the single source of
// truth for rendering between round trips.
type Comments struct {
	items []Comment
}

// NewComments creates a comment list from the given comments.
func NewComments(items []Comment) *Comments {
	c := &Comments{}
	c.Reset(items)
	return c
}

// Reset replaces the whole list.
func (c *Comments) Reset(items []Comment) {
	c.items = make([]Comment, len(items))
	copy(c.items, items)
}

// All returns a copy of the comments in insertion order.
func (c *Comments) All() []Comment {
	out := make([]Comment, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of comments.
func (c *Comments) Len() int {
	return len(c.items)
}

// Get returns the comment with the given ID.
func (c *Comments) Get(id string) (Comment, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Comment{}, false
}

// Append adds a newly created comment at the end of the list.
func (c *Comments) Append(comment Comment) {
	c.items = append(c.items, NormalizeComment(comment))
}

// Replace swaps the stored comment with the same ID for the updated one.
// The stored anchor is kept: an edit only changes text and timestamp.
func (c *Comments) Replace(updated Comment) error {
	for i, item := range c.items {
		if item.ID != updated.ID {
			continue
		}
		updated.File = item.File
		updated.Line = item.Line
		if updated.CreatedAt.IsZero() {
			updated.CreatedAt = item.CreatedAt
		}
		c.items[i] = updated
		return nil
	}
	return ErrCommentNotFound
}

// Remove deletes the comment with the given ID.
func (c *Comments) Remove(id string) error {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}

// CountByFile groups comments by file reference. Global comments are not counted.
func (c *Comments) CountByFile() map[string]int {
	counts := make(map[string]int)
	for _, item := range c.items {
		if file := item.FilePath(); file != "" {
			counts[file]++
		}
	}
	return counts
}

// ByLine groups the line-scoped comments of one file by line number,
// preserving insertion order within each line.
func (c *Comments) ByLine(path string) map[int][]Comment {
	grouped := make(map[int][]Comment)
	for _, item := range c.items {
		if item.FilePath() != path {
			continue
		}
		if line := item.LineNumber(); line > 0 {
			grouped[line] = append(grouped[line], item)
		}
	}
	return grouped
}
