package viewmodel

import (
	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/review"
)

// FileEntry is one row of the file list.
type FileEntry struct {
	Path   string
	Status string
	// Indicator is a one-letter status marker.
	Indicator string
	Comments  int
	Active    bool
}

// FileList is the file navigation panel.
type FileList struct {
	Heading string
	Count   int
	Entries []FileEntry
}

// StatusIndicator returns the one-letter marker for a file status.
func StatusIndicator(status string) string {
	switch status {
	case review.StatusAdded:
		return "A"
	case review.StatusModified:
		return "M"
	case review.StatusDeleted:
		return "D"
	case review.StatusView:
		return "V"
	default:
		return "?"
	}
}

// BuildFileList builds the file list with per-file comment counts.
func BuildFileList(s *app.State, opts Options) FileList {
	counts := s.Comments.CountByFile()

	entries := make([]FileEntry, 0, len(s.Files))
	for _, f := range s.Files {
		entries = append(entries, FileEntry{
			Path:      f.Path,
			Status:    f.Status,
			Indicator: StatusIndicator(f.Status),
			Comments:  counts[f.Path],
			Active:    f.Path == s.CurrentFile,
		})
	}

	return FileList{
		Heading: opts.Loc.T(i18n.Files),
		Count:   len(entries),
		Entries: entries,
	}
}
