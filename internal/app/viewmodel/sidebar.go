package viewmodel

import (
	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/core/i18n"
)

// Sidebar lists every comment in insertion order.
type Sidebar struct {
	Heading     string
	Count       int
	Entries     []CommentItem
	Empty       string
	AddGlobal   string
	EditLabel   string
	DeleteLabel string
}

// BuildSidebar builds the comment sidebar.
func BuildSidebar(s *app.State, opts Options) Sidebar {
	all := s.Comments.All()

	sb := Sidebar{
		Heading:     opts.Loc.T(i18n.Comments),
		Count:       len(all),
		AddGlobal:   opts.Loc.T(i18n.AddGlobalComment),
		EditLabel:   opts.Loc.T(i18n.Edit),
		DeleteLabel: opts.Loc.T(i18n.Delete),
	}
	if len(all) == 0 {
		sb.Empty = opts.Loc.T(i18n.NoCommentsYet)
		return sb
	}

	sb.Entries = make([]CommentItem, 0, len(all))
	for _, c := range all {
		sb.Entries = append(sb.Entries, commentItem(c, opts))
	}
	return sb
}
