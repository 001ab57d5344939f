package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/styles"
	"github.com/colonyops/hrevu/internal/tui/components"
)

// KeyMap holds every binding of the review screen. Help text is localized
// when the map is built.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Top           key.Binding
	Bottom        key.Binding
	NextPanel     key.Binding
	Open          key.Binding
	Comment       key.Binding
	FileComment   key.Binding
	GlobalComment key.Binding
	Edit          key.Binding
	Delete        key.Binding
	Complete      key.Binding
	ToggleSidebar key.Binding
	ToggleTheme   key.Binding
	Dismiss       key.Binding
	Help          key.Binding
	Quit          key.Binding

	// Comment editor.
	Submit  key.Binding
	Newline key.Binding
	Cancel  key.Binding
}

// NewKeyMap builds the default bindings with help text in the given locale.
func NewKeyMap(loc i18n.Localizer) KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", loc.T(i18n.Navigate))),
		Down:          key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", loc.T(i18n.Navigate))),
		Top:           key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", loc.T(i18n.Navigate))),
		Bottom:        key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", loc.T(i18n.Navigate))),
		NextPanel:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", loc.T(i18n.SwitchPanel))),
		Open:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", loc.T(i18n.Open))),
		Comment:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", loc.T(i18n.AddComment))),
		FileComment:   key.NewBinding(key.WithKeys("F"), key.WithHelp("F", loc.T(i18n.FileComment))),
		GlobalComment: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", loc.T(i18n.GlobalComment))),
		Edit:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", loc.T(i18n.Edit))),
		Delete:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", loc.T(i18n.Delete))),
		Complete:      key.NewBinding(key.WithKeys("C"), key.WithHelp("C", loc.T(i18n.CompleteReview))),
		ToggleSidebar: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", loc.T(i18n.ToggleSidebar))),
		ToggleTheme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", loc.T(i18n.ToggleTheme))),
		Dismiss:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", loc.T(i18n.Dismiss))),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", loc.T(i18n.Help))),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", loc.T(i18n.Quit))),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", loc.T(i18n.Submit))),
		Newline: key.NewBinding(key.WithKeys("ctrl+j", "alt+enter"), key.WithHelp("ctrl+j", loc.T(i18n.Newline))),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", loc.T(i18n.Cancel))),
	}
}

// ShortHelp returns the footer bindings for the focused panel.
func (k KeyMap) ShortHelp(f Focus) []key.Binding {
	switch f {
	case FocusDiff:
		return []key.Binding{k.Down, k.Comment, k.Edit, k.Delete, k.NextPanel, k.Complete, k.Help, k.Quit}
	case FocusSidebar:
		return []key.Binding{k.Down, k.Open, k.GlobalComment, k.Edit, k.Delete, k.NextPanel, k.Help, k.Quit}
	default:
		return []key.Binding{k.Down, k.Open, k.NextPanel, k.ToggleSidebar, k.ToggleTheme, k.Help, k.Quit}
	}
}

// EditorHelp returns the footer bindings while the comment editor is open.
func (k KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Newline, k.Cancel}
}

// HelpSections groups all bindings for the help dialog.
func (k KeyMap) HelpSections(loc i18n.Localizer) []components.HelpDialogSection {
	entries := func(bindings ...key.Binding) []components.HelpEntry {
		out := make([]components.HelpEntry, 0, len(bindings))
		for _, b := range bindings {
			h := b.Help()
			out = append(out, components.HelpEntry{Key: h.Key, Desc: h.Desc})
		}
		return out
	}

	return []components.HelpDialogSection{
		{
			Title:   loc.T(i18n.Navigate),
			Entries: entries(k.Up, k.Down, k.Top, k.Bottom, k.NextPanel, k.Open),
		},
		{
			Title:   loc.T(i18n.Comments),
			Entries: entries(k.Comment, k.FileComment, k.GlobalComment, k.Edit, k.Delete),
		},
		{
			Title:   loc.T(i18n.AddComment),
			Entries: entries(k.Submit, k.Newline, k.Cancel),
		},
		{
			Title:   loc.T(i18n.Keybindings),
			Entries: entries(k.Complete, k.ToggleSidebar, k.ToggleTheme, k.Dismiss, k.Help, k.Quit),
		},
	}
}

// newHelp returns a short-help renderer styled with the active theme.
func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.Ellipsis = styles.HelpStyle
	return h
}
