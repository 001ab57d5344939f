package tui

const unknownFocus = "unknown"

// Focus identifies the panel that receives navigation keys.
type Focus int

const (
	FocusFiles Focus = iota
	FocusDiff
	FocusSidebar
)

// String returns the lowercase panel name.
func (f Focus) String() string {
	switch f {
	case FocusFiles:
		return "files"
	case FocusDiff:
		return "diff"
	case FocusSidebar:
		return "sidebar"
	default:
		return unknownFocus
	}
}

// next cycles focus, skipping the sidebar when it is hidden.
func (f Focus) next(sidebar bool) Focus {
	switch f {
	case FocusFiles:
		return FocusDiff
	case FocusDiff:
		if sidebar {
			return FocusSidebar
		}
		return FocusFiles
	default:
		return FocusFiles
	}
}
