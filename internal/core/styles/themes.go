package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Name       string
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color

	// AddedBg and RemovedBg tint diff rows.
	AddedBg   color.Color
	RemovedBg color.Color

	// ChromaStyle names the syntax highlighting style paired with the palette.
	ChromaStyle string
	// Icon is shown in the header next to the theme toggle.
	Icon string
	// Dark selects glamour's dark or light base style.
	Dark bool
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	// DefaultTheme is the name of the default theme.
	DefaultTheme = ThemeDark
)

var themes = map[string]Palette{
	ThemeDark: {
		Name:        ThemeDark,
		Primary:     lipgloss.Color("#58a6ff"),
		Secondary:   lipgloss.Color("#79c0ff"),
		Foreground:  lipgloss.Color("#c9d1d9"),
		Muted:       lipgloss.Color("#8b949e"),
		Background:  lipgloss.Color("#0d1117"),
		Surface:     lipgloss.Color("#30363d"),
		Success:     lipgloss.Color("#3fb950"),
		Warning:     lipgloss.Color("#d29922"),
		Error:       lipgloss.Color("#f85149"),
		AddedBg:     lipgloss.Color("#12261e"),
		RemovedBg:   lipgloss.Color("#25171c"),
		ChromaStyle: "github-dark",
		Icon:        "🌙",
		Dark:        true,
	},
	ThemeLight: {
		Name:        ThemeLight,
		Primary:     lipgloss.Color("#0969da"),
		Secondary:   lipgloss.Color("#0550ae"),
		Foreground:  lipgloss.Color("#1f2328"),
		Muted:       lipgloss.Color("#656d76"),
		Background:  lipgloss.Color("#ffffff"),
		Surface:     lipgloss.Color("#d0d7de"),
		Success:     lipgloss.Color("#1a7f37"),
		Warning:     lipgloss.Color("#9a6700"),
		Error:       lipgloss.Color("#cf222e"),
		AddedBg:     lipgloss.Color("#dafbe1"),
		RemovedBg:   lipgloss.Color("#ffebe9"),
		ChromaStyle: "github",
		Icon:        "☀️",
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// NextTheme returns the theme a toggle switches to from name.
// Unknown names toggle to the default.
func NextTheme(name string) string {
	if name == ThemeDark {
		return ThemeLight
	}
	if name == ThemeLight {
		return ThemeDark
	}
	return DefaultTheme
}
