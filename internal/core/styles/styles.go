// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	// Header.
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
	HeaderMetaStyle  lipgloss.Style

	// Panels.
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	EmptyStateStyle   lipgloss.Style

	// File list.
	FileActiveStyle  lipgloss.Style
	FileNormalStyle  lipgloss.Style
	FileCursorStyle  lipgloss.Style
	BadgeStyle       lipgloss.Style
	StatusAddStyle   lipgloss.Style
	StatusModStyle   lipgloss.Style
	StatusDelStyle   lipgloss.Style
	StatusViewStyle  lipgloss.Style
	StatusOtherStyle lipgloss.Style

	// Diff rows.
	LineNumberStyle  lipgloss.Style
	LineAddedStyle   lipgloss.Style
	LineRemovedStyle lipgloss.Style
	LineContextStyle lipgloss.Style
	SeparatorStyle   lipgloss.Style
	CursorStyle      lipgloss.Style

	// Comments.
	CommentBoxStyle    lipgloss.Style
	CommentAuthorStyle lipgloss.Style
	CommentMetaStyle   lipgloss.Style
	CommentTextStyle   lipgloss.Style
	CommentActionStyle lipgloss.Style

	// Modal.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	// Buttons and help.
	ButtonStyle         lipgloss.Style
	ButtonDisabledStyle lipgloss.Style
	HelpStyle           lipgloss.Style
	HelpKeyStyle        lipgloss.Style

	// Toasts.
	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	HeaderStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(ColorSurface)
	HeaderTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HeaderMetaStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface)
	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary)
	PanelTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	FileActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FileNormalStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	FileCursorStyle = lipgloss.NewStyle().
		Background(ColorSurface)
	BadgeStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Padding(0, 1)
	StatusAddStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StatusModStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StatusDelStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StatusViewStyle = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	StatusOtherStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	LineNumberStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Align(lipgloss.Right)
	LineAddedStyle = lipgloss.NewStyle().Background(p.AddedBg)
	LineRemovedStyle = lipgloss.NewStyle().Background(p.RemovedBg)
	LineContextStyle = lipgloss.NewStyle()
	SeparatorStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Faint(true)
	CursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	CommentBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	CommentAuthorStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	CommentMetaStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	CommentTextStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	CommentActionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSuccess).
		Foreground(ColorBackground).
		Bold(true)
	ButtonDisabledStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary).Foreground(ColorForeground)
	ToastSuccessStyle = toastBase.BorderForeground(ColorSuccess).Foreground(ColorForeground)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning).Foreground(ColorForeground)
	ToastErrorStyle = toastBase.BorderForeground(ColorError).Foreground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// Hex formats c as "#rrggbb", or "" when c is unset.
func Hex(c color.Color) string {
	if p := colorHexPtr(c); p != nil {
		return *p
	}
	return ""
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.LightStyleConfig
	if CurrentPalette.Dark {
		cfg = glamourstyles.DarkStyleConfig
	}

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H2.Color = primary
	cfg.H3.Color = secondary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted
	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
