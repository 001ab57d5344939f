// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/hrevu/internal/core/styles"
)

const helpKeyWidth = 12

// HelpEntry is one key and what it does.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog lists the available keyboard shortcuts.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{title: title, sections: sections}
}

// View renders the dialog box.
func (h *HelpDialog) View() string {
	var lines []string
	for i, section := range h.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.CommandHeaderStyle.Render(section.Title))
			lines = append(lines, styles.DividerStyle.Render(strings.Repeat("─", 25)))
		}
		for _, entry := range section.Entries {
			lines = append(lines, formatKeyDesc(entry.Key, entry.Desc))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(h.title),
		"",
		strings.Join(lines, "\n"),
		styles.ModalHelpStyle.Render("esc/? close"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay centers the dialog over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return Center(background, h.View(), width, height)
}

// Center composites box over background in the middle of the screen.
func Center(background, box string, width, height int) string {
	bgLayer := lipgloss.NewLayer(background)
	boxLayer := lipgloss.NewLayer(box)

	x := max((width-lipgloss.Width(box))/2, 0)
	y := max((height-lipgloss.Height(box))/2, 0)
	boxLayer.X(x).Y(y).Z(1)

	return lipgloss.NewCompositor(bgLayer, boxLayer).Render()
}

func formatKeyDesc(key, desc string) string {
	pad := max(helpKeyWidth-lipgloss.Width(key), 1)
	return styles.HelpKeyStyle.Render(key+strings.Repeat(" ", pad)) + styles.HelpStyle.Render(desc)
}
