package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/hrevu/internal/core/notify"
	"github.com/colonyops/hrevu/internal/core/styles"
	"github.com/colonyops/hrevu/internal/highlight"
)

// toastTop is the first screen row below the header.
const toastTop = 2

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView draws the toast stack in the top-right corner of the screen.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the active toasts, oldest first.
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	boxes := make([]string, len(toasts))
	for i, t := range toasts {
		boxes[i] = renderToast(t.notification)
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

// toastLook picks icon and style for a level. Styles are resolved on every
// call because a theme switch replaces them.
func toastLook(level notify.Level) (string, lipgloss.Style) {
	switch level {
	case notify.LevelSuccess:
		return styles.IconNotifySuccess, styles.ToastSuccessStyle
	case notify.LevelWarning:
		return styles.IconNotifyWarning, styles.ToastWarningStyle
	case notify.LevelError:
		return styles.IconNotifyError, styles.ToastErrorStyle
	default:
		return styles.IconNotifyInfo, styles.ToastInfoStyle
	}
}

func renderToast(n notify.Notification) string {
	icon, style := toastLook(n.Level)

	text := highlight.TerminalLine(n.Message)
	inner := toastWidth - style.GetHorizontalFrameSize() - lipgloss.Width(icon) - 1
	lines := strings.Split(ansi.Wordwrap(text, max(inner, 1), " "), "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", lipgloss.Width(icon)+1) + lines[i]
	}

	return style.Width(toastWidth).Render(icon + " " + strings.Join(lines, "\n"))
}

// Overlay places the toast stack over background, right aligned below the
// header. Toasts that would not fit the screen are clipped by the compositor.
func (v *ToastView) Overlay(background string, width, height int) string {
	stack := v.View()
	if stack == "" {
		return background
	}

	x := max(width-lipgloss.Width(stack)-1, 0)
	y := min(toastTop, max(height-1, 0))

	return lipgloss.NewCompositor(
		lipgloss.NewLayer(background),
		lipgloss.NewLayer(stack).X(x).Y(y).Z(2),
	).Render()
}
