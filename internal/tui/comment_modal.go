package tui

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/app/viewmodel"
	"github.com/colonyops/hrevu/internal/core/styles"
	"github.com/colonyops/hrevu/internal/highlight"
)

const (
	commentModalMaxWidth = 72
	commentModalHeight   = 6
)

// CommentModal is the comment editor. It is opened and closed by the
// controller's modal state; the model only forwards keys to it.
type CommentModal struct {
	textarea textarea.Model
	keys     KeyMap
	// anchor identifies which modal state the editor was opened for.
	anchor app.ModalState
	open   bool
}

// NewCommentModal creates a closed editor.
func NewCommentModal(keys KeyMap) CommentModal {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetKeys(keys.Newline.Keys()...)
	ta.SetHeight(commentModalHeight)

	return CommentModal{textarea: ta, keys: keys}
}

// Sync opens, reopens or closes the editor to match the controller state.
// Text typed into an already open editor survives a failed save.
func (c *CommentModal) Sync(state app.ModalState, width int) tea.Cmd {
	if !state.IsOpen() {
		if c.open {
			c.open = false
			c.anchor = app.ModalState{}
			c.textarea.Blur()
			c.textarea.Reset()
		}
		return nil
	}

	anchor := state
	anchor.Text = ""
	if c.open && c.anchor == anchor {
		return nil
	}

	c.open = true
	c.anchor = anchor
	c.textarea.SetWidth(c.innerWidth(width))
	c.textarea.SetValue(state.Text)
	c.textarea.MoveToEnd()
	return c.textarea.Focus()
}

// IsOpen reports whether the editor is shown.
func (c CommentModal) IsOpen() bool {
	return c.open
}

// Value returns the typed text.
func (c CommentModal) Value() string {
	return c.textarea.Value()
}

// SetWidth resizes the editor to fit the terminal width.
func (c *CommentModal) SetWidth(width int) {
	c.textarea.SetWidth(c.innerWidth(width))
}

func (c CommentModal) innerWidth(width int) int {
	w := min(commentModalMaxWidth, width-8)
	return max(w-6, 10)
}

// Update forwards a message to the textarea. Submit and cancel keys are
// handled by the caller before this is reached.
func (c CommentModal) Update(msg tea.Msg) (CommentModal, tea.Cmd) {
	var cmd tea.Cmd
	c.textarea, cmd = c.textarea.Update(msg)
	return c, cmd
}

// View renders the editor box for the given modal view model.
func (c CommentModal) View(vm viewmodel.Modal) string {
	title := styles.ModalTitleStyle.Render(highlight.TerminalLine(vm.Title))
	context := styles.CommentMetaStyle.Render(highlight.TerminalLine(vm.Context))

	submit := styles.ButtonStyle.Render(vm.SubmitLabel)
	if vm.Saving {
		submit = styles.ButtonDisabledStyle.Render(vm.SubmitLabel)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		submit, "  ", styles.ModalButtonStyle.Render(vm.CancelLabel))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		context,
		"",
		c.textarea.View(),
		"",
		buttons,
		styles.ModalHelpStyle.Render(newHelp().ShortHelpView(c.keys.EditorHelp())),
	)
	return styles.ModalStyle.Render(content)
}

// isSubmit reports whether msg submits the editor.
func (c CommentModal) isSubmit(msg tea.KeyPressMsg) bool {
	return key.Matches(msg, c.keys.Submit) && !key.Matches(msg, c.keys.Newline)
}
