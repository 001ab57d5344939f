package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/app/viewmodel"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/tui/components"
)

const keyCtrlC = "ctrl+c"

// --- Window ---

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.editor.SetWidth(msg.Width)
	m.scrollIntoView()
	return m, nil
}

// --- Effect results ---

func (m Model) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	m.ctrl.Apply(msg.result)

	if loaded, ok := msg.result.(app.Loaded); ok && loaded.Err == nil {
		m.fileCursor = m.currentFileIndex()
		m.diffCursor, m.diffOffset = 0, 0
	}
	return m, m.settle()
}

// --- Toasts ---

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	closeRequested := m.toastController.Tick(toastTickInterval)
	if closeRequested {
		m.toastController.SetTicking(false)
		return m.quit()
	}
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

// --- Input ---

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		return m.quit()
	}

	switch {
	case m.helpDialog != nil:
		return m.handleHelpDialogKey(msg)
	case m.editor.IsOpen():
		return m.handleEditorKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleHelpDialogKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss, m.keys.Help, m.keys.Quit) {
		m.helpDialog = nil
	}
	return m, nil
}

func (m Model) handleEditorKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, m.dispatch(app.CloseModal{})
	case m.editor.isSubmit(msg):
		return m, m.dispatch(app.Submit{Text: m.editor.Value()})
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Dismiss):
		if m.toastController.Dismiss() {
			return m.quit()
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.helpDialog = components.NewHelpDialog(m.loc.T(i18n.Keybindings), m.keys.HelpSections(m.loc))
		return m, nil
	case key.Matches(msg, m.keys.NextPanel):
		m.focus = m.focus.next(m.showSidebar)
		return m, nil
	case key.Matches(msg, m.keys.ToggleSidebar):
		m.showSidebar = !m.showSidebar
		if !m.showSidebar && m.focus == FocusSidebar {
			m.focus = FocusFiles
		}
		return m, m.settle()
	case key.Matches(msg, m.keys.ToggleTheme):
		return m, m.dispatch(app.ToggleTheme{})
	case key.Matches(msg, m.keys.Complete):
		return m, m.dispatch(app.Complete{})
	case key.Matches(msg, m.keys.GlobalComment):
		return m, m.dispatch(app.OpenCreate{})
	case key.Matches(msg, m.keys.FileComment):
		if path := m.ctrl.State().CurrentFile; path != "" {
			return m, m.dispatch(app.OpenCreate{File: path})
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.setCursor(0)
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.setCursor(m.cursorLimit() - 1)
		return m, nil
	}

	switch m.focus {
	case FocusFiles:
		return m.handleFilesKey(msg)
	case FocusDiff:
		return m.handleDiffKey(msg)
	case FocusSidebar:
		return m.handleSidebarKey(msg)
	}
	return m, nil
}

func (m Model) handleFilesKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Open) {
		return m, nil
	}
	files := m.ctrl.State().Files
	if m.fileCursor < 0 || m.fileCursor >= len(files) {
		return m, nil
	}
	m.diffCursor, m.diffOffset = 0, 0
	m.focus = FocusDiff
	return m, m.dispatch(app.SelectFile{Path: files[m.fileCursor].Path})
}

func (m Model) handleDiffKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	d := m.buildDiff()
	if m.diffCursor < 0 || m.diffCursor >= len(d.Rows) {
		return m, nil
	}
	row := d.Rows[m.diffCursor]

	switch row.Kind {
	case viewmodel.RowLine:
		if key.Matches(msg, m.keys.Open, m.keys.Comment) {
			return m, m.dispatch(app.OpenCreate{File: d.Path, Line: row.Number})
		}
	case viewmodel.RowComment, viewmodel.RowFileComment:
		switch {
		case key.Matches(msg, m.keys.Open, m.keys.Edit):
			return m, m.dispatch(app.OpenEdit{ID: row.Comment.ID})
		case key.Matches(msg, m.keys.Delete):
			return m, m.dispatch(app.Delete{ID: row.Comment.ID})
		}
	}
	return m, nil
}

func (m Model) handleSidebarKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.sidebarCursor == 0 {
		if key.Matches(msg, m.keys.Open) {
			return m, m.dispatch(app.OpenCreate{})
		}
		return m, nil
	}

	comments := m.ctrl.State().Comments.All()
	idx := m.sidebarCursor - 1
	if idx >= len(comments) {
		return m, nil
	}
	c := comments[idx]

	switch {
	case key.Matches(msg, m.keys.Open):
		if c.IsGlobal() {
			return m, m.dispatch(app.OpenEdit{ID: c.ID})
		}
		cmd := m.dispatch(app.SelectFile{Path: c.FilePath()})
		if m.ctrl.State().CurrentFile == c.FilePath() {
			m.focus = FocusDiff
			m.revealComment(c.ID)
		}
		return m, cmd
	case key.Matches(msg, m.keys.Edit):
		return m, m.dispatch(app.OpenEdit{ID: c.ID})
	case key.Matches(msg, m.keys.Delete):
		return m, m.dispatch(app.Delete{ID: c.ID})
	}
	return m, nil
}

// --- Cursors ---

func (m *Model) cursorLimit() int {
	switch m.focus {
	case FocusDiff:
		return len(m.buildDiff().Rows)
	case FocusSidebar:
		return 1 + m.ctrl.State().Comments.Len()
	default:
		return len(m.ctrl.State().Files)
	}
}

func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case FocusDiff:
		m.setCursor(m.diffCursor + delta)
	case FocusSidebar:
		m.setCursor(m.sidebarCursor + delta)
	default:
		m.setCursor(m.fileCursor + delta)
	}
}

func (m *Model) setCursor(pos int) {
	pos = clamp(pos, 0, max(m.cursorLimit()-1, 0))
	switch m.focus {
	case FocusDiff:
		m.diffCursor = pos
	case FocusSidebar:
		m.sidebarCursor = pos
	default:
		m.fileCursor = pos
	}
	m.scrollIntoView()
}

// clampCursors keeps every cursor on an existing row after the state changed.
func (m *Model) clampCursors() {
	s := m.ctrl.State()
	m.fileCursor = clamp(m.fileCursor, 0, max(len(s.Files)-1, 0))
	m.diffCursor = clamp(m.diffCursor, 0, max(len(m.buildDiff().Rows)-1, 0))
	m.sidebarCursor = clamp(m.sidebarCursor, 0, s.Comments.Len())
}

// revealComment moves the diff cursor onto the row of the given comment.
func (m *Model) revealComment(id string) {
	for i, row := range m.buildDiff().Rows {
		if (row.Kind == viewmodel.RowComment || row.Kind == viewmodel.RowFileComment) && row.Comment.ID == id {
			m.diffCursor = i
			m.scrollIntoView()
			return
		}
	}
}

func (m Model) currentFileIndex() int {
	s := m.ctrl.State()
	for i, f := range s.Files {
		if f.Path == s.CurrentFile {
			return i
		}
	}
	return 0
}

// scrollIntoView adjusts panel offsets so each cursor row is visible.
func (m *Model) scrollIntoView() {
	height := m.panelHeight()

	m.fileOffset = scrollTo(m.fileOffset, m.fileCursor, m.fileCursor+1, height)

	spans := diffSpans(m.buildDiff())
	if m.diffCursor < len(spans) {
		sp := spans[m.diffCursor]
		m.diffOffset = scrollTo(m.diffOffset, sp[0], sp[1], height)
	} else {
		m.diffOffset = 0
	}

	start, end := sidebarSpan(m.sidebarCursor)
	m.sidebarOffset = scrollTo(m.sidebarOffset, start, end, height)
}

// scrollTo returns the smallest change to offset that shows [start, end).
func scrollTo(offset, start, end, height int) int {
	switch {
	case start < offset:
		return start
	case end > offset+height:
		return min(start, end-height)
	default:
		return offset
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (m Model) buildDiff() viewmodel.Diff {
	return viewmodel.BuildDiff(m.ctrl.State(), m.vm)
}
