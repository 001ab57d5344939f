package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/hrevu/internal/app/viewmodel"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/review"
	"github.com/colonyops/hrevu/internal/core/styles"
	"github.com/colonyops/hrevu/internal/highlight"
	"github.com/colonyops/hrevu/internal/tui/components"
)

const (
	cursorMark    = "▶ "
	noCursorMark  = "  "
	commentIndent = "    "
	lineNumWidth  = 5
)

// View renders the TUI.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render returns the full screen content.
func (m Model) render() string {
	if m.quitting {
		return ""
	}

	w, h := m.size()
	mainView := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(w),
		m.renderPanels(w),
		m.renderFooter(w),
	)

	content := mainView
	switch {
	case m.helpDialog != nil:
		content = m.helpDialog.Overlay(mainView, w, h)
	case m.editor.IsOpen():
		vm := viewmodel.BuildModal(m.ctrl.State(), m.vm)
		content = components.Center(mainView, m.editor.View(vm), w, h)
	}

	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}
	return content
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

// layout splits the terminal width between the panels.
func (m Model) layout(width int) (files, diff, sidebar int) {
	files = clamp(width/4, 18, 40)
	if m.showSidebar {
		sidebar = clamp(width/4, 22, 44)
	}
	diff = max(width-files-sidebar, 10)
	return files, diff, sidebar
}

func (m Model) renderHeader(width int) string {
	hdr := viewmodel.BuildHeader(m.ctrl.State(), m.vm)

	left := styles.HeaderTitleStyle.Render(highlight.TerminalLine(hdr.Title)) +
		styles.HeaderMetaStyle.Render("  "+highlight.TerminalLine(hdr.FileName))

	label := hdr.CompleteLabel
	if hdr.Busy {
		label += "…"
	}
	button := styles.ButtonStyle.Render(label)
	if hdr.CompleteDisabled || hdr.Busy {
		button = styles.ButtonDisabledStyle.Render(label)
	}
	right := hdr.ThemeIcon + " " + button

	inner := max(width-2, 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = ansi.Truncate(left, max(inner-lipgloss.Width(right)-1, 0), "…")
		gap = max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}

	return styles.HeaderStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderPanels(width int) string {
	filesW, diffW, sidebarW := m.layout(width)
	height := m.panelHeight()

	panels := []string{
		m.renderFiles(filesW, height),
		m.renderDiff(diffW, height),
	}
	if m.showSidebar {
		panels = append(panels, m.renderSidebar(sidebarW, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func (m Model) renderFooter(width int) string {
	bindings := m.keys.ShortHelp(m.focus)
	if m.editor.IsOpen() {
		bindings = m.keys.EditorHelp()
	}
	h := newHelp()
	h.SetWidth(width)
	return " " + h.ShortHelpView(bindings)
}

// panel draws a bordered box with a title row and exactly height content
// rows, starting at offset.
func panel(title string, lines []string, offset, width, height int, focused bool) string {
	inner := max(width-2, 1)

	body := make([]string, 0, height+1)
	body = append(body, styles.PanelTitleStyle.Render(ansi.Truncate(title, inner, "…")))

	offset = clamp(offset, 0, max(len(lines)-1, 0))
	for i := offset; i < len(lines) && i < offset+height; i++ {
		body = append(body, ansi.Truncate(lines[i], inner, "…"))
	}
	for len(body) < height+1 {
		body = append(body, "")
	}

	style := styles.PanelStyle
	if focused {
		style = styles.PanelFocusedStyle
	}
	return style.Width(width).Height(height + 3).Render(strings.Join(body, "\n"))
}

func countTitle(heading string, n int) string {
	return fmt.Sprintf("%s (%d)", heading, n)
}

func marker(active bool) string {
	if active {
		return styles.CursorStyle.Render(cursorMark)
	}
	return noCursorMark
}

// --- Files ---

func (m Model) renderFiles(width, height int) string {
	fl := viewmodel.BuildFileList(m.ctrl.State(), m.vm)
	focused := m.focus == FocusFiles

	var lines []string
	if len(fl.Entries) == 0 && m.ctrl.State().Loading {
		lines = append(lines, styles.EmptyStateStyle.Render(m.loc.T(i18n.Loading)))
	}
	for i, e := range fl.Entries {
		lines = append(lines, m.renderFileEntry(e, focused && i == m.fileCursor))
	}

	return panel(countTitle(fl.Heading, fl.Count), lines, m.fileOffset, width, height, focused)
}

func (m Model) renderFileEntry(e viewmodel.FileEntry, cursor bool) string {
	var b strings.Builder
	b.WriteString(marker(cursor))
	b.WriteString(statusStyle(e.Status).Render(e.Indicator))
	b.WriteString(" ")
	if m.icons {
		b.WriteString(styles.FileIcon(e.Path))
		b.WriteString(" ")
	}

	name := highlight.TerminalLine(e.Path)
	if e.Active {
		b.WriteString(styles.FileActiveStyle.Render(name))
	} else {
		b.WriteString(styles.FileNormalStyle.Render(name))
	}
	if e.Comments > 0 {
		b.WriteString(" ")
		b.WriteString(styles.BadgeStyle.Render(strconv.Itoa(e.Comments)))
	}

	line := b.String()
	if cursor {
		line = styles.FileCursorStyle.Render(line)
	}
	return line
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case review.StatusAdded:
		return styles.StatusAddStyle
	case review.StatusModified:
		return styles.StatusModStyle
	case review.StatusDeleted:
		return styles.StatusDelStyle
	case review.StatusView:
		return styles.StatusViewStyle
	default:
		return styles.StatusOtherStyle
	}
}

// --- Diff ---

func (m Model) renderDiff(width, height int) string {
	d := m.buildDiff()
	focused := m.focus == FocusDiff

	title := d.Path
	if title == "" {
		title = m.loc.T(i18n.SelectFile)
	}
	title = highlight.TerminalLine(title)

	if !d.Found {
		lines := []string{styles.EmptyStateStyle.Render(d.Empty)}
		return panel(title, lines, 0, width, height, focused)
	}

	var lines []string
	for i, row := range d.Rows {
		lines = append(lines, renderRow(row, focused && i == m.diffCursor)...)
	}
	return panel(title, lines, m.diffOffset, width, height, focused)
}

// renderRow renders one diff row. The number of returned lines must match
// rowHeight.
func renderRow(row viewmodel.Row, cursor bool) []string {
	switch row.Kind {
	case viewmodel.RowSeparator:
		return []string{marker(cursor) + styles.SeparatorStyle.Render(
			strings.Repeat(" ", lineNumWidth)+" ⋯ "+highlight.TerminalLine(row.Content))}
	case viewmodel.RowComment, viewmodel.RowFileComment:
		return renderComment(row.Comment, cursor)
	}

	num := styles.LineNumberStyle.Width(lineNumWidth).Render(row.Label)
	sign := lineSign(row.Type)
	content := strings.TrimRight(row.Rendered, "\n")
	line := marker(cursor) + num + " " + sign + " " + content
	if row.Badge > 0 {
		line += " " + styles.BadgeStyle.Render(strconv.Itoa(row.Badge))
	}
	return []string{line}
}

func lineSign(t review.LineType) string {
	switch t {
	case review.LineAdded:
		return styles.LineAddedStyle.Render("+")
	case review.LineRemoved:
		return styles.LineRemovedStyle.Render("-")
	default:
		return styles.LineContextStyle.Render(" ")
	}
}

func renderComment(c viewmodel.CommentItem, cursor bool) []string {
	header := marker(cursor) + commentIndent +
		styles.CommentAuthorStyle.Render(highlight.TerminalLine(c.Author)) + " " +
		styles.CommentMetaStyle.Render(highlight.TerminalLine(c.Location)+" · "+c.Time)

	lines := []string{header}
	for _, text := range commentTextLines(c.Text) {
		lines = append(lines, noCursorMark+commentIndent+styles.CommentBoxStyle.Render(styles.CommentTextStyle.Render(text)))
	}
	return lines
}

func commentTextLines(text string) []string {
	return strings.Split(highlight.Terminal(text), "\n")
}

// rowHeight is the number of lines a diff row occupies.
func rowHeight(row viewmodel.Row) int {
	switch row.Kind {
	case viewmodel.RowComment, viewmodel.RowFileComment:
		return 1 + len(commentTextLines(row.Comment.Text))
	default:
		return 1
	}
}

// diffSpans returns the [start, end) line range of each diff row.
func diffSpans(d viewmodel.Diff) [][2]int {
	spans := make([][2]int, len(d.Rows))
	pos := 0
	for i, row := range d.Rows {
		h := rowHeight(row)
		spans[i] = [2]int{pos, pos + h}
		pos += h
	}
	return spans
}

// --- Sidebar ---

func (m Model) renderSidebar(width, height int) string {
	sb := viewmodel.BuildSidebar(m.ctrl.State(), m.vm)
	focused := m.focus == FocusSidebar

	lines := []string{marker(focused && m.sidebarCursor == 0) + styles.CommentActionStyle.Render(sb.AddGlobal)}
	if len(sb.Entries) == 0 {
		lines = append(lines, noCursorMark+styles.EmptyStateStyle.Render(sb.Empty))
	}
	for i, c := range sb.Entries {
		cursor := focused && m.sidebarCursor == i+1
		lines = append(lines,
			marker(cursor)+styles.CommentAuthorStyle.Render(highlight.TerminalLine(c.Location))+" "+
				styles.CommentMetaStyle.Render(c.Time),
			noCursorMark+styles.CommentTextStyle.Render(highlight.TerminalLine(c.Text)),
		)
	}

	return panel(countTitle(sb.Heading, sb.Count), lines, m.sidebarOffset, width, height, focused)
}

// sidebarSpan returns the line range of a sidebar cursor position. Position
// zero is the add-global action; each comment takes two lines.
func sidebarSpan(pos int) (int, int) {
	if pos <= 0 {
		return 0, 1
	}
	start := 1 + (pos-1)*2
	return start, start + 2
}
