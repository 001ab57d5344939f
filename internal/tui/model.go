// Package tui is the terminal front end of the review client. It renders the
// controller state and turns key presses into controller intents.
package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/app/viewmodel"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/logging"
	"github.com/colonyops/hrevu/internal/core/notify"
	"github.com/colonyops/hrevu/internal/core/review"
	"github.com/colonyops/hrevu/internal/core/styles"
	"github.com/colonyops/hrevu/internal/highlight"
	"github.com/colonyops/hrevu/internal/tui/components"
)

// Options configures the TUI.
type Options struct {
	Controller  *app.Controller
	Bus         *notify.Bus
	Highlighter *highlight.Highlighter
	// TimeFormat is the Go layout for comment timestamps.
	TimeFormat string
	MaxToasts  int
	Toasts     ToastDurations
	// ShowSidebar shows the comment sidebar on start.
	ShowSidebar bool
	// Icons prefixes file names with nerd font icons.
	Icons bool
}

// resultMsg carries a finished controller effect back to the update loop.
type resultMsg struct {
	result app.Result
}

// Model is the root bubbletea model.
type Model struct {
	ctx   context.Context
	ctrl  *app.Controller
	loc   i18n.Localizer
	hl    *highlight.Highlighter
	keys  KeyMap
	vm    viewmodel.Options
	log   zerolog.Logger
	icons bool

	toastController *ToastController
	toastView       *ToastView
	editor          CommentModal
	helpDialog      *components.HelpDialog

	focus         Focus
	showSidebar   bool
	fileCursor    int
	diffCursor    int
	sidebarCursor int
	fileOffset    int
	diffOffset    int
	sidebarOffset int
	appliedTheme  string

	width    int
	height   int
	quitting bool
}

// New creates the root model. The bus is wired to the toast stack here, so
// notifications published by the controller show up as toasts.
func New(ctx context.Context, opts Options) Model {
	loc := opts.Controller.Localizer()
	keys := NewKeyMap(loc)

	hl := opts.Highlighter
	if hl == nil {
		hl = highlight.New(styles.CurrentPalette.ChromaStyle)
	}

	toastCtrl := NewToastController(opts.MaxToasts, opts.Toasts)
	toastView := NewToastView(toastCtrl)
	if opts.Bus != nil {
		opts.Bus.Subscribe(func(n notify.Notification) {
			toastCtrl.Push(n)
		})
	}

	m := Model{
		ctx:  ctx,
		ctrl: opts.Controller,
		loc:  loc,
		hl:   hl,
		keys: keys,
		vm: viewmodel.Options{
			Loc:        loc,
			Highlight:  hl.ANSI,
			TimeFormat: opts.TimeFormat,
		},
		log:             logging.Component("tui"),
		icons:           opts.Icons,
		toastController: toastCtrl,
		toastView:       toastView,
		editor:          NewCommentModal(keys),
		focus:           FocusFiles,
		showSidebar:     opts.ShowSidebar,
	}
	m.applyTheme()
	return m
}

// Init starts loading the review.
func (m Model) Init() tea.Cmd {
	return m.dispatch(app.Load{})
}

// Completed reports whether the review was completed during the session.
func (m Model) Completed() bool {
	return m.ctrl.State().Completed
}

// Snapshot returns the review as last seen by the client.
func (m Model) Snapshot() review.Review {
	return m.ctrl.Snapshot()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case resultMsg:
		return m.handleResult(msg)
	case toastTickMsg:
		return m.handleToastTick(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Paste and cursor blink messages belong to the editor.
	if m.editor.IsOpen() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// dispatch sends an intent to the controller and turns any resulting effect
// into a command. The view is brought in line with the new state.
func (m *Model) dispatch(in app.Intent) tea.Cmd {
	eff := m.ctrl.Dispatch(in)
	return m.settle(m.run(eff))
}

// run wraps an effect so it executes off the update loop.
func (m *Model) run(eff app.Effect) tea.Cmd {
	if eff == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return resultMsg{result: eff(ctx)}
	}
}

// settle syncs view-local state with the controller after every change and
// batches follow-up commands.
func (m *Model) settle(cmds ...tea.Cmd) tea.Cmd {
	m.applyTheme()
	cmds = append(cmds, m.editor.Sync(m.ctrl.State().Modal, m.width))
	m.clampCursors()
	m.scrollIntoView()
	cmds = append(cmds, m.ensureToastTick())
	return tea.Batch(cmds...)
}

// applyTheme swaps styles and the highlight style when the controller's
// theme changed.
func (m *Model) applyTheme() {
	name := m.ctrl.State().Theme
	if name == m.appliedTheme {
		return
	}
	p, ok := styles.GetPalette(name)
	if !ok {
		return
	}
	styles.SetTheme(p)
	m.hl.SetStyle(p.ChromaStyle)
	m.appliedTheme = name
	m.log.Debug().Str("theme", name).Str("chroma", m.hl.StyleName()).Msg("theme applied")
}

// ensureToastTick starts the toast timer unless it is already running.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// panelHeight is the number of content rows inside each panel.
func (m Model) panelHeight() int {
	// header (2) + footer (1) + panel border (2) + panel title (1)
	return max(m.height-6, 1)
}

var _ tea.Model = Model{}
