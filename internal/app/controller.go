// Package app owns the review client's state. A single Controller turns
// intents into state changes and backend effects, and applies effect results
// back to the state on the caller's event loop.
package app

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/hrevu/internal/client"
	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/internal/core/logging"
	"github.com/colonyops/hrevu/internal/core/notify"
	"github.com/colonyops/hrevu/internal/core/review"
	"github.com/colonyops/hrevu/internal/core/styles"
)

// Backend is the review REST surface used by the controller.
type Backend interface {
	Review(ctx context.Context) (review.Review, error)
	CreateComment(ctx context.Context, in client.NewComment) (review.Comment, error)
	UpdateComment(ctx context.Context, id, text string) (review.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	Complete(ctx context.Context) (client.Completion, error)
}

// ThemeStore persists the theme preference.
type ThemeStore interface {
	SaveTheme(theme string) error
}

// State is the complete client state. It is mutated only by the Controller.
type State struct {
	Title       string
	InputType   review.InputType
	Files       []review.File
	Comments    *review.Comments
	CurrentFile string
	Modal       ModalState
	Theme       string

	Loading    bool
	Loaded     bool
	Saving     bool
	Deleting   map[string]bool
	Completing bool
	Completed  bool
}

// File returns the current file.
func (s *State) File() (*review.File, bool) {
	if s.CurrentFile == "" {
		return nil, false
	}
	for i := range s.Files {
		if s.Files[i].Path == s.CurrentFile {
			return &s.Files[i], true
		}
	}
	return nil, false
}

// Options configures a Controller.
type Options struct {
	// Hide lists doublestar patterns of files left out of the file list.
	Hide []string
	// Theme is the initial theme name.
	Theme string
	// Themes persists theme toggles. May be nil.
	Themes ThemeStore
}

// Controller is the intent dispatcher. Dispatch and Apply must be called from
// one goroutine; effects may run anywhere.
type Controller struct {
	state   State
	backend Backend
	bus     *notify.Bus
	loc     i18n.Localizer
	hide    []string
	themes  ThemeStore
	log     zerolog.Logger

	// modalSeq changes every time the modal opens or closes, so a save
	// result can tell whether the modal it came from is still showing.
	modalSeq int
}

// New creates a controller with empty state.
func New(backend Backend, bus *notify.Bus, loc i18n.Localizer, opts Options) *Controller {
	theme := opts.Theme
	if _, ok := styles.GetPalette(theme); !ok {
		theme = styles.DefaultTheme
	}

	return &Controller{
		state: State{
			Comments: review.NewComments(nil),
			Deleting: make(map[string]bool),
			Theme:    theme,
		},
		backend: backend,
		bus:     bus,
		loc:     loc,
		hide:    opts.Hide,
		themes:  opts.Themes,
		log:     logging.Component("app"),
	}
}

// State returns the current state. Callers must treat it as read-only.
func (c *Controller) State() *State {
	return &c.state
}

// Localizer returns the controller's localizer.
func (c *Controller) Localizer() i18n.Localizer {
	return c.loc
}

// Snapshot returns the review as currently held by the client.
func (c *Controller) Snapshot() review.Review {
	return review.Review{
		InputType: c.state.InputType,
		Files:     c.state.Files,
		Comments:  c.state.Comments.All(),
	}
}

// Dispatch applies an intent. Intents that need the backend return an
// Effect; all others return nil.
func (c *Controller) Dispatch(in Intent) Effect {
	switch in := in.(type) {
	case Load:
		return c.load()
	case SelectFile:
		c.selectFile(in.Path)
	case OpenCreate:
		c.openCreate(in)
	case OpenEdit:
		c.openEdit(in.ID)
	case CloseModal:
		c.setModal(ModalState{})
	case Submit:
		return c.submit(in.Text)
	case Delete:
		return c.deleteComment(in.ID)
	case Complete:
		return c.complete()
	case ToggleTheme:
		c.toggleTheme()
	}
	return nil
}

// Apply folds an effect result into the state and publishes the matching
// notification.
func (c *Controller) Apply(r Result) {
	switch r := r.(type) {
	case Loaded:
		c.applyLoaded(r)
	case Saved:
		c.applySaved(r)
	case Deleted:
		c.applyDeleted(r)
	case Completed:
		c.applyCompleted(r)
	}
}

func (c *Controller) load() Effect {
	if c.state.Loading {
		return nil
	}
	c.state.Loading = true

	backend := c.backend
	return func(ctx context.Context) Result {
		r, err := backend.Review(ctx)
		return Loaded{Review: r, Err: err}
	}
}

func (c *Controller) applyLoaded(r Loaded) {
	c.state.Loading = false
	if r.Err != nil {
		c.log.Error().Err(r.Err).Msg("load review")
		c.bus.Errorf("%s", c.loc.T(i18n.FailedToLoad))
		return
	}

	c.state.Loaded = true
	c.state.InputType = r.Review.InputType
	c.state.Title = c.loc.Title(r.Review.InputType)
	c.state.Files = c.visibleFiles(r.Review.Files)
	c.state.Comments.Reset(r.Review.Comments)

	c.log.Info().
		Int("files", len(c.state.Files)).
		Int("comments", c.state.Comments.Len()).
		Str("title", c.state.Title).
		Msg("review loaded")

	if len(c.state.Files) > 0 {
		c.state.CurrentFile = c.state.Files[0].Path
	}
}

func (c *Controller) visibleFiles(files []review.File) []review.File {
	if len(c.hide) == 0 {
		return files
	}

	out := make([]review.File, 0, len(files))
	for _, f := range files {
		if c.hidden(f.Path) {
			c.log.Debug().Str("path", f.Path).Msg("file hidden by pattern")
			continue
		}
		out = append(out, f)
	}
	return out
}

func (c *Controller) hidden(path string) bool {
	for _, pattern := range c.hide {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

func (c *Controller) selectFile(path string) {
	for _, f := range c.state.Files {
		if f.Path == path {
			c.state.CurrentFile = path
			return
		}
	}
}

// locked reports whether comment mutations are refused because the review
// has been completed.
func (c *Controller) locked() bool {
	if c.state.Completed {
		c.bus.Infof("%s", c.loc.T(i18n.ReviewLocked))
		return true
	}
	return false
}

func (c *Controller) setModal(m ModalState) {
	c.modalSeq++
	c.state.Modal = m
}

func (c *Controller) openCreate(in OpenCreate) {
	if c.locked() {
		return
	}

	m := ModalState{Mode: ModalCreate, File: in.File}
	if in.File != "" && in.Line > 0 {
		m.Line = in.Line
	}
	c.setModal(m)
}

func (c *Controller) openEdit(id string) {
	if c.locked() {
		return
	}

	comment, ok := c.state.Comments.Get(id)
	if !ok {
		return
	}
	c.setModal(ModalState{
		Mode:      ModalEdit,
		File:      comment.FilePath(),
		Line:      comment.LineNumber(),
		CommentID: comment.ID,
		Text:      comment.Text,
	})
}

func (c *Controller) submit(text string) Effect {
	modal := c.state.Modal
	if !modal.IsOpen() || c.state.Completed {
		return nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	// One save at a time. The draft stays in the open modal.
	if c.state.Saving {
		c.bus.Infof("%s", c.loc.T(i18n.SaveInProgress))
		return nil
	}

	c.state.Saving = true
	c.state.Modal.Text = text
	seq := c.modalSeq
	backend := c.backend

	if modal.Mode == ModalEdit {
		id := modal.CommentID
		return func(ctx context.Context) Result {
			saved, err := backend.UpdateComment(ctx, id, text)
			if saved.ID == "" {
				saved.ID = id
			}
			return Saved{Mode: ModalEdit, Comment: saved, Seq: seq, Err: err}
		}
	}

	req := client.NewComment{Text: text}
	if modal.File != "" {
		file := modal.File
		req.File = &file
		if modal.Line > 0 {
			line := modal.Line
			req.Line = &line
		}
	}

	return func(ctx context.Context) Result {
		saved, err := backend.CreateComment(ctx, req)
		return Saved{Mode: ModalCreate, Comment: saved, Seq: seq, Err: err}
	}
}

func (c *Controller) applySaved(r Saved) {
	c.state.Saving = false
	if r.Err != nil {
		c.log.Error().Err(r.Err).Str("mode", r.Mode.String()).Msg("save comment")
		c.bus.Errorf("%s", c.loc.T(failureKey(r.Err, i18n.FailedToSave)))
		return
	}

	switch r.Mode {
	case ModalEdit:
		if err := c.state.Comments.Replace(r.Comment); err != nil {
			c.log.Warn().Err(err).Str("id", r.Comment.ID).Msg("edited comment no longer present")
			c.bus.Warnf("%s", c.loc.T(i18n.CommentGone))
		} else {
			c.bus.Successf("%s", c.loc.T(i18n.CommentUpdated))
		}
	default:
		// Without an ID the comment could never be edited or deleted.
		if r.Comment.ID == "" {
			c.log.Error().Msg("created comment has no id")
			c.bus.Errorf("%s", c.loc.T(i18n.FailedToSave))
			return
		}
		c.state.Comments.Append(r.Comment)
		c.bus.Successf("%s", c.loc.T(i18n.CommentAdded))
	}

	// The reviewer may have moved on to another modal meanwhile.
	if r.Seq == c.modalSeq {
		c.setModal(ModalState{})
	}
}

func (c *Controller) deleteComment(id string) Effect {
	if c.locked() || c.state.Deleting[id] {
		return nil
	}
	if _, ok := c.state.Comments.Get(id); !ok {
		return nil
	}

	c.state.Deleting[id] = true
	backend := c.backend
	return func(ctx context.Context) Result {
		return Deleted{ID: id, Err: backend.DeleteComment(ctx, id)}
	}
}

func (c *Controller) applyDeleted(r Deleted) {
	delete(c.state.Deleting, r.ID)
	if r.Err != nil {
		c.log.Error().Err(r.Err).Str("id", r.ID).Msg("delete comment")
		c.bus.Errorf("%s", c.loc.T(failureKey(r.Err, i18n.FailedToDelete)))
		return
	}

	if err := c.state.Comments.Remove(r.ID); err != nil {
		c.log.Warn().Err(err).Str("id", r.ID).Msg("deleted comment no longer present")
	}
	if c.state.Modal.Mode == ModalEdit && c.state.Modal.CommentID == r.ID {
		c.setModal(ModalState{})
	}
	c.bus.Successf("%s", c.loc.T(i18n.CommentDeleted))
}

// failureKey names the message for a failed comment mutation. A 404 means
// the comment is gone on the backend.
func failureKey(err error, fallback i18n.Key) i18n.Key {
	if client.IsNotFound(err) {
		return i18n.CommentGone
	}
	return fallback
}

func (c *Controller) complete() Effect {
	if c.state.Completed || c.state.Completing {
		return nil
	}

	c.state.Completing = true
	backend := c.backend
	return func(ctx context.Context) Result {
		done, err := backend.Complete(ctx)
		return Completed{Completion: done, Err: err}
	}
}

func (c *Controller) applyCompleted(r Completed) {
	c.state.Completing = false
	if r.Err != nil {
		c.log.Error().Err(r.Err).Msg("complete review")
		c.bus.Errorf("%s", c.loc.T(i18n.FailedToComplete))
		return
	}

	c.state.Completed = true
	c.setModal(ModalState{})
	c.log.Info().Int("comments", r.Completion.CommentCount).Msg("review completed")

	c.bus.Publish(notify.Notification{
		Level:      notify.LevelSuccess,
		Message:    c.loc.T(i18n.ReviewComplete, r.Completion.CommentCount),
		CloseAfter: true,
	})
}

func (c *Controller) toggleTheme() {
	c.state.Theme = styles.NextTheme(c.state.Theme)
	if c.themes == nil {
		return
	}
	if err := c.themes.SaveTheme(c.state.Theme); err != nil {
		c.log.Warn().Err(err).Str("theme", c.state.Theme).Msg("save theme preference")
	}
}
