package app

import (
	"context"

	"github.com/colonyops/hrevu/internal/client"
	"github.com/colonyops/hrevu/internal/core/review"
)

// Intent is a user interaction translated into a request to the controller.
type Intent interface {
	intent()
}

// Load fetches the review from the backend.
type Load struct{}

// SelectFile makes Path the current file.
type SelectFile struct{ Path string }

// OpenCreate opens the modal for a new comment. An empty File creates a
// global comment; a zero Line creates a file-level comment.
type OpenCreate struct {
	File string
	Line int
}

// OpenEdit opens the modal on an existing comment.
type OpenEdit struct{ ID string }

// CloseModal discards the modal and its target.
type CloseModal struct{}

// Submit saves the modal's text as a new or edited comment.
type Submit struct{ Text string }

// Delete removes a comment.
type Delete struct{ ID string }

// Complete marks the review as finished.
type Complete struct{}

// ToggleTheme switches between the dark and light theme.
type ToggleTheme struct{}

func (Load) intent()        {}
func (SelectFile) intent()  {}
func (OpenCreate) intent()  {}
func (OpenEdit) intent()    {}
func (CloseModal) intent()  {}
func (Submit) intent()      {}
func (Delete) intent()      {}
func (Complete) intent()    {}
func (ToggleTheme) intent() {}

// Effect is a pending backend call. It runs off the event loop and must not
// touch controller state; its Result is handed back to Controller.Apply.
type Effect func(ctx context.Context) Result

// Result is the outcome of an Effect.
type Result interface {
	result()
}

// Loaded carries the outcome of a Load.
type Loaded struct {
	Review review.Review
	Err    error
}

// Saved carries the outcome of a Submit.
type Saved struct {
	Mode    ModalMode
	Comment review.Comment
	// Seq identifies the modal the save was submitted from.
	Seq int
	Err error
}

// Deleted carries the outcome of a Delete.
type Deleted struct {
	ID  string
	Err error
}

// Completed carries the outcome of a Complete.
type Completed struct {
	Completion client.Completion
	Err        error
}

func (Loaded) result()    {}
func (Saved) result()     {}
func (Deleted) result()   {}
func (Completed) result() {}
