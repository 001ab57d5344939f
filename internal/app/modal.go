package app

import (
	"strconv"

	"github.com/colonyops/hrevu/internal/core/i18n"
)

// ModalMode is the lifecycle state of the comment modal.
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalCreate
	ModalEdit
)

func (m ModalMode) String() string {
	switch m {
	case ModalCreate:
		return "create"
	case ModalEdit:
		return "edit"
	default:
		return "closed"
	}
}

// ModalState describes the comment modal. In create mode File and Line
// carry the pending anchor; in edit mode CommentID names the target.
// Text is the draft shown when the modal opens or reopens after a failed save.
type ModalState struct {
	Mode      ModalMode
	File      string
	Line      int
	CommentID string
	Text      string
}

// IsOpen reports whether the modal is visible.
func (m ModalState) IsOpen() bool {
	return m.Mode != ModalClosed
}

// Context returns the anchor label shown above the input: "file:line",
// "file", or the localized global label.
func (m ModalState) Context(loc i18n.Localizer) string {
	switch {
	case m.File == "":
		return loc.T(i18n.GlobalCommentLabel)
	case m.Line > 0:
		return m.File + ":" + strconv.Itoa(m.Line)
	default:
		return m.File
	}
}

// Title returns the localized modal heading.
func (m ModalState) Title(loc i18n.Localizer) string {
	if m.Mode == ModalEdit {
		return loc.T(i18n.UpdateComment)
	}
	if m.File == "" {
		return loc.T(i18n.GlobalComment)
	}
	return loc.T(i18n.AddComment)
}
