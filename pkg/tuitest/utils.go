// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// output can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// Key creates a key press for a printable character, as a terminal reports it.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Type returns one key press per rune of s.
func Type(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, Key(r))
	}
	return msgs
}

// KeyCode creates a key press for a special key such as tea.KeyEnter.
func KeyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// KeyCtrl creates a ctrl+<r> key press.
func KeyCtrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// KeyEnter creates an enter key press message.
func KeyEnter() tea.KeyPressMsg { return KeyCode(tea.KeyEnter) }

// KeyEsc creates an escape key press message.
func KeyEsc() tea.KeyPressMsg { return KeyCode(tea.KeyEscape) }

// KeyTab creates a tab key press message.
func KeyTab() tea.KeyPressMsg { return KeyCode(tea.KeyTab) }

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// Exec runs cmd and feeds every message it produces back into the model
// until no commands remain. Commands that do not finish within timeout are
// dropped, which keeps timers such as cursor blinks from stalling a test.
// Messages accepted by drop are discarded instead of delivered.
func Exec(m tea.Model, cmd tea.Cmd, timeout time.Duration, drop func(tea.Msg) bool) tea.Model {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := runCmd(next, timeout)
		if !ok || msg == nil {
			continue
		}

		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
		default:
			if drop != nil && drop(msg) {
				continue
			}
			var follow tea.Cmd
			m, follow = m.Update(msg)
			queue = append(queue, follow)
		}
	}
	return m
}

func runCmd(cmd tea.Cmd, timeout time.Duration) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(timeout):
		return nil, false
	}
}

// Quits reports whether cmd, or any command batched into it, quits the program.
func Quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	msg, ok := runCmd(cmd, 50*time.Millisecond)
	if !ok {
		return false
	}
	switch msg := msg.(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if Quits(c) {
				return true
			}
		}
	}
	return false
}
