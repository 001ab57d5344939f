package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/hrevu/internal/core/notify"
	"github.com/colonyops/hrevu/internal/core/styles"
)

func TestToastView_View_empty(t *testing.T) {
	v := NewToastView(NewToastController(0, ToastDurations{}))
	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_level(t *testing.T) {
	tests := []struct {
		level notify.Level
		icon  string
	}{
		{notify.LevelError, styles.IconNotifyError},
		{notify.LevelWarning, styles.IconNotifyWarning},
		{notify.LevelSuccess, styles.IconNotifySuccess},
		{notify.LevelInfo, styles.IconNotifyInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			c := NewToastController(0, ToastDurations{})
			v := NewToastView(c)

			c.Push(notify.Notification{Level: tt.level, Message: "test msg"})

			out := ansi.Strip(v.View())
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToastView_View_strips_control_sequences(t *testing.T) {
	c := NewToastController(0, ToastDurations{})
	v := NewToastView(c)

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "a\x1b[2Jb"})

	assert.Contains(t, ansi.Strip(v.View()), "ab")
}

func TestToastView_Overlay(t *testing.T) {
	c := NewToastController(0, ToastDurations{})
	v := NewToastView(c)

	bg := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)
	assert.Equal(t, bg, v.Overlay(bg, 80, 24))

	c.Push(notify.Notification{Level: notify.LevelSuccess, Message: "Comment added"})
	lines := strings.Split(ansi.Strip(v.Overlay(bg, 80, 24)), "\n")
	require.Len(t, lines, 24)

	// Rows above the stack are untouched; the message sits inside the box.
	assert.Equal(t, strings.Repeat(".", 80), lines[0])
	assert.Equal(t, strings.Repeat(".", 80), lines[1])
	assert.Contains(t, lines[3], "Comment added")
	assert.True(t, strings.HasSuffix(lines[3], "."), "stack keeps a column free on the right")
}

func TestToastView_View_wraps_long_messages(t *testing.T) {
	c := NewToastController(0, ToastDurations{})
	v := NewToastView(c)

	c.Push(notify.Notification{Level: notify.LevelError, Message: strings.Repeat("word ", 20)})

	out := ansi.Strip(v.View())
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), toastWidth)
	}
	assert.Greater(t, strings.Count(out, "word"), 0)
	assert.Greater(t, strings.Count(out, "\n"), 3)
}
