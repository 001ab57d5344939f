package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/hrevu/internal/core/notify"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController(0, ToastDurations{})

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "hello"})

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "hello", c.Toasts()[0].notification.Message)
	assert.Equal(t, defaultInfoTTL, c.Toasts()[0].remaining)
}

func TestToastController_TTLByLevel(t *testing.T) {
	tests := []struct {
		level notify.Level
		want  time.Duration
	}{
		{notify.LevelSuccess, 2 * time.Second},
		{notify.LevelError, 3 * time.Second},
		{notify.LevelWarning, 3 * time.Second},
		{notify.LevelInfo, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			c := NewToastController(0, ToastDurations{})
			c.Push(notify.Notification{Level: tt.level})
			assert.Equal(t, tt.want, c.Toasts()[0].remaining)
		})
	}
}

func TestToastController_ConfiguredTTL(t *testing.T) {
	c := NewToastController(0, ToastDurations{Success: 5 * time.Second, Error: time.Second})

	c.Push(notify.Notification{Level: notify.LevelSuccess})
	c.Push(notify.Notification{Level: notify.LevelError})
	c.Push(notify.Notification{Level: notify.LevelInfo})

	assert.Equal(t, 5*time.Second, c.Toasts()[0].remaining)
	assert.Equal(t, time.Second, c.Toasts()[1].remaining)
	assert.Equal(t, defaultInfoTTL, c.Toasts()[2].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController(3, ToastDurations{})

	for i := range 5 {
		c.Push(notify.Notification{
			Level:   notify.LevelInfo,
			Message: time.Duration(i).String(),
		})
	}

	assert.Len(t, c.Toasts(), 3)
	assert.Equal(t, "2ns", c.Toasts()[0].notification.Message)
}

func TestToastController_Push_no_dedup(t *testing.T) {
	c := NewToastController(0, ToastDurations{})

	c.Push(notify.Notification{Level: notify.LevelError, Message: "same"})
	c.Push(notify.Notification{Level: notify.LevelError, Message: "same"})

	assert.Len(t, c.Toasts(), 2)
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController(0, ToastDurations{})
	c.Push(notify.Notification{Level: notify.LevelSuccess, Message: "expires"})
	c.Push(notify.Notification{Level: notify.LevelError, Message: "survives"})

	closeRequested := c.Tick(2 * time.Second)

	assert.False(t, closeRequested)
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Message)
	assert.Equal(t, time.Second, c.Toasts()[0].remaining)
}

func TestToastController_Tick_close_after(t *testing.T) {
	c := NewToastController(0, ToastDurations{})
	c.Push(notify.Notification{Level: notify.LevelSuccess, Message: "done", CloseAfter: true})

	assert.False(t, c.Tick(1900*time.Millisecond))
	assert.True(t, c.Tick(100*time.Millisecond))
	assert.False(t, c.HasToasts())
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController(0, ToastDurations{})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "second", CloseAfter: true})

	assert.True(t, c.Dismiss())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].notification.Message)
	assert.False(t, c.Dismiss())
	assert.False(t, c.Dismiss(), "empty dismiss is a no-op")
}

func TestToastController_Ticking(t *testing.T) {
	c := NewToastController(0, ToastDurations{})
	assert.False(t, c.Ticking())
	c.SetTicking(true)
	assert.True(t, c.Ticking())
}
