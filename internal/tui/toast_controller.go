package tui

import (
	"time"

	"github.com/colonyops/hrevu/internal/core/notify"
)

const (
	defaultSuccessTTL = 2 * time.Second
	defaultErrorTTL   = 3 * time.Second
	defaultInfoTTL    = 2 * time.Second
	defaultMaxToasts  = 5
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 44
)

// ToastDurations sets how long each level stays on screen.
type ToastDurations struct {
	Success time.Duration
	Error   time.Duration
	Info    time.Duration
}

func (d ToastDurations) ttl(level notify.Level) time.Duration {
	ttl, fallback := d.Info, defaultInfoTTL
	switch level {
	case notify.LevelSuccess:
		ttl, fallback = d.Success, defaultSuccessTTL
	case notify.LevelError, notify.LevelWarning:
		ttl, fallback = d.Error, defaultErrorTTL
	}
	if ttl <= 0 {
		return fallback
	}
	return ttl
}

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// ToastController manages the lifecycle of active toast notifications.
// It handles push, eviction, TTL countdown, and dismissal.
type ToastController struct {
	toasts    []toast
	ticking   bool
	max       int
	durations ToastDurations
}

// NewToastController creates a controller. A non-positive max uses the default.
func NewToastController(max int, durations ToastDurations) *ToastController {
	if max <= 0 {
		max = defaultMaxToasts
	}
	return &ToastController{max: max, durations: durations}
}

// Push adds a notification to the toast stack. If the stack exceeds the
// maximum, the oldest toast is evicted.
func (c *ToastController) Push(n notify.Notification) {
	c.toasts = append(c.toasts, toast{
		notification: n,
		remaining:    c.durations.ttl(n.Level),
	})
	if len(c.toasts) > c.max {
		c.toasts = c.toasts[len(c.toasts)-c.max:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes any that
// have expired. It reports whether an expired toast asked to close the UI.
func (c *ToastController) Tick(d time.Duration) (closeRequested bool) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
			continue
		}
		if t.notification.CloseAfter {
			closeRequested = true
		}
	}
	c.toasts = alive
	return closeRequested
}

// Dismiss removes the newest (bottom-most) toast. A dismissed close-after
// toast reports true so the caller can close immediately.
func (c *ToastController) Dismiss() (closeRequested bool) {
	if len(c.toasts) == 0 {
		return false
	}
	last := c.toasts[len(c.toasts)-1]
	c.toasts = c.toasts[:len(c.toasts)-1]
	return last.notification.CloseAfter
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the current active toast slice.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
