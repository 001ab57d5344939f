// Package notify defines user-facing notifications and the in-process bus
// that delivers them to the UI.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	ID      int64
	Level   Level
	Message string
	// CloseAfter asks the UI to exit once the notification has been shown
	// for its full lifetime.
	CloseAfter bool
	CreatedAt  time.Time
}
