// Package notify defines the notification value types shared between the
// submission controller and the toast layer.
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

// Notification represents a single transient notification. Notifications are
// not persisted; they live only as long as their toast is on screen.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Success is a convenience constructor for a success notification.
func Success(message string) Notification {
	return Notification{Level: LevelSuccess, Message: message, CreatedAt: time.Now()}
}

// Error is a convenience constructor for an error notification.
func Error(message string) Notification {
	return Notification{Level: LevelError, Message: message, CreatedAt: time.Now()}
}
