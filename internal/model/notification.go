package model

import "time"

// NotificationType defines the type of notification.
type NotificationType string

// Notification types.
const (
	NotifyTaskDue         NotificationType = "task_due"
	NotifySessionComplete NotificationType = "session_complete"
	NotifyTest            NotificationType = "test"
)

// Notification represents a local notification to be delivered.
type Notification struct {
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewNotification creates a new notification stamped with the current time.
func NewNotification(t NotificationType, title, body string) *Notification {
	return &Notification{
		Type:      t,
		Title:     title,
		Body:      body,
		Timestamp: time.Now(),
	}
}
