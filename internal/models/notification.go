package models

import "time"

// Notification is a notice for the front end to render; the backend only
// records and lists them.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"` // "info" or "warning"
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
