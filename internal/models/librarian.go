package models

import "time"

// Librarian is a staff account that can sign in to the management console.
type Librarian struct {
	ID        string     `json:"id" example:"1"`
	Email     string     `json:"email" example:"librarian@university.ac.ug"`
	FirstName string     `json:"firstName" example:"Jane"`
	LastName  string     `json:"lastName" example:"Smith"`
	Role      string     `json:"role" example:"librarian"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
