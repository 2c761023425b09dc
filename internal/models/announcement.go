package models

import "time"

// Announcement is a school-wide notice. Read-only once created.
type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
	AuthorName string    `json:"author_name"`
}
