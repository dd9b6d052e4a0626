package models

import "time"

// Note is a free-standing journal note, optionally tied to a site
type Note struct {
	ID        string     `json:"id"`
	Site      string     `json:"site,omitempty"`
	Day       string     `json:"day"` // YYYY-MM-DD format
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
