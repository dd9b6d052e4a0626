package models

import "time"

// Rating records a comfort score for a site on a given day
type Rating struct {
	ID        string     `json:"id"`
	Site      string     `json:"site"`
	Score     int        `json:"score"` // 1-5
	Day       string     `json:"day"`   // YYYY-MM-DD format
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
