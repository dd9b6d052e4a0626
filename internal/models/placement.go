package models

import "time"

// Placement records a single use of a site. Day alone drives streak and
// recovery math; CreatedAt is the full creation timestamp and is never
// mutated after insert.
type Placement struct {
	ID        string     `json:"id"`
	Site      string     `json:"site"`
	Day       string     `json:"day"` // YYYY-MM-DD format
	Note      string     `json:"note,omitempty"`
	PhotoRef  string     `json:"photo_ref,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
