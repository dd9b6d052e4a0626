package models

import "time"

// Dose records a single medication dose
type Dose struct {
	ID         string     `json:"id"`
	Medication string     `json:"medication"`
	Amount     float64    `json:"amount"`
	Unit       string     `json:"unit"`
	Day        string     `json:"day"` // YYYY-MM-DD format
	Note       string     `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
