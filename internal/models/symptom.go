package models

import "time"

// SymptomEntry records a symptom observation, optionally tied to a site
type SymptomEntry struct {
	ID        string     `json:"id"`
	Symptom   string     `json:"symptom"`
	Severity  int        `json:"severity"` // 1-5
	Site      string     `json:"site,omitempty"`
	Day       string     `json:"day"` // YYYY-MM-DD format
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
