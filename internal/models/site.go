package models

import (
	"time"

	"omnisite/internal/constants"
)

// Site is a catalogue entry for a known placement location
type Site struct {
	ID         string               `json:"id"`
	Label      string               `json:"label"`
	BodyRegion constants.BodyRegion `json:"body_region"`
	Side       constants.Side       `json:"side"`
	CreatedAt  time.Time            `json:"created_at"`
	ArchivedAt *time.Time           `json:"archived_at,omitempty"`
	DeletedAt  *time.Time           `json:"deleted_at,omitempty"`
}
