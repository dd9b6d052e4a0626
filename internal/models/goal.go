package models

import (
	"time"

	"omnisite/internal/constants"
)

// Goal is a user-defined tracking target
type Goal struct {
	ID         string             `json:"id"`
	Kind       constants.GoalKind `json:"kind"`
	Target     int                `json:"target"`
	CreatedAt  time.Time          `json:"created_at"`
	AchievedAt *time.Time         `json:"achieved_at,omitempty"`
	DeletedAt  *time.Time         `json:"deleted_at,omitempty"`
}
