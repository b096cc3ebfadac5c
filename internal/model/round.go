package model

import "time"

// RoundID uniquely identifies a round
type RoundID int64

// RoundStatus represents the lifecycle state of a round
type RoundStatus string

const (
	RoundActive    RoundStatus = "Active"
	RoundFinished  RoundStatus = "Finished"
	RoundCancelled RoundStatus = "Cancelled"
)

// ValidRoundStatus reports whether s is one of the defined statuses
func ValidRoundStatus(s RoundStatus) bool {
	switch s {
	case RoundActive, RoundFinished, RoundCancelled:
		return true
	}
	return false
}

// Round represents one round of play at a table. Rounds form a forest:
// ParentID, if set, references a round that existed before this one.
type Round struct {
	ID        RoundID     `json:"id"`
	TableID   TableID     `json:"table_id"`
	ParentID  *RoundID    `json:"parent_id,omitempty"`
	Status    RoundStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
