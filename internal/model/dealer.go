package model

import "time"

// DealerID uniquely identifies a dealer
type DealerID int64

// Dealer represents a dealer assigned to a table
type Dealer struct {
	ID        DealerID  `json:"id"`
	Name      string    `json:"name"`
	TableID   TableID   `json:"table_id"`
	CreatedAt time.Time `json:"created_at"`
}
