package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TableID uniquely identifies a table
type TableID int64

// Table represents a physical table where a game is played.
// DealerID, if set, must reference an existing dealer.
type Table struct {
	ID        TableID         `json:"id"`
	Name      string          `json:"name"`
	GameID    GameID          `json:"game_id"`
	MinBet    decimal.Decimal `json:"min_bet"`
	MaxBet    decimal.Decimal `json:"max_bet"`
	DealerID  *DealerID       `json:"dealer_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
