package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetID uniquely identifies a bet
type BetID int64

// BetKind tags the kind of wager placed
type BetKind string

const (
	BetStraight BetKind = "Straight"
	BetSplit    BetKind = "Split"
	BetCorner   BetKind = "Corner"
	BetRed      BetKind = "Red"
	BetBlack    BetKind = "Black"
	BetOdd      BetKind = "Odd"
	BetEven     BetKind = "Even"
	BetPass     BetKind = "Pass"
	BetDontPass BetKind = "DontPass"
)

// ValidBetKind reports whether k is one of the defined bet kinds
func ValidBetKind(k BetKind) bool {
	switch k {
	case BetStraight, BetSplit, BetCorner, BetRed, BetBlack, BetOdd, BetEven, BetPass, BetDontPass:
		return true
	}
	return false
}

// BetOutcome represents the resolution state of a bet
type BetOutcome string

const (
	OutcomeUnresolved BetOutcome = "Unresolved"
	OutcomeWon        BetOutcome = "Won"
	OutcomeLost       BetOutcome = "Lost"
	OutcomePushed     BetOutcome = "Pushed"
)

// Bet represents a wager placed by a player at a table. Bets form a forest:
// ParentID, if set, references a bet on the same table that existed before
// this one. The stake is escrowed from the player's balance at placement.
type Bet struct {
	ID        BetID           `json:"id"`
	PlayerID  PlayerID        `json:"player_id"`
	TableID   TableID         `json:"table_id"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      BetKind         `json:"kind"`
	ParentID  *BetID          `json:"parent_id,omitempty"`
	RoundID   RoundID         `json:"round_id"`
	Outcome   BetOutcome      `json:"outcome"`
	WinAmount decimal.Decimal `json:"win_amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Resolved reports whether the bet has been settled
func (b *Bet) Resolved() bool {
	return b.Outcome != OutcomeUnresolved
}
