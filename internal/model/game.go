package model

import "time"

// GameID uniquely identifies a game
type GameID int64

// GameKind tags the kind of casino game offered
type GameKind string

const (
	GameBlackjack GameKind = "Blackjack"
	GameRoulette  GameKind = "Roulette"
	GamePoker     GameKind = "Poker"
	GameBaccarat  GameKind = "Baccarat"
	GameSlots     GameKind = "Slots"
)

// ValidGameKind reports whether k is one of the defined game kinds
func ValidGameKind(k GameKind) bool {
	switch k {
	case GameBlackjack, GameRoulette, GamePoker, GameBaccarat, GameSlots:
		return true
	}
	return false
}

// Game represents a game offering. Immutable once created.
type Game struct {
	ID        GameID    `json:"id"`
	Name      string    `json:"name"`
	Kind      GameKind  `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
