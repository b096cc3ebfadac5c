package engine

import "github.com/shoockrates/casinosim/internal/model"

// Result carries the outcome of one applied command: the entity it created
// or updated, or the rows a query returned. Exactly the fields relevant to
// the command are set; rendering is the caller's concern.
type Result struct {
	Player *model.Player `json:"player,omitempty"`
	Game   *model.Game   `json:"game,omitempty"`
	Table  *model.Table  `json:"table,omitempty"`
	Dealer *model.Dealer `json:"dealer,omitempty"`
	Round  *model.Round  `json:"round,omitempty"`
	Bet    *model.Bet    `json:"bet,omitempty"`

	// Query results
	Players []*model.Player `json:"players,omitempty"`
	Games   []*model.Game   `json:"games,omitempty"`
	Tables  []*model.Table  `json:"tables,omitempty"`
	Dealers []*model.Dealer `json:"dealers,omitempty"`
	Rounds  []*model.Round  `json:"rounds,omitempty"`
	Bets    []*model.Bet    `json:"bets,omitempty"`

	// Example lines for dump examples
	Examples []string `json:"examples,omitempty"`

	// Removed is set when a command deleted an entity
	Removed bool `json:"removed,omitempty"`
}
