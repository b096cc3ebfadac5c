// Package state defines the aggregate GameState: the single owner of all
// casino entities. No entity is reachable except through it, and the engine
// is its only mutator.
package state

import (
	"github.com/shoockrates/casinosim/internal/directory"
	"github.com/shoockrates/casinosim/internal/model"
)

// GameState owns the player directory and the flat id-keyed collections.
// Parent/child hierarchies (bets, rounds) are stored flat with parent
// back-references; child sets are derived on demand.
type GameState struct {
	Players *directory.Directory
	Games   map[model.GameID]*model.Game
	Tables  map[model.TableID]*model.Table
	Dealers map[model.DealerID]*model.Dealer
	Rounds  map[model.RoundID]*model.Round
	Bets    map[model.BetID]*model.Bet
}

// New creates an empty game state
func New() *GameState {
	return &GameState{
		Players: directory.New(),
		Games:   make(map[model.GameID]*model.Game),
		Tables:  make(map[model.TableID]*model.Table),
		Dealers: make(map[model.DealerID]*model.Dealer),
		Rounds:  make(map[model.RoundID]*model.Round),
		Bets:    make(map[model.BetID]*model.Bet),
	}
}

// UnresolvedBets returns the player's in-flight bets, if any
func (s *GameState) UnresolvedBets(playerID model.PlayerID) []*model.Bet {
	var open []*model.Bet
	for _, bet := range s.Bets {
		if bet.PlayerID == playerID && !bet.Resolved() {
			open = append(open, bet)
		}
	}
	return open
}

// ChildBets derives the direct children of a bet from the flat collection
func (s *GameState) ChildBets(parentID model.BetID) []*model.Bet {
	var children []*model.Bet
	for _, bet := range s.Bets {
		if bet.ParentID != nil && *bet.ParentID == parentID {
			children = append(children, bet)
		}
	}
	return children
}

// ChildRounds derives the direct children of a round from the flat collection
func (s *GameState) ChildRounds(parentID model.RoundID) []*model.Round {
	var children []*model.Round
	for _, round := range s.Rounds {
		if round.ParentID != nil && *round.ParentID == parentID {
			children = append(children, round)
		}
	}
	return children
}
