package command

import (
	"github.com/shopspring/decimal"

	"github.com/shoockrates/casinosim/internal/model"
)

// Command is the closed set of operations the interpreter understands.
// Every variant gets an exhaustive handler in the engine.
type Command interface {
	isCommand()
}

// AddPlayer creates a player with an opening balance
type AddPlayer struct {
	ID      model.PlayerID
	Name    string
	Balance decimal.Decimal
}

// AddGame creates a game offering
type AddGame struct {
	ID   model.GameID
	Name string
	Kind model.GameKind
}

// AddTable creates a table for an existing game
type AddTable struct {
	ID       model.TableID
	Name     string
	GameID   model.GameID
	MinBet   decimal.Decimal
	MaxBet   decimal.Decimal
	DealerID *model.DealerID
}

// AddDealer creates a dealer assigned to an existing table
type AddDealer struct {
	ID      model.DealerID
	Name    string
	TableID model.TableID
}

// AddRound creates a round at a table, optionally under a parent round
type AddRound struct {
	ID       model.RoundID
	TableID  model.TableID
	ParentID *model.RoundID
	Status   model.RoundStatus
}

// PlaceBet places a wager for a player, optionally under a parent bet
type PlaceBet struct {
	ID       model.BetID
	PlayerID model.PlayerID
	TableID  model.TableID
	Amount   decimal.Decimal
	Kind     model.BetKind
	ParentID *model.BetID
	RoundID  model.RoundID
}

// ResolveBet settles an unresolved bet
type ResolveBet struct {
	ID        model.BetID
	Outcome   model.BetOutcome
	WinAmount decimal.Decimal // set only for Won
}

// Deposit credits a player's balance
type Deposit struct {
	PlayerID model.PlayerID
	Amount   decimal.Decimal
}

// Withdraw debits a player's balance, subject to configured limits
type Withdraw struct {
	PlayerID model.PlayerID
	Amount   decimal.Decimal
}

// SetLimit upserts a period spending limit for a player
type SetLimit struct {
	PlayerID model.PlayerID
	Kind     model.LimitKind
	Amount   decimal.Decimal
}

// FindPlayer looks up players by name, case-insensitive substring match
type FindPlayer struct {
	Name string
}

// ShowTarget selects which collection a Show command lists
type ShowTarget string

const (
	ShowPlayers ShowTarget = "players"
	ShowGames   ShowTarget = "games"
	ShowTables  ShowTarget = "tables"
	ShowDealers ShowTarget = "dealers"
	ShowBets    ShowTarget = "bets"
	ShowRounds  ShowTarget = "rounds"
)

// Show lists one of the entity collections
type Show struct {
	Target ShowTarget
}

// RemovePlayer deletes a player with no unresolved bets
type RemovePlayer struct {
	ID model.PlayerID
}

// DumpExamples prints one valid example line per grammar production
type DumpExamples struct{}

func (AddPlayer) isCommand()    {}
func (AddGame) isCommand()      {}
func (AddTable) isCommand()     {}
func (AddDealer) isCommand()    {}
func (AddRound) isCommand()     {}
func (PlaceBet) isCommand()     {}
func (ResolveBet) isCommand()   {}
func (Deposit) isCommand()      {}
func (Withdraw) isCommand()     {}
func (SetLimit) isCommand()     {}
func (FindPlayer) isCommand()   {}
func (Show) isCommand()         {}
func (RemovePlayer) isCommand() {}
func (DumpExamples) isCommand() {}
