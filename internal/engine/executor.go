// Package engine applies parsed commands to a GameState. Every handler
// validates fully before mutating, so a rejected command leaves the state
// exactly as it was.
package engine

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shoockrates/casinosim/internal/command"
	"github.com/shoockrates/casinosim/internal/dependencies/clock"
	"github.com/shoockrates/casinosim/internal/model"
	"github.com/shoockrates/casinosim/internal/state"
)

// Engine is the single entry point for command execution. It owns no state
// itself; the caller supplies the GameState and must serialize calls that
// target the same state.
type Engine struct {
	clock  clock.Clock
	logger *slog.Logger
}

// New creates an engine with the given clock and logger
func New(clk clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{
		clock:  clk,
		logger: logger,
	}
}

// Apply executes one command against the state. On error the state is
// unchanged; dispatch is exhaustive over the command variants.
func (e *Engine) Apply(st *state.GameState, cmd command.Command) (*Result, error) {
	switch c := cmd.(type) {
	case command.AddPlayer:
		return e.addPlayer(st, c)
	case command.AddGame:
		return e.addGame(st, c)
	case command.AddTable:
		return e.addTable(st, c)
	case command.AddDealer:
		return e.addDealer(st, c)
	case command.AddRound:
		return e.addRound(st, c)
	case command.PlaceBet:
		return e.placeBet(st, c)
	case command.ResolveBet:
		return e.resolveBet(st, c)
	case command.Deposit:
		return e.deposit(st, c)
	case command.Withdraw:
		return e.withdraw(st, c)
	case command.SetLimit:
		return e.setLimit(st, c)
	case command.FindPlayer:
		return e.findPlayer(st, c)
	case command.Show:
		return e.show(st, c)
	case command.RemovePlayer:
		return e.removePlayer(st, c)
	case command.DumpExamples:
		return &Result{Examples: command.Examples()}, nil
	default:
		return nil, fmt.Errorf("unhandled command type %T", cmd)
	}
}

func (e *Engine) addPlayer(st *state.GameState, cmd command.AddPlayer) (*Result, error) {
	if cmd.Balance.IsNegative() {
		return nil, model.ErrInvalidAmount
	}
	player := &model.Player{
		ID:        cmd.ID,
		Name:      cmd.Name,
		Balance:   cmd.Balance,
		CreatedAt: e.clock.Now(),
	}
	if err := st.Players.Insert(player); err != nil {
		return nil, err
	}

	e.logger.Info("player added",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("name", player.Name),
	)
	return &Result{Player: player}, nil
}

func (e *Engine) addGame(st *state.GameState, cmd command.AddGame) (*Result, error) {
	if _, ok := st.Games[cmd.ID]; ok {
		return nil, model.ErrDuplicateID
	}
	game := &model.Game{
		ID:        cmd.ID,
		Name:      cmd.Name,
		Kind:      cmd.Kind,
		CreatedAt: e.clock.Now(),
	}
	st.Games[game.ID] = game

	e.logger.Info("game added",
		slog.Int64("game_id", int64(game.ID)),
		slog.String("kind", string(game.Kind)),
	)
	return &Result{Game: game}, nil
}

func (e *Engine) addTable(st *state.GameState, cmd command.AddTable) (*Result, error) {
	if _, ok := st.Tables[cmd.ID]; ok {
		return nil, model.ErrDuplicateID
	}
	if cmd.MinBet.IsNegative() || cmd.MaxBet.LessThan(cmd.MinBet) {
		return nil, model.ErrInvalidAmount
	}
	if err := validateTableRefs(st, cmd); err != nil {
		return nil, err
	}
	table := &model.Table{
		ID:        cmd.ID,
		Name:      cmd.Name,
		GameID:    cmd.GameID,
		MinBet:    cmd.MinBet,
		MaxBet:    cmd.MaxBet,
		DealerID:  cmd.DealerID,
		CreatedAt: e.clock.Now(),
	}
	st.Tables[table.ID] = table

	e.logger.Info("table added",
		slog.Int64("table_id", int64(table.ID)),
		slog.Int64("game_id", int64(table.GameID)),
	)
	return &Result{Table: table}, nil
}

func (e *Engine) addDealer(st *state.GameState, cmd command.AddDealer) (*Result, error) {
	if _, ok := st.Dealers[cmd.ID]; ok {
		return nil, model.ErrDuplicateID
	}
	if _, ok := st.Tables[cmd.TableID]; !ok {
		return nil, model.ErrReferenceNotFound
	}
	dealer := &model.Dealer{
		ID:        cmd.ID,
		Name:      cmd.Name,
		TableID:   cmd.TableID,
		CreatedAt: e.clock.Now(),
	}
	st.Dealers[dealer.ID] = dealer

	e.logger.Info("dealer added",
		slog.Int64("dealer_id", int64(dealer.ID)),
		slog.Int64("table_id", int64(dealer.TableID)),
	)
	return &Result{Dealer: dealer}, nil
}

func (e *Engine) addRound(st *state.GameState, cmd command.AddRound) (*Result, error) {
	if _, ok := st.Rounds[cmd.ID]; ok {
		return nil, model.ErrDuplicateID
	}
	if err := validateRoundRefs(st, cmd); err != nil {
		return nil, err
	}
	round := &model.Round{
		ID:        cmd.ID,
		TableID:   cmd.TableID,
		ParentID:  cmd.ParentID,
		Status:    cmd.Status,
		CreatedAt: e.clock.Now(),
	}
	st.Rounds[round.ID] = round

	e.logger.Info("round added",
		slog.Int64("round_id", int64(round.ID)),
		slog.Int64("table_id", int64(round.TableID)),
	)
	return &Result{Round: round}, nil
}

// placeBet escrows the stake: the amount is debited from the player's
// balance at placement. Loss makes no further balance change; push refunds
// the stake; win credits the amount given at resolution.
func (e *Engine) placeBet(st *state.GameState, cmd command.PlaceBet) (*Result, error) {
	if _, ok := st.Bets[cmd.ID]; ok {
		return nil, model.ErrDuplicateID
	}
	if !cmd.Amount.IsPositive() {
		return nil, model.ErrInvalidAmount
	}
	if err := validateBetRefs(st, cmd); err != nil {
		return nil, err
	}
	player, err := st.Players.FindByID(cmd.PlayerID)
	if err != nil {
		return nil, model.ErrReferenceNotFound
	}
	if player.Balance.LessThan(cmd.Amount) {
		return nil, model.ErrInsufficientBalance
	}

	bet := &model.Bet{
		ID:        cmd.ID,
		PlayerID:  cmd.PlayerID,
		TableID:   cmd.TableID,
		Amount:    cmd.Amount,
		Kind:      cmd.Kind,
		ParentID:  cmd.ParentID,
		RoundID:   cmd.RoundID,
		Outcome:   model.OutcomeUnresolved,
		CreatedAt: e.clock.Now(),
	}
	player.Balance = player.Balance.Sub(cmd.Amount)
	st.Bets[bet.ID] = bet

	e.logger.Info("bet placed",
		slog.Int64("bet_id", int64(bet.ID)),
		slog.Int64("player_id", int64(bet.PlayerID)),
		slog.String("amount", bet.Amount.String()),
	)
	return &Result{Bet: bet}, nil
}

// resolveBet settles the named bet only; child bets are not cascaded
func (e *Engine) resolveBet(st *state.GameState, cmd command.ResolveBet) (*Result, error) {
	bet, ok := st.Bets[cmd.ID]
	if !ok {
		return nil, model.ErrNotFound
	}
	if bet.Resolved() {
		return nil, model.ErrAlreadyResolved
	}
	if cmd.Outcome == model.OutcomeWon && cmd.WinAmount.IsNegative() {
		return nil, model.ErrInvalidAmount
	}
	player, err := st.Players.FindByID(bet.PlayerID)
	if err != nil {
		return nil, model.ErrReferenceNotFound
	}

	switch cmd.Outcome {
	case model.OutcomeWon:
		player.Balance = player.Balance.Add(cmd.WinAmount)
		bet.WinAmount = cmd.WinAmount
	case model.OutcomePushed:
		player.Balance = player.Balance.Add(bet.Amount)
	case model.OutcomeLost:
		// Stake was escrowed at placement; nothing more to move
	}
	bet.Outcome = cmd.Outcome

	e.logger.Info("bet resolved",
		slog.Int64("bet_id", int64(bet.ID)),
		slog.String("outcome", string(bet.Outcome)),
	)
	return &Result{Bet: bet}, nil
}

func (e *Engine) deposit(st *state.GameState, cmd command.Deposit) (*Result, error) {
	if !cmd.Amount.IsPositive() {
		return nil, model.ErrInvalidAmount
	}
	player, err := st.Players.FindByID(cmd.PlayerID)
	if err != nil {
		return nil, err
	}
	player.Balance = player.Balance.Add(cmd.Amount)

	e.logger.Info("deposit",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("amount", cmd.Amount.String()),
	)
	return &Result{Player: player}, nil
}

// withdraw debits the balance, checking every configured period limit
// against a rolling window of committed withdrawals
func (e *Engine) withdraw(st *state.GameState, cmd command.Withdraw) (*Result, error) {
	if !cmd.Amount.IsPositive() {
		return nil, model.ErrInvalidAmount
	}
	player, err := st.Players.FindByID(cmd.PlayerID)
	if err != nil {
		return nil, err
	}
	if player.Balance.LessThan(cmd.Amount) {
		return nil, model.ErrInsufficientBalance
	}

	now := e.clock.Now()
	for kind, limit := range player.Limits {
		withdrawn := player.WithdrawnSince(now.Add(-kind.Window()))
		if withdrawn.Add(cmd.Amount).GreaterThan(limit) {
			return nil, model.ErrLimitExceeded
		}
	}

	player.Balance = player.Balance.Sub(cmd.Amount)
	player.Withdrawals = append(player.Withdrawals, model.Withdrawal{Amount: cmd.Amount, At: now})
	pruneWithdrawals(player, now)

	e.logger.Info("withdrawal",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("amount", cmd.Amount.String()),
	)
	return &Result{Player: player}, nil
}

// pruneWithdrawals drops history older than the widest limit window
func pruneWithdrawals(player *model.Player, now time.Time) {
	cutoff := now.Add(-model.LimitMonthly.Window())
	kept := player.Withdrawals[:0]
	for _, w := range player.Withdrawals {
		if !w.At.Before(cutoff) {
			kept = append(kept, w)
		}
	}
	player.Withdrawals = kept
}

func (e *Engine) setLimit(st *state.GameState, cmd command.SetLimit) (*Result, error) {
	if cmd.Amount.IsNegative() {
		return nil, model.ErrInvalidAmount
	}
	player, err := st.Players.FindByID(cmd.PlayerID)
	if err != nil {
		return nil, err
	}
	if player.Limits == nil {
		player.Limits = make(map[model.LimitKind]decimal.Decimal)
	}
	player.Limits[cmd.Kind] = cmd.Amount

	e.logger.Info("limit set",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("kind", string(cmd.Kind)),
		slog.String("amount", cmd.Amount.String()),
	)
	return &Result{Player: player}, nil
}

// findPlayer matches names case-insensitively on substring, per the DSL;
// exact-match lookup is available on the directory itself
func (e *Engine) findPlayer(st *state.GameState, cmd command.FindPlayer) (*Result, error) {
	players := st.Players.FindByNamePartial(cmd.Name)
	if players == nil {
		players = []*model.Player{}
	}
	return &Result{Players: players}, nil
}

func (e *Engine) show(st *state.GameState, cmd command.Show) (*Result, error) {
	switch cmd.Target {
	case command.ShowPlayers:
		return &Result{Players: st.Players.InOrder()}, nil
	case command.ShowGames:
		return &Result{Games: sortByID(st.Games, func(g *model.Game) int64 { return int64(g.ID) })}, nil
	case command.ShowTables:
		return &Result{Tables: sortByID(st.Tables, func(t *model.Table) int64 { return int64(t.ID) })}, nil
	case command.ShowDealers:
		return &Result{Dealers: sortByID(st.Dealers, func(d *model.Dealer) int64 { return int64(d.ID) })}, nil
	case command.ShowBets:
		return &Result{Bets: sortByID(st.Bets, func(b *model.Bet) int64 { return int64(b.ID) })}, nil
	case command.ShowRounds:
		return &Result{Rounds: sortByID(st.Rounds, func(r *model.Round) int64 { return int64(r.ID) })}, nil
	default:
		return nil, fmt.Errorf("unhandled show target %q", cmd.Target)
	}
}

func (e *Engine) removePlayer(st *state.GameState, cmd command.RemovePlayer) (*Result, error) {
	player, err := st.Players.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}
	if len(st.UnresolvedBets(cmd.ID)) > 0 {
		return nil, model.ErrPlayerHasOpenBets
	}
	if err := st.Players.Remove(cmd.ID); err != nil {
		return nil, err
	}

	e.logger.Info("player removed", slog.Int64("player_id", int64(player.ID)))
	return &Result{Player: player, Removed: true}, nil
}

func sortByID[K comparable, V any](m map[K]V, id func(V) int64) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	slices.SortFunc(values, func(a, b V) int {
		return cmp.Compare(id(a), id(b))
	})
	return values
}
