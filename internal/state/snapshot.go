package state

import (
	"cmp"
	"encoding/json"
	"slices"
	"time"

	"github.com/shoockrates/casinosim/internal/directory"
	"github.com/shoockrates/casinosim/internal/model"
)

// SessionID uniquely identifies an interpreter session
type SessionID string

// Session binds a GameState to an id for storage and the HTTP API.
// Commands within one session must be applied serially.
type Session struct {
	ID        SessionID  `json:"id"`
	State     *GameState `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// snapshot is the wire form of a GameState. The directory serializes as an
// ordered player list and is rebuilt on load, so a snapshot round-trips to
// a structurally equal state.
type snapshot struct {
	Players []*model.Player `json:"players"`
	Games   []*model.Game   `json:"games"`
	Tables  []*model.Table  `json:"tables"`
	Dealers []*model.Dealer `json:"dealers"`
	Rounds  []*model.Round  `json:"rounds"`
	Bets    []*model.Bet    `json:"bets"`
}

// MarshalJSON encodes the state as a snapshot with deterministic ordering
func (s *GameState) MarshalJSON() ([]byte, error) {
	snap := snapshot{
		Players: s.Players.InOrder(),
		Games:   sortedValues(s.Games, func(g *model.Game) int64 { return int64(g.ID) }),
		Tables:  sortedValues(s.Tables, func(t *model.Table) int64 { return int64(t.ID) }),
		Dealers: sortedValues(s.Dealers, func(d *model.Dealer) int64 { return int64(d.ID) }),
		Rounds:  sortedValues(s.Rounds, func(r *model.Round) int64 { return int64(r.ID) }),
		Bets:    sortedValues(s.Bets, func(b *model.Bet) int64 { return int64(b.ID) }),
	}
	return json.Marshal(snap)
}

// UnmarshalJSON rebuilds the directory and collections from a snapshot
func (s *GameState) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	s.Players = directory.New()
	for _, p := range snap.Players {
		if err := s.Players.Insert(p); err != nil {
			return err
		}
	}

	s.Games = make(map[model.GameID]*model.Game, len(snap.Games))
	for _, g := range snap.Games {
		s.Games[g.ID] = g
	}
	s.Tables = make(map[model.TableID]*model.Table, len(snap.Tables))
	for _, t := range snap.Tables {
		s.Tables[t.ID] = t
	}
	s.Dealers = make(map[model.DealerID]*model.Dealer, len(snap.Dealers))
	for _, d := range snap.Dealers {
		s.Dealers[d.ID] = d
	}
	s.Rounds = make(map[model.RoundID]*model.Round, len(snap.Rounds))
	for _, r := range snap.Rounds {
		s.Rounds[r.ID] = r
	}
	s.Bets = make(map[model.BetID]*model.Bet, len(snap.Bets))
	for _, b := range snap.Bets {
		s.Bets[b.ID] = b
	}
	return nil
}

func sortedValues[K comparable, V any](m map[K]V, id func(V) int64) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	slices.SortFunc(values, func(a, b V) int {
		return cmp.Compare(id(a), id(b))
	})
	return values
}
