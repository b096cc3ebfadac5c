package engine

import (
	"github.com/shoockrates/casinosim/internal/command"
	"github.com/shoockrates/casinosim/internal/model"
	"github.com/shoockrates/casinosim/internal/state"
)

// The hierarchy validator checks every declared reference before a bet or
// round is admitted. Parents must pre-exist their children, which keeps the
// bet and round hierarchies forests by construction: no runtime cycle
// detection is needed.

// validateBetRefs verifies the references declared by a place-bet command:
// player, table and round must exist; a parent bet must exist, must not be
// the bet itself, and must belong to the same table.
func validateBetRefs(st *state.GameState, cmd command.PlaceBet) error {
	if _, err := st.Players.FindByID(cmd.PlayerID); err != nil {
		return model.ErrReferenceNotFound
	}
	if _, ok := st.Tables[cmd.TableID]; !ok {
		return model.ErrReferenceNotFound
	}
	if _, ok := st.Rounds[cmd.RoundID]; !ok {
		return model.ErrReferenceNotFound
	}
	if cmd.ParentID != nil {
		if *cmd.ParentID == cmd.ID {
			return model.ErrInvalidParent
		}
		parent, ok := st.Bets[*cmd.ParentID]
		if !ok {
			return model.ErrReferenceNotFound
		}
		if parent.TableID != cmd.TableID {
			return model.ErrInvalidParent
		}
	}
	return nil
}

// validateRoundRefs verifies the references declared by an add-round
// command: the table must exist; a parent round must exist and must not be
// the round itself.
func validateRoundRefs(st *state.GameState, cmd command.AddRound) error {
	if _, ok := st.Tables[cmd.TableID]; !ok {
		return model.ErrReferenceNotFound
	}
	if cmd.ParentID != nil {
		if *cmd.ParentID == cmd.ID {
			return model.ErrInvalidParent
		}
		if _, ok := st.Rounds[*cmd.ParentID]; !ok {
			return model.ErrReferenceNotFound
		}
	}
	return nil
}

// validateTableRefs verifies the references declared by an add-table
// command: the game must exist, and the dealer, if named, must exist.
func validateTableRefs(st *state.GameState, cmd command.AddTable) error {
	if _, ok := st.Games[cmd.GameID]; !ok {
		return model.ErrReferenceNotFound
	}
	if cmd.DealerID != nil {
		if _, ok := st.Dealers[*cmd.DealerID]; !ok {
			return model.ErrReferenceNotFound
		}
	}
	return nil
}
