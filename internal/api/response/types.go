package response

import (
	"time"

	"github.com/shoockrates/casinosim/internal/engine"
	"github.com/shoockrates/casinosim/internal/state"
)

// Session represents a session in API responses. The full state is only
// included when a single session is fetched.
type Session struct {
	ID        string           `json:"id"`
	State     *state.GameState `json:"state,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SessionFromModel converts a state.Session to a response Session
func SessionFromModel(s *state.Session, includeState bool) Session {
	resp := Session{
		ID:        string(s.ID),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if includeState {
		resp.State = s.State
	}
	return resp
}

// SessionList is the response for listing sessions
type SessionList struct {
	Sessions []string `json:"sessions"`
}

// SessionListFromIDs converts session ids to a SessionList
func SessionListFromIDs(ids []state.SessionID) SessionList {
	list := SessionList{Sessions: make([]string, 0, len(ids))}
	for _, id := range ids {
		list.Sessions = append(list.Sessions, string(id))
	}
	return list
}

// CommandResult is the response for an executed command
type CommandResult struct {
	Result *engine.Result `json:"result"`
}
