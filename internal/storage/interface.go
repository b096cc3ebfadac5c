package storage

import (
	"context"

	"github.com/shoockrates/casinosim/internal/state"
)

// Storage defines the interface for session snapshot persistence
type Storage interface {
	SaveSession(ctx context.Context, session *state.Session) error
	GetSession(ctx context.Context, id state.SessionID) (*state.Session, error)
	DeleteSession(ctx context.Context, id state.SessionID) error
	ListSessions(ctx context.Context) ([]state.SessionID, error)
}
