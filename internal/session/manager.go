// Package session manages interpreter sessions: each session owns one
// GameState, persisted through storage and mutated only under a per-session
// lock. The engine assumes exclusive access to a state, so the manager is
// the serialization point for hosts with more than one caller.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/shoockrates/casinosim/internal/command"
	"github.com/shoockrates/casinosim/internal/dependencies/clock"
	"github.com/shoockrates/casinosim/internal/engine"
	"github.com/shoockrates/casinosim/internal/state"
	"github.com/shoockrates/casinosim/internal/storage"
)

// Manager creates, loads and executes against sessions
type Manager struct {
	storage storage.Storage
	engine  *engine.Engine
	clock   clock.Clock
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[state.SessionID]*sync.Mutex
}

// NewManager creates a session manager
func NewManager(store storage.Storage, eng *engine.Engine, clk clock.Clock, logger *slog.Logger) *Manager {
	return &Manager{
		storage: store,
		engine:  eng,
		clock:   clk,
		logger:  logger,
		locks:   make(map[state.SessionID]*sync.Mutex),
	}
}

// Create starts a new session with an empty game state
func (m *Manager) Create(ctx context.Context) (*state.Session, error) {
	now := m.clock.Now()
	session := &state.Session{
		ID:        state.SessionID(uuid.NewString()),
		State:     state.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	m.logger.Info("session created", slog.String("session_id", string(session.ID)))
	return session, nil
}

// Get loads a session by id
func (m *Manager) Get(ctx context.Context, id state.SessionID) (*state.Session, error) {
	return m.storage.GetSession(ctx, id)
}

// Delete removes a session
func (m *Manager) Delete(ctx context.Context, id state.SessionID) error {
	if err := m.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.locks, id)
	m.mu.Unlock()

	m.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// List returns all known session ids
func (m *Manager) List(ctx context.Context) ([]state.SessionID, error) {
	return m.storage.ListSessions(ctx)
}

// Execute parses one command line and applies it to the session under its
// lock. A parse or execution failure leaves the stored state untouched.
func (m *Manager) Execute(ctx context.Context, id state.SessionID, line string) (*engine.Result, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return nil, err
	}

	lock := m.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := m.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := m.engine.Apply(session.State, cmd)
	if err != nil {
		return nil, err
	}

	session.UpdatedAt = m.clock.Now()
	if err := m.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

func (m *Manager) lockFor(id state.SessionID) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[id] = lock
	}
	return lock
}
