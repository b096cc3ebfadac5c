package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/shoockrates/casinosim/internal/model"
	"github.com/shoockrates/casinosim/internal/state"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newSession(id state.SessionID) *state.Session {
	st := state.New()
	s.Require().NoError(st.Players.Insert(&model.Player{
		ID:      1,
		Name:    "John Smith",
		Balance: decimal.NewFromInt(1000),
	}))
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &state.Session{ID: id, State: st, CreatedAt: now, UpdatedAt: now}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("sess-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)

	player, err := got.State.Players.FindByID(1)
	s.Require().NoError(err)
	s.Equal("John Smith", player.Name)
}

func (s *StorageSuite) TestGetMissingSession() {
	_, err := s.storage.GetSession(s.ctx, "nope")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("sess-1")))
	s.Require().NoError(s.storage.DeleteSession(s.ctx, "sess-1"))

	_, err := s.storage.GetSession(s.ctx, "sess-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestListSessionsSorted() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("b")))
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("a")))

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal([]state.SessionID{"a", "b"}, ids)
}
