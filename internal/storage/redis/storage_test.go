package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/shoockrates/casinosim/internal/model"
	"github.com/shoockrates/casinosim/internal/state"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func (s *StorageSuite) newSession(id state.SessionID) *state.Session {
	st := state.New()
	s.Require().NoError(st.Players.Insert(&model.Player{
		ID:      1,
		Name:    "John Smith",
		Balance: decimal.NewFromInt(1000),
		Limits: map[model.LimitKind]decimal.Decimal{
			model.LimitDaily: decimal.NewFromInt(500),
		},
	}))
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &state.Session{ID: id, State: st, CreatedAt: now, UpdatedAt: now}
}

func (s *StorageSuite) TestSaveAndGetSessionRoundTrips() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("sess-1")))

	got, err := s.storage.GetSession(s.ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal(state.SessionID("sess-1"), got.ID)

	player, err := got.State.Players.FindByID(1)
	s.Require().NoError(err)
	s.Equal("John Smith", player.Name)
	s.True(player.Balance.Equal(decimal.NewFromInt(1000)))
	s.True(player.Limits[model.LimitDaily].Equal(decimal.NewFromInt(500)))
}

func (s *StorageSuite) TestGetMissingSession() {
	_, err := s.storage.GetSession(s.ctx, "nope")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSessionRemovesFromIndex() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("sess-1")))
	s.Require().NoError(s.storage.DeleteSession(s.ctx, "sess-1"))

	_, err := s.storage.GetSession(s.ctx, "sess-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StorageSuite) TestListSessionsSorted() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("b")))
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("a")))

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal([]state.SessionID{"a", "b"}, ids)
}

func (s *StorageSuite) TestSessionExpiresAfterTTL() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("sess-1")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "sess-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}
