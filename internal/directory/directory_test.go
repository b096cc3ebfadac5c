package directory

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/shoockrates/casinosim/internal/model"
)

type DirectorySuite struct {
	suite.Suite
	dir *Directory
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) SetupTest() {
	s.dir = New()
}

func (s *DirectorySuite) addPlayer(id model.PlayerID, name string) {
	s.Require().NoError(s.dir.Insert(&model.Player{
		ID:      id,
		Name:    name,
		Balance: decimal.NewFromInt(100),
	}))
}

func (s *DirectorySuite) TestInsertAndFindByID() {
	s.addPlayer(2, "Alice")
	s.addPlayer(1, "Bob")
	s.addPlayer(3, "Carol")

	p, err := s.dir.FindByID(2)
	s.Require().NoError(err)
	s.Equal("Alice", p.Name)
	s.Equal(3, s.dir.Len())
}

func (s *DirectorySuite) TestInsertDuplicateFails() {
	s.addPlayer(1, "Alice")

	err := s.dir.Insert(&model.Player{ID: 1, Name: "Imposter"})
	s.ErrorIs(err, model.ErrDuplicateID)

	// Original entry untouched
	p, err := s.dir.FindByID(1)
	s.Require().NoError(err)
	s.Equal("Alice", p.Name)
	s.Equal(1, s.dir.Len())
}

func (s *DirectorySuite) TestFindByIDMissing() {
	s.addPlayer(1, "Alice")

	_, err := s.dir.FindByID(99)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *DirectorySuite) TestInOrderIsStrictlyIncreasing() {
	ids := rand.New(rand.NewSource(42)).Perm(200)
	for _, id := range ids {
		s.addPlayer(model.PlayerID(id), "P")
	}

	players := s.dir.InOrder()
	s.Require().Len(players, 200)
	for i := 1; i < len(players); i++ {
		s.Less(players[i-1].ID, players[i].ID)
	}
}

func (s *DirectorySuite) TestSequentialInsertStaysBalanced() {
	for id := 1; id <= 1024; id++ {
		s.addPlayer(model.PlayerID(id), "P")
	}

	// AVL height is bounded by ~1.44*log2(n)
	limit := int(1.45*math.Log2(1024)) + 2
	s.LessOrEqual(height(s.dir.root), limit)
}

func (s *DirectorySuite) TestRemoveLeaf() {
	s.addPlayer(2, "A")
	s.addPlayer(1, "B")
	s.addPlayer(3, "C")

	s.Require().NoError(s.dir.Remove(1))

	_, err := s.dir.FindByID(1)
	s.ErrorIs(err, model.ErrNotFound)
	s.Equal(2, s.dir.Len())
}

func (s *DirectorySuite) TestRemoveNodeWithTwoChildren() {
	for _, id := range []model.PlayerID{5, 3, 8, 2, 4, 7, 9} {
		s.addPlayer(id, "P")
	}

	s.Require().NoError(s.dir.Remove(5))

	_, err := s.dir.FindByID(5)
	s.ErrorIs(err, model.ErrNotFound)

	players := s.dir.InOrder()
	s.Require().Len(players, 6)
	for i := 1; i < len(players); i++ {
		s.Less(players[i-1].ID, players[i].ID)
	}
}

func (s *DirectorySuite) TestRemoveMissingFails() {
	s.addPlayer(1, "Alice")

	err := s.dir.Remove(42)
	s.ErrorIs(err, model.ErrNotFound)
	s.Equal(1, s.dir.Len())
}

func (s *DirectorySuite) TestRemoveAll() {
	ids := rand.New(rand.NewSource(7)).Perm(100)
	for _, id := range ids {
		s.addPlayer(model.PlayerID(id), "P")
	}
	for _, id := range ids {
		s.Require().NoError(s.dir.Remove(model.PlayerID(id)))
	}
	s.Equal(0, s.dir.Len())
	s.Empty(s.dir.InOrder())
}

func (s *DirectorySuite) TestFindByNameIsExactAndCaseSensitive() {
	s.addPlayer(1, "John Smith")
	s.addPlayer(2, "john smith")
	s.addPlayer(3, "John Smith")

	matches := s.dir.FindByName("John Smith")
	s.Require().Len(matches, 2)
	s.Equal(model.PlayerID(1), matches[0].ID)
	s.Equal(model.PlayerID(3), matches[1].ID)
}

func (s *DirectorySuite) TestFindByNamePartialIsCaseInsensitive() {
	s.addPlayer(1, "John Smith")
	s.addPlayer(2, "Jane Smith")
	s.addPlayer(3, "John Doe")

	matches := s.dir.FindByNamePartial("sMiTh")
	s.Require().Len(matches, 2)
	s.Equal(model.PlayerID(1), matches[0].ID)
	s.Equal(model.PlayerID(2), matches[1].ID)
}

func (s *DirectorySuite) TestFindByNamePartialNoMatches() {
	s.addPlayer(1, "John Smith")

	s.Empty(s.dir.FindByNamePartial("xyz"))
}
