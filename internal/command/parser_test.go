package command

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/shoockrates/casinosim/internal/model"
)

type ParserSuite struct {
	suite.Suite
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserSuite))
}

func (s *ParserSuite) parse(line string) Command {
	cmd, err := Parse(line)
	s.Require().NoError(err, line)
	return cmd
}

func (s *ParserSuite) parseErr(line string) *ParseError {
	_, err := Parse(line)
	s.Require().Error(err, line)
	pe, ok := err.(*ParseError)
	s.Require().True(ok, "expected *ParseError, got %T", err)
	return pe
}

func (s *ParserSuite) TestAddPlayer() {
	cmd := s.parse(`add player 1 "John Smith" 1000.0`)

	ap, ok := cmd.(AddPlayer)
	s.Require().True(ok)
	s.Equal(model.PlayerID(1), ap.ID)
	s.Equal("John Smith", ap.Name)
	s.True(ap.Balance.Equal(decimal.RequireFromString("1000.0")))
}

func (s *ParserSuite) TestQuotedStringKeepsSpaces() {
	cmd := s.parse(`add game 7 "High  Stakes   Blackjack" Blackjack`)

	ag := cmd.(AddGame)
	s.Equal("High  Stakes   Blackjack", ag.Name)
	s.Equal(model.GameBlackjack, ag.Kind)
}

func (s *ParserSuite) TestAddTableWithAndWithoutDealer() {
	cmd := s.parse(`add table 1 "Main Floor" 1 5.0 500.0`)
	at := cmd.(AddTable)
	s.Nil(at.DealerID)

	cmd = s.parse(`add table 2 "Side Room" 1 5.0 500.0 dealer 3`)
	at = cmd.(AddTable)
	s.Require().NotNil(at.DealerID)
	s.Equal(model.DealerID(3), *at.DealerID)
}

func (s *ParserSuite) TestAddRoundDefaultsToActive() {
	cmd := s.parse(`add round 1 table 2`)

	ar := cmd.(AddRound)
	s.Equal(model.RoundID(1), ar.ID)
	s.Equal(model.TableID(2), ar.TableID)
	s.Nil(ar.ParentID)
	s.Equal(model.RoundActive, ar.Status)
}

func (s *ParserSuite) TestAddRoundWithParentAndStatus() {
	cmd := s.parse(`add round 2 table 1 parent 1 status Finished`)

	ar := cmd.(AddRound)
	s.Require().NotNil(ar.ParentID)
	s.Equal(model.RoundID(1), *ar.ParentID)
	s.Equal(model.RoundFinished, ar.Status)
}

func (s *ParserSuite) TestPlaceBet() {
	cmd := s.parse(`place bet 1 player 2 table 3 amount 500.0 type Red round 4`)

	pb := cmd.(PlaceBet)
	s.Equal(model.BetID(1), pb.ID)
	s.Equal(model.PlayerID(2), pb.PlayerID)
	s.Equal(model.TableID(3), pb.TableID)
	s.True(pb.Amount.Equal(decimal.RequireFromString("500.0")))
	s.Equal(model.BetRed, pb.Kind)
	s.Nil(pb.ParentID)
	s.Equal(model.RoundID(4), pb.RoundID)
}

func (s *ParserSuite) TestPlaceBetWithParent() {
	cmd := s.parse(`place bet 5 player 2 table 3 amount 10.5 type DontPass parent 1 round 4`)

	pb := cmd.(PlaceBet)
	s.Require().NotNil(pb.ParentID)
	s.Equal(model.BetID(1), *pb.ParentID)
}

func (s *ParserSuite) TestResolveBetOutcomes() {
	cmd := s.parse(`resolve bet 1 win 250.0`)
	rb := cmd.(ResolveBet)
	s.Equal(model.OutcomeWon, rb.Outcome)
	s.True(rb.WinAmount.Equal(decimal.RequireFromString("250.0")))

	rb = s.parse(`resolve bet 1 lose`).(ResolveBet)
	s.Equal(model.OutcomeLost, rb.Outcome)

	rb = s.parse(`resolve bet 1 push`).(ResolveBet)
	s.Equal(model.OutcomePushed, rb.Outcome)
}

func (s *ParserSuite) TestMoneyCommands() {
	d := s.parse(`deposit player 1 amount 200.0`).(Deposit)
	s.Equal(model.PlayerID(1), d.PlayerID)

	w := s.parse(`withdraw player 1 amount 100.0`).(Withdraw)
	s.True(w.Amount.Equal(decimal.RequireFromString("100.0")))

	l := s.parse(`set limit player 1 MonthlyLimit 2500.0`).(SetLimit)
	s.Equal(model.LimitMonthly, l.Kind)
}

func (s *ParserSuite) TestFindShowRemoveDump() {
	f := s.parse(`find player name "Smith"`).(FindPlayer)
	s.Equal("Smith", f.Name)

	sh := s.parse(`show bets`).(Show)
	s.Equal(ShowBets, sh.Target)
	s.Equal(ShowDealers, s.parse(`show dealers`).(Show).Target)

	r := s.parse(`remove player 3`).(RemovePlayer)
	s.Equal(model.PlayerID(3), r.ID)

	_, ok := s.parse(`dump examples`).(DumpExamples)
	s.True(ok)
}

func (s *ParserSuite) TestUnknownCommand() {
	pe := s.parseErr(`shuffle deck 1`)
	s.Equal(UnknownCommand, pe.Kind)
	s.Equal("shuffle", pe.Token)

	pe = s.parseErr(`add casino 1`)
	s.Equal(UnknownCommand, pe.Kind)
	s.Equal("casino", pe.Token)
}

func (s *ParserSuite) TestTypeMismatchOnNumbers() {
	pe := s.parseErr(`add player abc "John" 100.0`)
	s.Equal(TypeMismatch, pe.Kind)
	s.Equal("abc", pe.Token)

	pe = s.parseErr(`deposit player 1 amount lots`)
	s.Equal(TypeMismatch, pe.Kind)
	s.Equal("lots", pe.Token)
}

func (s *ParserSuite) TestKeywordsAreCaseSensitive() {
	pe := s.parseErr(`add game 1 "G" blackjack`)
	s.Equal(TypeMismatch, pe.Kind)

	pe = s.parseErr(`resolve bet 1 Win 10.0`)
	s.Equal(TypeMismatch, pe.Kind)

	pe = s.parseErr(`set limit player 1 dailylimit 10.0`)
	s.Equal(TypeMismatch, pe.Kind)
}

func (s *ParserSuite) TestMissingField() {
	pe := s.parseErr(`add player 1 "John"`)
	s.Equal(MissingField, pe.Kind)

	pe = s.parseErr(`resolve bet 1 win`)
	s.Equal(MissingField, pe.Kind)

	pe = s.parseErr(`place bet 1 player 1 table 1 amount 5.0 type Red`)
	s.Equal(MissingField, pe.Kind)
}

func (s *ParserSuite) TestUnterminatedQuote() {
	pe := s.parseErr(`add player 1 "John Smith 100.0`)
	s.Equal(MissingField, pe.Kind)
}

func (s *ParserSuite) TestUnquotedStringRejected() {
	pe := s.parseErr(`add player 1 John 100.0`)
	s.Equal(TypeMismatch, pe.Kind)
	s.Equal("John", pe.Token)
}

func (s *ParserSuite) TestOutOfOrderClauses() {
	// parent must come before round in place bet
	pe := s.parseErr(`place bet 1 player 1 table 1 amount 5.0 type Red round 1 parent 2`)
	s.Equal(OutOfOrderClause, pe.Kind)
	s.Equal("parent", pe.Token)

	// parent must come before status in add round
	pe = s.parseErr(`add round 2 table 1 status Active parent 1`)
	s.Equal(OutOfOrderClause, pe.Kind)
	s.Equal("parent", pe.Token)
}

func (s *ParserSuite) TestTrailingTokensRejected() {
	pe := s.parseErr(`show players now`)
	s.Equal(TypeMismatch, pe.Kind)
	s.Equal("now", pe.Token)
}

func (s *ParserSuite) TestQuotedTokenCannotActAsNumber() {
	pe := s.parseErr(`deposit player "1" amount 5.0`)
	s.Equal(TypeMismatch, pe.Kind)
}
