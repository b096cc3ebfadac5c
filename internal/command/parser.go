package command

import (
	"strconv"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/shoockrates/casinosim/internal/model"
)

// token is one lexical unit of a command line. Quoted strings keep their
// spaces and are marked so they cannot pass for keywords or numbers.
type token struct {
	text   string
	quoted bool
}

// tokenize splits a line into whitespace-separated tokens, honoring
// double-quoted strings. An unterminated quote is a missing-field error.
func tokenize(line string) ([]token, *ParseError) {
	var toks []token
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		if runes[i] == '"' {
			j := i + 1
			for j < len(runes) && runes[j] != '"' {
				j++
			}
			if j >= len(runes) {
				return nil, &ParseError{Kind: MissingField, Token: string(runes[i:]), Expected: []string{"closing quote"}}
			}
			toks = append(toks, token{text: string(runes[i+1 : j]), quoted: true})
			i = j + 1
			continue
		}
		j := i
		for j < len(runes) && !unicode.IsSpace(runes[j]) {
			j++
		}
		toks = append(toks, token{text: string(runes[i:j])})
		i = j
	}
	return toks, nil
}

// parser consumes tokens left to right with single-token lookahead
type parser struct {
	toks []token
	pos  int
}

// Parse turns one line of DSL text into a typed Command, or a *ParseError
// identifying the offending token and the expected alternatives. Parsing
// performs no semantic validation; referenced ids are checked by the engine.
func Parse(line string) (Command, error) {
	toks, perr := tokenize(line)
	if perr != nil {
		return nil, perr
	}
	p := &parser{toks: toks}

	head, err := p.keyword("add", "place", "resolve", "deposit", "withdraw", "set", "find", "show", "remove", "dump")
	if err != nil {
		return nil, unknownHead(err)
	}

	switch head {
	case "add":
		sub, err := p.keyword("player", "game", "table", "round", "dealer")
		if err != nil {
			return nil, unknownHead(err)
		}
		switch sub {
		case "player":
			return p.addPlayer()
		case "game":
			return p.addGame()
		case "table":
			return p.addTable()
		case "round":
			return p.addRound()
		default:
			return p.addDealer()
		}
	case "place":
		if _, err := p.keyword("bet"); err != nil {
			return nil, unknownHead(err)
		}
		return p.placeBet()
	case "resolve":
		if _, err := p.keyword("bet"); err != nil {
			return nil, unknownHead(err)
		}
		return p.resolveBet()
	case "deposit":
		if _, err := p.keyword("player"); err != nil {
			return nil, unknownHead(err)
		}
		return p.deposit()
	case "withdraw":
		if _, err := p.keyword("player"); err != nil {
			return nil, unknownHead(err)
		}
		return p.withdraw()
	case "set":
		if _, err := p.keyword("limit"); err != nil {
			return nil, unknownHead(err)
		}
		if _, err := p.keyword("player"); err != nil {
			return nil, err
		}
		return p.setLimit()
	case "find":
		if _, err := p.keyword("player"); err != nil {
			return nil, unknownHead(err)
		}
		if _, err := p.keyword("name"); err != nil {
			return nil, err
		}
		return p.findPlayer()
	case "show":
		return p.show()
	case "remove":
		if _, err := p.keyword("player"); err != nil {
			return nil, unknownHead(err)
		}
		return p.removePlayer()
	default: // dump
		if _, err := p.keyword("examples"); err != nil {
			return nil, unknownHead(err)
		}
		if err := p.end(); err != nil {
			return nil, err
		}
		return DumpExamples{}, nil
	}
}

// unknownHead rewrites keyword failures in the leading position so an
// unrecognized command reads as UnknownCommand rather than TypeMismatch
func unknownHead(err error) error {
	if pe, ok := err.(*ParseError); ok && pe.Kind == TypeMismatch {
		return &ParseError{Kind: UnknownCommand, Token: pe.Token, Expected: pe.Expected}
	}
	return err
}

func (p *parser) addPlayer() (Command, error) {
	id, err := p.intArg("player id")
	if err != nil {
		return nil, err
	}
	name, err := p.stringArg("player name")
	if err != nil {
		return nil, err
	}
	balance, err := p.decimalArg("balance")
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return AddPlayer{ID: model.PlayerID(id), Name: name, Balance: balance}, nil
}

func (p *parser) addGame() (Command, error) {
	id, err := p.intArg("game id")
	if err != nil {
		return nil, err
	}
	name, err := p.stringArg("game name")
	if err != nil {
		return nil, err
	}
	kind, err := p.keyword(string(model.GameBlackjack), string(model.GameRoulette),
		string(model.GamePoker), string(model.GameBaccarat), string(model.GameSlots))
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return AddGame{ID: model.GameID(id), Name: name, Kind: model.GameKind(kind)}, nil
}

func (p *parser) addTable() (Command, error) {
	id, err := p.intArg("table id")
	if err != nil {
		return nil, err
	}
	name, err := p.stringArg("table name")
	if err != nil {
		return nil, err
	}
	gameID, err := p.intArg("game id")
	if err != nil {
		return nil, err
	}
	minBet, err := p.decimalArg("min bet")
	if err != nil {
		return nil, err
	}
	maxBet, err := p.decimalArg("max bet")
	if err != nil {
		return nil, err
	}
	cmd := AddTable{
		ID:     model.TableID(id),
		Name:   name,
		GameID: model.GameID(gameID),
		MinBet: minBet,
		MaxBet: maxBet,
	}
	if p.acceptKeyword("dealer") {
		dealerID, err := p.intArg("dealer id")
		if err != nil {
			return nil, err
		}
		did := model.DealerID(dealerID)
		cmd.DealerID = &did
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (p *parser) addRound() (Command, error) {
	id, err := p.intArg("round id")
	if err != nil {
		return nil, err
	}
	if _, err := p.keyword("table"); err != nil {
		return nil, err
	}
	tableID, err := p.intArg("table id")
	if err != nil {
		return nil, err
	}
	cmd := AddRound{
		ID:      model.RoundID(id),
		TableID: model.TableID(tableID),
		Status:  model.RoundActive,
	}
	if p.acceptKeyword("parent") {
		parentID, err := p.intArg("parent round id")
		if err != nil {
			return nil, err
		}
		pid := model.RoundID(parentID)
		cmd.ParentID = &pid
	}
	if p.acceptKeyword("status") {
		status, err := p.keyword(string(model.RoundActive), string(model.RoundFinished), string(model.RoundCancelled))
		if err != nil {
			return nil, err
		}
		cmd.Status = model.RoundStatus(status)
	}
	if err := p.endAllowing("parent"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (p *parser) addDealer() (Command, error) {
	id, err := p.intArg("dealer id")
	if err != nil {
		return nil, err
	}
	name, err := p.stringArg("dealer name")
	if err != nil {
		return nil, err
	}
	if _, err := p.keyword("table"); err != nil {
		return nil, err
	}
	tableID, err := p.intArg("table id")
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return AddDealer{ID: model.DealerID(id), Name: name, TableID: model.TableID(tableID)}, nil
}

func (p *parser) placeBet() (Command, error) {
	id, err := p.intArg("bet id")
	if err != nil {
		return nil, err
	}
	if _, err := p.keyword("player"); err != nil {
		return nil, err
	}
	playerID, err := p.intArg("player id")
	if err != nil {
		return nil, err
	}
	if _, err := p.keyword("table"); err != nil {
		return nil, err
	}
	tableID, err := p.intArg("table id")
	if err != nil {
		return nil, err
	}
	if _, err := p.keyword("amount"); err != nil {
		return nil, err
	}
	amount, err := p.decimalArg("amount")
	if err != nil {
		return nil, err
	}
	if _, err := p.keyword("type"); err != nil {
		return nil, err
	}
	kind, err := p.keyword(string(model.BetStraight), string(model.BetSplit), string(model.BetCorner),
		string(model.BetRed), string(model.BetBlack), string(model.BetOdd), string(model.BetEven),
		string(model.BetPass), string(model.BetDontPass))
	if err != nil {
		return nil, err
	}
	cmd := PlaceBet{
		ID:       model.BetID(id),
		PlayerID: model.PlayerID(playerID),
		TableID:  model.TableID(tableID),
		Amount:   amount,
		Kind:     model.BetKind(kind),
	}
	if p.acceptKeyword("parent") {
		parentID, err := p.intArg("parent bet id")
		if err != nil {
			return nil, err
		}
		pid := model.BetID(parentID)
		cmd.ParentID = &pid
	}
	if _, err := p.keyword("round"); err != nil {
		return nil, err
	}
	roundID, err := p.intArg("round id")
	if err != nil {
		return nil, err
	}
	cmd.RoundID = model.RoundID(roundID)
	if err := p.endAllowing("parent"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (p *parser) resolveBet() (Command, error) {
	id, err := p.intArg("bet id")
	if err != nil {
		return nil, err
	}
	outcome, err := p.keyword("win", "lose", "push")
	if err != nil {
		return nil, err
	}
	cmd := ResolveBet{ID: model.BetID(id), WinAmount: decimal.Zero}
	switch outcome {
	case "win":
		amount, err := p.decimalArg("win amount")
		if err != nil {
			return nil, err
		}
		cmd.Outcome = model.OutcomeWon
		cmd.WinAmount = amount
	case "lose":
		cmd.Outcome = model.OutcomeLost
	case "push":
		cmd.Outcome = model.OutcomePushed
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (p *parser) deposit() (Command, error) {
	playerID, err := p.intArg("player id")
	if err != nil {
		return nil, err
	}
	if _, err := p.keyword("amount"); err != nil {
		return nil, err
	}
	amount, err := p.decimalArg("amount")
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return Deposit{PlayerID: model.PlayerID(playerID), Amount: amount}, nil
}

func (p *parser) withdraw() (Command, error) {
	playerID, err := p.intArg("player id")
	if err != nil {
		return nil, err
	}
	if _, err := p.keyword("amount"); err != nil {
		return nil, err
	}
	amount, err := p.decimalArg("amount")
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return Withdraw{PlayerID: model.PlayerID(playerID), Amount: amount}, nil
}

func (p *parser) setLimit() (Command, error) {
	playerID, err := p.intArg("player id")
	if err != nil {
		return nil, err
	}
	kind, err := p.keyword(string(model.LimitDaily), string(model.LimitWeekly), string(model.LimitMonthly))
	if err != nil {
		return nil, err
	}
	amount, err := p.decimalArg("limit amount")
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return SetLimit{PlayerID: model.PlayerID(playerID), Kind: model.LimitKind(kind), Amount: amount}, nil
}

func (p *parser) findPlayer() (Command, error) {
	name, err := p.stringArg("player name")
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return FindPlayer{Name: name}, nil
}

func (p *parser) show() (Command, error) {
	target, err := p.keyword(string(ShowPlayers), string(ShowGames), string(ShowTables),
		string(ShowDealers), string(ShowBets), string(ShowRounds))
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return Show{Target: ShowTarget(target)}, nil
}

func (p *parser) removePlayer() (Command, error) {
	id, err := p.intArg("player id")
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return RemovePlayer{ID: model.PlayerID(id)}, nil
}

// keyword consumes the next token if it equals one of the case-sensitive
// literals, otherwise reports what was expected
func (p *parser) keyword(alternatives ...string) (string, error) {
	tok, ok := p.next()
	if !ok {
		return "", &ParseError{Kind: MissingField, Expected: alternatives}
	}
	if tok.quoted {
		return "", &ParseError{Kind: TypeMismatch, Token: tok.text, Expected: alternatives}
	}
	for _, alt := range alternatives {
		if tok.text == alt {
			return tok.text, nil
		}
	}
	return "", &ParseError{Kind: TypeMismatch, Token: tok.text, Expected: alternatives}
}

// acceptKeyword consumes the next token only if it equals the literal
func (p *parser) acceptKeyword(kw string) bool {
	if p.pos < len(p.toks) && !p.toks[p.pos].quoted && p.toks[p.pos].text == kw {
		p.pos++
		return true
	}
	return false
}

func (p *parser) intArg(what string) (int64, error) {
	tok, ok := p.next()
	if !ok {
		return 0, &ParseError{Kind: MissingField, Expected: []string{what}}
	}
	if tok.quoted {
		return 0, &ParseError{Kind: TypeMismatch, Token: tok.text, Expected: []string{what}}
	}
	n, err := strconv.ParseInt(tok.text, 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: TypeMismatch, Token: tok.text, Expected: []string{what}}
	}
	return n, nil
}

func (p *parser) decimalArg(what string) (decimal.Decimal, error) {
	tok, ok := p.next()
	if !ok {
		return decimal.Zero, &ParseError{Kind: MissingField, Expected: []string{what}}
	}
	if tok.quoted {
		return decimal.Zero, &ParseError{Kind: TypeMismatch, Token: tok.text, Expected: []string{what}}
	}
	d, err := decimal.NewFromString(tok.text)
	if err != nil {
		return decimal.Zero, &ParseError{Kind: TypeMismatch, Token: tok.text, Expected: []string{what}}
	}
	return d, nil
}

func (p *parser) stringArg(what string) (string, error) {
	tok, ok := p.next()
	if !ok {
		return "", &ParseError{Kind: MissingField, Expected: []string{what}}
	}
	if !tok.quoted {
		return "", &ParseError{Kind: TypeMismatch, Token: tok.text, Expected: []string{"quoted " + what}}
	}
	return tok.text, nil
}

// end requires that the line is fully consumed
func (p *parser) end() error {
	return p.endAllowing()
}

// endAllowing requires the line to be fully consumed; a trailing token that
// names one of the listed optional clauses is reported as out of order
// rather than as a plain mismatch
func (p *parser) endAllowing(clauses ...string) error {
	tok, ok := p.next()
	if !ok {
		return nil
	}
	if !tok.quoted {
		for _, clause := range clauses {
			if tok.text == clause {
				return &ParseError{Kind: OutOfOrderClause, Token: tok.text}
			}
		}
	}
	return &ParseError{Kind: TypeMismatch, Token: tok.text, Expected: []string{"end of command"}}
}

func (p *parser) next() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok, true
}
