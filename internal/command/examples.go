package command

// Examples returns one valid command line per grammar production,
// in the order the grammar lists them. Used by "dump examples".
func Examples() []string {
	return []string{
		`add player 1 "John Smith" 1000.0`,
		`add game 1 "High Stakes Blackjack" Blackjack`,
		`add table 1 "Main Floor 3" 1 5.0 500.0 dealer 1`,
		`place bet 1 player 1 table 1 amount 50.0 type Red round 1`,
		`place bet 2 player 1 table 1 amount 25.0 type Black parent 1 round 1`,
		`add round 1 table 1`,
		`add round 2 table 1 parent 1 status Active`,
		`resolve bet 1 win 100.0`,
		`resolve bet 2 lose`,
		`add dealer 1 "Jane Doe" table 1`,
		`deposit player 1 amount 200.0`,
		`withdraw player 1 amount 100.0`,
		`set limit player 1 DailyLimit 500.0`,
		`find player name "Smith"`,
		`show players`,
		`remove player 1`,
		`dump examples`,
	}
}
