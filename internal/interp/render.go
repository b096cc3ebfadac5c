package interp

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shoockrates/casinosim/internal/engine"
	"github.com/shoockrates/casinosim/internal/model"
)

// Render writes a human-readable form of one command result
func Render(w io.Writer, result *engine.Result) {
	switch {
	case len(result.Examples) > 0:
		for _, line := range result.Examples {
			fmt.Fprintln(w, line)
		}
	case result.Players != nil:
		renderPlayers(w, result.Players)
	case result.Games != nil:
		renderGames(w, result.Games)
	case result.Tables != nil:
		renderTables(w, result.Tables)
	case result.Dealers != nil:
		renderDealers(w, result.Dealers)
	case result.Bets != nil:
		renderBets(w, result.Bets)
	case result.Rounds != nil:
		renderRounds(w, result.Rounds)
	case result.Removed && result.Player != nil:
		fmt.Fprintf(w, "removed player %d\n", result.Player.ID)
	case result.Player != nil:
		fmt.Fprintf(w, "player %d %q balance %s\n", result.Player.ID, result.Player.Name, result.Player.Balance)
	case result.Game != nil:
		fmt.Fprintf(w, "game %d %q %s\n", result.Game.ID, result.Game.Name, result.Game.Kind)
	case result.Table != nil:
		fmt.Fprintf(w, "table %d %q game %d\n", result.Table.ID, result.Table.Name, result.Table.GameID)
	case result.Dealer != nil:
		fmt.Fprintf(w, "dealer %d %q table %d\n", result.Dealer.ID, result.Dealer.Name, result.Dealer.TableID)
	case result.Round != nil:
		fmt.Fprintf(w, "round %d table %d %s\n", result.Round.ID, result.Round.TableID, result.Round.Status)
	case result.Bet != nil:
		fmt.Fprintf(w, "bet %d player %d amount %s %s\n", result.Bet.ID, result.Bet.PlayerID, result.Bet.Amount, result.Bet.Outcome)
	default:
		fmt.Fprintln(w, "ok")
	}
}

func renderPlayers(w io.Writer, players []*model.Player) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBALANCE")
	for _, p := range players {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.Name, p.Balance)
	}
	tw.Flush()
}

func renderGames(w io.Writer, games []*model.Game) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKIND")
	for _, g := range games {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", g.ID, g.Name, g.Kind)
	}
	tw.Flush()
}

func renderTables(w io.Writer, tables []*model.Table) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGAME\tMIN\tMAX\tDEALER")
	for _, t := range tables {
		dealer := "-"
		if t.DealerID != nil {
			dealer = fmt.Sprintf("%d", *t.DealerID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n", t.ID, t.Name, t.GameID, t.MinBet, t.MaxBet, dealer)
	}
	tw.Flush()
}

func renderDealers(w io.Writer, dealers []*model.Dealer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTABLE")
	for _, d := range dealers {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", d.ID, d.Name, d.TableID)
	}
	tw.Flush()
}

func renderBets(w io.Writer, bets []*model.Bet) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPLAYER\tTABLE\tROUND\tAMOUNT\tTYPE\tPARENT\tOUTCOME")
	for _, b := range bets {
		parent := "-"
		if b.ParentID != nil {
			parent = fmt.Sprintf("%d", *b.ParentID)
		}
		outcome := string(b.Outcome)
		if b.Outcome == model.OutcomeWon {
			outcome = fmt.Sprintf("Won(%s)", b.WinAmount)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\t%s\t%s\n",
			b.ID, b.PlayerID, b.TableID, b.RoundID, b.Amount, b.Kind, parent, outcome)
	}
	tw.Flush()
}

func renderRounds(w io.Writer, rounds []*model.Round) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTABLE\tPARENT\tSTATUS")
	for _, r := range rounds {
		parent := "-"
		if r.ParentID != nil {
			parent = fmt.Sprintf("%d", *r.ParentID)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", r.ID, r.TableID, parent, r.Status)
	}
	tw.Flush()
}
