package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlayerID uniquely identifies a player across the system
type PlayerID int64

// LimitKind identifies the period a spending limit applies to
type LimitKind string

const (
	LimitDaily   LimitKind = "DailyLimit"
	LimitWeekly  LimitKind = "WeeklyLimit"
	LimitMonthly LimitKind = "MonthlyLimit"
)

// ValidLimitKind reports whether k is one of the defined limit kinds
func ValidLimitKind(k LimitKind) bool {
	switch k {
	case LimitDaily, LimitWeekly, LimitMonthly:
		return true
	}
	return false
}

// Window returns the rolling window covered by the limit kind
func (k LimitKind) Window() time.Duration {
	switch k {
	case LimitDaily:
		return 24 * time.Hour
	case LimitWeekly:
		return 7 * 24 * time.Hour
	case LimitMonthly:
		return 30 * 24 * time.Hour
	}
	return 0
}

// Withdrawal records a committed withdrawal, kept for limit tracking
type Withdrawal struct {
	Amount decimal.Decimal `json:"amount"`
	At     time.Time       `json:"at"`
}

// Player represents a casino patron with a monetary balance.
// The balance is never negative after a committed operation.
type Player struct {
	ID          PlayerID                      `json:"id"`
	Name        string                        `json:"name"`
	Balance     decimal.Decimal               `json:"balance"`
	Limits      map[LimitKind]decimal.Decimal `json:"limits,omitempty"`
	Withdrawals []Withdrawal                  `json:"withdrawals,omitempty"`
	CreatedAt   time.Time                     `json:"created_at"`
}

// WithdrawnSince sums committed withdrawals at or after the cutoff
func (p *Player) WithdrawnSince(cutoff time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, w := range p.Withdrawals {
		if !w.At.Before(cutoff) {
			total = total.Add(w.Amount)
		}
	}
	return total
}
