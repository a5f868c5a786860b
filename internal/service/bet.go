package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Bet is a closed variant: either a fixed amount or "all", resolved
// against the current balance before any mutation occurs.
type Bet struct {
	all    bool
	amount int64
}

// FixedBet returns a bet of a concrete amount.
func FixedBet(amount int64) Bet {
	return Bet{amount: amount}
}

// AllBet returns the bet-everything variant.
func AllBet() Bet {
	return Bet{all: true}
}

// ParseBet parses a bet argument: a positive integer or the literal
// "all". Anything else is ErrInvalidBet.
func ParseBet(s string) (Bet, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if trimmed == "all" {
		return AllBet(), nil
	}

	amount, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return Bet{}, fmt.Errorf("%w: %q is not a number or \"all\"", ErrInvalidBet, s)
	}
	if amount <= 0 {
		return Bet{}, fmt.Errorf("%w: amount must be positive", ErrInvalidBet)
	}
	return FixedBet(amount), nil
}

// IsAll reports whether this is the bet-everything variant.
func (b Bet) IsAll() bool {
	return b.all
}

// Resolve returns the concrete amount to wager given the current
// balance. "all" resolves to the full balance, clamped at 0.
func (b Bet) Resolve(balance int64) int64 {
	if b.all {
		if balance < 0 {
			return 0
		}
		return balance
	}
	return b.amount
}
