// Package higherlower implements the higher/lower guessing game.
package higherlower

import (
	"context"
	"errors"
	"fmt"

	"gacha-ledger/internal/game"
	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/rng"
)

const (
	// DefaultMaxBet is the maximum allowed bet.
	DefaultMaxBet = 1000

	// Numbers are drawn from [1, numberRange].
	numberRange = 10
)

// Guess directions.
const (
	GuessHigher = "higher"
	GuessLower  = "lower"
)

// Errors for the higher/lower game.
var (
	ErrInvalidBet    = errors.New("bet amount must be positive")
	ErrBetTooHigh    = errors.New("bet exceeds maximum allowed")
	ErrInvalidGuess  = errors.New("guess must be \"higher\" or \"lower\"")
	ErrMissingGuess  = errors.New("guess is required")
	ErrInvalidNumber = errors.New("numbers must be between 1 and 10 and differ")
)

// HigherLower implements the Game interface. One round draws a current
// number from 1-10 and a next number from the 9 remaining values; the
// player wins their bet if the guessed direction matches.
type HigherLower struct {
	maxBet int64
	src    rng.Source
}

// Config holds configuration for the higher/lower game.
type Config struct {
	MaxBet int64
}

// New creates a HigherLower game. A nil src selects the crypto-backed default.
func New(cfg *Config, src rng.Source) *HigherLower {
	maxBet := int64(DefaultMaxBet)
	if cfg != nil && cfg.MaxBet > 0 {
		maxBet = cfg.MaxBet
	}
	if src == nil {
		src = rng.Default()
	}
	return &HigherLower{maxBet: maxBet, src: src}
}

// Name returns the game's display name.
func (h *HigherLower) Name() string {
	return "Higher/Lower"
}

// Kind returns the game kind recorded in the gamble history.
func (h *HigherLower) Kind() string {
	return model.GameHigherLower
}

// ValidateBet checks the bet amount.
func (h *HigherLower) ValidateBet(bet int64) error {
	if bet <= 0 {
		return ErrInvalidBet
	}
	if bet > h.maxBet {
		return fmt.Errorf("%w: max bet is %d", ErrBetTooHigh, h.maxBet)
	}
	return nil
}

// Stake returns the funds required: the full bet, lost on a wrong guess.
func (h *HigherLower) Stake(bet int64) int64 {
	return bet
}

// Cost returns 0; the round settles entirely through the result delta.
func (h *HigherLower) Cost(bet int64) int64 {
	return 0
}

// Play runs one round. params must carry the "guess" key; "current" and
// "next" may force the drawn numbers in tests.
func (h *HigherLower) Play(ctx context.Context, bet int64, params map[string]any) (*game.Result, error) {
	if err := h.ValidateBet(bet); err != nil {
		return nil, err
	}

	guess, err := extractGuess(params)
	if err != nil {
		return nil, err
	}

	current, next, err := h.resolveNumbers(params)
	if err != nil {
		return nil, err
	}

	win := (guess == GuessHigher && next > current) ||
		(guess == GuessLower && next < current)

	result := &game.Result{
		Details: map[string]any{
			"current": current,
			"next":    next,
			"guess":   guess,
		},
	}
	if win {
		result.Win = bet
		result.Delta = bet
		result.Description = fmt.Sprintf("You won! The next number was %d.", next)
	} else {
		result.Win = 0
		result.Delta = -bet
		result.Description = fmt.Sprintf("You lost! The next number was %d.", next)
	}

	return result, nil
}

// resolveNumbers uses forced numbers from params when present, otherwise
// draws the current number from 1-10 and the next from the 9 remaining.
func (h *HigherLower) resolveNumbers(params map[string]any) (current, next int, err error) {
	fc, hasCurrent := intParam(params, "current")
	fn, hasNext := intParam(params, "next")
	if hasCurrent && hasNext {
		if fc < 1 || fc > numberRange || fn < 1 || fn > numberRange || fc == fn {
			return 0, 0, ErrInvalidNumber
		}
		return fc, fn, nil
	}

	current = h.src.IntN(numberRange) + 1

	// Draw from the 9 values that remain once current is excluded.
	next = h.src.IntN(numberRange-1) + 1
	if next >= current {
		next++
	}
	return current, next, nil
}

func extractGuess(params map[string]any) (string, error) {
	if params == nil {
		return "", ErrMissingGuess
	}
	v, ok := params["guess"]
	if !ok {
		return "", ErrMissingGuess
	}
	guess, ok := v.(string)
	if !ok {
		return "", ErrInvalidGuess
	}
	if guess != GuessHigher && guess != GuessLower {
		return "", ErrInvalidGuess
	}
	return guess, nil
}

func intParam(params map[string]any, key string) (int, bool) {
	if params == nil {
		return 0, false
	}
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	default:
		return 0, false
	}
}
