// Package game defines the game interface and registry for the
// gambling mini-games.
package game

import "context"

// Result represents the outcome of one completed round.
type Result struct {
	Win         int64          // Win amount recorded in the gamble history (0 on loss)
	Delta       int64          // Balance change to settle after the upfront cost
	Description string         // Human-readable result description
	Details     map[string]any // Game-specific details (grid, numbers, choices)
}

// Game is implemented by every mini-game. Games are pure deciders: the
// caller owns the lock, the affordability guard, the balance writes, and
// the gamble record.
type Game interface {
	// Name returns the game's display name.
	Name() string

	// Kind returns the game kind recorded in the gamble history.
	Kind() string

	// ValidateBet checks the bet amount before any state is touched.
	ValidateBet(bet int64) error

	// Stake returns the funds an account must hold to play the round.
	Stake(bet int64) int64

	// Cost returns the amount debited up front, before the round runs.
	// Zero when the game settles entirely through the result delta.
	Cost(bet int64) int64

	// Play runs one round and returns the result. params carries
	// game-specific inputs (a guess, a choice) and may force drawn
	// values in tests.
	Play(ctx context.Context, bet int64, params map[string]any) (*Result, error)
}
