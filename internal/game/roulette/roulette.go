// Package roulette implements the 1-100 roulette with fixed special
// outcomes. The special outcomes carry passthrough URLs for an external
// playback trigger; this package does not interpret them.
package roulette

import (
	"context"

	"gacha-ledger/internal/game"
	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/rng"
)

// DefaultEntryCost is the flat cost of one spin, debited up front.
const DefaultEntryCost = 10

// Special is a fixed special outcome for one roulette number.
type Special struct {
	Message string
	URL     string
}

// Specials maps the three special numbers to their outcomes.
var Specials = map[int]Special{
	10: {Message: "ff", URL: "https://www.youtube.com/watch?v=d3h1I3QDEHU"},
	20: {Message: "My favorite song", URL: "https://www.youtube.com/watch?v=VZZCXP_rFKk"},
	90: {Message: "ggs", URL: "https://www.youtube.com/watch?v=1EUoIhob8t8"},
}

// genericMessage is returned for every non-special number.
const genericMessage = "Thanks for the $10 xD, try again?"

// Roulette implements the Game interface.
type Roulette struct {
	entryCost int64
	src       rng.Source
}

// Config holds configuration for the roulette.
type Config struct {
	EntryCost int64
}

// New creates a Roulette. A nil src selects the crypto-backed default.
func New(cfg *Config, src rng.Source) *Roulette {
	entryCost := int64(DefaultEntryCost)
	if cfg != nil && cfg.EntryCost > 0 {
		entryCost = cfg.EntryCost
	}
	if src == nil {
		src = rng.Default()
	}
	return &Roulette{entryCost: entryCost, src: src}
}

// Name returns the game's display name.
func (r *Roulette) Name() string {
	return "Alex Roulette"
}

// Kind returns the game kind recorded in the gamble history.
func (r *Roulette) Kind() string {
	return model.GameRoulette
}

// ValidateBet accepts any bet; the spin always costs the flat entry fee.
func (r *Roulette) ValidateBet(bet int64) error {
	return nil
}

// Stake returns the funds required to spin: the flat entry cost.
func (r *Roulette) Stake(bet int64) int64 {
	return r.entryCost
}

// Cost returns the upfront debit: the flat entry cost.
func (r *Roulette) Cost(bet int64) int64 {
	return r.entryCost
}

// Play spins the roulette. params may force the number through the
// "number" key for tests. The win amount is always 0; the entry cost is
// the whole wager.
func (r *Roulette) Play(ctx context.Context, bet int64, params map[string]any) (*game.Result, error) {
	number := r.resolveNumber(params)

	details := map[string]any{
		"number":  number,
		"special": false,
	}
	message := genericMessage

	if special, ok := Specials[number]; ok {
		details["special"] = true
		details["url"] = special.URL
		message = special.Message
	}

	return &game.Result{
		Win:         0,
		Delta:       0, // entry cost was already debited up front
		Description: message,
		Details:     details,
	}, nil
}

func (r *Roulette) resolveNumber(params map[string]any) int {
	if params != nil {
		if v, ok := params["number"]; ok {
			switch n := v.(type) {
			case int:
				if n >= 1 && n <= 100 {
					return n
				}
			case float64:
				if n >= 1 && n <= 100 {
					return int(n)
				}
			}
		}
	}
	return r.src.IntN(100) + 1
}
