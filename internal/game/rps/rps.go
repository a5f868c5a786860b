// Package rps implements rock-paper-scissors against the house.
package rps

import (
	"context"
	"errors"
	"fmt"

	"gacha-ledger/internal/game"
	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/rng"
)

// DefaultStake is the flat stake of one round: the amount lost on a
// losing round, and the amount won on a winning one. A draw costs 1.
const DefaultStake = 5

// Choices in cycle order: each one beats the previous.
const (
	Rock     = "rock"
	Paper    = "paper"
	Scissors = "scissors"
)

// Choices lists the valid choices; the index is the position in the cycle.
var Choices = []string{Rock, Paper, Scissors}

// Errors for the rps game.
var (
	ErrInvalidChoice = errors.New("choice must be rock, paper, or scissors")
	ErrMissingChoice = errors.New("choice is required")
)

// RPS implements the Game interface.
type RPS struct {
	stake int64
	src   rng.Source
}

// Config holds configuration for the rps game.
type Config struct {
	Stake int64
}

// New creates an RPS game. A nil src selects the crypto-backed default.
func New(cfg *Config, src rng.Source) *RPS {
	stake := int64(DefaultStake)
	if cfg != nil && cfg.Stake > 0 {
		stake = cfg.Stake
	}
	if src == nil {
		src = rng.Default()
	}
	return &RPS{stake: stake, src: src}
}

// Name returns the game's display name.
func (r *RPS) Name() string {
	return "Rock, Paper, Scissors"
}

// Kind returns the game kind recorded in the gamble history.
func (r *RPS) Kind() string {
	return model.GameRPS
}

// ValidateBet accepts any bet; the round is played at the flat stake.
func (r *RPS) ValidateBet(bet int64) error {
	return nil
}

// Stake returns the funds required: the flat stake, lost on a losing round.
func (r *RPS) Stake(bet int64) int64 {
	return r.stake
}

// Cost returns 0; the round settles entirely through the result delta.
func (r *RPS) Cost(bet int64) int64 {
	return 0
}

// Play runs one round. params must carry the "choice" key; "house" may
// force the house's choice in tests. The recorded win amount is
// stake+delta so that win minus bet always equals the applied delta.
func (r *RPS) Play(ctx context.Context, bet int64, params map[string]any) (*game.Result, error) {
	choice, err := extractChoice(params, "choice", true)
	if err != nil {
		return nil, err
	}

	house, err := extractChoice(params, "house", false)
	if err != nil {
		return nil, err
	}
	if house == "" {
		house = Choices[r.src.IntN(len(Choices))]
	}

	playerIdx := choiceIndex(choice)
	houseIdx := choiceIndex(house)

	// 0 = draw, 1 = player wins, 2 = house wins.
	winner := (3 + playerIdx - houseIdx) % 3

	var delta int64
	var description string
	switch winner {
	case 0:
		delta = -1
		description = fmt.Sprintf("It's a draw! You both chose %s.", choice)
	case 1:
		delta = r.stake
		description = fmt.Sprintf("You won! %s beats %s.", choice, house)
	default:
		delta = -r.stake
		description = fmt.Sprintf("You lost! %s beats %s.", house, choice)
	}

	return &game.Result{
		Win:         r.stake + delta,
		Delta:       delta,
		Description: description,
		Details: map[string]any{
			"choice": choice,
			"house":  house,
		},
	}, nil
}

func choiceIndex(choice string) int {
	for i, c := range Choices {
		if c == choice {
			return i
		}
	}
	return -1
}

func extractChoice(params map[string]any, key string, required bool) (string, error) {
	if params == nil {
		if required {
			return "", ErrMissingChoice
		}
		return "", nil
	}
	v, ok := params[key]
	if !ok {
		if required {
			return "", ErrMissingChoice
		}
		return "", nil
	}
	choice, ok := v.(string)
	if !ok || choiceIndex(choice) < 0 {
		return "", ErrInvalidChoice
	}
	return choice, nil
}
