// Package slots implements the 3x3 slot machine.
package slots

import (
	"context"
	"errors"
	"fmt"

	"gacha-ledger/internal/game"
	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/rng"
)

const (
	// DefaultEntryCost is the flat cost of one spin, debited up front.
	DefaultEntryCost = 5

	// Jackpot overrides every other payout when all 9 cells are diamond.
	Jackpot = 10_000_000
)

// Symbol is one reel symbol.
type Symbol string

// Reel symbols.
const (
	Cherry  Symbol = "cherry"
	Lemon   Symbol = "lemon"
	Bell    Symbol = "bell"
	Diamond Symbol = "diamond"
	Seven   Symbol = "seven"
)

// Symbols lists every reel symbol in draw order.
var Symbols = []Symbol{Cherry, Lemon, Bell, Diamond, Seven}

// Payouts maps a symbol to its full-row payout. A matching diagonal pays
// half the center symbol's row payout.
var Payouts = map[Symbol]int64{
	Cherry:  5,
	Lemon:   10,
	Bell:    20,
	Diamond: 100,
	Seven:   15,
}

// Errors for the slots game.
var (
	ErrInvalidGrid = errors.New("grid must be 3x3 with known symbols")
)

// Grid is a 3x3 arrangement of symbols, indexed [row][column].
type Grid [3][3]Symbol

// SlotMachine implements the Game interface.
type SlotMachine struct {
	entryCost int64
	src       rng.Source
}

// Config holds configuration for the slot machine.
type Config struct {
	EntryCost int64
}

// New creates a SlotMachine. A nil src selects the crypto-backed default.
func New(cfg *Config, src rng.Source) *SlotMachine {
	entryCost := int64(DefaultEntryCost)
	if cfg != nil && cfg.EntryCost > 0 {
		entryCost = cfg.EntryCost
	}
	if src == nil {
		src = rng.Default()
	}
	return &SlotMachine{entryCost: entryCost, src: src}
}

// Name returns the game's display name.
func (s *SlotMachine) Name() string {
	return "Slot Machine"
}

// Kind returns the game kind recorded in the gamble history.
func (s *SlotMachine) Kind() string {
	return model.GameSlots
}

// ValidateBet accepts any bet; the spin always costs the flat entry fee.
func (s *SlotMachine) ValidateBet(bet int64) error {
	return nil
}

// Stake returns the funds required to spin: the flat entry cost.
func (s *SlotMachine) Stake(bet int64) int64 {
	return s.entryCost
}

// Cost returns the upfront debit: the flat entry cost.
func (s *SlotMachine) Cost(bet int64) int64 {
	return s.entryCost
}

// Play spins the machine. params may force the grid through the "grid"
// key for tests; otherwise all 9 cells are drawn independently.
func (s *SlotMachine) Play(ctx context.Context, bet int64, params map[string]any) (*game.Result, error) {
	grid, err := s.resolveGrid(params)
	if err != nil {
		return nil, err
	}

	win := CalculateWin(grid)

	var description string
	if win > 0 {
		description = fmt.Sprintf("You won %d!", win)
	} else {
		description = "Sorry, you didn't win anything. Better luck next time!"
	}

	return &game.Result{
		Win:         win,
		Delta:       win, // entry cost was already debited up front
		Description: description,
		Details: map[string]any{
			"grid": grid,
		},
	}, nil
}

// resolveGrid uses a forced grid from params when present, otherwise
// draws a fresh one.
func (s *SlotMachine) resolveGrid(params map[string]any) (Grid, error) {
	if params != nil {
		if v, ok := params["grid"]; ok {
			grid, ok := v.(Grid)
			if !ok {
				return Grid{}, ErrInvalidGrid
			}
			for _, row := range grid {
				for _, sym := range row {
					if _, known := Payouts[sym]; !known {
						return Grid{}, ErrInvalidGrid
					}
				}
			}
			return grid, nil
		}
	}
	return s.Draw(), nil
}

// Draw produces a random grid, each cell drawn independently.
func (s *SlotMachine) Draw() Grid {
	var grid Grid
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			grid[r][c] = Symbols[s.src.IntN(len(Symbols))]
		}
	}
	return grid
}

// CalculateWin computes the total win for a grid:
//   - each fully matching row pays the symbol's row payout
//   - each fully matching diagonal pays half the center symbol's row
//     payout; both diagonals can pay independently
//   - all 9 cells diamond overrides everything with the fixed jackpot
func CalculateWin(grid Grid) int64 {
	var win int64

	for _, row := range grid {
		if row[0] == row[1] && row[1] == row[2] {
			win += Payouts[row[0]]
		}
	}

	center := grid[1][1]
	if grid[0][0] == center && center == grid[2][2] {
		win += Payouts[center] / 2
	}
	if grid[0][2] == center && center == grid[2][0] {
		win += Payouts[center] / 2
	}

	allDiamond := true
	for _, row := range grid {
		for _, sym := range row {
			if sym != Diamond {
				allDiamond = false
			}
		}
	}
	if allDiamond {
		win = Jackpot
	}

	return win
}
