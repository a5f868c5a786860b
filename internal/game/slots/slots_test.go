package slots

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/rng"
)

func gridOf(sym Symbol) Grid {
	var g Grid
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g[r][c] = sym
		}
	}
	return g
}

func TestCalculateWin_Rows(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want int64
	}{
		{
			"no matching line",
			Grid{
				{Cherry, Lemon, Bell},
				{Lemon, Bell, Cherry},
				{Cherry, Bell, Lemon},
			},
			0,
		},
		{
			"single cherry row",
			Grid{
				{Cherry, Cherry, Cherry},
				{Lemon, Bell, Seven},
				{Bell, Seven, Lemon},
			},
			5,
		},
		{
			"single seven row",
			Grid{
				{Lemon, Bell, Seven},
				{Seven, Seven, Seven},
				{Bell, Seven, Lemon},
			},
			15,
		},
		{
			"two rows stack",
			Grid{
				{Cherry, Cherry, Cherry},
				{Lemon, Lemon, Lemon},
				{Bell, Seven, Cherry},
			},
			15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateWin(tt.grid); got != tt.want {
				t.Errorf("CalculateWin() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateWin_Diagonals(t *testing.T) {
	// Both diagonals match on bell, no row matches: each diagonal pays
	// half the center symbol's row payout.
	grid := Grid{
		{Bell, Lemon, Bell},
		{Cherry, Bell, Cherry},
		{Bell, Seven, Bell},
	}
	if got := CalculateWin(grid); got != 20 {
		t.Errorf("CalculateWin(both diagonals) = %d, want 20", got)
	}

	// Only the main diagonal matches.
	grid = Grid{
		{Bell, Lemon, Cherry},
		{Cherry, Bell, Cherry},
		{Lemon, Seven, Bell},
	}
	if got := CalculateWin(grid); got != 10 {
		t.Errorf("CalculateWin(main diagonal) = %d, want 10", got)
	}

	// Only the anti-diagonal matches; no row contributes.
	grid = Grid{
		{Cherry, Lemon, Bell},
		{Lemon, Bell, Cherry},
		{Bell, Cherry, Lemon},
	}
	if got := CalculateWin(grid); got != 10 {
		t.Errorf("CalculateWin(anti-diagonal) = %d, want 10", got)
	}

	// Cherry diagonal pays 5/2 in integer division.
	grid = Grid{
		{Cherry, Lemon, Bell},
		{Lemon, Cherry, Bell},
		{Bell, Seven, Cherry},
	}
	if got := CalculateWin(grid); got != 2 {
		t.Errorf("CalculateWin(cherry diagonal) = %d, want 2", got)
	}
}

func TestCalculateWin_RowsAndDiagonalsStack(t *testing.T) {
	// Full seven grid: 3 rows plus 2 diagonals at half pay.
	want := int64(3*15 + 2*(15/2))
	if got := CalculateWin(gridOf(Seven)); got != want {
		t.Errorf("CalculateWin(all sevens) = %d, want %d", got, want)
	}
}

func TestCalculateWin_Jackpot(t *testing.T) {
	if got := CalculateWin(gridOf(Diamond)); got != Jackpot {
		t.Errorf("CalculateWin(all diamonds) = %d, want %d", got, Jackpot)
	}
}

func TestSlotMachine_Interface(t *testing.T) {
	s := New(nil, nil)

	if s.Name() != "Slot Machine" {
		t.Errorf("Name() = %s, want Slot Machine", s.Name())
	}
	if s.Kind() != model.GameSlots {
		t.Errorf("Kind() = %s, want %s", s.Kind(), model.GameSlots)
	}
	if s.Stake(999) != DefaultEntryCost {
		t.Errorf("Stake() = %d, want %d", s.Stake(999), DefaultEntryCost)
	}
	if s.Cost(999) != DefaultEntryCost {
		t.Errorf("Cost() = %d, want %d", s.Cost(999), DefaultEntryCost)
	}
	if err := s.ValidateBet(0); err != nil {
		t.Errorf("ValidateBet(0) = %v, want nil", err)
	}
}

func TestSlotMachine_Play(t *testing.T) {
	s := New(&Config{EntryCost: 5}, nil)
	ctx := context.Background()

	grid := Grid{
		{Bell, Bell, Bell},
		{Cherry, Lemon, Seven},
		{Seven, Cherry, Lemon},
	}
	result, err := s.Play(ctx, 0, map[string]any{"grid": grid})
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if result.Win != 20 {
		t.Errorf("Play() win = %d, want 20", result.Win)
	}
	if result.Delta != 20 {
		t.Errorf("Play() delta = %d, want 20", result.Delta)
	}
}

func TestSlotMachine_Play_InvalidGrid(t *testing.T) {
	s := New(nil, nil)
	ctx := context.Background()

	var grid Grid
	grid[0][0] = Symbol("banana")
	if _, err := s.Play(ctx, 0, map[string]any{"grid": grid}); err == nil {
		t.Error("Play() with unknown symbol should fail")
	}

	if _, err := s.Play(ctx, 0, map[string]any{"grid": "not a grid"}); err == nil {
		t.Error("Play() with non-grid value should fail")
	}
}

func TestSlotMachine_Draw(t *testing.T) {
	s := New(nil, rng.NewSeeded(42))

	grid := s.Draw()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if _, ok := Payouts[grid[r][c]]; !ok {
				t.Errorf("Draw() cell [%d][%d] = %q, not a known symbol", r, c, grid[r][c])
			}
		}
	}
}

// TestSlotWinDecompositionProperty checks that every win decomposes into
// row payouts plus half-pay diagonals, with the all-diamond jackpot as
// the only override.
func TestSlotWinDecompositionProperty(t *testing.T) {
	symGen := rapid.SampledFrom(Symbols)

	rapid.Check(t, func(t *rapid.T) {
		var grid Grid
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				grid[r][c] = symGen.Draw(t, "sym")
			}
		}

		var expected int64
		allDiamond := true
		for _, row := range grid {
			if row[0] == row[1] && row[1] == row[2] {
				expected += Payouts[row[0]]
			}
			for _, sym := range row {
				if sym != Diamond {
					allDiamond = false
				}
			}
		}
		center := grid[1][1]
		if grid[0][0] == center && center == grid[2][2] {
			expected += Payouts[center] / 2
		}
		if grid[0][2] == center && center == grid[2][0] {
			expected += Payouts[center] / 2
		}
		if allDiamond {
			expected = Jackpot
		}

		if got := CalculateWin(grid); got != expected {
			t.Fatalf("CalculateWin(%v) = %d, want %d", grid, got, expected)
		}
	})
}
