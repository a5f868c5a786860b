package higherlower

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/rng"
)

func TestHigherLower_Interface(t *testing.T) {
	h := New(nil, nil)

	if h.Name() != "Higher/Lower" {
		t.Errorf("Name() = %s, want Higher/Lower", h.Name())
	}
	if h.Kind() != model.GameHigherLower {
		t.Errorf("Kind() = %s, want %s", h.Kind(), model.GameHigherLower)
	}
	if h.Stake(100) != 100 {
		t.Errorf("Stake(100) = %d, want 100", h.Stake(100))
	}
	if h.Cost(100) != 0 {
		t.Errorf("Cost(100) = %d, want 0", h.Cost(100))
	}
}

func TestHigherLower_ValidateBet(t *testing.T) {
	h := New(&Config{MaxBet: 1000}, nil)

	tests := []struct {
		name    string
		bet     int64
		wantErr bool
	}{
		{"valid bet", 100, false},
		{"max bet", 1000, false},
		{"zero bet", 0, true},
		{"negative bet", -100, true},
		{"bet too high", 1001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.ValidateBet(tt.bet)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBet(%d) error = %v, wantErr %v", tt.bet, err, tt.wantErr)
			}
		})
	}
}

func TestHigherLower_Play(t *testing.T) {
	h := New(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		guess     string
		current   int
		next      int
		wantWin   int64
		wantDelta int64
	}{
		{"correct higher", GuessHigher, 3, 7, 100, 100},
		{"wrong higher", GuessHigher, 7, 3, 0, -100},
		{"correct lower", GuessLower, 7, 3, 100, 100},
		{"wrong lower", GuessLower, 3, 7, 0, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := map[string]any{
				"guess":   tt.guess,
				"current": tt.current,
				"next":    tt.next,
			}
			result, err := h.Play(ctx, 100, params)
			if err != nil {
				t.Fatalf("Play() error = %v", err)
			}
			if result.Win != tt.wantWin {
				t.Errorf("Play() win = %d, want %d", result.Win, tt.wantWin)
			}
			if result.Delta != tt.wantDelta {
				t.Errorf("Play() delta = %d, want %d", result.Delta, tt.wantDelta)
			}
		})
	}
}

func TestHigherLower_Play_BadInput(t *testing.T) {
	h := New(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		bet    int64
		params map[string]any
	}{
		{"missing guess", 100, map[string]any{}},
		{"nil params", 100, nil},
		{"unknown guess", 100, map[string]any{"guess": "sideways"}},
		{"non-string guess", 100, map[string]any{"guess": 7}},
		{"zero bet", 0, map[string]any{"guess": GuessHigher}},
		{"equal forced numbers", 100, map[string]any{"guess": GuessHigher, "current": 5, "next": 5}},
		{"forced number out of range", 100, map[string]any{"guess": GuessHigher, "current": 0, "next": 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := h.Play(ctx, tt.bet, tt.params); err == nil {
				t.Error("Play() should fail")
			}
		})
	}
}

// TestHigherLowerDrawProperty checks that drawn numbers are always in
// range and never equal, and that the outcome matches the comparison.
func TestHigherLowerDrawProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		guess := rapid.SampledFrom([]string{GuessHigher, GuessLower}).Draw(t, "guess")
		bet := rapid.Int64Range(1, DefaultMaxBet).Draw(t, "bet")

		h := New(nil, rng.NewSeeded(seed))
		result, err := h.Play(context.Background(), bet, map[string]any{"guess": guess})
		if err != nil {
			t.Fatalf("Play() error = %v", err)
		}

		current := result.Details["current"].(int)
		next := result.Details["next"].(int)

		if current < 1 || current > 10 || next < 1 || next > 10 {
			t.Fatalf("numbers out of range: current=%d next=%d", current, next)
		}
		if current == next {
			t.Fatalf("drew equal numbers: %d", current)
		}

		won := (guess == GuessHigher && next > current) ||
			(guess == GuessLower && next < current)
		if won && result.Delta != bet {
			t.Fatalf("won but delta = %d, want %d", result.Delta, bet)
		}
		if !won && result.Delta != -bet {
			t.Fatalf("lost but delta = %d, want %d", result.Delta, -bet)
		}
	})
}
