package rps

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/rng"
)

func TestRPS_Interface(t *testing.T) {
	r := New(nil, nil)

	if r.Name() != "Rock, Paper, Scissors" {
		t.Errorf("Name() = %s, want Rock, Paper, Scissors", r.Name())
	}
	if r.Kind() != model.GameRPS {
		t.Errorf("Kind() = %s, want %s", r.Kind(), model.GameRPS)
	}
	if r.Stake(999) != DefaultStake {
		t.Errorf("Stake() = %d, want %d", r.Stake(999), DefaultStake)
	}
	if r.Cost(999) != 0 {
		t.Errorf("Cost() = %d, want 0", r.Cost(999))
	}
}

func TestRPS_Play(t *testing.T) {
	r := New(&Config{Stake: 5}, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		choice    string
		house     string
		wantDelta int64
		wantWin   int64
	}{
		{"rock draws rock", Rock, Rock, -1, 4},
		{"paper draws paper", Paper, Paper, -1, 4},
		{"scissors draws scissors", Scissors, Scissors, -1, 4},
		{"rock beats scissors", Rock, Scissors, 5, 10},
		{"paper beats rock", Paper, Rock, 5, 10},
		{"scissors beats paper", Scissors, Paper, 5, 10},
		{"rock loses to paper", Rock, Paper, -5, 0},
		{"paper loses to scissors", Paper, Scissors, -5, 0},
		{"scissors loses to rock", Scissors, Rock, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := map[string]any{"choice": tt.choice, "house": tt.house}
			result, err := r.Play(ctx, 0, params)
			if err != nil {
				t.Fatalf("Play() error = %v", err)
			}
			if result.Delta != tt.wantDelta {
				t.Errorf("Play(%s vs %s) delta = %d, want %d", tt.choice, tt.house, result.Delta, tt.wantDelta)
			}
			if result.Win != tt.wantWin {
				t.Errorf("Play(%s vs %s) win = %d, want %d", tt.choice, tt.house, result.Win, tt.wantWin)
			}
		})
	}
}

func TestRPS_Play_BadInput(t *testing.T) {
	r := New(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		params map[string]any
	}{
		{"nil params", nil},
		{"missing choice", map[string]any{}},
		{"unknown choice", map[string]any{"choice": "lizard"}},
		{"non-string choice", map[string]any{"choice": 3}},
		{"unknown house", map[string]any{"choice": Rock, "house": "spock"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Play(ctx, 0, tt.params); err == nil {
				t.Error("Play() should fail")
			}
		})
	}
}

// TestRPSOutcomeProperty checks that for any matchup the delta is one of
// the three fixed values and win-stake always equals the delta.
func TestRPSOutcomeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		choice := rapid.SampledFrom(Choices).Draw(t, "choice")

		r := New(nil, rng.NewSeeded(seed))
		result, err := r.Play(context.Background(), 0, map[string]any{"choice": choice})
		if err != nil {
			t.Fatalf("Play() error = %v", err)
		}

		house := result.Details["house"].(string)
		if choiceIndex(house) < 0 {
			t.Fatalf("house drew unknown choice %q", house)
		}

		switch result.Delta {
		case int64(DefaultStake), int64(-DefaultStake), -1:
		default:
			t.Fatalf("delta = %d, want one of {%d, %d, -1}", result.Delta, DefaultStake, -DefaultStake)
		}

		if result.Win-int64(DefaultStake) != result.Delta {
			t.Fatalf("win %d - stake %d != delta %d", result.Win, DefaultStake, result.Delta)
		}

		// Same choices always draw.
		if house == choice && result.Delta != -1 {
			t.Fatalf("%s vs %s should draw, delta = %d", choice, house, result.Delta)
		}
	})
}
