package gacha

import (
	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/rng"
)

// Pity thresholds: a 4★ is guaranteed after 50 pulls without one, a 5★
// after 100. The 5★ check takes precedence.
const (
	FourStarPity = 50
	FiveStarPity = 100
)

// DecideRarity returns the rarity of the next pull for the given pity
// state. Pity overrides are checked before the weighted draw; the draw
// iterates bands in ascending order accumulating probability mass and
// falls back to 2★ if floating-point rounding leaves no band selected.
func DecideRarity(state *model.PityState, src rng.Source) int {
	if state.Pulls-state.LastFiveStar >= FiveStarPity {
		return 5
	}
	if state.Pulls-state.LastFourStar >= FourStarPity {
		return 4
	}

	roll := src.Float64()
	cumulative := 0.0
	for _, rarity := range Rarities {
		cumulative += Rates[rarity]
		if roll <= cumulative {
			return rarity
		}
	}
	return 2
}

// ApplyPull advances the pity counters for a pull of the given rarity.
// Both the 4★ and 5★ markers move on a 5★ pull.
func ApplyPull(state *model.PityState, rarity int) {
	state.Pulls++
	if rarity >= 4 {
		state.LastFourStar = state.Pulls
	}
	if rarity >= 5 {
		state.LastFiveStar = state.Pulls
	}
}

// RemainingFour returns the pulls left until the 4★ guarantee, clamped at 0.
func RemainingFour(state *model.PityState) int {
	return clampZero(FourStarPity - (state.Pulls - state.LastFourStar))
}

// RemainingFive returns the pulls left until the 5★ guarantee, clamped at 0.
func RemainingFive(state *model.PityState) int {
	return clampZero(FiveStarPity - (state.Pulls - state.LastFiveStar))
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
