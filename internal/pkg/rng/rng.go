// Package rng abstracts the randomness behind draws so tests can force
// outcomes with a seeded or scripted source.
package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// Source produces uniform random values.
type Source interface {
	Float64() float64 // uniform in [0, 1)
	IntN(n int) int   // uniform in [0, n)
}

// cryptoSource is the default, backed by crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("rng: IntN called with non-positive n")
	}
	// Rejection sampling keeps the distribution uniform: values at or
	// above the largest multiple of n are redrawn.
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		var buf [8]byte
		if _, err := cryptorand.Read(buf[:]); err != nil {
			return rand.IntN(n)
		}
		if u := binary.BigEndian.Uint64(buf[:]); u < limit {
			return int(u % bound)
		}
	}
}

// Default returns the crypto-backed source.
func Default() Source { return cryptoSource{} }

// seededSource is a replicable source for tests.
type seededSource struct{ r *rand.Rand }

// NewSeeded returns a deterministic PCG-backed source.
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
func (s *seededSource) IntN(n int) int   { return s.r.IntN(n) }
