package game

import (
	"context"
	"testing"
)

// stubGame is a minimal Game for registry tests.
type stubGame struct {
	kind string
}

func (s *stubGame) Name() string                { return "Stub" }
func (s *stubGame) Kind() string                { return s.kind }
func (s *stubGame) ValidateBet(bet int64) error { return nil }
func (s *stubGame) Stake(bet int64) int64       { return bet }
func (s *stubGame) Cost(bet int64) int64        { return 0 }
func (s *stubGame) Play(ctx context.Context, bet int64, params map[string]any) (*Result, error) {
	return &Result{}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&stubGame{kind: "slots"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	g, ok := r.Get("slots")
	if !ok {
		t.Fatal("Get(slots) not found")
	}
	if g.Kind() != "slots" {
		t.Errorf("Get(slots).Kind() = %s", g.Kind())
	}

	if _, ok := r.Get("unknown"); ok {
		t.Error("Get(unknown) should not be found")
	}
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(nil); err == nil {
		t.Error("Register(nil) should fail")
	}
	if err := r.Register(&stubGame{kind: ""}); err == nil {
		t.Error("Register with empty kind should fail")
	}
}

func TestRegistry_Replace(t *testing.T) {
	r := NewRegistry()

	first := &stubGame{kind: "slots"}
	second := &stubGame{kind: "slots"}
	_ = r.Register(first)
	_ = r.Register(second)

	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
	g, _ := r.Get("slots")
	if g != Game(second) {
		t.Error("Get(slots) should return the replacement")
	}
}

func TestRegistry_KindsAndList(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&stubGame{kind: "slots"})
	_ = r.Register(&stubGame{kind: "roulette"})
	_ = r.Register(&stubGame{kind: "rps"})

	if r.Count() != 3 {
		t.Errorf("Count() = %d, want 3", r.Count())
	}
	if len(r.Kinds()) != 3 {
		t.Errorf("len(Kinds()) = %d, want 3", len(r.Kinds()))
	}
	if len(r.List()) != 3 {
		t.Errorf("len(List()) = %d, want 3", len(r.List()))
	}
}
