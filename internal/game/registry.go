package game

import (
	"fmt"
	"sync"
)

// Registry manages game registration and lookup by kind.
type Registry struct {
	games map[string]Game
	mu    sync.RWMutex
}

// NewRegistry creates a new game registry.
func NewRegistry() *Registry {
	return &Registry{
		games: make(map[string]Game),
	}
}

// Register adds a game to the registry. A game with the same kind
// replaces the previous one.
func (r *Registry) Register(g Game) error {
	if g == nil {
		return fmt.Errorf("cannot register nil game")
	}
	if g.Kind() == "" {
		return fmt.Errorf("game kind cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.Kind()] = g
	return nil
}

// Get retrieves a game by its kind.
func (r *Registry) Get(kind string) (Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[kind]
	return g, ok
}

// List returns all registered games. The returned slice is a copy.
func (r *Registry) List() []Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]Game, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	return games
}

// Kinds returns all registered game kinds.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.games))
	for kind := range r.games {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Count returns the number of registered games.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
