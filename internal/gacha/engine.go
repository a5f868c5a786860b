package gacha

import (
	"context"

	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/rng"
	"gacha-ledger/internal/repository"
)

// Engine executes gacha pulls: it consults the persisted pity state,
// decides a rarity, picks a character, and records the result. Cost
// handling (affordability check and debit) belongs to the caller and
// must happen before Pull.
type Engine struct {
	catalog  *Catalog
	src      rng.Source
	pityRepo *repository.PityRepository
	invRepo  *repository.InventoryRepository
}

// NewEngine creates an Engine. A nil src selects the crypto-backed default.
func NewEngine(pityRepo *repository.PityRepository, invRepo *repository.InventoryRepository, src rng.Source) *Engine {
	if src == nil {
		src = rng.Default()
	}
	return &Engine{
		catalog:  BuildCatalog(),
		src:      src,
		pityRepo: pityRepo,
		invRepo:  invRepo,
	}
}

// Catalog returns the engine's fixed character catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// PullResult is the outcome of a single pull. The pity counters are the
// post-update values.
type PullResult struct {
	Item            *model.InventoryItem
	Entry           Entry
	Rarity          int
	PityPulls       int
	NextGuaranteed4 int
	NextGuaranteed5 int
}

// Pull executes one pull for an account. The pity state is persisted
// before the inventory row is appended; if either write fails the pull
// is aborted and the error carries repository.ErrStorage.
func (e *Engine) Pull(ctx context.Context, accountID string) (*PullResult, error) {
	state, err := e.pityRepo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	rarity := DecideRarity(state, e.src)
	entry := e.catalog.Pick(rarity, e.src)

	ApplyPull(state, rarity)
	if err := e.pityRepo.Save(ctx, state); err != nil {
		return nil, err
	}

	item, err := e.invRepo.Add(ctx, accountID, entry.Name, entry.Rarity, entry.Adjective)
	if err != nil {
		return nil, err
	}

	return &PullResult{
		Item:            item,
		Entry:           entry,
		Rarity:          rarity,
		PityPulls:       state.Pulls,
		NextGuaranteed4: RemainingFour(state),
		NextGuaranteed5: RemainingFive(state),
	}, nil
}
