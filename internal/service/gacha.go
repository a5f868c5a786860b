package service

import (
	"context"
	"fmt"

	"gacha-ledger/internal/gacha"
	"gacha-ledger/internal/model"
	"gacha-ledger/internal/pkg/lock"
	"gacha-ledger/internal/repository"
)

// DefaultPullCost is the currency cost of one gacha pull.
const DefaultPullCost = 10

// GachaService guards gacha pulls with the ledger: affordability check,
// debit, then draw, in that order. Debit-before-draw means a crash
// between the two can charge without granting but never grants a free
// pull.
type GachaService struct {
	ledger   *LedgerService
	engine   *gacha.Engine
	invRepo  *repository.InventoryRepository
	locks    *lock.AccountLock
	pullCost int64
}

// NewGachaService creates a new GachaService instance.
func NewGachaService(ledger *LedgerService, engine *gacha.Engine, invRepo *repository.InventoryRepository, locks *lock.AccountLock, pullCost int64) *GachaService {
	if pullCost <= 0 {
		pullCost = DefaultPullCost
	}
	return &GachaService{
		ledger:   ledger,
		engine:   engine,
		invRepo:  invRepo,
		locks:    locks,
		pullCost: pullCost,
	}
}

// PullCost returns the cost of one pull.
func (s *GachaService) PullCost() int64 {
	return s.pullCost
}

// PullOutcome is a pull result together with the post-debit balance.
type PullOutcome struct {
	*gacha.PullResult
	NewBalance int64
}

// Pull executes one guarded pull: balance check, debit, draw. Returns
// ErrInsufficientFunds, leaving the balance unchanged, when the account
// cannot cover the pull cost.
func (s *GachaService) Pull(ctx context.Context, accountID string) (*PullOutcome, error) {
	var outcome *PullOutcome

	err := s.locks.WithLock(accountID, func() error {
		acc, err := s.ledger.Spend(ctx, accountID, s.pullCost)
		if err != nil {
			return fmt.Errorf("pull: %w", err)
		}

		result, err := s.engine.Pull(ctx, accountID)
		if err != nil {
			return fmt.Errorf("pull: %w", err)
		}

		outcome = &PullOutcome{PullResult: result, NewBalance: acc.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

// Inventory lists the account's pulls, newest first.
func (s *GachaService) Inventory(ctx context.Context, accountID string, limit int) ([]*model.InventoryItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.invRepo.ListByAccount(ctx, accountID, limit)
}

// InventoryStats aggregates the account's inventory.
func (s *GachaService) InventoryStats(ctx context.Context, accountID string) (*model.InventoryStats, error) {
	return s.invRepo.Stats(ctx, accountID)
}
