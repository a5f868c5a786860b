// Package service provides business logic implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"gacha-ledger/internal/model"
	"gacha-ledger/internal/repository"
)

// LedgerService owns account balances and the gambling history. Its
// methods are primitives: callers that compose a read-check-write
// sequence (a guarded spend, a game round) must hold the account's lock
// across the whole sequence.
type LedgerService struct {
	accounts *repository.AccountRepository
	gambles  *repository.GambleRepository
}

// NewLedgerService creates a new LedgerService instance.
func NewLedgerService(accounts *repository.AccountRepository, gambles *repository.GambleRepository) *LedgerService {
	return &LedgerService{accounts: accounts, gambles: gambles}
}

// GetBalance returns an account's balance, lazily creating the account
// with the default balance on first touch. An unknown account is never
// an error.
func (s *LedgerService) GetBalance(ctx context.Context, accountID string) (int64, error) {
	acc, err := s.accounts.GetOrCreate(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return acc.Balance, nil
}

// GetAccount returns the account, lazily creating it on first touch.
func (s *LedgerService) GetAccount(ctx context.Context, accountID string) (*model.Account, error) {
	return s.accounts.GetOrCreate(ctx, accountID)
}

// AdjustBalance applies balance += delta atomically and returns the
// updated account. There is no affordability check here; spend paths go
// through Spend.
func (s *LedgerService) AdjustBalance(ctx context.Context, accountID string, delta int64) (*model.Account, error) {
	return s.accounts.AdjustBalance(ctx, accountID, delta)
}

// SetBalance sets the balance to an exact value.
func (s *LedgerService) SetBalance(ctx context.Context, accountID string, balance int64) (*model.Account, error) {
	return s.accounts.SetBalance(ctx, accountID, balance)
}

// Spend debits cost after checking affordability. Returns
// ErrInsufficientFunds, and leaves the balance untouched, when the
// account cannot cover the cost. The caller must hold the account lock.
func (s *LedgerService) Spend(ctx context.Context, accountID string, cost int64) (*model.Account, error) {
	acc, err := s.accounts.GetOrCreate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc.Balance < cost {
		return nil, fmt.Errorf("%w: balance %d, cost %d", ErrInsufficientFunds, acc.Balance, cost)
	}
	return s.accounts.AdjustBalance(ctx, accountID, -cost)
}

// RecordGamble appends exactly one gamble record for a completed round.
func (s *LedgerService) RecordGamble(ctx context.Context, accountID, gameKind string, betAmount, winAmount int64) error {
	_, err := s.gambles.Record(ctx, accountID, gameKind, betAmount, winAmount)
	return err
}

// GamblingStats aggregates the account's gambling history. All fields
// are zero when no history exists.
func (s *LedgerService) GamblingStats(ctx context.Context, accountID string) (*model.GambleStats, error) {
	return s.gambles.Stats(ctx, accountID)
}

// DailyWagered sums the account's bets placed during the current UTC
// calendar day.
func (s *LedgerService) DailyWagered(ctx context.Context, accountID string) (int64, error) {
	return s.gambles.DailyWagered(ctx, accountID)
}

// LastGambleTime returns when the account last gambled, or the zero
// time for an account with no history.
func (s *LedgerService) LastGambleTime(ctx context.Context, accountID string) (time.Time, error) {
	return s.gambles.LastPlayed(ctx, accountID)
}
