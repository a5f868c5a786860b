package service

import (
	"context"
	"fmt"
	"time"

	"gacha-ledger/internal/game"
	"gacha-ledger/internal/pkg/lock"
)

// DefaultMaxDailyBet caps the total an account may wager per UTC day.
const DefaultMaxDailyBet = 1000

// DefaultCooldown is the minimum gap between an account's gambles.
const DefaultCooldown = 30 * time.Second

// GameService runs gambling rounds: it resolves the bet, guards funds,
// the cooldown, and the daily cap, settles the balance in a single
// atomic adjust, and records exactly one gamble record per completed
// round.
type GameService struct {
	ledger      *LedgerService
	registry    *game.Registry
	locks       *lock.AccountLock
	maxDailyBet int64
	cooldown    time.Duration
}

// NewGameService creates a new GameService instance. A zero or negative
// cooldown disables the cooldown check.
func NewGameService(ledger *LedgerService, registry *game.Registry, locks *lock.AccountLock, maxDailyBet int64, cooldown time.Duration) *GameService {
	if maxDailyBet <= 0 {
		maxDailyBet = DefaultMaxDailyBet
	}
	return &GameService{
		ledger:      ledger,
		registry:    registry,
		locks:       locks,
		maxDailyBet: maxDailyBet,
		cooldown:    cooldown,
	}
}

// Registry returns the underlying game registry.
func (s *GameService) Registry() *game.Registry {
	return s.registry
}

// PlayOutcome is the caller-facing result of one completed round.
type PlayOutcome struct {
	Game        string
	Kind        string
	Bet         int64
	Win         int64
	NewBalance  int64
	Description string
	Details     map[string]any
}

// Play runs one round of the given game kind. The round is decided
// first (pure, no persistence), then settled: affordability and daily
// cap checked, balance adjusted once atomically, gamble record appended.
// A failed balance write aborts before the record is written.
func (s *GameService) Play(ctx context.Context, accountID, kind string, bet Bet, params map[string]any) (*PlayOutcome, error) {
	g, ok := s.registry.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, kind)
	}

	var outcome *PlayOutcome

	err := s.locks.WithLock(accountID, func() error {
		acc, err := s.ledger.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		amount := bet.Resolve(acc.Balance)
		if err := g.ValidateBet(amount); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBet, err)
		}

		stake := g.Stake(amount)
		if acc.Balance < stake {
			return fmt.Errorf("%w: balance %d, stake %d", ErrInsufficientFunds, acc.Balance, stake)
		}

		if s.cooldown > 0 {
			last, err := s.ledger.LastGambleTime(ctx, accountID)
			if err != nil {
				return err
			}
			if !last.IsZero() {
				if wait := s.cooldown - time.Since(last); wait > 0 {
					return fmt.Errorf("%w: try again in %s", ErrCooldownActive, wait.Round(time.Second))
				}
			}
		}

		wagered, err := s.ledger.DailyWagered(ctx, accountID)
		if err != nil {
			return err
		}
		if wagered+stake > s.maxDailyBet {
			return fmt.Errorf("%w: %d wagered today", ErrDailyLimitExceeded, wagered)
		}

		result, err := g.Play(ctx, amount, params)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// Settle the upfront cost and the result delta in one statement.
		updated := acc
		if net := result.Delta - g.Cost(amount); net != 0 {
			updated, err = s.ledger.AdjustBalance(ctx, accountID, net)
			if err != nil {
				return err
			}
		}

		if err := s.ledger.RecordGamble(ctx, accountID, g.Kind(), stake, result.Win); err != nil {
			return err
		}

		outcome = &PlayOutcome{
			Game:        g.Name(),
			Kind:        g.Kind(),
			Bet:         stake,
			Win:         result.Win,
			NewBalance:  updated.Balance,
			Description: result.Description,
			Details:     result.Details,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}
