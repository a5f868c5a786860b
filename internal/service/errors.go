package service

import "errors"

// Common errors for ledger and game operations. All of these are
// recoverable at the caller boundary; storage failures are reported
// separately through repository.ErrStorage.
var (
	// ErrInsufficientFunds is returned when a spend exceeds the current
	// balance. The check always happens before any debit.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidBet is returned for a non-numeric, zero, or negative bet,
	// before any state mutation.
	ErrInvalidBet = errors.New("invalid bet")

	// ErrUnknownGame is returned when no game is registered for a kind.
	ErrUnknownGame = errors.New("unknown game")

	// ErrInvalidInput is returned for malformed game-specific inputs
	// (a missing guess, an unknown choice), before any state mutation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDailyLimitExceeded is returned when a bet would push the
	// account past its daily wagering cap.
	ErrDailyLimitExceeded = errors.New("daily betting limit exceeded")

	// ErrCooldownActive is returned when a round is attempted before
	// the cooldown since the account's previous gamble has elapsed.
	ErrCooldownActive = errors.New("gambling cooldown active")
)
