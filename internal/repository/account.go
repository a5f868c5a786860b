// Package repository provides data access layer implementations.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gacha-ledger/internal/model"
)

// AccountRepository handles account balance persistence.
type AccountRepository struct {
	pool           *pgxpool.Pool
	defaultBalance int64
}

// NewAccountRepository creates a new AccountRepository instance.
// defaultBalance is the balance seeded into lazily created accounts.
func NewAccountRepository(pool *pgxpool.Pool, defaultBalance int64) *AccountRepository {
	return &AccountRepository{pool: pool, defaultBalance: defaultBalance}
}

// GetByID retrieves an account by its opaque id.
// Returns pgx.ErrNoRows wrapped when the account does not exist.
func (r *AccountRepository) GetByID(ctx context.Context, accountID string) (*model.Account, error) {
	const query = `
		SELECT account_id, balance, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`

	var acc model.Account
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&acc.AccountID,
		&acc.Balance,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, storageErr("get account", err)
	}

	return &acc, nil
}

// GetOrCreate retrieves an account, creating it with the default balance
// if it has never been seen. Creation is idempotent: a concurrent insert
// of the same id leaves exactly one row and both callers observe it.
func (r *AccountRepository) GetOrCreate(ctx context.Context, accountID string) (*model.Account, error) {
	const query = `
		INSERT INTO accounts (account_id, balance, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (account_id) DO UPDATE SET updated_at = accounts.updated_at
		RETURNING account_id, balance, created_at, updated_at
	`

	var acc model.Account
	err := r.pool.QueryRow(ctx, query, accountID, r.defaultBalance).Scan(
		&acc.AccountID,
		&acc.Balance,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, storageErr("get or create account", err)
	}

	return &acc, nil
}

// AdjustBalance applies balance += delta as a single atomic statement and
// returns the updated account. The account is created at the default
// balance first when missing, so the primitive never fails on an unseen
// id. Affordability checks belong to the caller.
func (r *AccountRepository) AdjustBalance(ctx context.Context, accountID string, delta int64) (*model.Account, error) {
	const query = `
		INSERT INTO accounts (account_id, balance, created_at, updated_at)
		VALUES ($1, $2 + $3, NOW(), NOW())
		ON CONFLICT (account_id) DO UPDATE
		SET balance = accounts.balance + $3, updated_at = NOW()
		RETURNING account_id, balance, created_at, updated_at
	`

	var acc model.Account
	err := r.pool.QueryRow(ctx, query, accountID, r.defaultBalance, delta).Scan(
		&acc.AccountID,
		&acc.Balance,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, storageErr("adjust balance", err)
	}

	return &acc, nil
}

// SetBalance sets an account's balance to an exact value, creating the
// account when missing.
func (r *AccountRepository) SetBalance(ctx context.Context, accountID string, balance int64) (*model.Account, error) {
	const query = `
		INSERT INTO accounts (account_id, balance, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (account_id) DO UPDATE
		SET balance = $2, updated_at = NOW()
		RETURNING account_id, balance, created_at, updated_at
	`

	var acc model.Account
	err := r.pool.QueryRow(ctx, query, accountID, balance).Scan(
		&acc.AccountID,
		&acc.Balance,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, storageErr("set balance", err)
	}

	return &acc, nil
}

// Count returns the number of account rows. Used by tests to verify that
// lazy creation is idempotent.
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n)
	if err != nil {
		return 0, storageErr("count accounts", err)
	}
	return n, nil
}
