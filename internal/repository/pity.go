package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gacha-ledger/internal/model"
)

// PityRepository persists per-account pity counters. Persisting them
// keeps guarantee progress across process restarts.
type PityRepository struct {
	pool *pgxpool.Pool
}

// NewPityRepository creates a new PityRepository instance.
func NewPityRepository(pool *pgxpool.Pool) *PityRepository {
	return &PityRepository{pool: pool}
}

// Get returns an account's pity state, or a zero-valued state when the
// account has never pulled.
func (r *PityRepository) Get(ctx context.Context, accountID string) (*model.PityState, error) {
	const query = `
		SELECT account_id, pulls, last_4_star, last_5_star
		FROM pity_state
		WHERE account_id = $1
	`

	var state model.PityState
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&state.AccountID,
		&state.Pulls,
		&state.LastFourStar,
		&state.LastFiveStar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.PityState{AccountID: accountID}, nil
		}
		return nil, storageErr("get pity state", err)
	}

	return &state, nil
}

// Save upserts an account's pity state.
func (r *PityRepository) Save(ctx context.Context, state *model.PityState) error {
	const query = `
		INSERT INTO pity_state (account_id, pulls, last_4_star, last_5_star, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (account_id) DO UPDATE
		SET pulls = $2, last_4_star = $3, last_5_star = $4, updated_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query, state.AccountID, state.Pulls, state.LastFourStar, state.LastFiveStar)
	if err != nil {
		return storageErr("save pity state", err)
	}

	return nil
}
