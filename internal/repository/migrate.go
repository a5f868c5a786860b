package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Migrate creates the schema. Statements are idempotent so it is safe to
// run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	log.Info().Msg("Running database migrations...")

	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accounts (
			account_id VARCHAR(64) PRIMARY KEY,
			balance BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return storageErr("migrate accounts", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS gamble_history (
			id BIGSERIAL PRIMARY KEY,
			account_id VARCHAR(64) NOT NULL,
			game_kind VARCHAR(32) NOT NULL,
			bet_amount BIGINT NOT NULL,
			win_amount BIGINT NOT NULL,
			played_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_gamble_account_time ON gamble_history(account_id, played_at DESC);
	`)
	if err != nil {
		return storageErr("migrate gamble_history", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS gacha_inventory (
			id BIGSERIAL PRIMARY KEY,
			account_id VARCHAR(64) NOT NULL,
			character_name VARCHAR(64) NOT NULL,
			rarity INT NOT NULL,
			adjective VARCHAR(64) NOT NULL,
			obtained_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_inventory_account_time ON gacha_inventory(account_id, obtained_at DESC);
	`)
	if err != nil {
		return storageErr("migrate gacha_inventory", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS pity_state (
			account_id VARCHAR(64) PRIMARY KEY,
			pulls INT NOT NULL DEFAULT 0,
			last_4_star INT NOT NULL DEFAULT 0,
			last_5_star INT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return storageErr("migrate pity_state", err)
	}

	log.Info().Msg("All migrations completed")
	return nil
}
