package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gacha-ledger/internal/model"
)

// GambleRepository handles the append-only gambling history.
type GambleRepository struct {
	pool *pgxpool.Pool
}

// NewGambleRepository creates a new GambleRepository instance.
func NewGambleRepository(pool *pgxpool.Pool) *GambleRepository {
	return &GambleRepository{pool: pool}
}

// Record appends one gamble record. Exactly one record is written per
// completed round, win or lose.
func (r *GambleRepository) Record(ctx context.Context, accountID, gameKind string, betAmount, winAmount int64) (*model.GambleRecord, error) {
	const query = `
		INSERT INTO gamble_history (account_id, game_kind, bet_amount, win_amount, played_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, account_id, game_kind, bet_amount, win_amount, played_at
	`

	var rec model.GambleRecord
	err := r.pool.QueryRow(ctx, query, accountID, gameKind, betAmount, winAmount).Scan(
		&rec.ID,
		&rec.AccountID,
		&rec.GameKind,
		&rec.BetAmount,
		&rec.WinAmount,
		&rec.PlayedAt,
	)
	if err != nil {
		return nil, storageErr("record gamble", err)
	}

	return &rec, nil
}

// RecordWithTime appends a gamble record with an explicit timestamp.
// Useful for tests that need history on past days.
func (r *GambleRepository) RecordWithTime(ctx context.Context, accountID, gameKind string, betAmount, winAmount int64, playedAt time.Time) (*model.GambleRecord, error) {
	const query = `
		INSERT INTO gamble_history (account_id, game_kind, bet_amount, win_amount, played_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, account_id, game_kind, bet_amount, win_amount, played_at
	`

	var rec model.GambleRecord
	err := r.pool.QueryRow(ctx, query, accountID, gameKind, betAmount, winAmount, playedAt).Scan(
		&rec.ID,
		&rec.AccountID,
		&rec.GameKind,
		&rec.BetAmount,
		&rec.WinAmount,
		&rec.PlayedAt,
	)
	if err != nil {
		return nil, storageErr("record gamble", err)
	}

	return &rec, nil
}

// LastPlayed returns the timestamp of the account's most recent gamble,
// or the zero time when no history exists.
func (r *GambleRepository) LastPlayed(ctx context.Context, accountID string) (time.Time, error) {
	const query = `
		SELECT played_at
		FROM gamble_history
		WHERE account_id = $1
		ORDER BY played_at DESC, id DESC
		LIMIT 1
	`

	var playedAt time.Time
	err := r.pool.QueryRow(ctx, query, accountID).Scan(&playedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, storageErr("last played", err)
	}

	return playedAt, nil
}

// Stats aggregates an account's full gambling history plus the subset
// falling on the current UTC calendar day. All fields are zero when no
// history exists.
func (r *GambleRepository) Stats(ctx context.Context, accountID string) (*model.GambleStats, error) {
	// Day boundaries are UTC; the played_at column is timestamptz so the
	// comparison is well defined regardless of server timezone.
	const query = `
		SELECT
			COUNT(*),
			COALESCE(SUM(bet_amount), 0),
			COALESCE(SUM(win_amount), 0),
			COALESCE(SUM(win_amount - bet_amount), 0),
			COUNT(*) FILTER (WHERE played_at >= $2 AND played_at < $3),
			COALESCE(SUM(bet_amount) FILTER (WHERE played_at >= $2 AND played_at < $3), 0),
			COALESCE(SUM(win_amount) FILTER (WHERE played_at >= $2 AND played_at < $3), 0)
		FROM gamble_history
		WHERE account_id = $1
	`

	start, end := utcDayBounds(time.Now())

	var stats model.GambleStats
	err := r.pool.QueryRow(ctx, query, accountID, start, end).Scan(
		&stats.TotalGames,
		&stats.TotalBet,
		&stats.TotalWon,
		&stats.NetProfit,
		&stats.TodayGames,
		&stats.TodayBet,
		&stats.TodayWon,
	)
	if err != nil {
		return nil, storageErr("gamble stats", err)
	}

	return &stats, nil
}

// DailyWagered sums the bet amounts an account placed during the current
// UTC calendar day.
func (r *GambleRepository) DailyWagered(ctx context.Context, accountID string) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(bet_amount), 0)
		FROM gamble_history
		WHERE account_id = $1 AND played_at >= $2 AND played_at < $3
	`

	start, end := utcDayBounds(time.Now())

	var total int64
	err := r.pool.QueryRow(ctx, query, accountID, start, end).Scan(&total)
	if err != nil {
		return 0, storageErr("daily wagered", err)
	}

	return total, nil
}

// utcDayBounds returns the half-open [start, end) interval of the UTC
// calendar day containing t.
func utcDayBounds(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
