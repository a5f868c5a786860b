package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"gacha-ledger/internal/model"
)

// InventoryRepository handles gacha inventory persistence.
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository instance.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

// Add appends one pull result to an account's inventory.
func (r *InventoryRepository) Add(ctx context.Context, accountID, character string, rarity int, adjective string) (*model.InventoryItem, error) {
	const query = `
		INSERT INTO gacha_inventory (account_id, character_name, rarity, adjective, obtained_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, account_id, character_name, rarity, adjective, obtained_at
	`

	var item model.InventoryItem
	err := r.pool.QueryRow(ctx, query, accountID, character, rarity, adjective).Scan(
		&item.ID,
		&item.AccountID,
		&item.Character,
		&item.Rarity,
		&item.Adjective,
		&item.ObtainedAt,
	)
	if err != nil {
		return nil, storageErr("add inventory item", err)
	}

	return &item, nil
}

// ListByAccount returns an account's inventory in the canonical order,
// obtained_at descending.
func (r *InventoryRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]*model.InventoryItem, error) {
	const query = `
		SELECT id, account_id, character_name, rarity, adjective, obtained_at
		FROM gacha_inventory
		WHERE account_id = $1
		ORDER BY obtained_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, storageErr("list inventory", err)
	}
	defer rows.Close()

	var items []*model.InventoryItem
	for rows.Next() {
		var item model.InventoryItem
		err := rows.Scan(
			&item.ID,
			&item.AccountID,
			&item.Character,
			&item.Rarity,
			&item.Adjective,
			&item.ObtainedAt,
		)
		if err != nil {
			return nil, storageErr("scan inventory item", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate inventory", err)
	}

	return items, nil
}

// Stats aggregates an account's inventory: total count, per-rarity
// counts, summed sell value, and the rarest item. The scan runs in the
// canonical newest-first order, so on rarity ties the item obtained
// most recently wins.
func (r *InventoryRepository) Stats(ctx context.Context, accountID string) (*model.InventoryStats, error) {
	const query = `
		SELECT id, account_id, character_name, rarity, adjective, obtained_at
		FROM gacha_inventory
		WHERE account_id = $1
		ORDER BY obtained_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, storageErr("inventory stats", err)
	}
	defer rows.Close()

	stats := &model.InventoryStats{
		RarityCounts: map[int]int64{2: 0, 3: 0, 4: 0, 5: 0},
	}

	for rows.Next() {
		var item model.InventoryItem
		err := rows.Scan(
			&item.ID,
			&item.AccountID,
			&item.Character,
			&item.Rarity,
			&item.Adjective,
			&item.ObtainedAt,
		)
		if err != nil {
			return nil, storageErr("scan inventory item", err)
		}

		stats.TotalCharacters++
		stats.RarityCounts[item.Rarity]++
		stats.TotalValue += model.SellValue(item.Rarity)

		if stats.Rarest == nil || item.Rarity > stats.Rarest.Rarity {
			rarest := item
			stats.Rarest = &rarest
		}
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate inventory", err)
	}

	return stats, nil
}
