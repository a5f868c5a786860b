// Package model defines the data models for the gacha/ledger game core.
package model

import "time"

// Account holds a user's currency balance. Accounts are created lazily
// on first touch with the default starting balance and are never deleted.
type Account struct {
	AccountID string    `db:"account_id"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GambleRecord is one append-only entry in the gambling history.
// WinAmount is 0 on a loss.
type GambleRecord struct {
	ID        int64     `db:"id"`
	AccountID string    `db:"account_id"`
	GameKind  string    `db:"game_kind"`
	BetAmount int64     `db:"bet_amount"`
	WinAmount int64     `db:"win_amount"`
	PlayedAt  time.Time `db:"played_at"`
}

// InventoryItem is one gacha pull result. Items are immutable once created;
// the canonical listing order is obtained_at descending.
type InventoryItem struct {
	ID         int64     `db:"id"`
	AccountID  string    `db:"account_id"`
	Character  string    `db:"character_name"`
	Rarity     int       `db:"rarity"`
	Adjective  string    `db:"adjective"`
	ObtainedAt time.Time `db:"obtained_at"`
}

// PityState tracks an account's pull counters for the gacha guarantee
// rules. Invariant: LastFourStar <= Pulls and LastFiveStar <= Pulls.
type PityState struct {
	AccountID    string `db:"account_id"`
	Pulls        int    `db:"pulls"`
	LastFourStar int    `db:"last_4_star"`
	LastFiveStar int    `db:"last_5_star"`
}

// GambleStats aggregates an account's gambling history. The "today"
// fields cover the current UTC calendar day.
type GambleStats struct {
	TotalGames int64
	TotalBet   int64
	TotalWon   int64
	NetProfit  int64
	TodayGames int64
	TodayBet   int64
	TodayWon   int64
}

// InventoryStats aggregates an account's gacha inventory.
// Rarest is nil when the inventory is empty; on rarity ties the item
// obtained most recently wins.
type InventoryStats struct {
	TotalCharacters int64
	RarityCounts    map[int]int64
	TotalValue      int64
	Rarest          *InventoryItem
}

// Game kinds for categorizing gamble records.
const (
	GameSlots       = "slots"
	GameHigherLower = "higher_lower"
	GameRoulette    = "roulette"
	GameRPS         = "rps"
)

// SellValues maps a rarity band to the sell value of one of its characters.
var SellValues = map[int]int64{
	2: 5,
	3: 15,
	4: 50,
	5: 200,
}

// SellValue returns the sell value for a rarity, or 0 for an unknown band.
func SellValue(rarity int) int64 {
	return SellValues[rarity]
}
