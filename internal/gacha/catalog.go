// Package gacha implements the character catalog, weighted draws, and
// the pity guarantee system.
package gacha

import "gacha-ledger/internal/pkg/rng"

// The character pools are fixed. Each rarity band crosses every name
// with a contiguous 5-element slice of the adjective pool, so every
// (name, adjective) pair within a band is a distinct catalog entry.
var (
	namePool = []string{"Alex", "Ryan", "Priscilla", "Jackson", "Holli", "Nathan"}

	adjectivePool = []string{
		"Default", "Homeless", "Dumb", "Boring", "Sleepy", "Hungry",
		"Hairy", "Stinky", "Silly", "Emo", "K/DA", "Edgelord",
		"Roided", "Zombie", "Smoll", "Tilted", "Large",
		"Biblically Accurate", "Skibidi", "Goated",
	}
)

// Rarities lists the bands in ascending draw order.
var Rarities = []int{2, 3, 4, 5}

// Rates holds the base draw probability per rarity band. The values sum
// to 1.0.
var Rates = map[int]float64{
	2: 0.50,
	3: 0.35,
	4: 0.13,
	5: 0.02,
}

// adjectiveSlice returns the contiguous 5-element adjective slice for a
// rarity band: 2★ takes [0:5], 3★ [5:10], 4★ [10:15], 5★ [15:20].
func adjectiveSlice(rarity int) []string {
	start := (rarity - 2) * 5
	return adjectivePool[start : start+5]
}

// Entry is one drawable character: a (name, adjective) pair in a rarity band.
type Entry struct {
	Name      string
	Rarity    int
	Adjective string
}

// Catalog is the fixed, enumerable set of drawable characters.
type Catalog struct {
	entries []Entry
	byBand  map[int][]Entry
}

// BuildCatalog constructs the full catalog: 6 names crossed with 5
// adjectives per band across 4 bands, 120 entries total.
func BuildCatalog() *Catalog {
	c := &Catalog{byBand: make(map[int][]Entry, len(Rarities))}

	for _, rarity := range Rarities {
		for _, name := range namePool {
			for _, adjective := range adjectiveSlice(rarity) {
				entry := Entry{Name: name, Rarity: rarity, Adjective: adjective}
				c.entries = append(c.entries, entry)
				c.byBand[rarity] = append(c.byBand[rarity], entry)
			}
		}
	}

	return c
}

// Entries returns every catalog entry.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Band returns the entries of one rarity band.
func (c *Catalog) Band(rarity int) []Entry {
	return c.byBand[rarity]
}

// Pick selects one entry uniformly at random from the given rarity band.
func (c *Catalog) Pick(rarity int, src rng.Source) Entry {
	band := c.byBand[rarity]
	return band[src.IntN(len(band))]
}
