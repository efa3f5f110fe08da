package engine

import (
	"math/rand/v2"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

// Item is a collectible permanent upgrade.
type Item struct {
	ID          string
	Name        string
	Description string
	Rarity      string
	Effect      EffectKind
	Value       float64 // Percent added to the effect bucket
}

// ItemFromConfig converts a catalog entry. It fails on unknown effect kinds.
func ItemFromConfig(c config.ItemConfig) (Item, bool) {
	kind, ok := ParseEffectKind(c.Effect.Kind)
	if !ok {
		return Item{}, false
	}
	return Item{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Rarity:      c.Rarity,
		Effect:      kind,
		Value:       c.Effect.Value,
	}, true
}

// Inventory holds collected items up to a fixed capacity.
type Inventory struct {
	items    []Item
	capacity int
}

// NewInventory returns an empty inventory.
func NewInventory(capacity int) *Inventory {
	return &Inventory{capacity: capacity}
}

// Add stores item unless the inventory is full.
func (inv *Inventory) Add(item Item) bool {
	if inv.Full() {
		return false
	}
	inv.items = append(inv.items, item)
	return true
}

func (inv *Inventory) Len() int      { return len(inv.items) }
func (inv *Inventory) Capacity() int { return inv.capacity }
func (inv *Inventory) Full() bool    { return len(inv.items) >= inv.capacity }

// Items returns a copy of the held items in collection order.
func (inv *Inventory) Items() []Item {
	return append([]Item(nil), inv.items...)
}

// Reset empties the inventory.
func (inv *Inventory) Reset() {
	inv.items = nil
}

// DropID identifies an item lying on the field.
type DropID int

// Drop is an uncollected item left by a slain enemy.
type Drop struct {
	ID          DropID
	Item        Item
	Pos         core.Vec
	CollectAtMs float64 // When auto-collection happens
}

// DropTable decides which kills leave an item behind.
type DropTable struct {
	enabled bool
	rate    float64 // Percent chance per kill
	items   []Item
	weights []float64
	total   float64
}

// NewDropTable builds a table from the item settings. Catalog entries with
// unknown effects or non-positive weights never drop.
func NewDropTable(cfg config.ItemsConfig) *DropTable {
	t := &DropTable{enabled: cfg.DropsEnabled, rate: cfg.DropRate}
	for _, c := range cfg.Catalog {
		item, ok := ItemFromConfig(c)
		if !ok || c.DropChance <= 0 {
			continue
		}
		t.items = append(t.items, item)
		t.weights = append(t.weights, c.DropChance)
		t.total += c.DropChance
	}
	return t
}

// Roll decides whether a kill drops an item and which one.
func (t *DropTable) Roll(rng *rand.Rand) (Item, bool) {
	if !t.enabled || t.total <= 0 || t.rate <= 0 {
		return Item{}, false
	}
	if rng.Float64()*100 >= t.rate {
		return Item{}, false
	}
	r := rng.Float64() * t.total
	for i, w := range t.weights {
		if r < w {
			return t.items[i], true
		}
		r -= w
	}
	return t.items[len(t.items)-1], true
}

// Catalog returns the items eligible to drop.
func (t *DropTable) Catalog() []Item {
	return append([]Item(nil), t.items...)
}
