package cart

import (
	"context"
	"encoding/json"
	"time"
)

const storageKeyPrefix = "cart:"

// Slot is the durable key-value slot a cart round-trips through, one
// JSON-encoded array of lines under a fixed key. *cache.RedisCache
// satisfies it; tests use an in-memory map.
type Slot interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Persistence round-trips a cart through a single slot key. Both
// directions are best-effort: malformed persisted entries are dropped on
// load and write failures are swallowed, so the in-memory cart stays the
// source of truth for the session. A nil slot turns both operations into
// no-ops and Load into the empty-cart default.
type Persistence struct {
	slot Slot
	key  string
}

func NewPersistence(slot Slot, cartID string) *Persistence {
	return &Persistence{slot: slot, key: storageKeyPrefix + cartID}
}

// persistedLine is the loose shape used for validation on load. Pointers
// distinguish a missing field from a zero value.
type persistedLine struct {
	Product  *ProductSnapshot `json:"product"`
	Quantity *float64         `json:"quantity"`
}

// Load reads the slot and rebuilds the cart. An absent key, an
// unreadable value, or a value that does not decode to an array all
// yield the empty cart. Entries are kept only when they are non-null,
// carry a product object and a numeric quantity that is still at least
// one after truncation to int; anything else is dropped without repair.
// A persisted quantity above the product's current stock is kept as-is
// and only re-clamped by the next explicit update.
func (p *Persistence) Load(ctx context.Context) *Cart {
	c := New()
	if p == nil || p.slot == nil {
		return c
	}
	var raw []json.RawMessage
	if err := p.slot.Get(ctx, p.key, &raw); err != nil {
		return c
	}
	for _, entry := range raw {
		var l persistedLine
		if err := json.Unmarshal(entry, &l); err != nil {
			continue
		}
		if l.Product == nil || l.Quantity == nil || int(*l.Quantity) < 1 {
			continue
		}
		c.lines = append(c.lines, Line{Product: *l.Product, Quantity: int(*l.Quantity)})
	}
	return c
}

// Save serializes the full line sequence and overwrites the slot. The
// cart has no expiry policy, its lifetime is the lifetime of the slot.
func (p *Persistence) Save(ctx context.Context, c *Cart) {
	if p == nil || p.slot == nil {
		return
	}
	_ = p.slot.Set(ctx, p.key, c.Lines(), 0)
}
