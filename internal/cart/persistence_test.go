package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlot struct {
	data     map[string][]byte
	writeErr error
}

func newFakeSlot() *fakeSlot {
	return &fakeSlot{data: map[string][]byte{}}
}

func (f *fakeSlot) Get(_ context.Context, key string, dest interface{}) error {
	b, ok := f.data[key]
	if !ok {
		return errors.New("key not found")
	}
	return json.Unmarshal(b, dest)
}

func (f *fakeSlot) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := newFakeSlot()
	p := NewPersistence(slot, "session-1")

	c := New()
	c.Add(snapshot("p1", 45000, 15), 2)
	c.Add(snapshot("p2", 12000, 8), 1)
	p.Save(ctx, c)

	reloaded := NewPersistence(slot, "session-1").Load(ctx)
	require.Equal(t, 2, reloaded.Len())
	assert.Equal(t, c.Lines(), reloaded.Lines(), "order and snapshots must survive the round trip")
	assert.Equal(t, c.Subtotal(), reloaded.Subtotal())
	assert.Equal(t, c.ItemsCount(), reloaded.ItemsCount())
}

func TestLoadMissingKeyReturnsEmptyCart(t *testing.T) {
	p := NewPersistence(newFakeSlot(), "nobody")
	c := p.Load(context.Background())
	assert.Equal(t, 0, c.Len())
}

func TestLoadUnreadableValueReturnsEmptyCart(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", `{{{not json`},
		{"object instead of array", `{"product":{"id":"p1"},"quantity":1}`},
		{"string", `"hello"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := newFakeSlot()
			slot.data["cart:s"] = []byte(tt.raw)
			c := NewPersistence(slot, "s").Load(context.Background())
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestLoadFiltersMalformedEntries(t *testing.T) {
	slot := newFakeSlot()
	slot.data["cart:s"] = []byte(`[
		null,
		{"quantity": 2},
		{"product": {"id": "no-qty"}},
		{"product": {"id": "zero"}, "quantity": 0},
		{"product": {"id": "neg"}, "quantity": -4},
		{"product": {"id": "str"}, "quantity": "3"},
		{"product": {"id": "ok", "name": "Gold Band", "price": 45000, "stock": 15}, "quantity": 2}
	]`)

	c := NewPersistence(slot, "s").Load(context.Background())

	require.Equal(t, 1, c.Len(), "only the well-formed entry survives")
	line := c.Lines()[0]
	assert.Equal(t, "ok", line.Product.ID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, float64(90000), c.Subtotal())
}

func TestLoadDropsFractionalQuantitiesBelowOne(t *testing.T) {
	// A fractional quantity in (0, 1) truncates to zero; keeping it
	// would leave a zero-quantity line in the cart, so it is dropped
	// like any other malformed entry. At or above one the fraction is
	// simply truncated.
	slot := newFakeSlot()
	slot.data["cart:s"] = []byte(`[
		{"product": {"id": "sub", "price": 100, "stock": 5}, "quantity": 0.5},
		{"product": {"id": "ok", "price": 100, "stock": 5}, "quantity": 2.9}
	]`)

	c := NewPersistence(slot, "s").Load(context.Background())

	require.Equal(t, 1, c.Len())
	line := c.Lines()[0]
	assert.Equal(t, "ok", line.Product.ID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 2, c.ItemsCount())
}

func TestLoadKeepsOverStockLines(t *testing.T) {
	// Stock dropped after the cart was persisted: the stale quantity is
	// kept until the next explicit update re-clamps it.
	slot := newFakeSlot()
	slot.data["cart:s"] = []byte(`[{"product":{"id":"p1","price":100,"stock":2},"quantity":9}]`)

	c := NewPersistence(slot, "s").Load(context.Background())
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 9, c.Lines()[0].Quantity)

	c.UpdateQuantity("p1", 9)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestNilSlotGuard(t *testing.T) {
	p := NewPersistence(nil, "s")

	c := p.Load(context.Background())
	assert.Equal(t, 0, c.Len())

	c.Add(snapshot("p1", 100, 5), 1)
	p.Save(context.Background(), c) // must not panic

	var noPersistence *Persistence
	assert.Equal(t, 0, noPersistence.Load(context.Background()).Len())
	noPersistence.Save(context.Background(), c)
}

func TestSaveSwallowsWriteFailure(t *testing.T) {
	slot := newFakeSlot()
	slot.writeErr = errors.New("quota exceeded")
	p := NewPersistence(slot, "s")

	c := New()
	c.Add(snapshot("p1", 100, 5), 1)
	p.Save(context.Background(), c)

	// the in-memory cart is untouched by the failed write
	assert.Equal(t, 1, c.Len())
	assert.Empty(t, slot.data)
}

func TestSaveOverwritesPriorValue(t *testing.T) {
	ctx := context.Background()
	slot := newFakeSlot()
	p := NewPersistence(slot, "s")

	c := New()
	c.Add(snapshot("p1", 100, 5), 1)
	p.Save(ctx, c)

	c.Clear()
	p.Save(ctx, c)

	assert.Equal(t, 0, p.Load(ctx).Len())
	assert.JSONEq(t, `[]`, string(slot.data["cart:s"]))
}
