package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(id string, price float64, stock int) ProductSnapshot {
	return ProductSnapshot{ID: id, Name: "ring " + id, Price: price, Stock: &stock}
}

func TestAddMergesQuantitiesUpToStock(t *testing.T) {
	c := New()
	p := snapshot("p1", 45000, 15)

	c.Add(p, 1)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Lines()[0].Quantity)
	assert.Equal(t, float64(45000), c.Subtotal())

	c.Add(p, 20)
	require.Equal(t, 1, c.Len(), "repeated add must merge, not duplicate")
	assert.Equal(t, 15, c.Lines()[0].Quantity)
	assert.Equal(t, float64(15*45000), c.Subtotal())
}

func TestAddClampsInitialQuantity(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		qty   int
		want  int
	}{
		{"zero request becomes one", 10, 0, 1},
		{"negative request becomes one", 10, -3, 1},
		{"request above stock capped", 5, 9, 5},
		{"request within stock kept", 5, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Add(snapshot("p1", 100, tt.stock), tt.qty)
			require.Equal(t, 1, c.Len())
			assert.Equal(t, tt.want, c.Lines()[0].Quantity)
		})
	}
}

func TestAddOutOfStockIsNoOp(t *testing.T) {
	c := New()
	c.Add(snapshot("p1", 45000, 15), 1)

	c.Add(snapshot("p2", 1000, 0), 1)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, "p1", c.Lines()[0].Product.ID)
	assert.Equal(t, float64(45000), c.Subtotal())
}

func TestAddUnboundedStock(t *testing.T) {
	c := New()
	p := ProductSnapshot{ID: "p1", Price: 250}

	c.Add(p, 500)
	c.Add(p, 500)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 1000, c.Lines()[0].Quantity)
}

func TestAddKeepsSnapshotFromFirstAdd(t *testing.T) {
	c := New()
	c.Add(snapshot("p1", 45000, 15), 1)

	repriced := snapshot("p1", 99000, 15)
	c.Add(repriced, 1)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, float64(45000), c.Lines()[0].Product.Price)
	assert.Equal(t, float64(2*45000), c.Subtotal())
}

func TestUpdateQuantityClamps(t *testing.T) {
	tests := []struct {
		name string
		qty  int
		want int
	}{
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -5, 1},
		{"above stock clamps to stock", 40, 15},
		{"within bounds kept", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Add(snapshot("p1", 45000, 15), 3)
			c.UpdateQuantity("p1", tt.qty)
			require.Equal(t, 1, c.Len(), "line must survive the clamp")
			assert.Equal(t, tt.want, c.Lines()[0].Quantity)
		})
	}
}

func TestUpdateQuantityDropsExhaustedLine(t *testing.T) {
	// A line whose snapshot went out of stock can only exist when the
	// stock dropped after it was persisted; the next update removes it.
	zero := 0
	c := &Cart{lines: []Line{{
		Product:  ProductSnapshot{ID: "p1", Price: 45000, Stock: &zero},
		Quantity: 3,
	}}}

	c.UpdateQuantity("p1", 2)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, float64(0), c.Subtotal())
}

func TestUpdateQuantityUnknownProductIsNoOp(t *testing.T) {
	c := New()
	c.Add(snapshot("p1", 100, 10), 2)

	c.UpdateQuantity("missing", 5)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(snapshot("p1", 45000, 15), 1)
	c.Add(snapshot("p2", 12000, 8), 2)

	c.Remove("p1")

	require.Equal(t, 1, c.Len())
	assert.Equal(t, "p2", c.Lines()[0].Product.ID)

	// absent id is a no-op, not an error
	c.Remove("p1")
	assert.Equal(t, 1, c.Len())

	c.Remove("p2")
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, float64(0), c.Subtotal())
	assert.Equal(t, 0, c.ItemsCount())
}

func TestNoDuplicateLinesAcrossOperations(t *testing.T) {
	c := New()
	p1 := snapshot("p1", 100, 50)
	p2 := snapshot("p2", 200, 50)

	c.Add(p1, 1)
	c.Add(p2, 2)
	c.Add(p1, 3)
	c.UpdateQuantity("p2", 4)
	c.Add(p2, 1)

	seen := map[string]int{}
	for _, l := range c.Lines() {
		seen[l.Product.ID]++
	}
	for id, n := range seen {
		assert.Equalf(t, 1, n, "product %s has %d lines", id, n)
	}
}

func TestDerivedTotalsRecomputedAfterEveryMutation(t *testing.T) {
	c := New()
	c.Add(snapshot("p1", 45000, 15), 1)
	assert.Equal(t, float64(45000), c.Subtotal())
	assert.Equal(t, 1, c.ItemsCount())

	c.Add(snapshot("p1", 45000, 15), 20)
	assert.Equal(t, float64(675000), c.Subtotal())
	assert.Equal(t, 15, c.ItemsCount())

	c.Add(snapshot("p2", 1200, 4), 2)
	assert.Equal(t, float64(675000+2400), c.Subtotal())
	assert.Equal(t, 17, c.ItemsCount())

	c.Remove("p1")
	assert.Equal(t, float64(2400), c.Subtotal())
	assert.Equal(t, 2, c.ItemsCount())
}

func TestClearIsIdempotent(t *testing.T) {
	c := New()
	c.Add(snapshot("p1", 100, 10), 2)
	c.Add(snapshot("p2", 300, 10), 1)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, float64(0), c.Subtotal())
	assert.Equal(t, 0, c.ItemsCount())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, float64(0), c.Subtotal())
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.Add(snapshot("p1", 100, 10), 2)

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 2, c.Lines()[0].Quantity)
}
