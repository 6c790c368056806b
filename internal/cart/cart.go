package cart

// ProductSnapshot is a value copy of the catalog fields captured when a
// product is added to the cart. The cart never re-fetches it, so a stale
// price or stock is kept until the line is explicitly updated.
type ProductSnapshot struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Stock     *int     `json:"stock"` // nil means unbounded
	ImageURLs []string `json:"image_urls"`
}

const unboundedStock = int(^uint(0) >> 1)

func (p ProductSnapshot) effectiveStock() int {
	if p.Stock == nil {
		return unboundedStock
	}
	return *p.Stock
}

// Line is one product/quantity pairing in a cart.
type Line struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is an ordered sequence of lines, unique by product ID. Mutations
// clamp quantities silently instead of returning errors: a cart
// interaction must never fail from the caller's point of view, invalid
// input is corrected or ignored.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add merges qty into an existing line for the product, capped at the
// product's stock, or appends a new line with quantity min(max(1, qty), stock).
// Adding an out-of-stock product is a no-op; the caller is expected to
// disable the action based on stock before offering it.
func (c *Cart) Add(p ProductSnapshot, qty int) {
	stock := p.effectiveStock()
	if stock <= 0 {
		return
	}
	for i, l := range c.lines {
		if l.Product.ID == p.ID {
			next := l.Quantity + qty
			if next > stock {
				next = stock
			}
			// the snapshot captured at first add wins, not the new one
			c.lines[i] = Line{Product: l.Product, Quantity: next}
			return
		}
	}
	initial := qty
	if initial < 1 {
		initial = 1
	}
	if initial > stock {
		initial = stock
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: initial})
}

// Remove drops the line for the product. Absent product is a no-op.
func (c *Cart) Remove(productID string) {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity clamps qty to [1, stock] for the product's line. When
// the clamped result is still not positive (the product went out of
// stock after it was added) the line is dropped. Absent product is a
// no-op.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	for i, l := range c.lines {
		if l.Product.ID != productID {
			continue
		}
		stock := l.Product.effectiveStock()
		next := qty
		if next < 1 {
			next = 1
		}
		if next > stock {
			next = stock
		}
		if next <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i] = Line{Product: l.Product, Quantity: next}
		}
		return
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the line sequence in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Subtotal is recomputed from the lines on every call, never cached.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Product.Price * float64(l.Quantity)
	}
	return sum
}

// ItemsCount is the total quantity across all lines.
func (c *Cart) ItemsCount() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}
