package models

// CartLine is one row of the in-progress order. Price is captured when the
// line is added, so later catalog price changes never touch it.
type CartLine struct {
	ProductName string `json:"product_name"`
	Price       int    `json:"price"`
	Qty         int    `json:"qty"`
	Note        string `json:"note"`
}

// Cart is the uncommitted order of the active session. It lives in memory
// only; suspending it writes a snapshot, settling it writes a ledger entry.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// AddLine merges into an existing line when (product name, note) match
// exactly, otherwise appends a new line with quantity 1. A different note
// produces a distinct line even for the same product.
func (c *Cart) AddLine(productName string, price int, note string) {
	for i := range c.Lines {
		if c.Lines[i].ProductName == productName && c.Lines[i].Note == note {
			c.Lines[i].Qty++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductName: productName,
		Price:       price,
		Qty:         1,
		Note:        note,
	})
}

// AdjustQuantity adds delta to the line's quantity and removes the line once
// it drops to zero or below. The index must be valid.
func (c *Cart) AdjustQuantity(index, delta int) {
	c.Lines[index].Qty += delta
	if c.Lines[index].Qty <= 0 {
		c.RemoveLine(index)
	}
}

func (c *Cart) RemoveLine(index int) {
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
}

// Total is recomputed from the lines on every call.
func (c *Cart) Total() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Price * line.Qty
	}
	return total
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Snapshot returns an independent copy of the lines.
func (c *Cart) Snapshot() []CartLine {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}
