package logic

// Cursor tracks which dropdown row is highlighted for keyboard
// selection. It stays clamped to the current result count; -1 means no
// row is highlighted yet.
type Cursor struct {
	index int
	count int
}

// NewCursor returns a cursor over zero rows.
func NewCursor() *Cursor {
	return &Cursor{index: -1}
}

// SetCount updates the number of rows. The highlighted index is
// clamped, and reset to none when the rows change out from under it.
func (c *Cursor) SetCount(count int) {
	c.count = count
	if count == 0 {
		c.index = -1
		return
	}
	if c.index >= count {
		c.index = count - 1
	}
}

// Reset clears the highlight without changing the count.
func (c *Cursor) Reset() { c.index = -1 }

// Down moves the highlight one row down, starting at the first row and
// stopping at the last.
func (c *Cursor) Down() {
	if c.count == 0 {
		return
	}
	if c.index < c.count-1 {
		c.index++
	}
}

// Up moves the highlight one row up, stopping at the first row.
func (c *Cursor) Up() {
	if c.count == 0 {
		return
	}
	if c.index > 0 {
		c.index--
	}
}

// Index returns the highlighted row, or -1 when none is highlighted.
func (c *Cursor) Index() int { return c.index }
