// Package cursor tracks a keyboard position in a scrollable grid of rows.
package cursor

// Cursor holds the focused row and column of a grid and the first visible
// row. Row count, column count and viewport height are passed to methods
// since they change whenever the grid is rebuilt.
type Cursor struct {
	row    int
	col    int
	offset int // first visible row
	margin int // rows kept visible above/below the focused row
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Row returns the focused row.
func (c Cursor) Row() int {
	return c.row
}

// Col returns the focused column.
func (c Cursor) Col() int {
	return c.col
}

// Offset returns the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// MoveRow moves the focus by delta rows, clamped to the grid, and scrolls so
// the focused row stays visible. The column is kept.
func (c *Cursor) MoveRow(delta, rows, height int) {
	if rows == 0 {
		return
	}
	c.row = clamp(c.row+delta, rows-1)
	c.EnsureVisible(rows, height)
}

// Jump focuses (row, col), clamped to the grid.
func (c *Cursor) Jump(row, col, rows, cols, height int) {
	if rows == 0 || cols == 0 {
		return
	}
	c.row = clamp(row, rows-1)
	c.col = clamp(col, cols-1)
	c.EnsureVisible(rows, height)
}

// EnsureVisible adjusts the scroll offset so the focused row is visible.
func (c *Cursor) EnsureVisible(rows, height int) {
	if height <= 0 || rows == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.row < c.offset+margin {
		c.offset = max(c.row-margin, 0)
	}
	if c.row >= c.offset+height-margin {
		c.offset = c.row - height + margin + 1
	}
	c.offset = clamp(c.offset, max(rows-height, 0))
}

// ClampToBounds keeps the focus inside a grid that may have shrunk.
// It reports whether the focus moved.
func (c *Cursor) ClampToBounds(rows, cols int) bool {
	oldRow, oldCol := c.row, c.col
	if rows == 0 || cols == 0 {
		c.row, c.col, c.offset = 0, 0, 0
		return oldRow != 0 || oldCol != 0
	}
	c.row = clamp(c.row, rows-1)
	c.col = clamp(c.col, cols-1)
	return c.row != oldRow || c.col != oldCol
}

// VisibleRange returns the visible rows [start, end).
func (c Cursor) VisibleRange(rows, height int) (start, end int) {
	if rows == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, rows)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
