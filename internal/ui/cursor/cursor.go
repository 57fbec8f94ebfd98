// Package cursor tracks the selected line and scroll offset of a pane.
package cursor

// Cursor is the selected line of a pane plus the first visible line.
// The content length and viewport height are passed to every method since
// both change under it: the daemon edits the playlist and the terminal resizes.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept between the cursor and the viewport edges
}

// New creates a cursor on line 0 keeping margin rows of context.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos is the selected line.
func (c Cursor) Pos() int { return c.pos }

// Offset is the first visible line.
func (c Cursor) Offset() int { return c.offset }

// Move shifts the cursor by delta lines, clamped to the content.
// An empty list leaves it alone.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump puts the cursor on line pos, clamped to the content.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

// EnsureVisible scrolls the least amount that keeps the cursor inside the
// viewport, margin rows away from either edge where the content allows.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back inside a list that shrank. It reports
// whether the cursor moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	old := c.pos
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return old != 0
	}
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != old
}

// VisibleRange returns the visible lines as [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Anchor is a row of the viewport: its first, middle or last line.
type Anchor int

const (
	Top Anchor = iota
	Middle
	Bottom
)

// Align scrolls so the cursor sits on the anchor row, as far as the content
// allows. The cursor itself does not move.
func (c *Cursor) Align(anchor Anchor, listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	switch anchor {
	case Top:
		c.offset = c.pos
	case Middle:
		c.offset = c.pos - height/2
	case Bottom:
		c.offset = c.pos - height + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// Select moves the cursor onto a visible row without scrolling.
// For Top and Bottom, n counts rows inward from that edge (1 is the edge).
func (c *Cursor) Select(anchor Anchor, n, listLen, height int) {
	start, end := c.VisibleRange(listLen, height)
	if end <= start {
		return
	}
	n = max(n, 1)

	switch anchor {
	case Top:
		c.pos = min(start+n-1, end-1)
	case Middle:
		c.pos = start + (end-start-1)/2
	case Bottom:
		c.pos = max(end-n, start)
	}
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
