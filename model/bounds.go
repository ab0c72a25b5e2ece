package model

// Bounds is the inclusive bounding box of a set of cells
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// Width returns the number of columns covered
func (r Bounds) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height returns the number of rows covered
func (r Bounds) Height() int {
	return r.MaxY - r.MinY + 1
}

// Area returns the number of positions inside the box
func (r Bounds) Area() int {
	return r.Width() * r.Height()
}

// Bounds calculates the bounding box of the alive cells. ok is false when
// the board is empty.
func (b *Board) Bounds() (r Bounds, ok bool) {
	for c := range b.cells {
		if !ok {
			r = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			ok = true
			continue
		}
		r.MinX = min(r.MinX, c.X)
		r.MaxX = max(r.MaxX, c.X)
		r.MinY = min(r.MinY, c.Y)
		r.MaxY = max(r.MaxY, c.Y)
	}
	return r, ok
}
