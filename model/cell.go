package model

import "cmp"

// Cell is a single grid position. It is comparable and can be used
// directly as a map key.
type Cell struct {
	X, Y int
}

// Compare orders cells by X, then by Y.
func (c Cell) Compare(other Cell) int {
	if n := cmp.Compare(c.X, other.X); n != 0 {
		return n
	}
	return cmp.Compare(c.Y, other.Y)
}

// Neighbors returns the 8 cells of the Moore neighborhood around c.
// Coordinates wrap around at the int limits.
func (c Cell) Neighbors() [8]Cell {
	x, y := c.X, c.Y
	return [8]Cell{
		// Top
		{x - 1, y - 1}, {x, y - 1}, {x + 1, y - 1},
		// Mid
		{x - 1, y}, {x + 1, y},
		// Bottom
		{x - 1, y + 1}, {x, y + 1}, {x + 1, y + 1},
	}
}
