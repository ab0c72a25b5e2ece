package model

import (
	"slices"

	"github.com/sheikhrachel/go-life/rules"
)

// Board holds the alive cells of an unbounded grid. Dead cells are not
// stored, so memory grows with the population rather than the area.
type Board struct {
	cells map[Cell]struct{}
}

// NewBoard creates a board with no alive cells
func NewBoard() *Board {
	return &Board{cells: make(map[Cell]struct{})}
}

// InsertCell marks (x, y) alive. Inserting an alive cell again is a no-op.
func (b *Board) InsertCell(x, y int) {
	b.cells[Cell{X: x, Y: y}] = struct{}{}
}

// IsAlive returns whether (x, y) is alive
func (b *Board) IsAlive(x, y int) bool {
	_, ok := b.cells[Cell{X: x, Y: y}]
	return ok
}

// Len returns the number of alive cells
func (b *Board) Len() int {
	return len(b.cells)
}

/*
Tick returns the next generation as a new Board. The receiver is only read.

Each alive cell is checked against its 8 neighbors. While doing so, every
dead neighbor gets a counter bump. Dead cells that end with a count of
exactly three are born.
*/
func (b *Board) Tick() *Board {
	var (
		next         = NewBoard()
		deadCounters = make(map[Cell]int)
	)

	for c := range b.cells {
		b.tickAliveCell(next, deadCounters, c)
	}
	for c, count := range deadCounters {
		if rules.ApplyConwayRules(count, false) {
			next.cells[c] = struct{}{}
		}
	}

	return next
}

// tickAliveCell decides whether c survives and records c as a neighbor of
// each of its dead neighbors.
func (b *Board) tickAliveCell(next *Board, deadCounters map[Cell]int, c Cell) {
	neighbors := 0
	for _, n := range c.Neighbors() {
		if _, ok := b.cells[n]; ok {
			neighbors++
		} else {
			deadCounters[n]++
		}
	}
	if rules.ApplyConwayRules(neighbors, true) {
		next.cells[c] = struct{}{}
	}
}

// AliveCells returns the alive cells sorted by X, then Y
func (b *Board) AliveCells() []Cell {
	cells := make([]Cell, 0, len(b.cells))
	for c := range b.cells {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, Cell.Compare)
	return cells
}

// Equal reports whether both boards hold the same alive cells
func (b *Board) Equal(other *Board) bool {
	if len(b.cells) != len(other.cells) {
		return false
	}
	for c := range b.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}
