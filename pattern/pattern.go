package pattern

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidRune is returned when a diagram holds an unrecognized rune
var ErrInvalidRune = errors.New("invalid pattern rune")

// Pattern is a set of alive cells relative to the origin
type Pattern []model.Cell

/*
Parse builds a Pattern from a diagram, one string per row. Row index is y,
column index is x.

	x, o, #      alive
	_, ., space  dead
*/
func Parse(rows ...string) (Pattern, error) {
	var p Pattern
	for y, row := range rows {
		for x, r := range []rune(row) {
			switch r {
			case 'x', 'o', '#':
				p = append(p, model.Cell{X: x, Y: y})
			case '_', '.', ' ':
			default:
				return nil, errors.Wrapf(ErrInvalidRune, "[Parse] %q at row %d col %d", r, y, x)
			}
		}
	}
	return p, nil
}

// MustParse is like Parse but panics on error
func MustParse(rows ...string) Pattern {
	p, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// Place inserts the pattern into b with its origin at (x, y)
func (p Pattern) Place(b *model.Board, x, y int) {
	for _, c := range p {
		b.InsertCell(x+c.X, y+c.Y)
	}
}
