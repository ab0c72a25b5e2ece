package pattern

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

var (
	// ErrInvalidDensity is returned when density falls outside [0, 1]
	ErrInvalidDensity = errors.New("density must be within [0, 1]")
	// ErrInvalidSize is returned for a negative width or height
	ErrInvalidSize = errors.New("size must not be negative")
)

// Randomize marks cells alive in the width x height rectangle at the origin,
// each with probability density. Cells already alive are left alone.
func Randomize(b *model.Board, rng *rand.Rand, width, height int, density float64) error {
	if density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "[Randomize] got %v", density)
	}
	if width < 0 || height < 0 {
		return errors.Wrapf(ErrInvalidSize, "[Randomize] got %dx%d", width, height)
	}

	for y := range height {
		for x := range width {
			if rng.Float64() < density {
				b.InsertCell(x, y)
			}
		}
	}
	return nil
}
