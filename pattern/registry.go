package pattern

import (
	"slices"
	"sync"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrUnknownPattern is returned when no pattern is registered under a name
var ErrUnknownPattern = errors.New("unknown pattern")

// mu guards patterns
var mu sync.RWMutex

var patterns = map[string]Pattern{
	// Still lifes
	"block": MustParse(
		"xx",
		"xx",
	),
	"beehive": MustParse(
		"_xx_",
		"x__x",
		"_xx_",
	),
	// Oscillators
	"blinker": MustParse(
		"xxx",
	),
	"toad": MustParse(
		"_xxx",
		"xxx_",
	),
	"beacon": MustParse(
		"xx__",
		"xx__",
		"__xx",
		"__xx",
	),
	// Spaceships
	"glider": MustParse(
		"_x_",
		"__x",
		"xxx",
	),
	// Methuselahs
	"r-pentomino": MustParse(
		"_xx",
		"xx_",
		"_x_",
	),
}

// Register adds or replaces a named pattern with a copy of p. Empty names
// and patterns are ignored. Safe for concurrent use.
func Register(name string, p Pattern) {
	if name == "" || len(p) == 0 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	patterns[name] = slices.Clone(p)
}

// Lookup returns a copy of the pattern registered under name
func Lookup(name string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
	}
	return slices.Clone(p), nil
}

// Names returns the registered pattern names in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Place inserts the named pattern into b with its origin at (x, y)
func Place(b *model.Board, name string, x, y int) error {
	p, err := Lookup(name)
	if err != nil {
		return errors.Wrapf(err, "[Place] failed to place pattern at (%d, %d)", x, y)
	}
	p.Place(b, x, y)
	return nil
}
