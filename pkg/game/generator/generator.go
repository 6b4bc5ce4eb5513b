package generator

import (
	"math/rand"

	"keyquest/pkg/engine/world"
)

// Layout holds a generated grid plus the positions of the entities placed on it
type Layout struct {
	Grid   *world.Grid
	Door   world.Position
	Player world.Position
	Key    world.Position
}

// GridGenerator is an interface for room generation algorithms
type GridGenerator interface {
	Generate(width, height int) (*Layout, error)
	Name() string
}

// New creates the default room generator driven by the given random source.
// Injecting the source keeps generation deterministic under test.
func New(rng *rand.Rand) GridGenerator {
	return &RoomGenerator{rng: rng}
}
