package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"keyquest/pkg/engine/world"
)

// RoomGenerator builds a single bordered rectangular room: wall ring, floor
// interior, one door on the border, one player start, one key.
type RoomGenerator struct {
	rng *rand.Rand
}

// Name returns the name of this generator
func (g *RoomGenerator) Name() string {
	return "Bordered Room"
}

// maxPlacementAttempts bounds the key resampling loop. With at least four
// interior cells the expected number of attempts is O(1), so the cap exists
// only to keep placement total.
const maxPlacementAttempts = 1000

// ErrPlacementExhausted is returned when a random placement could not find a
// free cell within the attempt cap.
var ErrPlacementExhausted = errors.New("generator: placement attempts exhausted")

// Generate creates a new room layout with the given dimensions.
// Dimensions must already satisfy world.ValidSize.
func (g *RoomGenerator) Generate(width, height int) (*Layout, error) {
	if !world.ValidSize(width, height) {
		return nil, fmt.Errorf("generator: invalid room size %dx%d", width, height)
	}

	grid := world.NewGrid(width, height)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			grid.SetTile(world.Position{X: x, Y: y}, world.TileFloor)
		}
	}

	door := g.pickDoor(width, height)
	player := g.pickInterior(width, height)

	key, err := g.pickKey(width, height, player)
	if err != nil {
		return nil, err
	}

	grid.SetTile(door, world.TileDoorClosed)
	grid.SetTile(player, world.TilePlayer)
	grid.SetTile(key, world.TileKey)

	return &Layout{
		Grid:   grid,
		Door:   door,
		Player: player,
		Key:    key,
	}, nil
}

// pickDoor chooses a uniformly-random border side, then a uniformly-random
// offset strictly between that side's corners.
func (g *RoomGenerator) pickDoor(width, height int) world.Position {
	switch g.rng.Intn(4) {
	case 0: // top
		return world.Position{X: 1 + g.rng.Intn(width-2), Y: 0}
	case 1: // bottom
		return world.Position{X: 1 + g.rng.Intn(width-2), Y: height - 1}
	case 2: // left
		return world.Position{X: 0, Y: 1 + g.rng.Intn(height-2)}
	default: // right
		return world.Position{X: width - 1, Y: 1 + g.rng.Intn(height-2)}
	}
}

// pickInterior chooses a uniformly-random interior cell
func (g *RoomGenerator) pickInterior(width, height int) world.Position {
	return world.Position{
		X: 1 + g.rng.Intn(width-2),
		Y: 1 + g.rng.Intn(height-2),
	}
}

// pickKey resamples interior cells until one distinct from the player start
// comes up, or the attempt cap is hit.
func (g *RoomGenerator) pickKey(width, height int, player world.Position) (world.Position, error) {
	for i := 0; i < maxPlacementAttempts; i++ {
		key := g.pickInterior(width, height)
		if key != player {
			return key, nil
		}
	}
	return world.Position{}, ErrPlacementExhausted
}

// Fixed builds a layout with pinned entity positions. Used by tests and
// scripted scenarios; positions are not validated beyond grid bounds, so the
// caller is responsible for a sensible door/player/key arrangement.
func Fixed(width, height int, door, player, key world.Position) *Layout {
	grid := world.NewGrid(width, height)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			grid.SetTile(world.Position{X: x, Y: y}, world.TileFloor)
		}
	}

	grid.SetTile(door, world.TileDoorClosed)
	grid.SetTile(player, world.TilePlayer)
	grid.SetTile(key, world.TileKey)

	return &Layout{
		Grid:   grid,
		Door:   door,
		Player: player,
		Key:    key,
	}
}
