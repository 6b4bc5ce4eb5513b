package gameplay

import (
	"math/rand"

	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/generator"
	"keyquest/pkg/game/state"
)

// BuildGame generates a fresh room and assembles a playable session.
// The seed drives every random placement, so the same seed reproduces the
// same layout.
func BuildGame(width, height int, seed int64) (*state.Game, error) {
	rng := rand.New(rand.NewSource(seed))

	layout, err := generator.New(rng).Generate(width, height)
	if err != nil {
		return nil, err
	}

	g := NewGameFromLayout(layout)
	g.Seed = seed

	logMessage(g, "You wake up in a locked room.")
	logMessage(g, "Find the ITEM{key}, then leave through the DOOR{door}.")

	return g, nil
}

// NewGameFromLayout assembles a session from an already-generated layout.
// The door starts closed and the player carries nothing.
func NewGameFromLayout(layout *generator.Layout) *state.Game {
	g := state.NewGame()
	g.Grid = layout.Grid
	g.Player = layout.Player
	g.Door = layout.Door
	g.Key = layout.Key
	g.DoorOpen = false
	g.HasKey = false
	return g
}

// InitialChanges returns a change for every cell so a renderer can paint the
// whole room after initialization through the same path it uses for
// incremental redraws.
func InitialChanges(g *state.Game) []world.CellChange {
	changes := make([]world.CellChange, 0, g.Grid.Width()*g.Grid.Height())
	g.Grid.ForEachTile(func(p world.Position, t world.Tile) {
		changes = append(changes, world.CellChange{Pos: p, Tile: t})
	})
	return changes
}
