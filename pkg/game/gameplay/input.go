package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "keyquest/pkg/engine/input"
	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/renderer"
	"keyquest/pkg/game/state"
)

// ProcessIntent handles a high-level input intent and returns the cell
// changes the renderer must apply. Intents that map to no action consume
// nothing.
func ProcessIntent(g *state.Game, intent engineinput.Intent) []world.CellChange {
	switch intent.Action {
	case engineinput.ActionNone:
		return nil

	case engineinput.ActionQuit:
		Quit(g)
		return nil

	case engineinput.ActionMoveNorth:
		return processMove(g, world.North)

	case engineinput.ActionMoveSouth:
		return processMove(g, world.South)

	case engineinput.ActionMoveWest:
		return processMove(g, world.West)

	case engineinput.ActionMoveEast:
		return processMove(g, world.East)
	}

	return nil
}

func processMove(g *state.Game, dir world.Direction) []world.CellChange {
	hadKey := g.HasKey

	result, changes := Move(g, dir)

	if !hadKey && g.HasKey {
		logMessage(g, "You found the ITEM{%s}! The DOOR{door} swings open.", gotext.Get("key"))
	}
	if result == MoveWon {
		logMessage(g, "%s", gotext.Get("You step through the doorway. You escaped!"))
	}

	return changes
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.FormatString(msg, a...)
	g.AddMessage(formatted)
}
