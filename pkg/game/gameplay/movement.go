// Package gameplay provides core game logic for player movement and the
// win condition.
package gameplay

import (
	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/state"
)

// MoveResult is the outcome of a single move request. Every direction maps to
// exactly one of these; a blocked move is a normal outcome, not an error.
type MoveResult int

// Move outcomes
const (
	MoveRejected MoveResult = iota
	Moved
	MoveWon
)

// String returns the string representation of a move result
func (r MoveResult) String() string {
	switch r {
	case MoveRejected:
		return "Rejected"
	case Moved:
		return "Moved"
	case MoveWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Move processes a single-step move request and returns the outcome plus the
// cells a renderer must repaint. The returned slice is empty for rejected
// moves and wins (a win ends the session, so nothing is left to repaint).
//
// Policy, in order: off-grid targets win only from atop the open door;
// walls and the closed door block; entering the key cell collects the key and
// opens the door; anything else relocates the player.
func Move(g *state.Game, dir world.Direction) (MoveResult, []world.CellChange) {
	if g.Phase != state.PhasePlaying || !dir.IsValid() {
		return MoveRejected, nil
	}

	target := g.Player.Step(dir)

	if !g.Grid.InBounds(target) {
		// Off-grid neighbors exist only next to border cells, and the door is
		// the only border cell a player can occupy. The check still compares
		// the player's current cell to the door rather than the step geometry.
		if g.Player == g.Door && g.DoorOpen {
			g.Phase = state.PhaseWon
			return MoveWon, nil
		}
		return MoveRejected, nil
	}

	tile := g.Grid.TileAt(target)
	if tile.BlocksMovement() {
		return MoveRejected, nil
	}

	var changes []world.CellChange

	if tile == world.TileKey {
		g.HasKey = true
		g.PickUpItem(&state.Item{Name: "Door Key"})
		if !g.DoorOpen {
			g.DoorOpen = true
			g.Grid.SetTile(g.Door, world.TileDoorOpen)
			changes = append(changes, world.CellChange{Pos: g.Door, Tile: world.TileDoorOpen})
		}
	}

	vacated := world.TileFloor
	if g.Player == g.Door && g.DoorOpen {
		vacated = world.TileDoorOpen
	}
	g.Grid.SetTile(g.Player, vacated)
	changes = append(changes, world.CellChange{Pos: g.Player, Tile: vacated})

	occupied := world.TilePlayer
	if target == g.Door {
		occupied = world.TilePlayerOnDoor
	}
	g.Grid.SetTile(target, occupied)
	changes = append(changes, world.CellChange{Pos: target, Tile: occupied})

	g.Player = target
	return Moved, changes
}

// Quit ends the session immediately. Always legal; terminal phases stay put.
func Quit(g *state.Game) {
	if g.Phase == state.PhasePlaying {
		g.Phase = state.PhaseQuit
	}
}
