package renderer

import (
	"keyquest/pkg/engine/input"
	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// Implementations include the ANSI TUI and the tcell screen backend.
type Renderer interface {
	// Init initializes the renderer (colors, screen, cursor state)
	Init() error

	// Close restores the terminal to a usable state
	Close()

	// DrawFrame renders a complete game frame: grid, status line, messages
	DrawFrame(g *state.Game)

	// ApplyChanges repaints only the given cells, then refreshes the status
	// line and message pane
	ApplyChanges(g *state.Game, changes []world.CellChange)

	// ReadInput blocks for the next keypress and returns its intent
	ReadInput() input.Intent

	// ShowMessage displays a message outside the game chrome (e.g. after the
	// session ends)
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Close restores the terminal via the current renderer
func Close() {
	if Current != nil {
		Current.Close()
	}
}

// DrawFrame renders a complete game frame
func DrawFrame(g *state.Game) {
	if Current != nil {
		Current.DrawFrame(g)
	}
}

// ApplyChanges repaints the given cells
func ApplyChanges(g *state.Game, changes []world.CellChange) {
	if Current != nil {
		Current.ApplyChanges(g, changes)
	}
}

// ReadInput blocks for the next keypress
func ReadInput() input.Intent {
	if Current != nil {
		return Current.ReadInput()
	}
	return input.Intent{}
}

// ShowMessage displays a message to the user
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
