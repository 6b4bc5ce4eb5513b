// Package tui is the ANSI terminal renderer. It paints the full frame once,
// then keeps the screen current with cursor-addressed per-cell redraws.
package tui

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"keyquest/pkg/engine/input"
	"keyquest/pkg/engine/terminal"
	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/renderer"
	"keyquest/pkg/game/state"
)

// ChromeRows is the number of chrome rows drawn below the grid: blank,
// status, messages header, five message slots, messages footer, key help.
const ChromeRows = 10

// maxMessageRows mirrors the state message cap so the pane never scrolls
const maxMessageRows = 5

// TUIRenderer is the cursor-addressed ANSI renderer
type TUIRenderer struct {
	gridHeight int
	gridWidth  int
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes colors and takes over the screen
func (t *TUIRenderer) Init() error {
	renderer.InitColors()
	terminal.HideCursor()
	terminal.ClearScreen()
	return nil
}

// Close restores the cursor and parks it below the chrome
func (t *TUIRenderer) Close() {
	terminal.MoveCursor(0, t.gridHeight+ChromeRows)
	terminal.ShowCursor()
	fmt.Println()
}

// DrawFrame renders the complete frame: grid, status line, message pane
func (t *TUIRenderer) DrawFrame(g *state.Game) {
	t.gridWidth = g.Grid.Width()
	t.gridHeight = g.Grid.Height()

	terminal.ClearScreen()

	var row strings.Builder
	for y := 0; y < t.gridHeight; y++ {
		row.Reset()
		for x := 0; x < t.gridWidth; x++ {
			row.WriteString(renderer.RenderTile(g.Grid.TileAt(world.Position{X: x, Y: y})))
		}
		terminal.MoveCursor(0, y)
		fmt.Print(row.String())
	}

	t.drawStatus(g)
	t.drawMessages(g)
	t.drawHelp()
	t.parkCursor()
}

// ApplyChanges repaints only the changed cells plus the status and message
// chrome, which is what makes per-keypress updates flicker-free.
func (t *TUIRenderer) ApplyChanges(g *state.Game, changes []world.CellChange) {
	for _, ch := range changes {
		terminal.MoveCursor(ch.Pos.X, ch.Pos.Y)
		fmt.Print(renderer.RenderTile(ch.Tile))
	}

	t.drawStatus(g)
	t.drawMessages(g)
	t.parkCursor()
}

// ReadInput blocks for a single keypress and maps it to an intent
func (t *TUIRenderer) ReadInput() input.Intent {
	return input.MapToIntent(input.ReadKey())
}

// ShowMessage prints a message below the game chrome
func (t *TUIRenderer) ShowMessage(msg string) {
	terminal.MoveCursor(0, t.gridHeight+ChromeRows)
	terminal.EraseLine()
	fmt.Print(renderer.FormatString("%s", msg))
}

func (t *TUIRenderer) drawStatus(g *state.Game) {
	terminal.MoveCursor(0, t.gridHeight+1)
	terminal.EraseLine()
	fmt.Print(renderer.StatusLine(g))
}

func (t *TUIRenderer) drawMessages(g *state.Game) {
	width := t.gridWidth
	if w := terminal.GetWidth(); w < width {
		width = w
	}

	header := renderer.PaneHeader(" "+gotext.Get("Messages")+" ", width)

	terminal.MoveCursor(0, t.gridHeight+2)
	terminal.EraseLine()
	fmt.Print(renderer.ColorSubtle.Sprint(header))

	for i := 0; i < maxMessageRows; i++ {
		terminal.MoveCursor(0, t.gridHeight+3+i)
		terminal.EraseLine()
		if i < len(g.Messages) {
			fmt.Print("  " + g.Messages[i])
		}
	}

	terminal.MoveCursor(0, t.gridHeight+3+maxMessageRows)
	terminal.EraseLine()
	fmt.Print(renderer.ColorSubtle.Sprint(strings.Repeat("─", width)))
}

func (t *TUIRenderer) drawHelp() {
	terminal.MoveCursor(0, t.gridHeight+4+maxMessageRows)
	terminal.EraseLine()
	fmt.Print(renderer.FormatString("ACTION{%s}", gotext.Get("arrows/wasd/hjkl move, q quits")))
}

// parkCursor leaves the cursor out of the playfield between redraws
func (t *TUIRenderer) parkCursor() {
	terminal.MoveCursor(0, t.gridHeight+ChromeRows)
}
