// Package screen is the tcell-based full-screen renderer. It offers the same
// contract as the ANSI TUI but drives the terminal through tcell's
// double-buffered screen, which handles terminfo quirks and resizes.
package screen

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"keyquest/pkg/engine/input"
	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/renderer"
	"keyquest/pkg/game/state"
)

const maxMessageRows = 5

// ScreenRenderer renders through a tcell.Screen
type ScreenRenderer struct {
	screen tcell.Screen

	styleDefault tcell.Style
	styleWall    tcell.Style
	styleFloor   tcell.Style
	styleItem    tcell.Style
	styleDoor    tcell.Style
	styleDenied  tcell.Style
	stylePlayer  tcell.Style
	styleSubtle  tcell.Style

	gridWidth  int
	gridHeight int
}

// New creates a new tcell screen renderer
func New() *ScreenRenderer {
	return &ScreenRenderer{}
}

// Init creates and initializes the tcell screen
func (s *ScreenRenderer) Init() error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}

	s.attach(scr)
	return nil
}

// attach adopts an already-initialized screen and sets up the styles.
// Split out from Init so tests can drive a tcell simulation screen.
func (s *ScreenRenderer) attach(scr tcell.Screen) {
	scr.HideCursor()

	s.screen = scr
	s.styleDefault = tcell.StyleDefault
	s.styleWall = tcell.StyleDefault.Foreground(tcell.ColorGray)
	s.styleFloor = tcell.StyleDefault.Foreground(tcell.ColorGray)
	s.styleItem = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	s.styleDoor = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	s.styleDenied = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	s.stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	s.styleSubtle = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
}

// Close releases the screen and restores the terminal
func (s *ScreenRenderer) Close() {
	if s.screen != nil {
		s.screen.Fini()
	}
}

// DrawFrame renders the complete frame
func (s *ScreenRenderer) DrawFrame(g *state.Game) {
	s.gridWidth = g.Grid.Width()
	s.gridHeight = g.Grid.Height()

	s.screen.Clear()

	g.Grid.ForEachTile(func(p world.Position, t world.Tile) {
		s.setTile(p, t)
	})

	s.drawChrome(g)
	s.screen.Show()
}

// ApplyChanges repaints only the changed cells plus the chrome
func (s *ScreenRenderer) ApplyChanges(g *state.Game, changes []world.CellChange) {
	for _, ch := range changes {
		s.setTile(ch.Pos, ch.Tile)
	}

	s.drawChrome(g)
	s.screen.Show()
}

// ReadInput blocks for the next key event and maps it to an intent.
// Resize events resync the screen without consuming a game step.
func (s *ScreenRenderer) ReadInput() input.Intent {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return input.MapToIntent(keyCode(ev))
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// ShowMessage prints a message below the game chrome
func (s *ScreenRenderer) ShowMessage(msg string) {
	s.drawText(0, s.gridHeight+10, color.ClearCode(msg), s.styleDefault)
	s.screen.Show()
}

func (s *ScreenRenderer) setTile(p world.Position, t world.Tile) {
	var r rune
	var style tcell.Style

	switch t {
	case world.TileWall:
		r, style = '▒', s.styleWall
	case world.TileFloor:
		r, style = '·', s.styleFloor
	case world.TileKey:
		r, style = '⚷', s.styleItem
	case world.TileDoorClosed:
		r, style = '▣', s.styleDenied
	case world.TileDoorOpen:
		r, style = '□', s.styleDoor
	case world.TilePlayer, world.TilePlayerOnDoor:
		r, style = '@', s.stylePlayer
	default:
		r, style = ' ', s.styleDefault
	}

	s.screen.SetContent(p.X, p.Y, r, nil, style)
}

// drawChrome paints the status line, message pane and key help below the grid
func (s *ScreenRenderer) drawChrome(g *state.Game) {
	statusY := s.gridHeight + 1

	s.clearRow(statusY)
	x := 0
	if g.HasKey {
		x = s.drawText(x, statusY, gotext.Get("Key: carried"), s.styleItem)
	} else {
		x = s.drawText(x, statusY, gotext.Get("Key: not found"), s.styleSubtle)
	}
	x = s.drawText(x, statusY, " | ", s.styleSubtle)
	if g.DoorOpen {
		s.drawText(x, statusY, gotext.Get("Door: open"), s.styleDoor)
	} else {
		s.drawText(x, statusY, gotext.Get("Door: locked"), s.styleDenied)
	}

	header := renderer.PaneHeader(" "+gotext.Get("Messages")+" ", s.gridWidth)

	s.clearRow(statusY + 1)
	s.drawText(0, statusY+1, header, s.styleSubtle)

	for i := 0; i < maxMessageRows; i++ {
		s.clearRow(statusY + 2 + i)
		if i < len(g.Messages) {
			// Messages are stored with ANSI styling for the TUI backend
			s.drawText(2, statusY+2+i, color.ClearCode(g.Messages[i]), s.styleDefault)
		}
	}

	s.clearRow(statusY + 2 + maxMessageRows)
	s.drawText(0, statusY+2+maxMessageRows, strings.Repeat("─", s.gridWidth), s.styleSubtle)

	s.clearRow(statusY + 3 + maxMessageRows)
	s.drawText(0, statusY+3+maxMessageRows, gotext.Get("arrows/wasd/hjkl move, q quits"), s.styleSubtle)
}

func (s *ScreenRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (s *ScreenRenderer) clearRow(y int) {
	width, _ := s.screen.Size()
	for x := 0; x < width; x++ {
		s.screen.SetContent(x, y, ' ', nil, s.styleDefault)
	}
}

// keyCode converts a tcell key event to the shared binding codes
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}
