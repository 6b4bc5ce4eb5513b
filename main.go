package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/leonelquinteros/gotext"

	"keyquest/pkg/engine/terminal"
	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/gameplay"
	"keyquest/pkg/game/renderer"
	"keyquest/pkg/game/renderer/screen"
	"keyquest/pkg/game/renderer/tui"
	"keyquest/pkg/game/setup"
	"keyquest/pkg/game/state"
)

func initGettext() {
	gotext.Configure("mo/", "en_GB.utf8", "default")
}

// buildRenderer resolves the -renderer flag to a backend
func buildRenderer(name string) (renderer.Renderer, error) {
	switch name {
	case "tui":
		return tui.New(), nil
	case "tcell":
		return screen.New(), nil
	}
	return nil, fmt.Errorf("unknown renderer %q (want tui or tcell)", name)
}

func main() {
	rendererName := flag.String("renderer", "tui", "rendering backend: tui or tcell")
	width := flag.Int("width", 0, "room width; prompts when unset or invalid")
	height := flag.Int("height", 0, "room height; prompts when unset or invalid")
	seed := flag.Int64("seed", 0, "layout seed; 0 derives one from the clock")
	flag.Parse()

	initGettext()
	renderer.InitColors()

	w, h := *width, *height
	if !world.ValidSize(w, h) {
		w, h = setup.PromptRoomSize()
	}

	layoutSeed := *seed
	if layoutSeed == 0 {
		layoutSeed = time.Now().UnixNano()
	}

	g, err := gameplay.BuildGame(w, h, layoutSeed)
	if err != nil {
		log.Fatalf("Cannot generate room: %v", err)
	}

	if !terminal.FitsGrid(w, h, tui.ChromeRows) {
		fmt.Println(renderer.FormatString("DENIED{%s}", gotext.Get("Warning: terminal is smaller than the room, display may clip.")))
	}

	r, err := buildRenderer(*rendererName)
	if err != nil {
		log.Fatalf("%v", err)
	}
	renderer.SetRenderer(r)

	if err := renderer.Init(); err != nil {
		log.Fatalf("Cannot initialize renderer: %v", err)
	}

	runSession(g)
}

// runSession drives the one-input-per-iteration loop until the session
// reaches a terminal phase
func runSession(g *state.Game) {
	renderer.DrawFrame(g)

	for !g.Over() {
		intent := renderer.ReadInput()

		changes := gameplay.ProcessIntent(g, intent)
		if len(changes) > 0 {
			renderer.ApplyChanges(g, changes)
		}
	}

	renderer.Close()

	switch g.Phase {
	case state.PhaseWon:
		fmt.Println(renderer.FormatString("ITEM{%s}", gotext.Get("You escaped the room. Well done!")))
	case state.PhaseQuit:
		fmt.Println(gotext.Get("Goodbye!"))
	}
}
