// Package setup handles the cooked-mode prompts that run before the game
// takes over the terminal. Dimension validation lives entirely here; the game
// core only ever sees sizes that already passed the bounds.
package setup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"keyquest/pkg/engine/input"
	"keyquest/pkg/engine/world"
	"keyquest/pkg/game/renderer"
)

// ParseDimension parses one prompt answer into a number within [min, max]
func ParseDimension(answer string, min, max int) (int, error) {
	answer = strings.TrimSpace(answer)

	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", answer)
	}

	if n < min || n > max {
		return 0, fmt.Errorf("%d is outside [%d, %d]", n, min, max)
	}

	return n, nil
}

// PromptRoomSize asks for room width and height, re-prompting until both pass
// the bounds. It never returns an invalid size.
func PromptRoomSize() (width, height int) {
	width = promptDimension(gotext.Get("Room width"), world.MinWidth, world.MaxWidth)
	height = promptDimension(gotext.Get("Room height"), world.MinHeight, world.MaxHeight)
	return width, height
}

func promptDimension(label string, min, max int) int {
	for {
		fmt.Print(renderer.FormatString("ACTION{%s} [%d-%d]: ", label, min, max))

		n, err := ParseDimension(input.GetInput(), min, max)
		if err == nil {
			return n
		}

		fmt.Println(renderer.FormatString("DENIED{%s}", gotext.Get("Invalid size, try again.")))
	}
}
