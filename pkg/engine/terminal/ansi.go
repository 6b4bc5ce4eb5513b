package terminal

import (
	"fmt"
)

// ANSI control sequences used for cursor management and targeted redraws.
// These write to stdout directly; callers own flushing/ordering.

// MoveCursor positions the cursor at the given zero-based cell coordinates.
// ANSI rows and columns are one-based, hence the +1.
func MoveCursor(x, y int) {
	fmt.Printf("\x1b[%d;%dH", y+1, x+1)
}

// HideCursor makes the cursor invisible during play
func HideCursor() {
	fmt.Print("\x1b[?25l")
}

// ShowCursor restores cursor visibility
func ShowCursor() {
	fmt.Print("\x1b[?25h")
}

// EraseLine clears from the cursor to the end of the current line
func EraseLine() {
	fmt.Print("\x1b[K")
}

// ClearScreen wipes the display and homes the cursor
func ClearScreen() {
	fmt.Print("\x1b[2J\x1b[H")
}
