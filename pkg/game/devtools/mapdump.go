// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"keyquest/pkg/engine/world"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile
func tileSymbol(t world.Tile) rune {
	switch t {
	case world.TileWall:
		return '#'
	case world.TileFloor:
		return '.'
	case world.TileKey:
		return 'k'
	case world.TileDoorClosed:
		return 'D'
	case world.TileDoorOpen:
		return 'd'
	case world.TilePlayer:
		return '@'
	case world.TilePlayerOnDoor:
		return '@'
	default:
		return '?'
	}
}

// DumpGrid renders the grid as plain text, one row per line. Tests use this
// to compare whole layouts in one assertion; it is also what DumpGridToFile
// writes out.
func DumpGrid(grid *world.Grid) string {
	var sb strings.Builder

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			sb.WriteRune(tileSymbol(grid.TileAt(world.Position{X: x, Y: y})))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// DumpGridToFile writes the grid dump next to the working directory and
// returns the path
func DumpGridToFile(grid *world.Grid) (string, error) {
	path := filepath.Join(".", mapDumpFilename)

	if err := os.WriteFile(path, []byte(DumpGrid(grid)), 0o644); err != nil {
		return "", fmt.Errorf("cannot write map dump: %w", err)
	}

	return path, nil
}
