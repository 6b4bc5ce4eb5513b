package world

// Position identifies a grid cell by its x (column) and y (row) coordinates.
// (0,0) is the top-left corner.
type Position struct {
	X int
	Y int
}

// Step returns the position one cell away in the given direction
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// CellChange describes one cell whose displayed content must change.
// The state machine emits these after every state-changing operation so a
// renderer can redraw incrementally instead of repainting the whole grid.
type CellChange struct {
	Pos  Position
	Tile Tile
}
