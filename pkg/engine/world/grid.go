package world

// Room size bounds. The interior (everything inside the border ring) must be
// at least 2x2 so there is always somewhere to put a player and a key.
const (
	MinWidth  = 10
	MaxWidth  = 120
	MinHeight = 6
	MaxHeight = 40
)

// ValidSize checks a width/height pair against the room size bounds
func ValidSize(width, height int) bool {
	return width >= MinWidth && width <= MaxWidth &&
		height >= MinHeight && height <= MaxHeight &&
		width-2 >= 2 && height-2 >= 2
}

// Grid represents the game map with encapsulated tile storage
type Grid struct {
	tiles  [][]Tile
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions.
// Every cell starts as TileWall.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height

	g.tiles = make([][]Tile, height)
	for y := 0; y < height; y++ {
		g.tiles[y] = make([]Tile, width)
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsInterior checks if a position is within the playable area (not on the
// border ring)
func (g *Grid) IsInterior(p Position) bool {
	return p.X >= 1 && p.X < g.width-1 && p.Y >= 1 && p.Y < g.height-1
}

// IsBorder checks if a position is on the outermost ring of the grid
func (g *Grid) IsBorder(p Position) bool {
	return g.InBounds(p) && !g.IsInterior(p)
}

// IsCorner checks if a position is one of the four corner cells
func (g *Grid) IsCorner(p Position) bool {
	return (p.X == 0 || p.X == g.width-1) && (p.Y == 0 || p.Y == g.height-1)
}

// TileAt returns the tile at the given position. Out-of-bounds positions
// read as TileWall so callers never index past the edge.
func (g *Grid) TileAt(p Position) Tile {
	if !g.InBounds(p) {
		return TileWall
	}
	return g.tiles[p.Y][p.X]
}

// SetTile writes the tile at the given position. Returns false if out of bounds.
func (g *Grid) SetTile(p Position, t Tile) bool {
	if !g.InBounds(p) {
		return false
	}
	g.tiles[p.Y][p.X] = t
	return true
}

// ForEachTile iterates over all cells in the grid, calling the provided
// function for each
func (g *Grid) ForEachTile(fn func(p Position, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Position{X: x, Y: y}, g.tiles[y][x])
		}
	}
}

// Validate checks the grid for common issues and returns an error description
// or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	doors := 0
	players := 0
	keys := 0
	misplacedDoor := false
	borderFloor := false

	g.ForEachTile(func(p Position, t Tile) {
		switch t {
		case TileDoorClosed, TileDoorOpen:
			doors++
			if !g.IsBorder(p) || g.IsCorner(p) {
				misplacedDoor = true
			}
		case TilePlayer:
			players++
		case TilePlayerOnDoor:
			players++
			doors++
		case TileKey:
			keys++
		case TileFloor:
			if !g.IsInterior(p) {
				borderFloor = true
			}
		}
	})

	if doors != 1 {
		return "Grid does not have exactly one door"
	}

	if misplacedDoor {
		return "Door is not on a non-corner border cell"
	}

	if players != 1 {
		return "Grid does not have exactly one player"
	}

	if keys > 1 {
		return "Grid has more than one key"
	}

	if borderFloor {
		return "Grid has floor on the border ring"
	}

	return ""
}
