// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Tile represents the content of a single grid cell.
// Exactly one tile occupies each cell at any time.
type Tile int

// Tile kinds
const (
	TileWall Tile = iota
	TileFloor
	TileKey
	TileDoorClosed
	TileDoorOpen
	TilePlayer
	TilePlayerOnDoor
)

// String returns the string representation of a tile
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	case TileKey:
		return "Key"
	case TileDoorClosed:
		return "DoorClosed"
	case TileDoorOpen:
		return "DoorOpen"
	case TilePlayer:
		return "Player"
	case TilePlayerOnDoor:
		return "PlayerOnDoor"
	default:
		return "Unknown"
	}
}

// IsDoor returns true for either door state
func (t Tile) IsDoor() bool {
	return t == TileDoorClosed || t == TileDoorOpen
}

// BlocksMovement returns true if a player can never step onto this tile
func (t Tile) BlocksMovement() bool {
	return t == TileWall || t == TileDoorClosed
}
